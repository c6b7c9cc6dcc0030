package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/middleware"
	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, role, tokenType string, ttl time.Duration) string {
	t.Helper()
	claims := middleware.JWTClaims{
		UserID:    "8f0c2f1e-0000-0000-0000-000000000001",
		Email:     "user@club.test",
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authed := r.Group("", middleware.JWTAuth(testSecret))
	authed.GET("/ping", func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"role": claims.Role})
	})
	admin := authed.Group("", middleware.RequireRole(model.RoleAdmin))
	admin.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	r := newTestRouter()
	token := signTestToken(t, model.RoleStaff, "access", time.Hour)
	w := doRequest(r, "/ping", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.RoleStaff)
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	r := newTestRouter()
	w := doRequest(r, "/ping", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	r := newTestRouter()
	token := signTestToken(t, model.RoleStaff, "access", -time.Minute)
	w := doRequest(r, "/ping", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsRefreshTokenOnAPI(t *testing.T) {
	r := newTestRouter()
	token := signTestToken(t, model.RoleStaff, "refresh", time.Hour)
	w := doRequest(r, "/ping", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleBlocksStaffFromAdminRoutes(t *testing.T) {
	r := newTestRouter()
	token := signTestToken(t, model.RoleStaff, "access", time.Hour)
	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	r := newTestRouter()
	token := signTestToken(t, model.RoleAdmin, "access", time.Hour)
	w := doRequest(r, "/admin", token)
	assert.Equal(t, http.StatusOK, w.Code)
}
