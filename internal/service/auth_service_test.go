package service_test

import (
	"context"
	"testing"

	"github.com/iamumarjaved/padelbridge1/internal/apierror"
	"github.com/iamumarjaved/padelbridge1/internal/config"
	"github.com/iamumarjaved/padelbridge1/internal/dto"
	"github.com/iamumarjaved/padelbridge1/internal/model"
	"github.com/iamumarjaved/padelbridge1/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func adminUser(email, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Admin",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	user := adminUser("admin@club.test", "secret123")
	svc := service.NewAuthService(newStubUserRepo(user), testConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@club.test",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	user := adminUser("admin@club.test", "secret123")
	svc := service.NewAuthService(newStubUserRepo(user), testConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@club.test",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := service.NewAuthService(newStubUserRepo(), testConfig())
	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@club.test",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestRefreshRotatesPair(t *testing.T) {
	user := adminUser("admin@club.test", "secret123")
	svc := service.NewAuthService(newStubUserRepo(user), testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@club.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, user.Email, refreshed.User.Email)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	user := adminUser("admin@club.test", "secret123")
	svc := service.NewAuthService(newStubUserRepo(user), testConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@club.test",
		Password: "secret123",
	})
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(context.Background(), dto.RefreshRequest{
		RefreshToken: login.AccessToken,
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	user := adminUser("admin@club.test", "secret123")
	svc := service.NewAuthService(newStubUserRepo(user), testConfig())

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "admin@club.test",
		Name:     "Other",
		Password: "secret123",
		Role:     model.RoleStaff,
	})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestDeleteLastAdminBlocked(t *testing.T) {
	admin := adminUser("admin@club.test", "secret123")
	repo := newStubUserRepo(admin)
	svc := service.NewAuthService(repo, testConfig())

	err := svc.DeleteUser(context.Background(), admin.ID, uuid.New())
	assert.ErrorIs(t, err, apierror.ErrConflict)
	assert.Contains(t, repo.users, admin.ID)
}

func TestDeleteAdminWithAnotherAdminRemaining(t *testing.T) {
	a := adminUser("a@club.test", "secret123")
	b := adminUser("b@club.test", "secret123")
	repo := newStubUserRepo(a, b)
	svc := service.NewAuthService(repo, testConfig())

	require.NoError(t, svc.DeleteUser(context.Background(), a.ID, b.ID))
	assert.NotContains(t, repo.users, a.ID)
}

func TestDeleteSelfBlocked(t *testing.T) {
	a := adminUser("a@club.test", "secret123")
	b := adminUser("b@club.test", "secret123")
	svc := service.NewAuthService(newStubUserRepo(a, b), testConfig())

	err := svc.DeleteUser(context.Background(), a.ID, a.ID)
	assert.ErrorIs(t, err, apierror.ErrConflict)
}

func TestDemoteLastAdminBlocked(t *testing.T) {
	admin := adminUser("admin@club.test", "secret123")
	svc := service.NewAuthService(newStubUserRepo(admin), testConfig())

	_, err := svc.UpdateUser(context.Background(), admin.ID, dto.UpdateUserRequest{
		Role: model.RoleStaff,
	})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}
