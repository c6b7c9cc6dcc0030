package router

import (
	"github.com/iamumarjaved/padelbridge1/internal/config"
	"github.com/iamumarjaved/padelbridge1/internal/handler"
	"github.com/iamumarjaved/padelbridge1/internal/middleware"
	"github.com/iamumarjaved/padelbridge1/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router needs wired.
type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Courts     *handler.CourtHandler
	Categories *handler.CategoryHandler
	Inventory  *handler.InventoryHandler
	Bookings   *handler.BookingHandler
	Sales      *handler.SaleHandler
	Reports    *handler.ReportHandler
	PriceCheck *handler.PriceCheckHandler
}

// New assembles the gin engine: middleware chain, public endpoints, and the
// authenticated /v1 surface with its role gates.
func New(cfg *config.Config, h Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.RateLimiter(),
	)

	r.GET("/health", h.Health.Check)
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")

	// Unauthenticated surface.
	v1.POST("/auth/login", middleware.LoginRateLimiter(), h.Auth.Login)
	v1.POST("/auth/refresh", h.Auth.Refresh)
	v1.GET("/price/:sku", h.PriceCheck.Check)

	// Everything below requires a valid access token.
	authed := v1.Group("", middleware.JWTAuth(cfg.JWTSecret))
	admin := authed.Group("", middleware.RequireRole(model.RoleAdmin))

	authed.GET("/auth/me", h.Auth.Me)

	// User administration — ADMIN only.
	admin.POST("/users", h.Auth.CreateUser)
	admin.GET("/users", h.Auth.ListUsers)
	admin.GET("/users/:id", h.Auth.GetUser)
	admin.PUT("/users/:id", h.Auth.UpdateUser)
	admin.DELETE("/users/:id", h.Auth.DeleteUser)

	// Courts — reads for everyone, writes for ADMIN.
	authed.GET("/courts", h.Courts.List)
	authed.GET("/courts/:id", h.Courts.Get)
	admin.POST("/courts", h.Courts.Create)
	admin.PUT("/courts/:id", h.Courts.Update)
	admin.DELETE("/courts/:id", h.Courts.Delete)

	// Inventory categories.
	authed.GET("/categories", h.Categories.List)
	authed.GET("/categories/:id", h.Categories.Get)
	admin.POST("/categories", h.Categories.Create)
	admin.PUT("/categories/:id", h.Categories.Update)
	admin.DELETE("/categories/:id", h.Categories.Delete)

	// Inventory items. Stock adjustment is a STAFF operation (receiving
	// deliveries at the counter); item CRUD stays ADMIN.
	authed.GET("/items", h.Inventory.List)
	authed.GET("/items/:id", h.Inventory.Get)
	authed.GET("/items/:id/stock-transactions", h.Inventory.StockTransactions)
	authed.POST("/items/:id/adjust-stock", h.Inventory.AdjustStock)
	admin.POST("/items", h.Inventory.Create)
	admin.PUT("/items/:id", h.Inventory.Update)
	admin.DELETE("/items/:id", h.Inventory.Delete)

	// Bookings — full lifecycle for STAFF and ADMIN.
	authed.POST("/bookings", h.Bookings.Create)
	authed.GET("/bookings", h.Bookings.List)
	authed.GET("/bookings/:id", h.Bookings.Get)
	authed.PUT("/bookings/:id", h.Bookings.Update)
	authed.PATCH("/bookings/:id/status", h.Bookings.UpdateStatus)
	authed.DELETE("/bookings/:id", h.Bookings.Delete)
	authed.POST("/bookings/:id/extra-hours", h.Bookings.AddExtraHours)
	authed.GET("/bookings/:id/receipt", h.Bookings.DownloadReceipt)

	// Point of sale.
	authed.POST("/sales", h.Sales.Create)
	authed.GET("/sales", h.Sales.List)
	authed.DELETE("/sales/:id", h.Sales.Delete)

	// Reports.
	authed.GET("/reports/sales-summary", h.Reports.SalesSummary)

	return r
}
