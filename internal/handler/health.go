package handler

import (
	"net/http"
	"time"

	"github.com/iamumarjaved/padelbridge1/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb}
}

// Check reports liveness of each dependency plus the dead-letter backlog.
// Returns 503 when Postgres or Redis is unreachable.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()
	status := http.StatusOK
	checks := gin.H{}

	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = err.Error()
		status = http.StatusServiceUnavailable
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = err.Error()
		status = http.StatusServiceUnavailable
	}
	checks["database"] = dbStatus

	redisStatus := "ok"
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		redisStatus = err.Error()
		status = http.StatusServiceUnavailable
	}
	checks["redis"] = redisStatus

	if dead, err := worker.DLQLength(ctx, h.rdb); err == nil {
		checks["dead_letter_jobs"] = dead
	}

	c.JSON(status, gin.H{
		"status": http.StatusText(status),
		"time":   time.Now().UTC().Format(time.RFC3339),
		"checks": checks,
	})
}
