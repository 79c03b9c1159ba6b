package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping() error
}

// SystemHandler exposes liveness and readiness probes.
type SystemHandler struct {
	db           Pinger
	redis        *redis.Client
	startedAt    time.Time
	checkTimeout time.Duration
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, redisClient *redis.Client, checkTimeout time.Duration) *SystemHandler {
	if checkTimeout <= 0 {
		checkTimeout = time.Second
	}
	return &SystemHandler{
		db:           db,
		redis:        redisClient,
		startedAt:    time.Now(),
		checkTimeout: checkTimeout,
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}

// Health handles GET /health; it reports liveness only.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "UP",
		"uptime": time.Since(h.startedAt).String(),
	})
}

// Ready handles GET /ready; it verifies the database and Redis within the
// configured timeout.
func (h *SystemHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if err := h.db.Ping(); err != nil {
		checks["database"] = "DOWN: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "UP"
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = "DOWN: " + err.Error()
		healthy = false
	} else {
		checks["redis"] = "UP"
	}

	status := http.StatusOK
	overall := "UP"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "DOWN"
	}

	c.JSON(status, gin.H{
		"status": overall,
		"checks": checks,
	})
}
