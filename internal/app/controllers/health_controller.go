package controllers

import (
	"github.com/gin-gonic/gin"

	"shopdesk-http-service/internal/app/middleware"
	"shopdesk-http-service/internal/domain/services/container"
	"shopdesk-http-service/internal/error/response"
)

// HealthCheckController serves the liveness and status endpoints
type HealthCheckController struct {
	Container *container.ServiceContainer
}

// NewHealthCheckController creates a health check controller
func NewHealthCheckController(container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{Container: container}
}

// Ping is the liveness endpoint
func (h *HealthCheckController) Ping(c *gin.Context) {
	response.Success(c, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports database pool and response cache statistics
func (h *HealthCheckController) Status(c *gin.Context) {
	status := gin.H{
		"status":               "healthy",
		"response_cache_items": middleware.CacheStats(),
	}

	if sqlDB, err := h.Container.GetDB().DB(); err == nil {
		stats := sqlDB.Stats()
		status["db_pool"] = gin.H{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
		}
		if err := sqlDB.Ping(); err != nil {
			status["status"] = "degraded"
			status["db_error"] = err.Error()
		}
	}

	response.Success(c, status)
}
