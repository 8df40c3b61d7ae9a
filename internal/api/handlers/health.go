package handlers

import (
	"net/http"
	"time"

	"passenger-service/internal/api/interfaces"

	"github.com/gin-gonic/gin"
)

// HealthCheck provides a simple health check endpoint
func HealthCheck(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if !services.IsHealthy() {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, map[string]interface{}{
			"status":    status,
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	}
}
