package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abuelosolos/Fara/internal/logger"
)

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

// Ping is the liveness probe. It never touches dependencies.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is up and running"})
}

// Ready runs every check with a short deadline and answers 503 when any fails.
func Ready(checks map[string]Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		result := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.FromContext(ctx).Warn("readiness check failed", zap.String("check", name), zap.Error(err))
				result[name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			result[name] = "ok"
		}

		c.JSON(status, gin.H{"ready": status == http.StatusOK, "checks": result})
	}
}
