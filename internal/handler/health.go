package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MelEUsher/Recipe-Manager/internal/storage"
)

// Health returns a JSON health check response backed by a storage
// round trip. Never exposes connection details.
func Health(backend storage.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if !backend.HealthCheck(ctx) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// Root GET / — service banner.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Recipe Manager API",
		"health":  "/health",
	})
}
