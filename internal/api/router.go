// Package api wires the HTTP routes for the StoryReel API.
package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storyreel/storyreel/internal/api/handlers"
	"github.com/storyreel/storyreel/internal/config"
	"github.com/storyreel/storyreel/internal/services"
)

// SetupRouter configures and returns the main API router with all routes and middleware.
func SetupRouter(storySvc *services.StoryService, cfg *config.Config) *gin.Engine {
	h := handlers.NewHandlers(storySvc)

	// Set Gin mode based on environment
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.Default()

	// CORS middleware so browser dashboards can poll the API
	r.Use(corsMiddleware(cfg))

	r.GET("/health", h.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/stories", h.ListStories)
		v1.GET("/stories/:id", h.GetStory)
		v1.POST("/stories", h.CreateStory)
		v1.PATCH("/stories/:id", h.UpdateStory)
		v1.PUT("/stories/:id/status", h.UpdateStoryStatus)
		v1.POST("/stories/:id/retry", h.RetryStory)
		v1.DELETE("/stories/:id", h.DeleteStory)
	}

	return r
}

// corsMiddleware applies the configured CORS policy.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// If no allowed origins are configured, disable CORS (secure by default)
		if cfg.Server.AllowedOrigins == "" {
			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}
			c.Next()
			return
		}

		if isAllowedOrigin(origin, cfg.Server.AllowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the comma-separated list of allowed origins
func isAllowedOrigin(origin string, allowedOrigins string) bool {
	if origin == "" {
		return false
	}
	if allowedOrigins == "*" {
		return true
	}
	for _, allowed := range strings.Split(allowedOrigins, ",") {
		if strings.TrimSpace(allowed) == origin {
			return true
		}
	}
	return false
}
