package middleware

import (
	"net/http"

	"hospital-finder-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS returns a middleware that allows the configured origins; "*" allows any.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowAny := false
	for _, origin := range cfg.CORS.AllowedOrigins {
		if origin == "*" {
			allowAny = true
			break
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		// Check if origin is in allowed list
		allowed := allowAny
		for _, allowedOrigin := range cfg.CORS.AllowedOrigins {
			if origin == allowedOrigin {
				allowed = true
				break
			}
		}

		if allowed && origin != "" {
			if allowAny {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Add("Vary", "Origin")
			}
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		}

		// Handle preflight OPTIONS request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
