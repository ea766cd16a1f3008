package middleware

import (
	"fmt"
	"net/http"

	"hospital-finder-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// BodyLimit rejects request bodies larger than maxBytes with 413.
// Bodies of unknown length are cut off by http.MaxBytesReader while being read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "File too large",
				fmt.Sprintf("Uploads are limited to %d bytes", maxBytes))
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
