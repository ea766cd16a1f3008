package utils

import (
	"net/http"

	apperrors "hospital-finder-backend/pkg/errors"

	"github.com/gin-gonic/gin"
)

// JSONResponse sends data as-is with 200
func JSONResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse sends the standard error envelope
func ErrorResponse(c *gin.Context, statusCode int, title, message string) {
	c.JSON(statusCode, gin.H{
		"error":   title,
		"message": message,
	})
}

// AppErrorResponse maps err to a status code and writes the error envelope.
// title is the operation summary shown in the "error" field.
func AppErrorResponse(c *gin.Context, err error, title string) {
	status := http.StatusInternalServerError
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrorTypeValidation:
		status = http.StatusBadRequest
	}
	ErrorResponse(c, status, title, apperrors.DetailOf(err))
}
