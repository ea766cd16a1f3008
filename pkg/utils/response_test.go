package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "hospital-finder-backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAppErrorResponse_StatusByType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperrors.NewValidationError("Please provide lat and lng query parameters"), http.StatusBadRequest,
			`{"error":"Bad input","message":"Please provide lat and lng query parameters"}`},
		{"not found", apperrors.NewNotFoundError("No hospital found with ID: 1"), http.StatusNotFound,
			`{"error":"Bad input","message":"No hospital found with ID: 1"}`},
		{"internal", apperrors.NewInternalError("count failed", errors.New("connection refused")), http.StatusInternalServerError,
			`{"error":"Bad input","message":"connection refused"}`},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError,
			`{"error":"Bad input","message":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			AppErrorResponse(c, tt.err, "Bad input")

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
