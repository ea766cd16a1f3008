package handler

import (
	"fmt"
	"net/http"
	"time"

	"hospital-finder-backend/internal/service"
	apperrors "hospital-finder-backend/pkg/errors"
	"hospital-finder-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// AvailableRoutes is returned for unmatched routes
var AvailableRoutes = []string{
	"GET /api/health",
	"GET /api/hospitals",
	"GET /api/hospitals/nearby?lat=XX&lng=XX&radius=XX",
	"GET /api/hospitals/search?state=XX&district=XX",
	"GET /api/hospitals/:id",
	"GET /api/hospitals/stats",
	"POST /api/hospitals/upload",
	"DELETE /api/hospitals/all",
}

type HealthHandler struct {
	hospitalService *service.HospitalService
}

func NewHealthHandler(hospitalService *service.HospitalService) *HealthHandler {
	return &HealthHandler{hospitalService: hospitalService}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(c *gin.Context) {
	status, err := h.hospitalService.Health(requestContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Health check failed",
			"error":   apperrors.DetailOf(err),
		})
		return
	}

	mongoStatus := "disconnected"
	if status.Connected {
		mongoStatus = "connected"
	}

	utils.JSONResponse(c, gin.H{
		"status":         "ok",
		"message":        "Hospital Finder API is running",
		"mongodb":        mongoStatus,
		"totalHospitals": status.TotalHospitals,
		"version":        Version,
		"timestamp":      time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}

// NotFound lists the available routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":           "Not Found",
		"message":         fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
		"availableRoutes": AvailableRoutes,
	})
}
