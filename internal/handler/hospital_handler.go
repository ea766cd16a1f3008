package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"hospital-finder-backend/internal/models"
	"hospital-finder-backend/internal/service"
	"hospital-finder-backend/internal/spreadsheet"
	apperrors "hospital-finder-backend/pkg/errors"
	"hospital-finder-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultRadiusKm = "50"

type HospitalHandler struct {
	hospitalService  *service.HospitalService
	importService    *service.ImportService
	uploadNormalizer spreadsheet.Normalizer
}

func NewHospitalHandler(
	hospitalService *service.HospitalService,
	importService *service.ImportService,
	uploadNormalizer spreadsheet.Normalizer,
) *HospitalHandler {
	return &HospitalHandler{
		hospitalService:  hospitalService,
		importService:    importService,
		uploadNormalizer: uploadNormalizer,
	}
}

// SearchQuery is the query string of GET /api/hospitals/search
type SearchQuery struct {
	State            string `form:"state"`
	District         string `form:"district"`
	Name             string `form:"name"`
	Category         string `form:"category"`
	Specialty        string `form:"specialty"`
	MinAvailableBeds string `form:"minAvailableBeds"`
	SearchText       string `form:"searchText"`
}

// Filters converts the query to store filters. minAvailableBeds is read from
// its leading digits ("12abc" and "12.9" are 12); without any it is ignored.
func (q SearchQuery) Filters() models.SearchFilters {
	filters := models.SearchFilters{
		State:      q.State,
		District:   q.District,
		Name:       q.Name,
		Category:   q.Category,
		Specialty:  q.Specialty,
		SearchText: q.SearchText,
	}
	if n, ok := spreadsheet.LeadingInt(q.MinAvailableBeds); ok {
		filters.MinAvailableBeds = &n
	}
	return filters
}

// requestContext detaches the store call from client disconnects
func requestContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// ListAll handles GET /api/hospitals
func (h *HospitalHandler) ListAll(c *gin.Context) {
	hospitals, err := h.hospitalService.ListAll(requestContext(c))
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to fetch hospitals")
		return
	}

	utils.JSONResponse(c, hospitals)
}

// Nearby handles GET /api/hospitals/nearby?lat=&lng=&radius=
func (h *HospitalHandler) Nearby(c *gin.Context) {
	latParam, lngParam := c.Query("lat"), c.Query("lng")
	if latParam == "" || lngParam == "" {
		utils.AppErrorResponse(c,
			apperrors.NewValidationError("Please provide lat and lng query parameters"),
			"Latitude and longitude are required")
		return
	}

	lat, latErr := parseFinite(latParam)
	lng, lngErr := parseFinite(lngParam)
	if latErr != nil || lngErr != nil || math.Abs(lat) > 90 || math.Abs(lng) > 180 {
		utils.AppErrorResponse(c,
			apperrors.NewValidationError("lat must be a number between -90 and 90 and lng a number between -180 and 180"),
			"Invalid coordinates")
		return
	}

	radiusKm, err := parseFinite(c.DefaultQuery("radius", defaultRadiusKm))
	if err != nil || radiusKm < 0 {
		utils.AppErrorResponse(c,
			apperrors.NewValidationError("radius must be a non-negative number of kilometers"),
			"Invalid radius")
		return
	}

	hospitals, err := h.hospitalService.FindNear(requestContext(c), lat, lng, radiusKm)
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to find nearby hospitals")
		return
	}

	utils.JSONResponse(c, hospitals)
}

// Search handles GET /api/hospitals/search
func (h *HospitalHandler) Search(c *gin.Context) {
	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.AppErrorResponse(c, apperrors.NewValidationError(err.Error()), "Invalid search parameters")
		return
	}

	hospitals, err := h.hospitalService.Search(requestContext(c), query.Filters())
	if err != nil {
		utils.AppErrorResponse(c, err, "Search failed")
		return
	}

	utils.JSONResponse(c, hospitals)
}

// GetHospital handles GET /api/hospitals/:id
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	hospital, err := h.hospitalService.GetByID(requestContext(c), c.Param("id"))
	if err != nil {
		title := "Failed to fetch hospital"
		if apperrors.TypeOf(err) == apperrors.ErrorTypeNotFound {
			title = "Hospital not found"
		}
		utils.AppErrorResponse(c, err, title)
		return
	}

	utils.JSONResponse(c, hospital)
}

// Stats handles GET /api/hospitals/stats
func (h *HospitalHandler) Stats(c *gin.Context) {
	stats, err := h.hospitalService.Stats(requestContext(c))
	if err != nil {
		utils.AppErrorResponse(c, err, "Failed to fetch statistics")
		return
	}

	utils.JSONResponse(c, stats)
}

// Upload handles POST /api/hospitals/upload with a spreadsheet in the "file" field
func (h *HospitalHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "File too large",
				fmt.Sprintf("Uploads are limited to %d bytes", tooLarge.Limit))
			return
		}
		utils.AppErrorResponse(c,
			apperrors.NewValidationError("Please attach a spreadsheet in the 'file' form field"),
			"No file uploaded")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	defer file.Close()

	log.Info().Str("file", fileHeader.Filename).Int64("size", fileHeader.Size).Msg("Processing uploaded spreadsheet")

	rows, err := spreadsheet.Read(file, fileHeader.Filename)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Upload failed", err.Error())
		return
	}
	log.Info().Int("rows", len(rows)).Msg("Found rows in spreadsheet")

	result := h.importService.ImportRows(requestContext(c), rows, h.uploadNormalizer)

	utils.JSONResponse(c, gin.H{
		"message":  "Import completed",
		"imported": result.Imported,
		"failed":   result.Failed,
		"total":    result.Total,
	})
}

// DeleteAll handles DELETE /api/hospitals/all
func (h *HospitalHandler) DeleteAll(c *gin.Context) {
	count, err := h.hospitalService.DeleteAll(requestContext(c))
	if err != nil {
		utils.AppErrorResponse(c, err, "Delete failed")
		return
	}

	utils.JSONResponse(c, gin.H{
		"message": "All hospitals deleted",
		"count":   count,
	})
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}
