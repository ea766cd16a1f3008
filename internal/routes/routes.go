package routes

import (
	"hospital-finder-backend/internal/config"
	"hospital-finder-backend/internal/handler"
	"hospital-finder-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine with the global middleware and every route
func NewRouter(cfg *config.Config, healthHandler *handler.HealthHandler, hospitalHandler *handler.HospitalHandler) *gin.Engine {
	r := gin.New()
	// Uploads up to the limit are parsed in memory
	r.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20

	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg))

	SetupRoutes(r, cfg, healthHandler, hospitalHandler)
	return r
}

// SetupRoutes registers the API on r
func SetupRoutes(r *gin.Engine, cfg *config.Config, healthHandler *handler.HealthHandler, hospitalHandler *handler.HospitalHandler) {
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		hospitals := api.Group("/hospitals")
		{
			hospitals.GET("", hospitalHandler.ListAll)
			hospitals.GET("/nearby", hospitalHandler.Nearby)
			hospitals.GET("/search", hospitalHandler.Search)
			hospitals.GET("/stats", hospitalHandler.Stats)
			hospitals.GET("/:id", hospitalHandler.GetHospital)
			hospitals.POST("/upload", middleware.BodyLimit(cfg.Server.MaxUploadMB<<20), hospitalHandler.Upload)
			hospitals.DELETE("/all", hospitalHandler.DeleteAll)
		}
	}

	r.NoRoute(handler.NotFound)
}
