package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-finder-backend/internal/config"
	"hospital-finder-backend/internal/database"
	"hospital-finder-backend/internal/handler"
	"hospital-finder-backend/internal/logger"
	"hospital-finder-backend/internal/repository"
	"hospital-finder-backend/internal/routes"
	"hospital-finder-backend/internal/service"
	"hospital-finder-backend/internal/spreadsheet"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	logger.Init("hospital-finder-api", cfg.Log.Env, cfg.Log.Level)
	log.Info().Msg("Configuration loaded successfully")

	// 2. Initialize database connection
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The API keeps serving when MongoDB is down; health reports it as disconnected.
	client, err := database.NewClient(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid MongoDB configuration")
	}
	defer database.Disconnect(client)

	if err := database.Ping(ctx, client, cfg.Database.ConnectTimeout); err != nil {
		log.Error().Err(err).Msg("MongoDB connection error")
	} else {
		log.Info().Str("database", cfg.Database.Name).Msg("MongoDB connected successfully")
	}

	// 3. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(client.Database(cfg.Database.Name))
	if err := hospitalRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure hospital indexes")
	}

	// 4. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo)
	importService := service.NewImportService(hospitalRepo)

	// 5. Setup Gin mode and router
	gin.SetMode(cfg.Server.GinMode)

	healthHandler := handler.NewHealthHandler(hospitalService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService, importService, spreadsheet.Normalizer{
		EmergencyNumberDefault: cfg.Import.UploadEmergencyNumberDefault,
	})
	r := routes.NewRouter(cfg, healthHandler, hospitalHandler)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Server.Port,
		Handler: r,
	}

	// 6. Setup graceful shutdown
	go func() {
		dbLocation := "Remote"
		if cfg.IsLocalDatabase() {
			dbLocation = "Local"
		}
		log.Info().
			Str("port", cfg.Server.Port).
			Str("api", "http://localhost:"+cfg.Server.Port+"/api").
			Str("mongodb", dbLocation).
			Msg("Hospital Finder API server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
