// Command import reloads the hospital collection from a spreadsheet.
//
//	import [path/to/hospitals.xlsx]
//
// Existing hospitals are deleted first. Row failures are reported but do not
// change the exit status; a missing file or an unreachable database exits 1.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hospital-finder-backend/internal/config"
	"hospital-finder-backend/internal/database"
	"hospital-finder-backend/internal/logger"
	"hospital-finder-backend/internal/repository"
	"hospital-finder-backend/internal/service"
	"hospital-finder-backend/internal/spreadsheet"

	"github.com/rs/zerolog/log"
)

const maxListedErrors = 20

func main() {
	cfg := config.LoadConfig()
	logger.Init("hospital-finder-import", cfg.Log.Env, cfg.Log.Level)

	filePath := cfg.Import.DefaultFile
	if len(os.Args) > 1 {
		filePath = os.Args[1]
	}

	os.Exit(run(context.Background(), cfg, filePath))
}

func run(ctx context.Context, cfg *config.Config, filePath string) int {
	dbLocation := "Remote"
	if cfg.IsLocalDatabase() {
		dbLocation = "Local"
	}
	log.Info().Str("file", filepath.Base(filePath)).Str("mongodb", dbLocation).Msg("Hospital data import")

	if _, err := os.Stat(filePath); err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("File not found")
		return 1
	}

	log.Info().Str("file", filePath).Msg("Reading spreadsheet")
	rows, err := spreadsheet.ReadFile(filePath)
	if err != nil {
		log.Error().Err(err).Msg("Import failed")
		return 1
	}
	log.Info().Int("rows", len(rows)).Msg("Found rows in spreadsheet")

	log.Info().Msg("Connecting to MongoDB...")
	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("Import failed")
		return 1
	}
	defer database.Disconnect(client)

	repo := repository.NewHospitalRepo(client.Database(cfg.Database.Name))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to ensure hospital indexes")
	}

	importService := service.NewImportService(repo)
	_, result, err := importService.Reload(ctx, rows, spreadsheet.Normalizer{
		EmergencyNumberDefault: cfg.Import.CLIEmergencyNumberDefault,
	})
	if err != nil {
		log.Error().Err(err).Msg("Import failed")
		return 1
	}

	printSummary(result)

	if count, err := repo.Count(ctx); err == nil {
		fmt.Printf("\nTotal hospitals in database: %d\n", count)
	} else {
		log.Warn().Err(err).Msg("Failed to count hospitals")
	}

	if sample, err := repo.FindSample(ctx); err == nil {
		fmt.Printf("\nSample hospital: name=%q state=%q district=%q coordinates=%v\n",
			sample.Name, sample.State, sample.District, sample.Location.Coordinates)
	}

	fmt.Println("\nImport completed successfully!")
	return 0
}

func printSummary(result *service.ImportResult) {
	rule := strings.Repeat("=", 60)

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("IMPORT SUMMARY")
	fmt.Println(rule)
	fmt.Printf("Successfully imported: %d\n", result.Imported)
	fmt.Printf("Failed: %d\n", result.Failed)
	fmt.Printf("Total rows: %d\n", result.Total)
	fmt.Println(rule)

	switch {
	case len(result.Errors) == 0:
	case len(result.Errors) <= maxListedErrors:
		fmt.Println("\nError Details:")
		for _, e := range result.Errors {
			fmt.Printf("   Row %d (%s): %s\n", e.Row, e.Name, e.Error)
		}
	default:
		fmt.Printf("\nToo many errors to display (%d total)\n", len(result.Errors))
	}
}
