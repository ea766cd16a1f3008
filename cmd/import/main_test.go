package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hospital-finder-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func unreachableConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{
			URI:            "mongodb://127.0.0.1:1/hospital_finder",
			Name:           "hospital_finder",
			ConnectTimeout: 200 * time.Millisecond,
		},
		Import: config.ImportConfig{CLIEmergencyNumberDefault: "0"},
	}
}

func writeWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Sr_No", "Hospital_Name", "Location_Coordinates"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{1, "Apollo Hospital", "13.06,80.25"}))
	require.NoError(t, f.SaveAs(path))
}

func TestRun_MissingFileExitsOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.xlsx")

	assert.Equal(t, 1, run(context.Background(), unreachableConfig(), path))
}

func TestRun_UnsupportedSpreadsheetExitsOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospitals.xls")
	require.NoError(t, os.WriteFile(path, []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}, 0o644))

	assert.Equal(t, 1, run(context.Background(), unreachableConfig(), path))
}

func TestRun_UnreachableDatabaseExitsOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hospitals.xlsx")
	writeWorkbook(t, path)

	start := time.Now()
	assert.Equal(t, 1, run(context.Background(), unreachableConfig(), path))
	assert.Less(t, time.Since(start), 5*time.Second)
}
