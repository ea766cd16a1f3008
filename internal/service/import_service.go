package service

import (
	"context"

	"hospital-finder-backend/internal/spreadsheet"

	"github.com/rs/zerolog/log"
)

const (
	progressEvery     = 100
	maxLoggedFailures = 10
)

// RowError records a row that could not be imported
type RowError struct {
	Row   int    `json:"row"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// ImportResult summarizes an import run
type ImportResult struct {
	Imported int
	Failed   int
	Total    int
	Errors   []RowError
}

type ImportService struct {
	store HospitalStore
}

func NewImportService(store HospitalStore) *ImportService {
	return &ImportService{store: store}
}

// ImportRows normalizes and inserts rows one at a time, in order.
// A failing row is recorded and the run continues with the next one.
func (s *ImportService) ImportRows(ctx context.Context, rows []spreadsheet.Row, normalizer spreadsheet.Normalizer) *ImportResult {
	result := &ImportResult{Total: len(rows), Errors: []RowError{}}

	for _, row := range rows {
		hospital := normalizer.Normalize(row)

		if err := s.store.Insert(ctx, hospital); err != nil {
			result.Failed++
			name, _ := row.Get(spreadsheet.ColName)
			result.Errors = append(result.Errors, RowError{Row: row.Number, Name: name, Error: err.Error()})

			if result.Failed <= maxLoggedFailures {
				log.Error().Err(err).Int("row", row.Number).Str("name", name).Msg("Failed to import row")
			}
			continue
		}

		result.Imported++
		if result.Imported%progressEvery == 0 {
			log.Info().Int("imported", result.Imported).Int("total", result.Total).Msg("Imported hospitals")
		}
	}

	log.Info().
		Int("imported", result.Imported).
		Int("failed", result.Failed).
		Int("total", result.Total).
		Msg("Import complete")

	return result
}

// Reload deletes every stored hospital and imports rows in their place.
// The delete and the inserts are not atomic.
func (s *ImportService) Reload(ctx context.Context, rows []spreadsheet.Row, normalizer spreadsheet.Normalizer) (int64, *ImportResult, error) {
	log.Info().Msg("Clearing existing hospitals")

	deleted, err := s.store.DeleteAll(ctx)
	if err != nil {
		return 0, nil, internal("failed to clear hospitals", err)
	}
	log.Info().Int64("deleted", deleted).Msg("Deleted existing hospitals")

	return deleted, s.ImportRows(ctx, rows, normalizer), nil
}
