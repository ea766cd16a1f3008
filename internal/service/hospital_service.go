package service

import (
	"context"
	"errors"

	"hospital-finder-backend/internal/models"
	apperrors "hospital-finder-backend/pkg/errors"

	"github.com/rs/zerolog/log"
)

// HospitalStore is the record store behind the services.
// repository.HospitalRepository is the MongoDB implementation.
type HospitalStore interface {
	Ping(ctx context.Context) error
	ListAll(ctx context.Context) ([]models.Hospital, error)
	FindNear(ctx context.Context, longitude, latitude, radiusMeters float64) ([]models.Hospital, error)
	Search(ctx context.Context, filters models.SearchFilters) ([]models.Hospital, error)
	GetByID(ctx context.Context, id string) (*models.Hospital, error)
	FindSample(ctx context.Context) (*models.Hospital, error)
	Insert(ctx context.Context, hospital *models.Hospital) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	AggregateStats(ctx context.Context) (*models.HospitalStats, error)
}

// HealthStatus describes store connectivity
type HealthStatus struct {
	Connected      bool
	TotalHospitals int64
}

type HospitalService struct {
	store HospitalStore
}

func NewHospitalService(store HospitalStore) *HospitalService {
	return &HospitalService{store: store}
}

// Health reports whether the store answers a ping and how many hospitals it holds
func (s *HospitalService) Health(ctx context.Context) (*HealthStatus, error) {
	connected := s.store.Ping(ctx) == nil

	count, err := s.store.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Health check failed")
		return nil, internal("failed to count hospitals", err)
	}

	return &HealthStatus{Connected: connected, TotalHospitals: count}, nil
}

// ListAll returns every hospital
func (s *HospitalService) ListAll(ctx context.Context) ([]models.Hospital, error) {
	log.Info().Msg("Fetching all hospitals")

	hospitals, err := s.store.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching hospitals")
		return nil, internal("failed to fetch hospitals", err)
	}

	log.Info().Int("count", len(hospitals)).Msg("Found hospitals")
	return hospitals, nil
}

// FindNear returns hospitals within radiusKm kilometers of the point, nearest first
func (s *HospitalService) FindNear(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.Hospital, error) {
	log.Info().
		Float64("lat", latitude).
		Float64("lng", longitude).
		Float64("radius_km", radiusKm).
		Msg("Finding nearby hospitals")

	hospitals, err := s.store.FindNear(ctx, longitude, latitude, radiusKm*1000)
	if err != nil {
		log.Error().Err(err).Msg("Error finding nearby hospitals")
		return nil, internal("failed to find nearby hospitals", err)
	}

	log.Info().Int("count", len(hospitals)).Msg("Found nearby hospitals")
	return hospitals, nil
}

// Search returns hospitals matching filters
func (s *HospitalService) Search(ctx context.Context, filters models.SearchFilters) ([]models.Hospital, error) {
	log.Info().Interface("filters", filters).Msg("Searching hospitals")

	hospitals, err := s.store.Search(ctx, filters)
	if err != nil {
		log.Error().Err(err).Msg("Search error")
		return nil, internal("search failed", err)
	}

	log.Info().Int("count", len(hospitals)).Msg("Search returned hospitals")
	return hospitals, nil
}

// GetByID retrieves a hospital by ID
func (s *HospitalService) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	hospital, err := s.store.GetByID(ctx, id)
	if err != nil {
		if apperrors.TypeOf(err) != apperrors.ErrorTypeNotFound {
			log.Error().Err(err).Str("id", id).Msg("Error fetching hospital")
		}
		return nil, internal("failed to fetch hospital", err)
	}
	return hospital, nil
}

// Stats summarizes the directory
func (s *HospitalService) Stats(ctx context.Context) (*models.HospitalStats, error) {
	stats, err := s.store.AggregateStats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching stats")
		return nil, internal("failed to fetch statistics", err)
	}
	return stats, nil
}

// DeleteAll removes every hospital
func (s *HospitalService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.store.DeleteAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Delete error")
		return 0, internal("delete failed", err)
	}

	log.Info().Int64("count", count).Msg("Deleted hospitals")
	return count, nil
}

// internal wraps a store fault; errors already classified pass through.
func internal(message string, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.NewInternalError(message, err)
}
