package service

import (
	"context"

	"hospital-finder-backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockHospitalStore struct {
	mock.Mock
}

func (m *MockHospitalStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockHospitalStore) ListAll(ctx context.Context) ([]models.Hospital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) FindNear(ctx context.Context, longitude, latitude, radiusMeters float64) ([]models.Hospital, error) {
	args := m.Called(ctx, longitude, latitude, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) Search(ctx context.Context, filters models.SearchFilters) ([]models.Hospital, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) FindSample(ctx context.Context) (*models.Hospital, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalStore) Insert(ctx context.Context, hospital *models.Hospital) error {
	return m.Called(ctx, hospital).Error(0)
}

func (m *MockHospitalStore) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHospitalStore) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHospitalStore) AggregateStats(ctx context.Context) (*models.HospitalStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HospitalStats), args.Error(1)
}
