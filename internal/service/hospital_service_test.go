package service

import (
	"context"
	"errors"
	"testing"

	"hospital-finder-backend/internal/models"
	apperrors "hospital-finder-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHospitalService_Health(t *testing.T) {
	store := new(MockHospitalStore)
	store.On("Ping", mock.Anything).Return(errors.New("no reachable servers"))
	store.On("Count", mock.Anything).Return(int64(12), nil)

	status, err := NewHospitalService(store).Health(context.Background())

	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, int64(12), status.TotalHospitals)
}

func TestHospitalService_HealthCountFailure(t *testing.T) {
	store := new(MockHospitalStore)
	store.On("Ping", mock.Anything).Return(nil)
	store.On("Count", mock.Anything).Return(int64(0), errors.New("server selection timeout"))

	_, err := NewHospitalService(store).Health(context.Background())

	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))
	assert.Equal(t, "server selection timeout", apperrors.DetailOf(err))
}

func TestHospitalService_FindNearConvertsKilometers(t *testing.T) {
	store := new(MockHospitalStore)
	store.On("FindNear", mock.Anything, 72.87, 19.07, 25000.0).Return([]models.Hospital{{Name: "KEM"}}, nil)

	hospitals, err := NewHospitalService(store).FindNear(context.Background(), 19.07, 72.87, 25)

	require.NoError(t, err)
	assert.Len(t, hospitals, 1)
	store.AssertExpectations(t)
}

func TestHospitalService_GetByIDPassesNotFoundThrough(t *testing.T) {
	store := new(MockHospitalStore)
	store.On("GetByID", mock.Anything, "64b7f0c2a1b2c3d4e5f60718").
		Return(nil, apperrors.NewNotFoundError("No hospital found with ID: 64b7f0c2a1b2c3d4e5f60718"))

	_, err := NewHospitalService(store).GetByID(context.Background(), "64b7f0c2a1b2c3d4e5f60718")

	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}

func TestHospitalService_StoreFaultsBecomeInternal(t *testing.T) {
	boom := errors.New("connection reset")
	store := new(MockHospitalStore)
	store.On("ListAll", mock.Anything).Return(nil, boom)
	store.On("Search", mock.Anything, mock.Anything).Return(nil, boom)
	store.On("AggregateStats", mock.Anything).Return(nil, boom)
	store.On("DeleteAll", mock.Anything).Return(int64(0), boom)

	svc := NewHospitalService(store)
	ctx := context.Background()

	_, err := svc.ListAll(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, apperrors.ErrorTypeInternal, apperrors.TypeOf(err))

	_, err = svc.Search(ctx, models.SearchFilters{State: "Goa"})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Stats(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.DeleteAll(ctx)
	assert.ErrorIs(t, err, boom)
}
