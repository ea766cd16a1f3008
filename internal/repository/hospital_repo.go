package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-finder-backend/internal/models"
	apperrors "hospital-finder-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HospitalRepository struct {
	coll *mongo.Collection
}

func NewHospitalRepo(db *mongo.Database) *HospitalRepository {
	return &HospitalRepository{coll: db.Collection(models.HospitalCollection)}
}

// EnsureIndexes creates the lookup, text and geospatial indexes. Safe to call repeatedly.
func (r *HospitalRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{"name", 1}}},
		{Keys: bson.D{{"category", 1}}},
		{Keys: bson.D{{"state", 1}}},
		{Keys: bson.D{{"district", 1}}},
		{Keys: bson.D{{"availableBeds", 1}}},
		{Keys: bson.D{{"name", "text"}, {"address", "text"}, {"district", "text"}, {"state", "text"}}},
		{Keys: bson.D{{"location", "2dsphere"}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create hospital indexes: %w", err)
	}
	return nil
}

// Ping checks that the server behind the collection is reachable
func (r *HospitalRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// ListAll returns every hospital. There is no limit.
func (r *HospitalRepository) ListAll(ctx context.Context) ([]models.Hospital, error) {
	return r.find(ctx, bson.D{})
}

// FindNear returns hospitals within radiusMeters of the point, nearest first
func (r *HospitalRepository) FindNear(ctx context.Context, longitude, latitude, radiusMeters float64) ([]models.Hospital, error) {
	return r.find(ctx, NearFilter(longitude, latitude, radiusMeters))
}

// Search returns hospitals matching the filters, see SearchFilter
func (r *HospitalRepository) Search(ctx context.Context, filters models.SearchFilters) ([]models.Hospital, error) {
	return r.find(ctx, SearchFilter(filters))
}

// GetByID retrieves a hospital by its hex object id
func (r *HospitalRepository) GetByID(ctx context.Context, id string) (*models.Hospital, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid hospital id %q: %w", id, err)
	}

	var hospital models.Hospital
	err = r.coll.FindOne(ctx, bson.D{{"_id", oid}}).Decode(&hospital)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("No hospital found with ID: " + id)
		}
		return nil, err
	}
	return &hospital, nil
}

// FindSample returns an arbitrary hospital
func (r *HospitalRepository) FindSample(ctx context.Context) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&hospital)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("no hospitals stored")
		}
		return nil, err
	}
	return &hospital, nil
}

// Insert stores a new hospital, assigning its id and timestamps
func (r *HospitalRepository) Insert(ctx context.Context, hospital *models.Hospital) error {
	if hospital.ID.IsZero() {
		hospital.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	hospital.CreatedAt = now
	hospital.UpdatedAt = now
	if hospital.Specialties == nil {
		hospital.Specialties = []string{}
	}
	if hospital.Facilities == nil {
		hospital.Facilities = []string{}
	}

	_, err := r.coll.InsertOne(ctx, hospital)
	return err
}

// DeleteAll removes every hospital and returns how many were removed
func (r *HospitalRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of hospitals
func (r *HospitalRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}

type statsFacet struct {
	Totals []struct {
		TotalBeds     int64 `bson:"totalBeds"`
		AvailableBeds int64 `bson:"availableBeds"`
	} `bson:"totals"`
	ByCategory []models.CountByKey `bson:"byCategory"`
	ByState    []models.CountByKey `bson:"byState"`
}

// AggregateStats summarizes bed counts and the category/state distribution
func (r *HospitalRepository) AggregateStats(ctx context.Context) (*models.HospitalStats, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := r.coll.Aggregate(ctx, statsPipeline())
	if err != nil {
		return nil, err
	}
	var facets []statsFacet
	if err := cursor.All(ctx, &facets); err != nil {
		return nil, err
	}

	stats := &models.HospitalStats{
		TotalHospitals: total,
		ByCategory:     []models.CountByKey{},
		ByState:        []models.CountByKey{},
	}
	if len(facets) == 0 {
		return stats, nil
	}

	facet := facets[0]
	if len(facet.Totals) > 0 {
		stats.TotalBeds = facet.Totals[0].TotalBeds
		stats.AvailableBeds = facet.Totals[0].AvailableBeds
	}
	if facet.ByCategory != nil {
		stats.ByCategory = facet.ByCategory
	}
	if facet.ByState != nil {
		stats.ByState = facet.ByState
	}
	return stats, nil
}

func (r *HospitalRepository) find(ctx context.Context, filter bson.D) ([]models.Hospital, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	hospitals := []models.Hospital{}
	if err := cursor.All(ctx, &hospitals); err != nil {
		return nil, err
	}
	return hospitals, nil
}
