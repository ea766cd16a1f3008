package repository

import (
	"testing"

	"hospital-finder-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(n int) *int { return &n }

func TestSearchFilter_Empty(t *testing.T) {
	assert.Empty(t, SearchFilter(models.SearchFilters{}))
}

func TestSearchFilter_FieldFiltersAreANDed(t *testing.T) {
	filter := SearchFilter(models.SearchFilters{
		State:            "maha",
		Specialty:        "Cardio",
		MinAvailableBeds: intPtr(5),
	})

	require.Len(t, filter, 3)
	assert.Equal(t, bson.E{Key: "state", Value: primitive.Regex{Pattern: "maha", Options: "i"}}, filter[0])
	assert.Equal(t, bson.E{Key: "specialties", Value: primitive.Regex{Pattern: "Cardio", Options: "i"}}, filter[1])
	assert.Equal(t, bson.E{Key: "availableBeds", Value: bson.D{{"$gte", 5}}}, filter[2])
}

// Field filters and the free text group are combined as
// state AND (name OR address OR district OR state OR specialties).
func TestSearchFilter_FreeTextIsOneORGroupANDedWithFields(t *testing.T) {
	filter := SearchFilter(models.SearchFilters{
		State:      "Kerala",
		SearchText: "apollo",
	})

	require.Len(t, filter, 2)
	assert.Equal(t, "state", filter[0].Key)
	assert.Equal(t, "$or", filter[1].Key)

	or, ok := filter[1].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, or, 5)

	pattern := primitive.Regex{Pattern: "apollo", Options: "i"}
	var keys []string
	for _, clause := range or {
		d := clause.(bson.D)
		require.Len(t, d, 1)
		assert.Equal(t, pattern, d[0].Value)
		keys = append(keys, d[0].Key)
	}
	assert.Equal(t, []string{"name", "address", "district", "state", "specialties"}, keys)
}

func TestSearchFilter_EscapesUserInput(t *testing.T) {
	filter := SearchFilter(models.SearchFilters{Name: "St. John's (Main)"})

	require.Len(t, filter, 1)
	assert.Equal(t, primitive.Regex{Pattern: `St\. John's \(Main\)`, Options: "i"}, filter[0].Value)
}

func TestSearchFilter_ZeroMinimumStillFilters(t *testing.T) {
	filter := SearchFilter(models.SearchFilters{MinAvailableBeds: intPtr(0)})

	require.Len(t, filter, 1)
	assert.Equal(t, "availableBeds", filter[0].Key)
}

func TestNearFilter_UsesLongitudeFirst(t *testing.T) {
	filter := NearFilter(72.87, 19.07, 50000)

	require.Len(t, filter, 1)
	assert.Equal(t, "location", filter[0].Key)

	near := filter[0].Value.(bson.D)[0]
	assert.Equal(t, "$near", near.Key)

	nearQuery := near.Value.(bson.D)
	geometry := nearQuery[0].Value.(bson.D)
	assert.Equal(t, bson.E{Key: "type", Value: "Point"}, geometry[0])
	assert.Equal(t, bson.A{72.87, 19.07}, geometry[1].Value)
	assert.Equal(t, bson.E{Key: "$maxDistance", Value: 50000.0}, nearQuery[1])
}

func TestStatsPipeline_SortsStatesByCountDescending(t *testing.T) {
	pipeline := statsPipeline()
	require.Len(t, pipeline, 1)

	facet := pipeline[0].(bson.D)[0].Value.(bson.D)
	require.Len(t, facet, 3)
	assert.Equal(t, "byState", facet[2].Key)

	byState := facet[2].Value.(bson.A)
	sort := byState[1].(bson.D)[0]
	assert.Equal(t, "$sort", sort.Key)
	assert.Equal(t, bson.E{Key: "count", Value: -1}, sort.Value.(bson.D)[0])
}
