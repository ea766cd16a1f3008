package repository

import (
	"regexp"

	"hospital-finder-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// freeTextFields are matched by SearchFilters.SearchText
var freeTextFields = []string{"name", "address", "district", "state", "specialties"}

// containsFold matches any value containing s, ignoring case.
// User input is quoted so it is never interpreted as a pattern.
func containsFold(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// NearFilter selects documents whose location lies within radiusMeters of the
// point, ordered nearest first by the server.
func NearFilter(longitude, latitude, radiusMeters float64) bson.D {
	return bson.D{{"location", bson.D{
		{"$near", bson.D{
			{"$geometry", bson.D{
				{"type", models.GeoJSONPointType},
				{"coordinates", bson.A{longitude, latitude}},
			}},
			{"$maxDistance", radiusMeters},
		}},
	}}}
}

// SearchFilter builds the query for a search. Field filters are combined with
// AND at the top level; the free text filter adds a single $or group which is
// therefore ANDed with them.
func SearchFilter(f models.SearchFilters) bson.D {
	filter := bson.D{}

	fields := []struct {
		key   string
		value string
	}{
		{"state", f.State},
		{"district", f.District},
		{"name", f.Name},
		{"category", f.Category},
		{"specialties", f.Specialty},
	}
	for _, field := range fields {
		if field.value != "" {
			filter = append(filter, bson.E{Key: field.key, Value: containsFold(field.value)})
		}
	}

	if f.MinAvailableBeds != nil {
		filter = append(filter, bson.E{Key: "availableBeds", Value: bson.D{{"$gte", *f.MinAvailableBeds}}})
	}

	if f.SearchText != "" {
		or := make(bson.A, 0, len(freeTextFields))
		pattern := containsFold(f.SearchText)
		for _, key := range freeTextFields {
			or = append(or, bson.D{{key, pattern}})
		}
		filter = append(filter, bson.E{Key: "$or", Value: or})
	}

	return filter
}

// statsPipeline computes bed totals and the category/state breakdowns in one pass.
func statsPipeline() bson.A {
	countBy := func(field string) bson.D {
		return bson.D{{"$group", bson.D{
			{"_id", "$" + field},
			{"count", bson.D{{"$sum", 1}}},
		}}}
	}

	return bson.A{
		bson.D{{"$facet", bson.D{
			{"totals", bson.A{
				bson.D{{"$group", bson.D{
					{"_id", nil},
					{"totalBeds", bson.D{{"$sum", "$totalBeds"}}},
					{"availableBeds", bson.D{{"$sum", "$availableBeds"}}},
				}}},
			}},
			{"byCategory", bson.A{
				countBy("category"),
				bson.D{{"$sort", bson.D{{"_id", 1}}}},
			}},
			{"byState", bson.A{
				countBy("state"),
				bson.D{{"$sort", bson.D{{"count", -1}, {"_id", 1}}}},
			}},
		}}},
	}
}
