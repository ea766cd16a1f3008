package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HospitalCollection is the collection name for Hospital documents
const HospitalCollection = "hospitals"

// GeoJSONPointType is the only GeoJSON geometry stored on a hospital
const GeoJSONPointType = "Point"

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a point in GeoJSON order
func NewGeoPoint(longitude, latitude float64) GeoPoint {
	return GeoPoint{
		Type:        GeoJSONPointType,
		Coordinates: []float64{longitude, latitude},
	}
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[0]
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) < 2 {
		return 0
	}
	return p.Coordinates[1]
}

// Hospital represents a hospital/clinic in the directory.
// Wire keys keep the names used by existing data and clients.
type Hospital struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SerialNumber        string             `bson:"srNo" json:"srNo"`
	Name                string             `bson:"name" json:"name"`
	Category            string             `bson:"category" json:"category"`
	Discipline          string             `bson:"discipline" json:"discipline"`
	Address             string             `bson:"address" json:"address"`
	State               string             `bson:"state" json:"state"`
	District            string             `bson:"district" json:"district"`
	PostalCode          string             `bson:"pincode" json:"pincode"`
	Telephone           string             `bson:"telephone" json:"telephone"`
	EmergencyNumber     string             `bson:"emergencyNum" json:"emergencyNum"`
	BloodBankPhone      string             `bson:"bloodbankPhone" json:"bloodbankPhone"`
	Email               string             `bson:"email" json:"email"`
	Website             string             `bson:"website" json:"website"`
	Specialties         []string           `bson:"specialties" json:"specialties"`
	Facilities          []string           `bson:"facilities" json:"facilities"`
	Accreditation       string             `bson:"accreditation" json:"accreditation"`
	AyushStatus         string             `bson:"ayush" json:"ayush"`
	TotalBeds           int                `bson:"totalBeds" json:"totalBeds"`
	AvailableBeds       int                `bson:"availableBeds" json:"availableBeds"`
	PrivateWards        int                `bson:"privateWards" json:"privateWards"`
	Location            GeoPoint           `bson:"location" json:"location"`
	RawCoordinateString string             `bson:"locationCoordinates" json:"locationCoordinates"`
	DormitoryEntry      string             `bson:"dormentry" json:"dormentry"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SearchFilters are the optional criteria of a hospital search.
// Text fields match case-insensitively as substrings; all supplied field
// filters must hold, and SearchText must hit at least one of name, address,
// district, state or a specialty.
type SearchFilters struct {
	State            string
	District         string
	Name             string
	Category         string
	Specialty        string
	MinAvailableBeds *int
	SearchText       string
}

// CountByKey is one bucket of a grouped count
type CountByKey struct {
	ID    string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

// HospitalStats is the directory-wide summary
type HospitalStats struct {
	TotalHospitals int64        `json:"totalHospitals"`
	TotalBeds      int64        `json:"totalBeds"`
	AvailableBeds  int64        `json:"availableBeds"`
	ByCategory     []CountByKey `json:"byCategory"`
	ByState        []CountByKey `json:"byState"`
}
