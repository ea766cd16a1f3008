package spreadsheet

import (
	"regexp"
	"strconv"
	"strings"

	"hospital-finder-backend/internal/models"
)

const (
	DefaultHospitalName = "Unknown Hospital"
	DefaultCategory     = "General"
)

var (
	leadingIntPattern   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloatPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Normalizer turns sheet rows into hospitals.
// EmergencyNumberDefault is used when the Emergency_Num cell is empty; the
// upload endpoint and the CLI importer are configured with different values.
type Normalizer struct {
	EmergencyNumberDefault string
}

// Normalize converts a row. It never fails: missing or malformed cells fall
// back to their column defaults.
func (n Normalizer) Normalize(row Row) *models.Hospital {
	rawCoordinates := text(row, ColLocationCoordinates, "")
	longitude, latitude := parseCoordinates(rawCoordinates)

	return &models.Hospital{
		SerialNumber:        text(row, ColSerialNumber, ""),
		Name:                text(row, ColName, DefaultHospitalName),
		Category:            text(row, ColCategory, DefaultCategory),
		Discipline:          text(row, ColDiscipline, ""),
		Address:             text(row, ColAddress, ""),
		State:               text(row, ColState, ""),
		District:            text(row, ColDistrict, ""),
		PostalCode:          text(row, ColPostalCode, ""),
		Telephone:           text(row, ColTelephone, ""),
		EmergencyNumber:     text(row, ColEmergencyNumber, n.EmergencyNumberDefault),
		BloodBankPhone:      text(row, ColBloodBankPhone, ""),
		Email:               text(row, ColEmail, ""),
		Website:             text(row, ColWebsite, ""),
		Specialties:         list(row, ColSpecialties),
		Facilities:          list(row, ColFacilities),
		Accreditation:       text(row, ColAccreditation, ""),
		AyushStatus:         text(row, ColAyush, ""),
		TotalBeds:           count(row, ColTotalBeds),
		AvailableBeds:       count(row, ColAvailableBeds),
		PrivateWards:        count(row, ColPrivateWards),
		Location:            models.NewGeoPoint(longitude, latitude),
		RawCoordinateString: rawCoordinates,
		DormitoryEntry:      text(row, ColDormitoryEntry, ""),
	}
}

func text(row Row, col Column, fallback string) string {
	if v, ok := row.Get(col); ok {
		return v
	}
	return fallback
}

// list splits a comma separated cell, dropping empty entries
func list(row Row, col Column) []string {
	items := []string{}
	v, ok := row.Get(col)
	if !ok {
		return items
	}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// count reads a non-negative integer from the leading digits of a cell
func count(row Row, col Column) int {
	v, ok := row.Get(col)
	if !ok {
		return 0
	}
	n := ParseLeadingInt(v)
	if n < 0 {
		return 0
	}
	return n
}

// parseCoordinates reads a "latitude,longitude" cell and returns the pair in
// GeoJSON order. Anything unparseable becomes 0.
func parseCoordinates(raw string) (longitude, latitude float64) {
	if raw == "" {
		return 0, 0
	}
	parts := strings.Split(raw, ",")
	if len(parts) < 2 {
		return 0, 0
	}
	latitude = ParseLeadingFloat(strings.TrimSpace(parts[0]))
	longitude = ParseLeadingFloat(strings.TrimSpace(parts[1]))
	return longitude, latitude
}

// ParseLeadingInt parses the integer at the start of s ("12 beds" is 12,
// "12.7" is 12). It returns 0 when s does not start with a number.
func ParseLeadingInt(s string) int {
	n, _ := LeadingInt(s)
	return n
}

// LeadingInt is ParseLeadingInt reporting whether s started with a number.
func LeadingInt(s string) (int, bool) {
	m := leadingIntPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseLeadingFloat parses the decimal number at the start of s, 0 when there is none.
func ParseLeadingFloat(s string) float64 {
	m := leadingFloatPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}
