package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationType classifies a node in the country/region/county/city hierarchy.
type LocationType string

const (
	LocationTypeCountry LocationType = "country"
	LocationTypeRegion  LocationType = "region"
	LocationTypeCounty  LocationType = "county"
	LocationTypeCity    LocationType = "city"
)

// ParseLocationType maps a stored type value to a LocationType. Unknown
// values are treated as a generic leaf (city-level granularity).
func ParseLocationType(s string) LocationType {
	switch LocationType(s) {
	case LocationTypeCountry, LocationTypeRegion, LocationTypeCounty, LocationTypeCity:
		return LocationType(s)
	default:
		return LocationTypeCity
	}
}

// Location is a node in the place hierarchy. ParentID is nil for roots
// (countries). The parent relation forms a forest; depth in practice is
// at most four levels.
type Location struct {
	ID        uuid.UUID    `json:"id" db:"id"`
	Slug      string       `json:"slug" db:"slug"`
	Name      string       `json:"name" db:"name"`
	Type      LocationType `json:"type" db:"type"`
	ParentID  *uuid.UUID   `json:"parent_id,omitempty" db:"parent_id"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

// DefaultCountrySlug is prepended to location paths that do not start
// with a known country.
const DefaultCountrySlug = "england"

var countrySlugs = map[string]struct{}{
	"england":          {},
	"scotland":         {},
	"wales":            {},
	"northern-ireland": {},
}

// IsCountrySlug reports whether s is one of the four UK country slugs.
// The comparison is case-insensitive.
func IsCountrySlug(s string) bool {
	_, ok := countrySlugs[normalizeSlug(s)]
	return ok
}
