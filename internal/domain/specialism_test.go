package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fostercareuk/directory-service/internal/domain"
)

func TestIsServiceQualifier(t *testing.T) {
	assert.True(t, domain.IsServiceQualifier("short-term"))
	assert.True(t, domain.IsServiceQualifier("short-term-fostering"))
	assert.True(t, domain.IsServiceQualifier("RESPITE"))
	assert.True(t, domain.IsServiceQualifier("  therapeutic  "))
	assert.True(t, domain.IsServiceQualifier("parent-and-child"))

	assert.False(t, domain.IsServiceQualifier("london"))
	assert.False(t, domain.IsServiceQualifier("england"))
	assert.False(t, domain.IsServiceQualifier("fostering"))
	assert.False(t, domain.IsServiceQualifier(""))
}

func TestCanonicalQualifier(t *testing.T) {
	tests := []struct {
		input     string
		canonical string
		ok        bool
	}{
		{"short-term", "short-term", true},
		{"short-term-fostering", "short-term", true},
		{"Emergency-Fostering", "emergency", true},
		{"sibling-groups", "sibling-groups", true},
		{"camden", "", false},
		{"-fostering", "", false},
	}

	for _, tt := range tests {
		canonical, ok := domain.CanonicalQualifier(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.canonical, canonical, "input %q", tt.input)
	}
}

func TestIsCountrySlug(t *testing.T) {
	assert.True(t, domain.IsCountrySlug("england"))
	assert.True(t, domain.IsCountrySlug("Scotland"))
	assert.True(t, domain.IsCountrySlug("northern-ireland"))
	assert.False(t, domain.IsCountrySlug("london"))
	assert.False(t, domain.IsCountrySlug(""))
}

func TestParseLocationType(t *testing.T) {
	assert.Equal(t, domain.LocationTypeCountry, domain.ParseLocationType("country"))
	assert.Equal(t, domain.LocationTypeRegion, domain.ParseLocationType("region"))
	// Unknown values degrade to a generic leaf.
	assert.Equal(t, domain.LocationTypeCity, domain.ParseLocationType("borough"))
	assert.Equal(t, domain.LocationTypeCity, domain.ParseLocationType(""))
}
