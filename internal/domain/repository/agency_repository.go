package repository

import (
	"context"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/google/uuid"
)

// AgencyRepository defines reads against the agency directory.
// Zero-row single lookups return (nil, nil).
type AgencyRepository interface {
	// GetBySlug returns a single agency by slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Agency, error)

	// List returns agencies matching the filter, ordered by name
	// ascending.
	List(ctx context.Context, filter domain.AgencyFilter) ([]*domain.Agency, error)

	// ListByLocation returns agencies covering any of the given location
	// ids, ordered by name ascending. Passing a location's ancestry path
	// yields every agency whose coverage includes the location at any
	// level.
	ListByLocation(ctx context.Context, locationIDs []uuid.UUID) ([]*domain.Agency, error)

	// GetCoverageIDs returns the location ids an agency covers.
	GetCoverageIDs(ctx context.Context, agencyID uuid.UUID) ([]uuid.UUID, error)

	// GetSpecialisms returns the specialisms an agency offers, ordered
	// by name ascending.
	GetSpecialisms(ctx context.Context, agencyID uuid.UUID) ([]*domain.Specialism, error)

	// ListAll returns every agency for sitemap enumeration.
	ListAll(ctx context.Context) ([]*domain.Agency, error)
}
