package repository

import (
	"context"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/google/uuid"
)

// LocationRepository defines reads against the location hierarchy.
// Zero-row lookups return (nil, nil): a missing location is an expected
// outcome, not an error.
type LocationRepository interface {
	// GetByID returns a single location by identifier.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)

	// GetBySlug returns the first location whose slug matches
	// (case-insensitive). Slugs are assumed unique; siblings sharing a
	// slug are not disambiguated.
	GetBySlug(ctx context.Context, slug string) (*domain.Location, error)

	// GetByIDs returns the locations for a set of identifiers, ordered
	// by name ascending.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Location, error)

	// GetChildren returns the direct children of a location, ordered by
	// name ascending. Only one hierarchy level is fetched per call.
	GetChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Location, error)

	// ListAll returns every location, roots first (parents before
	// children), for sitemap enumeration.
	ListAll(ctx context.Context) ([]*domain.Location, error)
}
