package repository

import (
	"context"

	"github.com/fostercareuk/directory-service/internal/domain"
)

// ContentRepository defines reads against location editorial content.
// Zero-row lookups return (nil, nil).
type ContentRepository interface {
	// GetBySlug returns the content record whose slug equals the given
	// value exactly.
	GetBySlug(ctx context.Context, slug string) (*domain.LocationContent, error)

	// GetBySlugContains returns the first content record whose slug
	// contains the given value, matched case-insensitively, ordered by
	// slug for a deterministic first row.
	GetBySlugContains(ctx context.Context, fragment string) (*domain.LocationContent, error)
}
