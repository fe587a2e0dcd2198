package repository

import (
	"context"

	"github.com/fostercareuk/directory-service/internal/domain"
)

// SpecialismRepository defines reads against stored specialisms.
// Zero-row lookups return (nil, nil).
type SpecialismRepository interface {
	// GetBySlug returns a single specialism by slug (case-insensitive).
	GetBySlug(ctx context.Context, slug string) (*domain.Specialism, error)

	// List returns all specialisms, ordered by name ascending.
	List(ctx context.Context) ([]*domain.Specialism, error)
}

// BlogRepository lists published posts for sitemap enumeration.
type BlogRepository interface {
	// ListPublished returns published posts, newest first.
	ListPublished(ctx context.Context) ([]*domain.BlogPost, error)
}
