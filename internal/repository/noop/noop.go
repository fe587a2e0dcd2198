// Package noop provides null-object repository implementations. They are
// injected at startup when the database is unreachable and degraded mode
// is allowed, so the service keeps answering requests with empty results
// instead of crashing.
package noop

import (
	"context"
	"time"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/google/uuid"
)

type locationRepository struct{}

func NewLocationRepository() repository.LocationRepository {
	return locationRepository{}
}

func (locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	return nil, nil
}

func (locationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Location, error) {
	return nil, nil
}

func (locationRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Location, error) {
	return []*domain.Location{}, nil
}

func (locationRepository) GetChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Location, error) {
	return []*domain.Location{}, nil
}

func (locationRepository) ListAll(ctx context.Context) ([]*domain.Location, error) {
	return []*domain.Location{}, nil
}

type contentRepository struct{}

func NewContentRepository() repository.ContentRepository {
	return contentRepository{}
}

func (contentRepository) GetBySlug(ctx context.Context, slug string) (*domain.LocationContent, error) {
	return nil, nil
}

func (contentRepository) GetBySlugContains(ctx context.Context, fragment string) (*domain.LocationContent, error) {
	return nil, nil
}

type agencyRepository struct{}

func NewAgencyRepository() repository.AgencyRepository {
	return agencyRepository{}
}

func (agencyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Agency, error) {
	return nil, nil
}

func (agencyRepository) List(ctx context.Context, filter domain.AgencyFilter) ([]*domain.Agency, error) {
	return []*domain.Agency{}, nil
}

func (agencyRepository) ListByLocation(ctx context.Context, locationIDs []uuid.UUID) ([]*domain.Agency, error) {
	return []*domain.Agency{}, nil
}

func (agencyRepository) GetCoverageIDs(ctx context.Context, agencyID uuid.UUID) ([]uuid.UUID, error) {
	return []uuid.UUID{}, nil
}

func (agencyRepository) GetSpecialisms(ctx context.Context, agencyID uuid.UUID) ([]*domain.Specialism, error) {
	return []*domain.Specialism{}, nil
}

func (agencyRepository) ListAll(ctx context.Context) ([]*domain.Agency, error) {
	return []*domain.Agency{}, nil
}

type specialismRepository struct{}

func NewSpecialismRepository() repository.SpecialismRepository {
	return specialismRepository{}
}

func (specialismRepository) GetBySlug(ctx context.Context, slug string) (*domain.Specialism, error) {
	return nil, nil
}

func (specialismRepository) List(ctx context.Context) ([]*domain.Specialism, error) {
	return []*domain.Specialism{}, nil
}

type blogRepository struct{}

func NewBlogRepository() repository.BlogRepository {
	return blogRepository{}
}

func (blogRepository) ListPublished(ctx context.Context) ([]*domain.BlogPost, error) {
	return []*domain.BlogPost{}, nil
}

type cacheRepository struct{}

func NewCacheRepository() repository.CacheRepository {
	return cacheRepository{}
}

func (cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, nil
}

func (cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (cacheRepository) Delete(ctx context.Context, key string) error {
	return nil
}

func (cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

func (cacheRepository) GetPage(ctx context.Context, path string) ([]byte, error) {
	return nil, nil
}

func (cacheRepository) SetPage(ctx context.Context, path string, data []byte, ttl time.Duration) error {
	return nil
}
