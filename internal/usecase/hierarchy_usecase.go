package usecase

import (
	"context"
	"strings"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxPathDepth bounds the upward walk. Stored data is at most four levels
// deep; the bound only exists to guarantee termination if a parent cycle
// ever appears in the data.
const maxPathDepth = 10

// LocationsPathPrefix is the URL prefix under which location pages live.
const LocationsPathPrefix = "/locations"

// HierarchyUseCase walks the location hierarchy: upward for breadcrumb
// paths, downward one level at a time for navigation.
type HierarchyUseCase struct {
	locationRepo repository.LocationRepository
	logger       *zap.Logger
}

func NewHierarchyUseCase(locationRepo repository.LocationRepository, logger *zap.Logger) *HierarchyUseCase {
	return &HierarchyUseCase{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// GetPath returns the root-to-leaf path for a location by following
// parent_id upward. The walk stops at a nil parent, a failed or empty
// fetch, or after maxPathDepth iterations, returning the partial path
// accumulated so far rather than failing the request.
func (uc *HierarchyUseCase) GetPath(ctx context.Context, id uuid.UUID) []*domain.Location {
	var path []*domain.Location

	next := &id
	for i := 0; i < maxPathDepth && next != nil; i++ {
		loc, err := uc.locationRepo.GetByID(ctx, *next)
		if err != nil {
			uc.logger.Warn("Path walk aborted on fetch error",
				zap.String("id", next.String()),
				zap.Int("depth", i),
				zap.Error(err))
			break
		}
		if loc == nil {
			// Dangling parent reference; the chain ends here.
			break
		}

		path = append([]*domain.Location{loc}, path...)
		next = loc.ParentID
	}

	if next != nil && len(path) == maxPathDepth {
		uc.logger.Warn("Path walk hit depth bound, returning partial path",
			zap.String("id", id.String()),
			zap.Int("max_depth", maxPathDepth))
	}

	return path
}

// GetChildren returns the next hierarchy level below a location. Deeper
// levels are fetched lazily by subsequent calls as the user navigates.
func (uc *HierarchyUseCase) GetChildren(ctx context.Context, id uuid.UUID) ([]*domain.Location, error) {
	return uc.locationRepo.GetChildren(ctx, id)
}

// BuildURL reconstructs the canonical URL for a hierarchy path.
func BuildURL(path []*domain.Location) string {
	var b strings.Builder
	b.WriteString(LocationsPathPrefix)
	for _, loc := range path {
		b.WriteByte('/')
		b.WriteString(loc.Slug)
	}
	return b.String()
}
