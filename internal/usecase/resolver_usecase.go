package usecase

import (
	"context"
	"strings"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"go.uber.org/zap"
)

// ResolvedPath is the outcome of interpreting a /locations/... segment
// list. A nil Location means the path did not resolve; that is a valid
// negative result, not an error.
type ResolvedPath struct {
	Location *domain.Location
	// Specialism is set when the final segment was a service qualifier
	// and a stored specialism exists for it.
	Specialism *domain.Specialism
	// Qualifier is the canonical qualifier slug consumed from the path,
	// empty when the path was place-only.
	Qualifier string
	// LocationSegments is the segment list with any qualifier removed.
	LocationSegments []string
}

// ResolverUseCase interprets URL path segments into a location and an
// optional specialism.
type ResolverUseCase struct {
	locationRepo   repository.LocationRepository
	specialismRepo repository.SpecialismRepository
	logger         *zap.Logger
}

func NewResolverUseCase(
	locationRepo repository.LocationRepository,
	specialismRepo repository.SpecialismRepository,
	logger *zap.Logger,
) *ResolverUseCase {
	return &ResolverUseCase{
		locationRepo:   locationRepo,
		specialismRepo: specialismRepo,
		logger:         logger,
	}
}

// Resolve determines whether the final segment denotes a fostering type,
// consumes it if so, and resolves the location by the last remaining
// segment's slug.
//
// Only the deepest segment determines the location match: the ancestry
// implied by the URL is not verified against the stored parent chain, so
// two paths ending in the same slug resolve identically.
func (uc *ResolverUseCase) Resolve(ctx context.Context, segments []string) (*ResolvedPath, error) {
	result := &ResolvedPath{LocationSegments: segments}

	if len(segments) > 0 {
		last := segments[len(segments)-1]
		if canonical, ok := domain.CanonicalQualifier(last); ok {
			result.Qualifier = canonical
			result.LocationSegments = segments[:len(segments)-1]

			specialism, err := uc.specialismRepo.GetBySlug(ctx, canonical)
			if err != nil {
				// A missing specialism row must not take the page down.
				uc.logger.Warn("Specialism lookup failed",
					zap.String("qualifier", canonical),
					zap.Error(err))
			} else {
				result.Specialism = specialism
			}
		}
	}

	if len(result.LocationSegments) == 0 {
		return result, nil
	}

	if selfReferential(result.LocationSegments) {
		uc.logger.Debug("Self-referential path treated as not found",
			zap.Strings("segments", result.LocationSegments))
		return result, nil
	}

	last := result.LocationSegments[len(result.LocationSegments)-1]
	loc, err := uc.locationRepo.GetBySlug(ctx, last)
	if err != nil {
		return nil, err
	}
	result.Location = loc

	return result, nil
}

// selfReferential reports whether any segment repeats elsewhere in the
// path after normalization has already collapsed adjacent duplicates.
// Such paths (e.g. england/london/england) are definite not-founds, not
// redirect candidates.
func selfReferential(segments []string) bool {
	seen := make(map[string]struct{}, len(segments))
	for _, s := range segments {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return true
		}
		seen[key] = struct{}{}
	}
	return false
}
