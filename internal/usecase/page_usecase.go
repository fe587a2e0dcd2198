package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/fostercareuk/directory-service/internal/usecase/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageUseCase assembles everything a location page needs. The location
// itself must resolve first; the dependent sections (breadcrumbs,
// children, content, agencies) are then fetched concurrently, each with
// its failure isolated so one flaky lookup never blanks the page.
type PageUseCase struct {
	resolver   *ResolverUseCase
	hierarchy  *HierarchyUseCase
	content    *ContentUseCase
	agencyRepo repository.AgencyRepository
	cacheRepo  repository.CacheRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
}

func NewPageUseCase(
	resolver *ResolverUseCase,
	hierarchy *HierarchyUseCase,
	content *ContentUseCase,
	agencyRepo repository.AgencyRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PageUseCase {
	return &PageUseCase{
		resolver:   resolver,
		hierarchy:  hierarchy,
		content:    content,
		agencyRepo: agencyRepo,
		cacheRepo:  cacheRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// GetLocationPage resolves canonical path segments into a full page
// payload. A nil response with a nil error means not found.
func (uc *PageUseCase) GetLocationPage(ctx context.Context, segments []string) (*dto.LocationPageResponse, error) {
	canonicalPath := LocationsPathPrefix + "/" + strings.Join(segments, "/")

	if cached, err := uc.cacheRepo.GetPage(ctx, canonicalPath); err == nil && cached != nil {
		var page dto.LocationPageResponse
		if err := json.Unmarshal(cached, &page); err == nil {
			return &page, nil
		}
	}

	resolved, err := uc.resolver.Resolve(ctx, segments)
	if err != nil {
		return nil, err
	}
	if resolved.Location == nil {
		return nil, nil
	}

	loc := resolved.Location
	contentSlug := strings.Join(resolved.LocationSegments, "/")
	if resolved.Qualifier != "" {
		contentSlug += "/" + resolved.Qualifier
	}

	// Fan out the independent section lookups. Each task records its own
	// result; a failed task logs and leaves its section at the empty
	// default.
	var (
		wg       sync.WaitGroup
		path     []*domain.Location
		children []*domain.Location
		content  *ResolvedContent
		agencies []*domain.Agency
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		path = uc.hierarchy.GetPath(ctx, loc.ID)
	}()

	go func() {
		defer wg.Done()
		result, err := uc.hierarchy.GetChildren(ctx, loc.ID)
		if err != nil {
			uc.logger.Warn("Child locations lookup failed, rendering without children",
				zap.String("location", loc.Slug), zap.Error(err))
			return
		}
		children = result
	}()

	go func() {
		defer wg.Done()
		result, err := uc.content.Resolve(ctx, contentSlug)
		if err != nil {
			uc.logger.Warn("Content lookup failed, rendering without content",
				zap.String("slug", contentSlug), zap.Error(err))
			return
		}
		content = result
	}()

	go func() {
		defer wg.Done()
		result, err := uc.agencyRepo.ListByLocation(ctx, []uuid.UUID{loc.ID})
		if err != nil {
			uc.logger.Warn("Agency lookup failed, rendering without agencies",
				zap.String("location", loc.Slug), zap.Error(err))
			return
		}
		agencies = result
	}()

	wg.Wait()

	page := uc.assemble(loc, resolved, canonicalPath, path, children, content, agencies)

	if data, err := json.Marshal(page); err == nil {
		_ = uc.cacheRepo.SetPage(ctx, canonicalPath, data, uc.cacheTTL)
	}

	return page, nil
}

func (uc *PageUseCase) assemble(
	loc *domain.Location,
	resolved *ResolvedPath,
	canonicalPath string,
	path []*domain.Location,
	children []*domain.Location,
	content *ResolvedContent,
	agencies []*domain.Agency,
) *dto.LocationPageResponse {
	locationDTO := dto.ConvertLocation(loc)
	locationDTO.URL = BuildURL(path)
	if len(path) == 0 {
		locationDTO.URL = LocationsPathPrefix + "/" + loc.Slug
	}

	breadcrumbs := make([]dto.BreadcrumbDTO, 0, len(path))
	for i := range path {
		breadcrumbs = append(breadcrumbs, dto.BreadcrumbDTO{
			Name: path[i].Name,
			URL:  BuildURL(path[:i+1]),
		})
	}

	childDTOs := make([]dto.LocationDTO, 0, len(children))
	for _, child := range children {
		childDTO := dto.ConvertLocation(child)
		childDTO.URL = locationDTO.URL + "/" + child.Slug
		childDTOs = append(childDTOs, childDTO)
	}

	page := &dto.LocationPageResponse{
		Location:      locationDTO,
		CanonicalPath: canonicalPath,
		Breadcrumbs:   breadcrumbs,
		Children:      childDTOs,
		Agencies:      dto.ConvertAgencies(agencies),
	}

	if content != nil {
		page.ContentTitle = content.Title
		page.Content = content.Document
	}

	if resolved.Specialism != nil {
		specialism := dto.ConvertSpecialism(resolved.Specialism)
		page.Specialism = &specialism
	}

	return page
}
