package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"go.uber.org/zap"
)

// legacyContentPrefix is the naming convention content rows migrated from
// the old CMS were stored under.
const legacyContentPrefix = "loc_"

// ResolvedContent is a parsed editorial payload. Both a missing record
// and a malformed payload resolve to a nil *ResolvedContent; callers
// treat the two identically.
type ResolvedContent struct {
	Slug     string                 `json:"slug"`
	Title    string                 `json:"title"`
	Document domain.ContentDocument `json:"document"`
}

// ContentUseCase resolves editorial content for a slug path, trying an
// ordered list of lookup variants against the store.
type ContentUseCase struct {
	contentRepo repository.ContentRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewContentUseCase(
	contentRepo repository.ContentRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Resolve tries, strictly in order: exact match on the normalized slug,
// exact match with the legacy "loc_" prefix, then a case-insensitive
// contains match. The first non-empty result wins. A payload that fails
// to parse resolves to nil, the same as no record at all.
func (uc *ContentUseCase) Resolve(ctx context.Context, slug string) (*ResolvedContent, error) {
	normalized := strings.ToLower(strings.TrimSpace(slug))
	if normalized == "" {
		return nil, nil
	}

	cacheKey := "content:" + normalized
	if cached, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && cached != nil {
		var resolved ResolvedContent
		if err := json.Unmarshal(cached, &resolved); err == nil {
			return &resolved, nil
		}
	}

	record, err := uc.lookup(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	doc := record.ParseContent()
	if doc == nil {
		uc.logger.Warn("Content payload failed to parse, treating as missing",
			zap.String("slug", record.Slug))
		return nil, nil
	}

	resolved := &ResolvedContent{
		Slug:     record.Slug,
		Title:    record.Title,
		Document: doc,
	}

	if data, err := json.Marshal(resolved); err == nil {
		// Cache failures degrade to direct reads.
		_ = uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL)
	}

	return resolved, nil
}

func (uc *ContentUseCase) lookup(ctx context.Context, normalized string) (*domain.LocationContent, error) {
	record, err := uc.contentRepo.GetBySlug(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	record, err = uc.contentRepo.GetBySlug(ctx, legacyContentPrefix+normalized)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	return uc.contentRepo.GetBySlugContains(ctx, normalized)
}
