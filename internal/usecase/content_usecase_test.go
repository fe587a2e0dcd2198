package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/usecase"
)

// missCache returns a cache mock that misses every read and accepts
// every write.
func missCache() *MockCacheRepository {
	cache := &MockCacheRepository{}
	cache.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return cache
}

func TestContentUseCase_Resolve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := time.Minute

	t.Run("exact match wins first", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		uc := usecase.NewContentUseCase(mockContent, missCache(), logger, ttl)

		record := &domain.LocationContent{
			Slug:       "england/london",
			Title:      "Fostering in London",
			RawContent: json.RawMessage(`{"intro": "hello"}`),
		}
		mockContent.On("GetBySlug", ctx, "england/london").Return(record, nil)

		resolved, err := uc.Resolve(ctx, "England/London ")

		assert.NoError(t, err)
		assert.NotNil(t, resolved)
		assert.Equal(t, "Fostering in London", resolved.Title)
		assert.Equal(t, "hello", resolved.Document["intro"])
		mockContent.AssertNotCalled(t, "GetBySlugContains")
	})

	t.Run("legacy prefix tried second", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		uc := usecase.NewContentUseCase(mockContent, missCache(), logger, ttl)

		record := &domain.LocationContent{
			Slug:       "loc_england/london",
			Title:      "Legacy London",
			RawContent: json.RawMessage(`{"intro": "legacy"}`),
		}
		mockContent.On("GetBySlug", ctx, "england/london").Return(nil, nil)
		mockContent.On("GetBySlug", ctx, "loc_england/london").Return(record, nil)

		resolved, err := uc.Resolve(ctx, "england/london")

		assert.NoError(t, err)
		assert.NotNil(t, resolved)
		assert.Equal(t, "Legacy London", resolved.Title)
		mockContent.AssertNotCalled(t, "GetBySlugContains")
	})

	t.Run("pattern match tried last", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		uc := usecase.NewContentUseCase(mockContent, missCache(), logger, ttl)

		record := &domain.LocationContent{
			Slug:       "england/london/camden",
			Title:      "Camden",
			RawContent: json.RawMessage(`{"intro": "camden"}`),
		}
		mockContent.On("GetBySlug", ctx, "camden").Return(nil, nil)
		mockContent.On("GetBySlug", ctx, "loc_camden").Return(nil, nil)
		mockContent.On("GetBySlugContains", ctx, "camden").Return(record, nil)

		resolved, err := uc.Resolve(ctx, "camden")

		assert.NoError(t, err)
		assert.NotNil(t, resolved)
		assert.Equal(t, "Camden", resolved.Title)
	})

	t.Run("all variants miss resolves to nil", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		uc := usecase.NewContentUseCase(mockContent, missCache(), logger, ttl)

		mockContent.On("GetBySlug", ctx, "nowhere").Return(nil, nil)
		mockContent.On("GetBySlug", ctx, "loc_nowhere").Return(nil, nil)
		mockContent.On("GetBySlugContains", ctx, "nowhere").Return(nil, nil)

		resolved, err := uc.Resolve(ctx, "nowhere")

		assert.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("malformed payload resolves to nil without error", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		uc := usecase.NewContentUseCase(mockContent, missCache(), logger, ttl)

		raw, err := json.Marshal("{not json")
		assert.NoError(t, err)

		record := &domain.LocationContent{Slug: "england/leeds", RawContent: raw}
		mockContent.On("GetBySlug", ctx, "england/leeds").Return(record, nil)

		resolved, err := uc.Resolve(ctx, "england/leeds")

		assert.NoError(t, err)
		assert.Nil(t, resolved)
	})

	t.Run("legacy string-encoded payload parses", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		uc := usecase.NewContentUseCase(mockContent, missCache(), logger, ttl)

		raw, err := json.Marshal(`{"intro": "wrapped"}`)
		assert.NoError(t, err)

		record := &domain.LocationContent{Slug: "wales/cardiff", Title: "Cardiff", RawContent: raw}
		mockContent.On("GetBySlug", ctx, "wales/cardiff").Return(record, nil)

		resolved, err := uc.Resolve(ctx, "wales/cardiff")

		assert.NoError(t, err)
		assert.NotNil(t, resolved)
		assert.Equal(t, "wrapped", resolved.Document["intro"])
	})

	t.Run("empty slug resolves to nil without lookups", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewContentUseCase(mockContent, cache, logger, ttl)

		resolved, err := uc.Resolve(ctx, "   ")

		assert.NoError(t, err)
		assert.Nil(t, resolved)
		mockContent.AssertNotCalled(t, "GetBySlug")
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewContentUseCase(mockContent, cache, logger, ttl)

		cached, err := json.Marshal(&usecase.ResolvedContent{
			Slug:     "england/london",
			Title:    "Cached",
			Document: domain.ContentDocument{"intro": "cached"},
		})
		assert.NoError(t, err)

		cache.On("Get", ctx, "content:england/london").Return(cached, nil)

		resolved, err := uc.Resolve(ctx, "england/london")

		assert.NoError(t, err)
		assert.Equal(t, "Cached", resolved.Title)
		mockContent.AssertNotCalled(t, "GetBySlug")
	})

	t.Run("store error propagates", func(t *testing.T) {
		mockContent := &MockContentRepository{}
		uc := usecase.NewContentUseCase(mockContent, missCache(), logger, ttl)

		mockContent.On("GetBySlug", ctx, "england/london").Return(nil, assert.AnError)

		resolved, err := uc.Resolve(ctx, "england/london")

		assert.Error(t, err)
		assert.Nil(t, resolved)
	})
}
