package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/usecase"
)

func newLocation(slug, name string, locType domain.LocationType, parentID *uuid.UUID) *domain.Location {
	return &domain.Location{
		ID:       uuid.New(),
		Slug:     slug,
		Name:     name,
		Type:     locType,
		ParentID: parentID,
	}
}

func TestHierarchyUseCase_GetPath(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("returns root-to-leaf path", func(t *testing.T) {
		mockLoc := &MockLocationRepository{}
		uc := usecase.NewHierarchyUseCase(mockLoc, logger)

		england := newLocation("england", "England", domain.LocationTypeCountry, nil)
		london := newLocation("london", "London", domain.LocationTypeRegion, &england.ID)
		camden := newLocation("camden", "Camden", domain.LocationTypeCounty, &london.ID)

		mockLoc.On("GetByID", ctx, camden.ID).Return(camden, nil)
		mockLoc.On("GetByID", ctx, london.ID).Return(london, nil)
		mockLoc.On("GetByID", ctx, england.ID).Return(england, nil)

		path := uc.GetPath(ctx, camden.ID)

		assert.Len(t, path, 3)
		assert.Equal(t, "england", path[0].Slug)
		assert.Equal(t, "london", path[1].Slug)
		assert.Equal(t, "camden", path[2].Slug)
		assert.Equal(t, "/locations/england/london/camden", usecase.BuildURL(path))
	})

	t.Run("single root location", func(t *testing.T) {
		mockLoc := &MockLocationRepository{}
		uc := usecase.NewHierarchyUseCase(mockLoc, logger)

		wales := newLocation("wales", "Wales", domain.LocationTypeCountry, nil)
		mockLoc.On("GetByID", ctx, wales.ID).Return(wales, nil)

		path := uc.GetPath(ctx, wales.ID)

		assert.Len(t, path, 1)
		assert.Equal(t, "/locations/wales", usecase.BuildURL(path))
	})

	t.Run("parent cycle terminates with partial path", func(t *testing.T) {
		mockLoc := &MockLocationRepository{}
		uc := usecase.NewHierarchyUseCase(mockLoc, logger)

		// a and b point at each other; the walk must still terminate.
		a := newLocation("a", "A", domain.LocationTypeRegion, nil)
		b := newLocation("b", "B", domain.LocationTypeRegion, &a.ID)
		a.ParentID = &b.ID

		mockLoc.On("GetByID", ctx, a.ID).Return(a, nil)
		mockLoc.On("GetByID", ctx, b.ID).Return(b, nil)

		path := uc.GetPath(ctx, a.ID)

		assert.NotEmpty(t, path)
		assert.LessOrEqual(t, len(path), 10)
	})

	t.Run("dangling parent ends the chain", func(t *testing.T) {
		mockLoc := &MockLocationRepository{}
		uc := usecase.NewHierarchyUseCase(mockLoc, logger)

		missingID := uuid.New()
		orphan := newLocation("orphan", "Orphan", domain.LocationTypeCity, &missingID)

		mockLoc.On("GetByID", ctx, orphan.ID).Return(orphan, nil)
		mockLoc.On("GetByID", ctx, missingID).Return(nil, nil)

		path := uc.GetPath(ctx, orphan.ID)

		assert.Len(t, path, 1)
		assert.Equal(t, "orphan", path[0].Slug)
	})

	t.Run("fetch error yields partial path", func(t *testing.T) {
		mockLoc := &MockLocationRepository{}
		uc := usecase.NewHierarchyUseCase(mockLoc, logger)

		parentID := uuid.New()
		leaf := newLocation("leaf", "Leaf", domain.LocationTypeCity, &parentID)

		mockLoc.On("GetByID", ctx, leaf.ID).Return(leaf, nil)
		mockLoc.On("GetByID", ctx, parentID).Return(nil, assert.AnError)

		path := uc.GetPath(ctx, leaf.ID)

		assert.Len(t, path, 1)
	})

	t.Run("unknown id yields empty path", func(t *testing.T) {
		mockLoc := &MockLocationRepository{}
		uc := usecase.NewHierarchyUseCase(mockLoc, logger)

		id := uuid.New()
		mockLoc.On("GetByID", ctx, id).Return(nil, nil)

		assert.Empty(t, uc.GetPath(ctx, id))
	})
}

func TestHierarchyUseCase_GetChildren(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockLoc := &MockLocationRepository{}
	uc := usecase.NewHierarchyUseCase(mockLoc, logger)

	parent := newLocation("england", "England", domain.LocationTypeCountry, nil)
	children := []*domain.Location{
		newLocation("east-midlands", "East Midlands", domain.LocationTypeRegion, &parent.ID),
		newLocation("london", "London", domain.LocationTypeRegion, &parent.ID),
	}

	mockLoc.On("GetChildren", ctx, parent.ID).Return(children, nil)

	got, err := uc.GetChildren(ctx, parent.ID)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "/locations", usecase.BuildURL(nil))

	england := newLocation("england", "England", domain.LocationTypeCountry, nil)
	london := newLocation("london", "London", domain.LocationTypeRegion, &england.ID)
	assert.Equal(t, "/locations/england/london", usecase.BuildURL([]*domain.Location{england, london}))
}
