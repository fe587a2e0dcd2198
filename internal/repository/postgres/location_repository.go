package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	apperrors "github.com/fostercareuk/directory-service/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type locationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const locationColumns = `id, slug, name, type, parent_id, created_at, updated_at`

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE id = $1
	`

	var loc domain.Location
	err := r.db.GetContext(ctx, &loc, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get location by ID", zap.String("id", id.String()), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &loc, nil
}

func (r *locationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Location, error) {
	// Slugs are assumed unique; LIMIT 1 takes the first match when the
	// assumption is violated rather than failing the request.
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE lower(slug) = $1
		ORDER BY created_at
		LIMIT 1
	`

	var loc domain.Location
	err := r.db.GetContext(ctx, &loc, query, strings.ToLower(strings.TrimSpace(slug)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get location by slug", zap.String("slug", slug), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &loc, nil
}

func (r *locationRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Location, error) {
	if len(ids) == 0 {
		return []*domain.Location{}, nil
	}

	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE id = ANY($1)
		ORDER BY name ASC
	`

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	var locs []*domain.Location
	if err := r.db.SelectContext(ctx, &locs, query, pq.Array(idStrs)); err != nil {
		r.logger.Error("Failed to get locations by IDs", zap.Int("count", len(ids)), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return locs, nil
}

func (r *locationRepository) GetChildren(ctx context.Context, parentID uuid.UUID) ([]*domain.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE parent_id = $1
		ORDER BY name ASC
	`

	var locs []*domain.Location
	if err := r.db.SelectContext(ctx, &locs, query, parentID); err != nil {
		r.logger.Error("Failed to get child locations", zap.String("parent_id", parentID.String()), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return locs, nil
}

func (r *locationRepository) ListAll(ctx context.Context) ([]*domain.Location, error) {
	// Roots first so consumers can build paths incrementally.
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		ORDER BY parent_id NULLS FIRST, name ASC
	`

	var locs []*domain.Location
	if err := r.db.SelectContext(ctx, &locs, query); err != nil {
		r.logger.Error("Failed to list locations", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return locs, nil
}
