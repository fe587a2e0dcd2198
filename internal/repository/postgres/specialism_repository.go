package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	apperrors "github.com/fostercareuk/directory-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type specialismRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSpecialismRepository(db *DB) repository.SpecialismRepository {
	return &specialismRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *specialismRepository) GetBySlug(ctx context.Context, slug string) (*domain.Specialism, error) {
	query := `
		SELECT id, slug, name, description
		FROM specialisms
		WHERE lower(slug) = lower($1)
		LIMIT 1
	`

	var specialism domain.Specialism
	err := r.db.GetContext(ctx, &specialism, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get specialism by slug", zap.String("slug", slug), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &specialism, nil
}

func (r *specialismRepository) List(ctx context.Context) ([]*domain.Specialism, error) {
	query := `
		SELECT id, slug, name, description
		FROM specialisms
		ORDER BY name ASC
	`

	var specialisms []*domain.Specialism
	if err := r.db.SelectContext(ctx, &specialisms, query); err != nil {
		r.logger.Error("Failed to list specialisms", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return specialisms, nil
}
