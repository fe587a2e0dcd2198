package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	apperrors "github.com/fostercareuk/directory-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type contentRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewContentRepository(db *DB) repository.ContentRepository {
	return &contentRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const contentColumns = `id, slug, title, content, updated_at`

func (r *contentRepository) GetBySlug(ctx context.Context, slug string) (*domain.LocationContent, error) {
	query := `
		SELECT ` + contentColumns + `
		FROM location_content
		WHERE slug = $1
		LIMIT 1
	`

	var content domain.LocationContent
	err := r.db.GetContext(ctx, &content, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get content by slug", zap.String("slug", slug), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &content, nil
}

func (r *contentRepository) GetBySlugContains(ctx context.Context, fragment string) (*domain.LocationContent, error) {
	query := `
		SELECT ` + contentColumns + `
		FROM location_content
		WHERE slug ILIKE $1
		ORDER BY slug ASC
		LIMIT 1
	`

	pattern := "%" + escapeLike(fragment) + "%"

	var content domain.LocationContent
	err := r.db.GetContext(ctx, &content, query, pattern)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get content by pattern", zap.String("fragment", fragment), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &content, nil
}

// escapeLike neutralises LIKE metacharacters in a user-derived fragment.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
