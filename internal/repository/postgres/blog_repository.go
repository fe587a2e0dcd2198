package postgres

import (
	"context"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	apperrors "github.com/fostercareuk/directory-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type blogRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewBlogRepository(db *DB) repository.BlogRepository {
	return &blogRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *blogRepository) ListPublished(ctx context.Context) ([]*domain.BlogPost, error) {
	query := `
		SELECT id, slug, title, published_at
		FROM blog_posts
		WHERE published_at <= now()
		ORDER BY published_at DESC
	`

	var posts []*domain.BlogPost
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		r.logger.Error("Failed to list published blog posts", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return posts, nil
}
