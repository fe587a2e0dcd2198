package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fostercareuk/directory-service/internal/domain"
	"github.com/fostercareuk/directory-service/internal/domain/repository"
	apperrors "github.com/fostercareuk/directory-service/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type agencyRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAgencyRepository(db *DB) repository.AgencyRepository {
	return &agencyRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const agencyColumns = `a.id, a.slug, a.name, a.description, a.website, a.phone, a.created_at, a.updated_at`

func (r *agencyRepository) GetBySlug(ctx context.Context, slug string) (*domain.Agency, error) {
	query := `
		SELECT ` + agencyColumns + `
		FROM agencies a
		WHERE lower(a.slug) = lower($1)
		LIMIT 1
	`

	var agency domain.Agency
	err := r.db.GetContext(ctx, &agency, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get agency by slug", zap.String("slug", slug), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &agency, nil
}

func (r *agencyRepository) List(ctx context.Context, filter domain.AgencyFilter) ([]*domain.Agency, error) {
	query := `
		SELECT DISTINCT ` + agencyColumns + `
		FROM agencies a
	`

	var args []interface{}
	argIdx := 1

	if filter.SpecialismSlug != "" {
		query += fmt.Sprintf(`
		JOIN agency_specialisms asp ON asp.agency_id = a.id
		JOIN specialisms s ON s.id = asp.specialism_id AND lower(s.slug) = lower($%d)`, argIdx)
		args = append(args, filter.SpecialismSlug)
		argIdx++
	}

	if filter.LocationID != nil {
		query += fmt.Sprintf(`
		JOIN agency_locations al ON al.agency_id = a.id AND al.location_id = $%d`, argIdx)
		args = append(args, *filter.LocationID)
		argIdx++
	}

	query += `
		ORDER BY a.name ASC
	`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	var agencies []*domain.Agency
	if err := r.db.SelectContext(ctx, &agencies, query, args...); err != nil {
		r.logger.Error("Failed to list agencies", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return agencies, nil
}

func (r *agencyRepository) ListByLocation(ctx context.Context, locationIDs []uuid.UUID) ([]*domain.Agency, error) {
	if len(locationIDs) == 0 {
		return []*domain.Agency{}, nil
	}

	query := `
		SELECT DISTINCT ` + agencyColumns + `
		FROM agencies a
		JOIN agency_locations al ON al.agency_id = a.id
		WHERE al.location_id = ANY($1)
		ORDER BY a.name ASC
	`

	idStrs := make([]string, len(locationIDs))
	for i, id := range locationIDs {
		idStrs[i] = id.String()
	}

	var agencies []*domain.Agency
	if err := r.db.SelectContext(ctx, &agencies, query, pq.Array(idStrs)); err != nil {
		r.logger.Error("Failed to list agencies by location", zap.Int("location_count", len(locationIDs)), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return agencies, nil
}

func (r *agencyRepository) GetCoverageIDs(ctx context.Context, agencyID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT location_id
		FROM agency_locations
		WHERE agency_id = $1
	`

	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, agencyID); err != nil {
		r.logger.Error("Failed to get agency coverage", zap.String("agency_id", agencyID.String()), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return ids, nil
}

func (r *agencyRepository) GetSpecialisms(ctx context.Context, agencyID uuid.UUID) ([]*domain.Specialism, error) {
	query := `
		SELECT s.id, s.slug, s.name, s.description
		FROM specialisms s
		JOIN agency_specialisms asp ON asp.specialism_id = s.id
		WHERE asp.agency_id = $1
		ORDER BY s.name ASC
	`

	var specialisms []*domain.Specialism
	if err := r.db.SelectContext(ctx, &specialisms, query, agencyID); err != nil {
		r.logger.Error("Failed to get agency specialisms", zap.String("agency_id", agencyID.String()), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return specialisms, nil
}

func (r *agencyRepository) ListAll(ctx context.Context) ([]*domain.Agency, error) {
	query := `
		SELECT ` + agencyColumns + `
		FROM agencies a
		ORDER BY a.name ASC
	`

	var agencies []*domain.Agency
	if err := r.db.SelectContext(ctx, &agencies, query); err != nil {
		r.logger.Error("Failed to list all agencies", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return agencies, nil
}
