package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/fostercareuk/directory-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewLocationRepositoryForTest creates a location repository with test database and logger
func NewLocationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.LocationRepository {
	return postgres.NewLocationRepository(NewDBForTest(db, logger))
}

// NewContentRepositoryForTest creates a content repository with test database and logger
func NewContentRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ContentRepository {
	return postgres.NewContentRepository(NewDBForTest(db, logger))
}

// NewAgencyRepositoryForTest creates an agency repository with test database and logger
func NewAgencyRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AgencyRepository {
	return postgres.NewAgencyRepository(NewDBForTest(db, logger))
}

// NewSpecialismRepositoryForTest creates a specialism repository with test database and logger
func NewSpecialismRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SpecialismRepository {
	return postgres.NewSpecialismRepository(NewDBForTest(db, logger))
}
