package postgres_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/fostercareuk/directory-service/internal/domain/repository"
	"github.com/fostercareuk/directory-service/internal/repository/postgres/testhelpers"
)

type LocationRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.LocationRepository
	ctx    context.Context

	englandID uuid.UUID
	londonID  uuid.UUID
	camdenID  uuid.UUID
	bromleyID uuid.UUID
}

func (s *LocationRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := s.testDB.Cleanup(context.Background())
	s.NoError(err, "Failed to cleanup test database")

	err = testhelpers.ApplyMigrations(s.testDB.DB.DB, "../../../migrations")
	s.NoError(err, "Failed to apply migrations")

	s.englandID = uuid.New()
	s.londonID = uuid.New()
	s.camdenID = uuid.New()
	s.bromleyID = uuid.New()

	seed := `
		INSERT INTO locations (id, slug, name, type, parent_id) VALUES
		($1, 'england', 'England', 'country', NULL),
		($2, 'london', 'London', 'region', $1),
		($3, 'camden', 'Camden', 'county', $2),
		($4, 'bromley', 'Bromley', 'county', $2)
	`
	_, err = s.testDB.DB.Exec(seed, s.englandID, s.londonID, s.camdenID, s.bromleyID)
	s.NoError(err, "Failed to seed locations")

	s.repo = testhelpers.NewLocationRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *LocationRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.Cleanup(context.Background())
		s.testDB.Close()
	}
}

func (s *LocationRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *LocationRepositoryTestSuite) TestGetByID_Success() {
	loc, err := s.repo.GetByID(s.ctx, s.londonID)

	s.NoError(err)
	s.Require().NotNil(loc)
	s.Equal("london", loc.Slug)
	s.Require().NotNil(loc.ParentID)
	s.Equal(s.englandID, *loc.ParentID)
}

func (s *LocationRepositoryTestSuite) TestGetByID_NotFound() {
	loc, err := s.repo.GetByID(s.ctx, uuid.New())

	s.NoError(err)
	s.Nil(loc)
}

func (s *LocationRepositoryTestSuite) TestGetBySlug_CaseInsensitive() {
	loc, err := s.repo.GetBySlug(s.ctx, "LoNdOn")

	s.NoError(err)
	s.Require().NotNil(loc)
	s.Equal(s.londonID, loc.ID)
}

func (s *LocationRepositoryTestSuite) TestGetBySlug_TrimsWhitespace() {
	loc, err := s.repo.GetBySlug(s.ctx, "  camden ")

	s.NoError(err)
	s.Require().NotNil(loc)
	s.Equal(s.camdenID, loc.ID)
}

func (s *LocationRepositoryTestSuite) TestGetBySlug_NotFound() {
	loc, err := s.repo.GetBySlug(s.ctx, "atlantis")

	s.NoError(err)
	s.Nil(loc)
}

func (s *LocationRepositoryTestSuite) TestGetByIDs() {
	locs, err := s.repo.GetByIDs(s.ctx, []uuid.UUID{s.camdenID, s.bromleyID})

	s.NoError(err)
	s.Require().Len(locs, 2)
	// Ordered by name.
	s.Equal("bromley", locs[0].Slug)
	s.Equal("camden", locs[1].Slug)
}

func (s *LocationRepositoryTestSuite) TestGetByIDs_Empty() {
	locs, err := s.repo.GetByIDs(s.ctx, nil)

	s.NoError(err)
	s.Empty(locs)
}

func (s *LocationRepositoryTestSuite) TestGetChildren() {
	children, err := s.repo.GetChildren(s.ctx, s.londonID)

	s.NoError(err)
	s.Require().Len(children, 2)
	s.Equal("bromley", children[0].Slug)
	s.Equal("camden", children[1].Slug)
}

func (s *LocationRepositoryTestSuite) TestGetChildren_Leaf() {
	children, err := s.repo.GetChildren(s.ctx, s.camdenID)

	s.NoError(err)
	s.Empty(children)
}

func (s *LocationRepositoryTestSuite) TestListAll_RootsFirst() {
	locs, err := s.repo.ListAll(s.ctx)

	s.NoError(err)
	s.Require().Len(locs, 4)
	s.Equal("england", locs[0].Slug)
	s.Nil(locs[0].ParentID)
}

func TestLocationRepositorySuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}
