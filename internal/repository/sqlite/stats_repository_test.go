package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yuvaraja22/wordle-bot/internal/models"
	"github.com/yuvaraja22/wordle-bot/internal/repository"
	"github.com/yuvaraja22/wordle-bot/internal/repository/sqlite"
	"github.com/yuvaraja22/wordle-bot/internal/testutil"
)

type StatsRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.StatsRepository
}

func (s *StatsRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewStatsRepository(s.db)
}

func (s *StatsRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *StatsRepositorySuite) TestUpsert_LastWriteWins() {
	ctx := context.Background()
	snap := models.StatsSnapshot{
		StatDate: "2024-03-10", Username: "mathanika",
		Total: 100, Easy: 50, Medium: 40, Hard: 10,
	}
	s.Require().NoError(s.repo.Upsert(ctx, snap))

	snap.Total = 103
	snap.Medium = 43
	s.Require().NoError(s.repo.Upsert(ctx, snap))

	got, err := s.repo.GetByDate(ctx, "mathanika", "2024-03-10")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal(103, got.Total)
	s.Assert().Equal(43, got.Medium)

	var count int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM leetcode_stats WHERE username = ?`, "mathanika").Scan(&count)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *StatsRepositorySuite) TestGetByDate_Missing() {
	got, err := s.repo.GetByDate(context.Background(), "mathanika", "2024-03-10")
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func (s *StatsRepositorySuite) TestEarliest() {
	ctx := context.Background()
	for _, snap := range []models.StatsSnapshot{
		{StatDate: "2024-03-12", Username: "mathanika", Total: 110},
		{StatDate: "2024-03-10", Username: "mathanika", Total: 100},
		{StatDate: "2024-03-11", Username: "other", Total: 5},
	} {
		s.Require().NoError(s.repo.Upsert(ctx, snap))
	}

	got, err := s.repo.Earliest(ctx, "mathanika")
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Assert().Equal("2024-03-10", got.StatDate)
	s.Assert().Equal(100, got.Total)
}

func (s *StatsRepositorySuite) TestEarliest_NoneStored() {
	got, err := s.repo.Earliest(context.Background(), "nobody")
	s.Require().NoError(err)
	s.Assert().Nil(got)
}

func TestStatsRepositorySuite(t *testing.T) {
	suite.Run(t, new(StatsRepositorySuite))
}
