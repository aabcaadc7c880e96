package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	apperrors "github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/puzzle"
	"github.com/yuvaraja22/wordle-bot/internal/repository/sqlite"
	"github.com/yuvaraja22/wordle-bot/internal/services"
	"github.com/yuvaraja22/wordle-bot/internal/testutil"
)

type ScoreServiceSuite struct {
	suite.Suite
	svc services.ScoreService
}

func (s *ScoreServiceSuite) SetupTest() {
	db := testutil.NewTestDB(s.T())
	s.T().Cleanup(func() { db.Close() })
	s.svc = services.NewScoreService(sqlite.NewScoreRepository(db))
}

func (s *ScoreServiceSuite) TestSubmitResult_ScoreAndDateFromPuzzle() {
	ctx := context.Background()
	result := puzzle.Classify("Wordle 1,581 4/6")
	s.Require().Equal(puzzle.GameResult, result.Kind)

	entry, err := s.svc.SubmitResult(ctx, "g1", "Alice", result)
	s.Require().NoError(err)
	s.Assert().Equal(3, entry.Score)
	s.Assert().Equal(puzzle.NumberToKey(1581), entry.ScoreDate)

	// Resubmitting the identical share is a duplicate.
	_, err = s.svc.SubmitResult(ctx, "g1", "Alice", result)
	s.Require().ErrorIs(err, apperrors.ErrDuplicateSubmission)
}

func (s *ScoreServiceSuite) TestSubmitResult_FailedAttemptScoresZero() {
	result := puzzle.Classify("Wordle 1582 X/6")
	s.Require().Equal(puzzle.GameResult, result.Kind)

	entry, err := s.svc.SubmitResult(context.Background(), "g1", "Alice", result)
	s.Require().NoError(err)
	s.Assert().Zero(entry.Score)
}

func (s *ScoreServiceSuite) TestCombinedBoard_PadsShorterSide() {
	ctx := context.Background()
	today := puzzle.NumberToKey(100)

	_, err := s.svc.SubmitResult(ctx, "g1", "Alice", puzzle.Classify("Wordle 99 3/6"))
	s.Require().NoError(err)
	_, err = s.svc.SubmitResult(ctx, "g1", "Bob", puzzle.Classify("Wordle 99 5/6"))
	s.Require().NoError(err)
	_, err = s.svc.SubmitResult(ctx, "g1", "Alice", puzzle.Classify("Wordle 100 2/6"))
	s.Require().NoError(err)

	rows, err := s.svc.CombinedBoard(ctx, "g1", today)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)

	// All-time side has two entries, today's side only one.
	s.Require().NotNil(rows[0].AllTime)
	s.Require().NotNil(rows[0].Today)
	s.Assert().Equal("Alice", rows[0].Today.Player)
	s.Require().NotNil(rows[1].AllTime)
	s.Assert().Nil(rows[1].Today)
}

func (s *ScoreServiceSuite) TestPendingPlayers() {
	ctx := context.Background()
	today := puzzle.NumberToKey(100)

	_, err := s.svc.SubmitResult(ctx, "g1", "Alice", puzzle.Classify("Wordle 99 3/6"))
	s.Require().NoError(err)
	_, err = s.svc.SubmitResult(ctx, "g1", "Bob", puzzle.Classify("Wordle 99 4/6"))
	s.Require().NoError(err)
	_, err = s.svc.SubmitResult(ctx, "g1", "Alice", puzzle.Classify("Wordle 100 2/6"))
	s.Require().NoError(err)

	pending, err := s.svc.PendingPlayers(ctx, "g1", today)
	s.Require().NoError(err)
	s.Assert().Equal([]string{"Bob"}, pending)
}

func (s *ScoreServiceSuite) TestArchiveAndReset() {
	ctx := context.Background()
	_, err := s.svc.SubmitResult(ctx, "g1", "Alice", puzzle.Classify("Wordle 99 3/6"))
	s.Require().NoError(err)

	moved, err := s.svc.ArchiveAndReset(ctx, "g1")
	s.Require().NoError(err)
	s.Assert().Equal(1, moved)

	board, err := s.svc.AllTimeBoard(ctx, "g1")
	s.Require().NoError(err)
	s.Assert().Empty(board)
}

func TestScoreServiceSuite(t *testing.T) {
	suite.Run(t, new(ScoreServiceSuite))
}
