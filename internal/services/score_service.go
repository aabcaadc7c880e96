package services

import (
	"context"

	"github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/models"
	"github.com/yuvaraja22/wordle-bot/internal/puzzle"
	"github.com/yuvaraja22/wordle-bot/internal/repository"
)

// ScoreService handles ledger and leaderboard business logic
type ScoreService interface {
	// SubmitResult records a parsed game result for a player. The puzzle
	// date comes from the puzzle number, not from when the message arrived.
	SubmitResult(ctx context.Context, groupID, player string, result puzzle.Parsed) (models.ScoreEntry, error)
	DailyBoard(ctx context.Context, groupID, date string) ([]models.BoardRow, error)
	AllTimeBoard(ctx context.Context, groupID string) ([]models.BoardRow, error)
	// CombinedBoard pairs the all-time ranking with the given date's
	// ranking row by row, up to the longer list's length.
	CombinedBoard(ctx context.Context, groupID, date string) ([]models.CombinedRow, error)
	// PendingPlayers lists players ever seen in the group with no entry for
	// the given (calendar) date.
	PendingPlayers(ctx context.Context, groupID, date string) ([]string, error)
	ArchiveAndReset(ctx context.Context, groupID string) (int, error)
}

type scoreService struct {
	scoreRepo repository.ScoreRepository
}

// NewScoreService creates a new ScoreService
func NewScoreService(scoreRepo repository.ScoreRepository) ScoreService {
	return &scoreService{scoreRepo: scoreRepo}
}

func (s *scoreService) SubmitResult(ctx context.Context, groupID, player string, result puzzle.Parsed) (models.ScoreEntry, error) {
	log := logger.FromContext(ctx)

	entry := models.ScoreEntry{
		GroupID:    groupID,
		PlayerName: player,
		ScoreDate:  puzzle.NumberToKey(result.PuzzleNumber),
		Score:      result.Score(),
	}
	log.Debug("submitting result: player=%s, puzzle=%d, score=%d", player, result.PuzzleNumber, entry.Score)

	if err := s.scoreRepo.Insert(ctx, entry); err != nil {
		if errors.Is(err, errors.ErrDuplicateSubmission) {
			return models.ScoreEntry{}, err
		}
		log.Error("failed to record submission: %v", err)
		return models.ScoreEntry{}, errors.NewInternalError(err)
	}
	return entry, nil
}

func (s *scoreService) DailyBoard(ctx context.Context, groupID, date string) ([]models.BoardRow, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting daily board: group=%s, date=%s", groupID, date)

	board, err := s.scoreRepo.DailyBoard(ctx, groupID, date)
	if err != nil {
		log.Error("failed to get daily board: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return board, nil
}

func (s *scoreService) AllTimeBoard(ctx context.Context, groupID string) ([]models.BoardRow, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting all-time board: group=%s", groupID)

	board, err := s.scoreRepo.AllTimeBoard(ctx, groupID)
	if err != nil {
		log.Error("failed to get all-time board: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return board, nil
}

func (s *scoreService) CombinedBoard(ctx context.Context, groupID, date string) ([]models.CombinedRow, error) {
	allTime, err := s.AllTimeBoard(ctx, groupID)
	if err != nil {
		return nil, err
	}
	daily, err := s.DailyBoard(ctx, groupID, date)
	if err != nil {
		return nil, err
	}

	length := len(allTime)
	if len(daily) > length {
		length = len(daily)
	}
	rows := make([]models.CombinedRow, 0, length)
	for i := 0; i < length; i++ {
		var row models.CombinedRow
		if i < len(allTime) {
			row.AllTime = &allTime[i]
		}
		if i < len(daily) {
			row.Today = &daily[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *scoreService) PendingPlayers(ctx context.Context, groupID, date string) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing pending players: group=%s, date=%s", groupID, date)

	all, err := s.scoreRepo.Players(ctx, groupID)
	if err != nil {
		log.Error("failed to list players: %v", err)
		return nil, errors.NewInternalError(err)
	}
	submitted, err := s.scoreRepo.PlayersForDate(ctx, groupID, date)
	if err != nil {
		log.Error("failed to list submitted players: %v", err)
		return nil, errors.NewInternalError(err)
	}

	done := make(map[string]bool, len(submitted))
	for _, name := range submitted {
		done[name] = true
	}
	var pending []string
	for _, name := range all {
		if !done[name] {
			pending = append(pending, name)
		}
	}
	return pending, nil
}

func (s *scoreService) ArchiveAndReset(ctx context.Context, groupID string) (int, error) {
	log := logger.FromContext(ctx)
	log.Info("archive and reset requested: group=%s", groupID)

	moved, err := s.scoreRepo.ArchiveAndReset(ctx, groupID)
	if err != nil {
		log.Error("failed to archive and reset: %v", err)
		return 0, errors.NewInternalError(err)
	}
	return moved, nil
}
