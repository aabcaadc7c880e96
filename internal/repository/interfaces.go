package repository

import (
	"context"

	"github.com/yuvaraja22/wordle-bot/internal/models"
)

// ScoreFilter narrows score queries; zero values mean "no constraint".
type ScoreFilter struct {
	GroupID    string
	PlayerName string
	ScoreDate  string
	Limit      int
	Offset     int
}

// ScoreRepository is the persistent score ledger.
type ScoreRepository interface {
	// Insert writes exactly one new entry, or fails with
	// errors.ErrDuplicateSubmission when (group, player, date) exists.
	Insert(ctx context.Context, entry models.ScoreEntry) error
	List(ctx context.Context, filter ScoreFilter) ([]models.ScoreEntry, error)
	Count(ctx context.Context, filter ScoreFilter) (int, error)
	// DailyBoard sums scores per player for one date, ranked.
	DailyBoard(ctx context.Context, groupID, date string) ([]models.BoardRow, error)
	// AllTimeBoard sums scores per player across all dates, ranked.
	AllTimeBoard(ctx context.Context, groupID string) ([]models.BoardRow, error)
	// Players lists every player who has ever submitted in the group.
	Players(ctx context.Context, groupID string) ([]string, error)
	// PlayersForDate lists players with an entry for the given date.
	PlayersForDate(ctx context.Context, groupID, date string) ([]string, error)
	// ArchiveAndReset moves all of the group's live entries to the archive
	// in a single transaction and reports how many moved.
	ArchiveAndReset(ctx context.Context, groupID string) (int, error)
	CountArchived(ctx context.Context, groupID string) (int, error)
}

// StatsRepository stores dated LeetCode counter snapshots.
type StatsRepository interface {
	// Upsert writes the snapshot for (date, username); last write wins.
	Upsert(ctx context.Context, snap models.StatsSnapshot) error
	GetByDate(ctx context.Context, username, date string) (*models.StatsSnapshot, error)
	// Earliest returns the oldest stored snapshot for the username.
	Earliest(ctx context.Context, username string) (*models.StatsSnapshot, error)
}

// WordRepository manages the daily-word pool and the sent-word log.
type WordRepository interface {
	// Add inserts one word, or fails with errors.ErrDuplicateWord.
	Add(ctx context.Context, word string) error
	// DrawAndMark picks one unused word uniformly at random, flips it to
	// used in the same transaction, and returns it. Fails with
	// errors.ErrNoWordsAvailable on an exhausted pool.
	DrawAndMark(ctx context.Context) (string, error)
	CountUnused(ctx context.Context) (int, error)
	// RecordSent upserts the word sent for a date; last write wins.
	RecordSent(ctx context.Context, date, word string) error
	// WordForDate returns the word sent on the date, or "" when none.
	WordForDate(ctx context.Context, date string) (string, error)
	// InsertBatch loads words in one transaction, skipping duplicates.
	InsertBatch(ctx context.Context, words []string) (added, skipped int, err error)
	// ClearAll empties the pool and returns how many rows were removed.
	ClearAll(ctx context.Context) (int64, error)
}
