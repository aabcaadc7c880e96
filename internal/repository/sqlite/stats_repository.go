package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/models"
	"github.com/yuvaraja22/wordle-bot/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository implementation
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Upsert(ctx context.Context, snap models.StatsSnapshot) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("upserting snapshot: user=%s, date=%s, total=%d", snap.Username, snap.StatDate, snap.Total)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO leetcode_stats (stat_date, username, total, easy, medium, hard)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(stat_date, username) DO UPDATE SET
    total = excluded.total,
    easy = excluded.easy,
    medium = excluded.medium,
    hard = excluded.hard
`, snap.StatDate, snap.Username, snap.Total, snap.Easy, snap.Medium, snap.Hard)
	if err != nil {
		log.Error("failed to upsert snapshot: %v", err)
	}
	return err
}

func (r *statsRepository) GetByDate(ctx context.Context, username, date string) (*models.StatsSnapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("loading snapshot: user=%s, date=%s", username, date)

	var s models.StatsSnapshot
	err := r.db.QueryRowContext(ctx, `
SELECT stat_date, username, total, easy, medium, hard
FROM leetcode_stats
WHERE username = ? AND stat_date = ?
`, username, date).Scan(&s.StatDate, &s.Username, &s.Total, &s.Easy, &s.Medium, &s.Hard)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no snapshot for user=%s on %s", username, date)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load snapshot: %v", err)
		return nil, err
	}
	return &s, nil
}

func (r *statsRepository) Earliest(ctx context.Context, username string) (*models.StatsSnapshot, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("loading earliest snapshot: user=%s", username)

	var s models.StatsSnapshot
	err := r.db.QueryRowContext(ctx, `
SELECT stat_date, username, total, easy, medium, hard
FROM leetcode_stats
WHERE username = ?
ORDER BY stat_date ASC
LIMIT 1
`, username).Scan(&s.StatDate, &s.Username, &s.Total, &s.Easy, &s.Medium, &s.Hard)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("no snapshots stored for user=%s", username)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to load earliest snapshot: %v", err)
		return nil, err
	}
	return &s, nil
}
