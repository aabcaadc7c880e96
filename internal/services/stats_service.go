package services

import (
	"context"

	"github.com/yuvaraja22/wordle-bot/internal/errors"
	"github.com/yuvaraja22/wordle-bot/internal/leetcode"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
	"github.com/yuvaraja22/wordle-bot/internal/models"
	"github.com/yuvaraja22/wordle-bot/internal/puzzle"
	"github.com/yuvaraja22/wordle-bot/internal/repository"
)

// StatsService computes solve-count deltas against stored snapshots
type StatsService interface {
	// DailyDelta fetches current counts, diffs them against yesterday's
	// snapshot (or against themselves when none exists) and upserts
	// today's snapshot.
	DailyDelta(ctx context.Context, username string) (models.StatsDelta, models.StatsSnapshot, error)
	// ProgressSinceBaseline diffs current counts against the earliest
	// stored snapshot, creating one from the current fetch if none exists.
	ProgressSinceBaseline(ctx context.Context, username string) (models.StatsDelta, models.StatsSnapshot, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
	client    leetcode.ClientInterface
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository, client leetcode.ClientInterface) StatsService {
	return &statsService{statsRepo: statsRepo, client: client}
}

func (s *statsService) fetchToday(ctx context.Context, username string) (models.StatsSnapshot, error) {
	counts, err := s.client.FetchCounts(ctx, username)
	if err != nil {
		return models.StatsSnapshot{}, err
	}
	return models.StatsSnapshot{
		StatDate: puzzle.TodayKey(),
		Username: username,
		Total:    counts.Total,
		Easy:     counts.Easy,
		Medium:   counts.Medium,
		Hard:     counts.Hard,
	}, nil
}

// diff clamps each field to zero: remote counters are monotonic, so a
// negative value can only be a bridge artifact and must not leak out.
func diff(latest models.StatsSnapshot, prev models.StatsSnapshot) models.StatsDelta {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		return v
	}
	return models.StatsDelta{
		Total:  clamp(latest.Total - prev.Total),
		Easy:   clamp(latest.Easy - prev.Easy),
		Medium: clamp(latest.Medium - prev.Medium),
		Hard:   clamp(latest.Hard - prev.Hard),
	}
}

func (s *statsService) DailyDelta(ctx context.Context, username string) (models.StatsDelta, models.StatsSnapshot, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing daily delta: user=%s", username)

	latest, err := s.fetchToday(ctx, username)
	if err != nil {
		return models.StatsDelta{}, models.StatsSnapshot{}, err
	}

	prev, err := s.statsRepo.GetByDate(ctx, username, puzzle.YesterdayKey())
	if err != nil {
		log.Error("failed to load yesterday's snapshot: %v", err)
		return models.StatsDelta{}, models.StatsSnapshot{}, errors.NewInternalError(err)
	}
	if prev == nil {
		// First run: today's counts are the baseline, so the delta is zero.
		log.Debug("no snapshot for yesterday, using fresh counts as baseline")
		prev = &latest
	}

	if err := s.statsRepo.Upsert(ctx, latest); err != nil {
		log.Error("failed to store today's snapshot: %v", err)
		return models.StatsDelta{}, models.StatsSnapshot{}, errors.NewInternalError(err)
	}

	return diff(latest, *prev), latest, nil
}

func (s *statsService) ProgressSinceBaseline(ctx context.Context, username string) (models.StatsDelta, models.StatsSnapshot, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing progress since baseline: user=%s", username)

	latest, err := s.fetchToday(ctx, username)
	if err != nil {
		return models.StatsDelta{}, models.StatsSnapshot{}, err
	}

	baseline, err := s.statsRepo.Earliest(ctx, username)
	if err != nil {
		log.Error("failed to load baseline snapshot: %v", err)
		return models.StatsDelta{}, models.StatsSnapshot{}, errors.NewInternalError(err)
	}
	if baseline == nil {
		log.Debug("no stored snapshots, storing current fetch as baseline")
		baseline = &latest
	}

	if err := s.statsRepo.Upsert(ctx, latest); err != nil {
		log.Error("failed to store today's snapshot: %v", err)
		return models.StatsDelta{}, models.StatsSnapshot{}, errors.NewInternalError(err)
	}

	return diff(latest, *baseline), latest, nil
}
