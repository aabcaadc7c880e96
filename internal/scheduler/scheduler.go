// Package scheduler runs the bot's fixed-time jobs: the evening LeetCode
// broadcast, the midnight word of the day, and the late-evening reminder.
// All schedules are evaluated in the configured timezone.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/yuvaraja22/wordle-bot/internal/bot"
	"github.com/yuvaraja22/wordle-bot/internal/logger"
)

const (
	statsSpec    = "0 20 * * *"
	wordSpec     = "0 0 * * *"
	reminderSpec = "30 23 * * *"

	jobTimeout = 2 * time.Minute
)

type Scheduler struct {
	cron *cron.Cron
	bot  *bot.Bot
	log  *logger.Logger
}

func New(b *bot.Bot, loc *time.Location) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		bot:  b,
		log:  logger.Default().WithPrefix("scheduler"),
	}

	jobs := []struct {
		spec string
		kind bot.JobKind
	}{
		{statsSpec, bot.JobStatsBroadcast},
		{wordSpec, bot.JobDailyWord},
		{reminderSpec, bot.JobPendingReminder},
	}
	for _, j := range jobs {
		kind := j.kind
		if _, err := s.cron.AddFunc(j.spec, func() { s.run(kind) }); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) run(kind bot.JobKind) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	log := s.log.WithField("job", string(kind))
	ctx = logger.NewContext(ctx, log)

	log.Info("job started")
	start := time.Now()
	if err := s.bot.RunScheduledJob(ctx, kind); err != nil {
		log.Error("job failed after %v: %v", time.Since(start), err)
		return
	}
	log.Info("job finished in %v", time.Since(start))
}

// Start begins schedule evaluation in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started with %d jobs", len(s.cron.Entries()))
}

// Stop halts scheduling and waits for any running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}
