package scheduler

import (
	"context"
	"log/slog"
	"time"

	"ride-together/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
)

const runTimeout = 30 * time.Second

// DispatchScheduler runs the notification dispatcher on a cron schedule.
// Overlapping runs are skipped.
type DispatchScheduler struct {
	cron       *cron.Cron
	dispatcher commands.NotificationDispatcher
	batch      int
}

func NewDispatchScheduler(dispatcher commands.NotificationDispatcher, schedule string, batch int) (*DispatchScheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	s := &DispatchScheduler{
		cron:       c,
		dispatcher: dispatcher,
		batch:      batch,
	}
	if _, err := c.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, errors.Wrapf(err, "invalid dispatch schedule %q", schedule)
	}
	return s, nil
}

func (s *DispatchScheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running dispatch to finish or ctx to expire.
func (s *DispatchScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *DispatchScheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.dispatcher.DispatchPending(ctx, s.batch)
	if err != nil {
		slog.Error("notification dispatch failed", "error", err.Error())
		return
	}
	if result.Sent+result.Retried+result.Failed == 0 {
		return
	}
	slog.Info("notification dispatch finished",
		"sent", result.Sent,
		"retried", result.Retried,
		"failed", result.Failed,
		"duration_ms", time.Since(start).Milliseconds())
}
