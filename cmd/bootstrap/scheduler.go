package bootstrap

import (
	"context"
	"log/slog"

	"ride-together/internal/infra/scheduler"
	"ride-together/internal/pkg/config"
	"ride-together/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartDispatchScheduler),
)

func StartDispatchScheduler(lc fx.Lifecycle, cfg config.Config, dispatcher commands.NotificationDispatcher) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("notification dispatch scheduler disabled")
		return nil
	}

	s, err := scheduler.NewDispatchScheduler(dispatcher, cfg.Scheduler.DispatchCron, cfg.Scheduler.DispatchBatch)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: s.Stop,
	})
	return nil
}
