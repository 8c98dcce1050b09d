package bootstrap

import (
	"context"

	"ride-together/internal/infra/changefeed"
	"ride-together/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ChangeFeedModule = fx.Module("changefeed",
	fx.Provide(
		changefeed.NewBroker,
		func(b *changefeed.Broker) shared.ChangeFeed { return b },
		NewChangeListener,
	),
	fx.Invoke(func(*changefeed.Listener) {}),
)

func NewChangeListener(lc fx.Lifecycle, pool *pgxpool.Pool, broker *changefeed.Broker) *changefeed.Listener {
	listener := changefeed.NewListener(pool, broker)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// The start context expires once startup finishes.
			listener.Start(context.Background())
			return nil
		},
		OnStop: listener.Stop,
	})
	return listener
}
