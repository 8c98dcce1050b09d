package components

import (
	"ride-together/internal/infra/cache"
	"ride-together/internal/infra/calendar"
	"ride-together/internal/infra/mailer"
	"ride-together/internal/infra/trailcatalog"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/pkg/config"
	"ride-together/internal/usecase/commands"
	"ride-together/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewClock,
		NewUserDirectory,
		NewTrailCatalog,
		NewRideCalendar,
		fx.Annotate(
			func(cfg config.Config) *mailer.SMTPMailer { return mailer.NewSMTPMailer(cfg.Mail) },
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewClock(cfg config.Config) clock.Clock {
	return clock.NewRealClockIn(cfg.App.Location())
}

func NewUserDirectory(client redis.UniversalClient, users queries.UserReadStore, cfg config.Config) queries.UserDirectory {
	return cache.NewUserDirectory(client, users, cfg.Redis.NameTTL)
}

func NewTrailCatalog(cfg config.Config) (queries.TrailCatalog, error) {
	return trailcatalog.Load(cfg.Trails.CatalogPath)
}

func NewRideCalendar(cfg config.Config) queries.RideCalendar {
	return calendar.NewICalRenderer(cfg.App.Location())
}
