package components

import (
	"ride-together/internal/handler"
	"ride-together/internal/handler/api"
	"ride-together/internal/handler/middleware"
	"ride-together/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewStreamHandler,
		api.NewFriendHandler,
		api.NewNotificationHandler,
		api.NewTrailHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter { return middleware.NewRateLimiter(cfg.RateLimit) },
	),
	fx.Invoke(handler.NewRouter),
)
