package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"ride-together/internal/handler/api"
	"ride-together/internal/handler/middleware"
	"ride-together/internal/handler/validation"
	"ride-together/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Config       config.Config
	Auth         *api.AuthHandler
	Slots        *api.SlotHandler
	Bookings     *api.BookingHandler
	Stream       *api.StreamHandler
	Friends      *api.FriendHandler
	Notification *api.NotificationHandler
	Trails       *api.TrailHandler
	AuthMw       *middleware.AuthMiddleware
	RateLimiter  *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, p RouterParams) {
	validation.Register()
	setupMiddleware(engine, p.Config)
	setupRoutes(engine, p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, p RouterParams) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: p.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(p.AuthMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		trails := apiGroup.Group("/trails")
		{
			addRoutes(trails, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Trails.List},
				{Method: http.MethodGet, Path: "/markers", Handler: p.Trails.Markers},
			})
		}

		protected := apiGroup.Group("")
		protected.Use(p.AuthMw.RequireAuth())
		{
			addRoutes(protected.Group("/slots"), []route{
				{Method: http.MethodPost, Path: "", Handler: p.Slots.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: p.Slots.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Slots.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Slots.Delete},
				{Method: http.MethodPost, Path: "/:id/requests", Handler: p.Bookings.RequestToJoin, Mw: []gin.HandlerFunc{p.RateLimiter.Limit()}},
			})

			addRoutes(protected.Group("/rides"), []route{
				{Method: http.MethodGet, Path: "/public", Handler: p.Slots.ListPublic},
				{Method: http.MethodGet, Path: "/confirmed", Handler: p.Bookings.ListConfirmed},
				{Method: http.MethodGet, Path: "/confirmed.ics", Handler: p.Bookings.ConfirmedCalendar},
			})

			addRoutes(protected.Group("/bookings"), []route{
				{Method: http.MethodGet, Path: "/pending", Handler: p.Bookings.ListPending},
				{Method: http.MethodGet, Path: "/stream", Handler: p.Stream.Stream},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: p.Bookings.Accept},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: p.Bookings.Decline},
			})

			addRoutes(protected.Group("/notifications"), []route{
				{Method: http.MethodGet, Path: "", Handler: p.Notification.List},
			})

			addRoutes(protected.Group("/friends"), []route{
				{Method: http.MethodGet, Path: "", Handler: p.Friends.List},
				{Method: http.MethodGet, Path: "/requests", Handler: p.Friends.ListRequests},
				{Method: http.MethodPost, Path: "", Handler: p.Friends.Add},
				{Method: http.MethodDelete, Path: "/:userId", Handler: p.Friends.Remove},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
