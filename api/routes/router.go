package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/averyhollis/stockroom-backend/api/controllers"
	"github.com/averyhollis/stockroom-backend/api/middleware"
	"github.com/averyhollis/stockroom-backend/internal/auth"
	"github.com/averyhollis/stockroom-backend/internal/catalog"
	"github.com/averyhollis/stockroom-backend/internal/items"
	"github.com/averyhollis/stockroom-backend/pkg/config"
	"github.com/averyhollis/stockroom-backend/pkg/db"
	"github.com/averyhollis/stockroom-backend/pkg/logger"
	"github.com/averyhollis/stockroom-backend/pkg/metrics"
	"github.com/averyhollis/stockroom-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface is wired from.
type RouterParams struct {
	Config       *config.Config
	Logger       *logger.Logger
	DB           *db.Client
	Redis        *redis.Client
	AuthService  auth.Service
	ItemsService items.Service
	CatalogRepo  *catalog.Repository
	HTTPMetrics  *metrics.HTTPMetrics
	PromRegistry *prometheus.Registry
}

// NewRouter assembles the route tree. The path shapes mirror what inventory
// front ends already call: a form-based /Token login, /register aliases and
// the /item lifecycle group behind bearer auth.
func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(p.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		p.Config.AuthRateLimit.LoginWindow,
		p.Config.AuthRateLimit.LoginIPLimit,
		p.Config.AuthRateLimit.LoginUserLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		p.Config.AuthRateLimit.RegisterWindow,
		p.Config.AuthRateLimit.RegisterIPLimit,
		p.Config.AuthRateLimit.RegisterUserLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, dbPinger(p.DB), redisPinger(p.Redis)))
	})

	if p.PromRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.PromRegistry, promhttp.HandlerOpts{}))
	}

	r.With(middleware.AuthRateLimit(loginPolicy, rateLimitStore(p.Redis), p.Logger)).Post("/Token", controllers.AuthToken(p.AuthService, p.Logger))

	registerHandler := controllers.Register(p.AuthService, p.Logger)
	r.With(middleware.AuthRateLimit(registerPolicy, rateLimitStore(p.Redis), p.Logger)).Post("/register", registerHandler)
	r.With(middleware.AuthRateLimit(registerPolicy, rateLimitStore(p.Redis), p.Logger)).Post("/user/register", registerHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(p.Config.JWT, p.AuthService, p.Logger))

		r.Get("/user", controllers.CurrentUser(p.Logger))

		r.Get("/itemTypes", controllers.ListItemTypes(p.CatalogRepo, p.Logger))
		r.Get("/locations", controllers.ListLocations(p.CatalogRepo, p.Logger))
		r.Get("/buildings", controllers.ListBuildings(p.CatalogRepo, p.Logger))

		r.Route("/item", func(r chi.Router) {
			r.Post("/", controllers.ItemIntake(p.ItemsService, p.Logger))
			r.Get("/", controllers.ItemSearch(p.ItemsService, p.Logger))
			r.Get("/image/{itemId}", controllers.ItemImage(p.ItemsService, p.Logger))
			r.Patch("/move/{itemId}", controllers.ItemMove(p.ItemsService, p.Logger))
			r.Post("/ship/{itemId}", controllers.ItemShip(p.ItemsService, p.Logger))
		})
	})

	return r
}

// The typed-nil guards below keep an absent optional dependency from leaking
// into an interface value that no longer compares equal to nil.

type limiterStore interface {
	IncrWithTTL(context.Context, string, time.Duration) (int64, error)
}

func rateLimitStore(c *redis.Client) limiterStore {
	if c == nil {
		return nil
	}
	return c
}

func dbPinger(c *db.Client) db.Pinger {
	if c == nil {
		return nil
	}
	return c
}

func redisPinger(c *redis.Client) redis.Pinger {
	if c == nil {
		return nil
	}
	return c
}
