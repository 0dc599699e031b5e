package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jcastellanos/habitframe-backend/api/controllers"
	"github.com/jcastellanos/habitframe-backend/api/middleware"
	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/internal/frame"
	"github.com/jcastellanos/habitframe-backend/internal/habits"
	"github.com/jcastellanos/habitframe-backend/internal/streaks"
	"github.com/jcastellanos/habitframe-backend/internal/users"
	"github.com/jcastellanos/habitframe-backend/pkg/config"
	"github.com/jcastellanos/habitframe-backend/pkg/db"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
	"github.com/jcastellanos/habitframe-backend/pkg/redis"
)

// Deps bundles everything the HTTP surface needs. The frame endpoints sit
// outside /api/v1 because Farcaster clients post to them directly.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	DBPinger db.Pinger
	Redis    *redis.Client

	Users   users.Service
	Habits  habits.Service
	Streaks streaks.Service
	Badges  badges.Service
	Frame   frame.Service

	Gatherer prometheus.Gatherer
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(d.Logger),
		middleware.RequestID(d.Logger),
		middleware.Logging(d.Logger),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(d.Config))
		r.Get("/ready", controllers.HealthReady(d.Config, d.Logger, d.DBPinger, d.Redis))
	})

	if d.Gatherer != nil {
		r.Get("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}).ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(d.Redis, d.Logger))

		r.Route("/users", func(r chi.Router) {
			r.Post("/", controllers.UpsertUser(d.Users, d.Logger))
			r.Get("/", controllers.GetUser(d.Users, d.Logger))
		})

		r.Route("/habits", func(r chi.Router) {
			r.Post("/", controllers.CreateHabit(d.Habits, d.Logger))
			r.Get("/", controllers.ListHabits(d.Habits, d.Logger))
			r.Put("/{habitId}", controllers.UpdateHabit(d.Habits, d.Logger))
			r.Delete("/{habitId}", controllers.DeleteHabit(d.Habits, d.Logger))
		})

		r.Route("/streaks", func(r chi.Router) {
			r.Post("/", controllers.LogStreak(d.Streaks, d.Logger))
			r.Get("/", controllers.GetStreakLogs(d.Streaks, d.Logger))
		})

		r.Get("/badges", controllers.ListBadges(d.Badges, d.Logger))
	})

	r.Route("/api/frame", func(r chi.Router) {
		r.Post("/", controllers.FrameAction(d.Frame, d.Logger))
		r.Get("/image", controllers.FrameImage(d.Logger))
	})

	return r
}
