package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jcastellanos/habitframe-backend/api/routes"
	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/internal/frame"
	"github.com/jcastellanos/habitframe-backend/internal/habits"
	"github.com/jcastellanos/habitframe-backend/internal/streaks"
	"github.com/jcastellanos/habitframe-backend/internal/users"
	"github.com/jcastellanos/habitframe-backend/pkg/config"
	"github.com/jcastellanos/habitframe-backend/pkg/db"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
	"github.com/jcastellanos/habitframe-backend/pkg/metrics"
	"github.com/jcastellanos/habitframe-backend/pkg/migrate"
	"github.com/jcastellanos/habitframe-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics := metrics.NewDomainMetrics(registry)

	userRepo := users.NewRepository(dbClient.DB())
	habitRepo := habits.NewRepository(dbClient.DB())
	streakRepo := streaks.NewRepository(dbClient.DB())
	badgeRepo := badges.NewRepository(dbClient.DB())

	badgeService, err := badges.NewService(badges.ServiceParams{
		Repo:     badgeRepo,
		Cache:    redisClient,
		CacheTTL: cfg.Redis.CatalogTTL,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create badges service", err)
		os.Exit(1)
	}
	if err := badgeService.EnsureSeeded(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to seed badge catalog", err)
		os.Exit(1)
	}

	userService, err := users.NewService(users.ServiceParams{
		UserRepo:    userRepo,
		HabitSource: habitRepo,
		BadgeSource: badgeRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	habitService, err := habits.NewService(habits.ServiceParams{
		HabitRepo: habitRepo,
		BadgeRepo: badgeRepo,
		Logs:      streakRepo,
		DB:        dbClient,
		Metrics:   domainMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create habits service", err)
		os.Exit(1)
	}

	streakService, err := streaks.NewService(streaks.ServiceParams{
		StreakRepo: streakRepo,
		HabitRepo:  habitRepo,
		BadgeRepo:  badgeRepo,
		DB:         dbClient,
		Metrics:    domainMetrics,
		Logger:     logg,
		Strict:     cfg.Streak.Strict,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create streaks service", err)
		os.Exit(1)
	}

	frameService, err := frame.NewService(frame.ServiceParams{
		Users:   userService,
		Habits:  habitService,
		Streaks: streakService,
		BaseURL: cfg.Frame.BaseURL,
		Metrics: domainMetrics,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create frame service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DBPinger: dbClient,
			Redis:    redisClient,
			Users:    userService,
			Habits:   habitService,
			Streaks:  streakService,
			Badges:   badgeService,
			Frame:    frameService,
			Gatherer: registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
