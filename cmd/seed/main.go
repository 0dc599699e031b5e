package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/jcastellanos/habitframe-backend/internal/badges"
	"github.com/jcastellanos/habitframe-backend/pkg/config"
	"github.com/jcastellanos/habitframe-backend/pkg/db"
	"github.com/jcastellanos/habitframe-backend/pkg/logger"
)

// Seeds the badge catalog. Safe to run repeatedly; existing rows are left
// untouched.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	repo := badges.NewRepository(dbClient.DB())
	catalog := badges.DefaultCatalog()
	if err := repo.SeedCatalog(ctx, catalog); err != nil {
		logg.Error(ctx, "failed to seed badge catalog", err)
		os.Exit(1)
	}

	ctx = logg.WithField(ctx, "badges", len(catalog))
	logg.Info(ctx, "badge catalog seeded")
}
