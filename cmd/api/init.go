package main

import (
	"context"

	"cgpa-calculator/internal/calculator"
	"cgpa-calculator/internal/config"
	"cgpa-calculator/internal/handlers"
	"cgpa-calculator/internal/observability"
	"cgpa-calculator/internal/store"

	"go.uber.org/zap"
)

// studentStore is what the routes need from persistence.
type studentStore interface {
	calculator.Repository
	handlers.Pinger
}

// initMetrics initialises all metric providers and application-specific
// metric instruments.
func initMetrics(ctx context.Context) (func(context.Context) error, error) {
	shutdown, err := observability.InitMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}

// initStore connects to PostgreSQL when DATABASE_URL is set and falls back to
// an in-memory store otherwise.
func initStore(ctx context.Context, cfg *config.Config) (studentStore, func() error, error) {
	if cfg.DatabaseURL == "" {
		observability.Logger.Warn("DATABASE_URL not set, records are kept in memory")
		return store.NewMemoryRepo(), func() error { return nil }, nil
	}

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	repo := store.NewSQLRepo(db)
	if err := repo.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	observability.Logger.Info("database connected", zap.Int("max_open_conns", db.Stats().MaxOpenConnections))
	return repo, db.Close, nil
}
