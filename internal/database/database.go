package database

import (
	"alcyxob/fitness-planner/internal/config"
	"alcyxob/fitness-planner/internal/repository"
	"alcyxob/fitness-planner/internal/repository/postgres"
	"alcyxob/fitness-planner/internal/repository/sqlite"
	"context"
	"fmt"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Backend is an opened and migrated store.
type Backend struct {
	Driver string
	Repos  repository.Repositories
	// Collector exports connection pool stats. Nil for sqlite.
	Collector prometheus.Collector

	closeFn func() error
}

func (b *Backend) Close() error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn()
}

// Open connects to the configured driver and applies the schema.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Backend, error) {
	pool, err := postgres.NewPool(ctx, postgres.NewPoolParams{
		URL:            cfg.URL,
		TracingEnabled: cfg.Tracing,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}

	dbName := pool.Config().ConnConfig.Database
	log.Infof("connected to postgres database [%s]", dbName)

	return &Backend{
		Driver: config.DriverPostgres,
		Repos:  postgres.NewRepositories(pool),
		Collector: pgxpoolprometheus.NewCollector(
			pool,
			map[string]string{"db_name": dbName},
		),
		closeFn: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig) (*Backend, error) {
	db, err := sqlite.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := sqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	log.Infof("opened sqlite database [%s]", cfg.Path)
	return &Backend{
		Driver:  config.DriverSQLite,
		Repos:   sqlite.NewRepositories(db),
		closeFn: db.Close,
	}, nil
}
