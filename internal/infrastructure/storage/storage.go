package storage

import (
	"context"
	"fmt"

	"datakeeper/internal/app/server/config"
	"datakeeper/internal/domain/record"
	"datakeeper/internal/infrastructure/migration"
	"datakeeper/internal/infrastructure/storage/postgres"
	"datakeeper/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Storage is the persistence backend the server runs on.
type Storage interface {
	Records() record.Repository
	Ping(ctx context.Context) error
	Close() error
}

// New applies pending migrations and opens the configured driver.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return Open(ctx, cfg, log)
}

// Open connects to the configured driver without touching the schema.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (Storage, error) {
	log.Info("opening storage", "driver", cfg.DB.Driver)

	var (
		store Storage
		err   error
	)

	switch cfg.DB.Driver {
	case config.DriverSQLite:
		store, err = openSQLite(ctx, cfg.DB.DatabaseURI, log)
	case config.DriverPostgres:
		store, err = openPostgres(ctx, cfg.DB.DatabaseURI, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	return store, nil
}

func openSQLite(ctx context.Context, path string, log *slog.Logger) (Storage, error) {
	s, err := sqlite.New(ctx, path, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func openPostgres(ctx context.Context, uri string, log *slog.Logger) (Storage, error) {
	s, err := postgres.New(ctx, uri, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}
