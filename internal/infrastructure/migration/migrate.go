package migration

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"datakeeper/internal/app/server/config"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the database drivers for migrations
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator is the subset of migrate.Migrate we use
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a migrator; tests swap it to avoid touching a database
type MigrationEngine func(sourceDir, databaseURL string) (Migrator, error)

type Migration struct {
	cfg    *config.Config
	engine MigrationEngine
}

func NewMigration(conf *config.Config, engine MigrationEngine) *Migration {
	return &Migration{
		cfg:    conf,
		engine: engine,
	}
}

// DefaultEngine reads the embedded SQL files for sourceDir
func DefaultEngine(sourceDir, databaseURL string) (Migrator, error) {
	src, err := iofs.New(migrationsFS, sourceDir)
	if err != nil {
		return nil, fmt.Errorf("open migrations %s: %w", sourceDir, err)
	}
	return migrate.NewWithSourceInstance("iofs", src, databaseURL)
}

// SourceDir returns the embedded directory holding the driver's migrations.
func SourceDir(driver string) string {
	return "migrations/" + driver
}

// DatabaseURL converts the configured DSN into the URL form migrate expects.
func DatabaseURL(cfg *config.Config) string {
	uri := cfg.DB.DatabaseURI
	if cfg.DB.Driver == config.DriverSQLite && !strings.HasPrefix(uri, "sqlite3://") {
		return "sqlite3://" + uri
	}
	return uri
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine(SourceDir(mg.cfg.DB.Driver), DatabaseURL(mg.cfg))
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
