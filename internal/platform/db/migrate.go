package db

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Register the pgx/v5 database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrator is the part of *migrate.Migrate used here, so tests can run without a database.
type migrator interface {
	Up() error
	Close() (source error, database error)
}

// Migrate applies every pending migration to the database at dsn.
func Migrate(dsn string) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, MigrateURL(dsn))
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("initialize migrator: %w", err)
	}

	return runUp(m)
}

func runUp(m migrator) (err error) {
	defer func() {
		srcErr, dbErr := m.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil && err == nil {
			err = fmt.Errorf("close migrator: %w", closeErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("Database schema is up to date.")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("Database migrations applied.")
	return nil
}

// MigrateURL rewrites a postgres:// or postgresql:// URL to the pgx5://
// scheme expected by the golang-migrate pgx/v5 driver.
func MigrateURL(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, "postgres://"); ok {
		return "pgx5://" + rest
	}
	if rest, ok := strings.CutPrefix(dsn, "postgresql://"); ok {
		return "pgx5://" + rest
	}
	return dsn
}
