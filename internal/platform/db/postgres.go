package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/ferdiebergado/accounts/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DSNFromEnv builds a postgres connection URL from the DB_* environment variables.
func DSNFromEnv() string {
	dsn := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(os.Getenv("DB_USER"), os.Getenv("DB_PASS")),
		Host:     os.Getenv("DB_HOST") + ":" + os.Getenv("DB_PORT"),
		Path:     os.Getenv("DB_NAME"),
		RawQuery: "sslmode=" + os.Getenv("DB_SSLMODE"),
	}
	return dsn.String()
}

// NewPostgresDB opens a connection pool for dsn and pings it.
func NewPostgresDB(ctx context.Context, cfg *config.DB, dsn string) (*sql.DB, error) {
	slog.Info("Connecting to the database...")

	conn, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime.Duration)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime.Duration)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout.Duration)
	defer cancel()

	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("Connected to the database.")

	return conn, nil
}
