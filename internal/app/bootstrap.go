package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"

	"github.com/ferdiebergado/accounts/internal/config"
	"github.com/ferdiebergado/accounts/internal/middleware"
	"github.com/ferdiebergado/accounts/internal/pkg/logging"
	"github.com/ferdiebergado/accounts/internal/pkg/message"
	"github.com/ferdiebergado/accounts/internal/platform/db"
	"github.com/ferdiebergado/accounts/internal/user"
)

const envKey = "KEY"

// Run loads the configuration, opens the user store and serves the API
// until ctx is done.
func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}

	cfg, err := config.Load("config.json")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupLogger(appEnv, cfg.Log.Level, os.Stdout)
	slog.Debug("Configuration loaded.", "config", cfg)

	securityKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.ContextGuard,
		middleware.CheckContentType,
	}
	provider := newProvider(cfg, securityKey)
	middlewares = append(middlewares, middleware.Instrument(provider.Metrics))

	api := New(cfg, provider, store, middlewares)
	if err := api.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// openStore returns the user store selected by cfg and a function that
// releases it.
func openStore(ctx context.Context, cfg *config.Config) (user.Store, func(), error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		slog.Warn("Using the in-memory user store; data is lost on exit.")
		return user.NewMemoryStore(), func() {}, nil
	}

	dsn := db.DSNFromEnv()
	if cfg.DB.AutoMigrate {
		if err := db.Migrate(dsn); err != nil {
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	conn, err := db.NewPostgresDB(ctx, cfg.DB, dsn)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := conn.Close(); err != nil {
			slog.Error("failed to close database", "reason", err)
		}
	}
	return user.NewRepository(conn), closeFn, nil
}
