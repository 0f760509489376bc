package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/accounts/internal/auth"
	"github.com/ferdiebergado/accounts/internal/config"
	"github.com/ferdiebergado/accounts/internal/user"
)

type App struct {
	server          *http.Server
	provider        *Provider
	stop            context.CancelFunc
	shutdownTimeout time.Duration
}

// New wires the user module on store and mounts every route on the
// provider's router. Middlewares run in the order given, outermost first.
func New(cfg *config.Config, provider *Provider, store user.Store, middlewares []func(http.Handler) http.Handler) *App {
	for _, mw := range middlewares {
		provider.Router.Use(mw)
	}

	gateway := auth.NewGateway(store, provider.Hasher)
	users := user.NewModule(store, provider.Hasher, gateway, provider.Metrics)
	mountUserRoutes(provider.Router, users.Handler(), provider.Validator, cfg.Server.MaxBodyBytes)
	mountMetricsRoute(provider.Router, provider.Metrics)

	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", serverCfg.Port),
		Handler: provider.Router,
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		server:          server,
		provider:        provider,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}

func (a *App) Handler() http.Handler {
	return a.provider.Router
}

// Start serves until ctx is done or the listener fails.
func (a *App) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
