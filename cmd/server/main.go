// Command server runs the accounts HTTP API until it receives a termination signal.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/accounts/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	slog.Info("Starting accounts service...")
	if err := app.Run(ctx); err != nil {
		slog.Error("Accounts service stopped with an error.", "reason", err)
		return 1
	}

	slog.Info("Accounts service stopped.")
	return 0
}
