// Package main implements the entry point for the vocab-drill server, a
// local single-user service for drilling translation pairs with spaced
// repetition in both directions.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/vocab-drill/internal/config"
	"github.com/phrazzld/vocab-drill/internal/platform/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("vocab-drill: %v", err)
	}
}

// run loads configuration, builds the application and serves until ctx is
// canceled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("storage_driver", cfg.Storage.Driver))

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.serve(ctx)
}
