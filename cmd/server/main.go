// Package main implements the entry point for the folio API server, the
// backend of a personal portfolio site.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/phrazzld/folio-api/internal/config"
	"github.com/phrazzld/folio-api/internal/platform/logger"
	"github.com/phrazzld/folio-api/internal/platform/postgres"
	"github.com/phrazzld/folio-api/internal/platform/storage"
	"github.com/phrazzld/folio-api/internal/service/auth"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Failed to run application: %v", err)
	}
}

// run loads configuration, connects to the remote services and serves until
// the process is signalled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	l.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.String("storage_driver", cfg.Storage.Driver))

	connectCtx, cancel := context.WithTimeout(ctx, cfg.RemoteTimeout())
	pool, err := postgres.Open(connectCtx, cfg.Database)
	cancel()
	if err != nil {
		return err
	}
	l.Info("Database connection established")

	client := &http.Client{Timeout: cfg.RemoteTimeout()}

	verifier, err := auth.NewVerifier(cfg, client, l)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	bucket, err := storage.New(cfg, client, l)
	if err != nil {
		pool.Close()
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	app, err := newApplication(cfg, l, pool, verifier, bucket)
	if err != nil {
		pool.Close()
		return err
	}
	app.pool = pool

	return app.Run(ctx)
}
