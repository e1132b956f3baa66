package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/at-ishikawa/lcsolved/internal/app"
	"github.com/at-ishikawa/lcsolved/internal/bootstrap"
	"github.com/at-ishikawa/lcsolved/internal/config"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
	"github.com/at-ishikawa/lcsolved/internal/server"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Mochi.APIKey == "" {
		return flashcard.ErrMissingAPIKey
	}

	logger := app.NewLogger(os.Stdout, cfg.Log, os.Getenv("LCSOLVED_DEBUG") != "")
	slog.SetDefault(logger)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	// Closed after every runner has returned.
	defer a.Close()
	if err := a.Orchestrator.RegisterPeriodic(); err != nil {
		return fmt.Errorf("register periodic jobs: %w", err)
	}

	handler := server.NewHandler(a.Orchestrator, a.Queue, a.Engine, a.Cards, logger)
	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(cfg.Server.Port)),
		Handler:           server.NewHTTPHandler(handler.Routes(), cfg.Server.CORS.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lifecycle := bootstrap.New()
	lifecycle.AddShutdownHook(srv.Shutdown)

	return lifecycle.Run(ctx,
		func(ctx context.Context) error {
			logger.Info("starting server", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve http: %w", err)
			}
			return nil
		},
		a.Queue.Run,
		a.Scheduler.Run,
	)
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("LCSOLVED_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}
