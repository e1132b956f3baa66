package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/lcsolved/internal/app"
	"github.com/at-ishikawa/lcsolved/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openApp loads the configuration, points the default logger at the
// configured log file and builds the application.
func openApp(ctx context.Context, override func(cfg *config.Config)) (*app.App, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if override != nil {
		override(cfg)
	}
	setupLogger(debugMode, cfg.Log)

	a, err := app.New(ctx, cfg, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize: %w", err)
	}
	return a, cfg, nil
}
