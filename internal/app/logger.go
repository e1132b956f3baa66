package app

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/at-ishikawa/lcsolved/internal/config"
)

// NewLogger returns a text logger writing to out and, when cfg.File is set,
// to a size-rotated log file as well.
func NewLogger(out io.Writer, cfg config.LogConfig, debugMode bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	if cfg.File != "" {
		out = io.MultiWriter(out, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}))
}
