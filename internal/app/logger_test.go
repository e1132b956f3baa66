package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lcsolved/internal/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, config.LogConfig{}, tt.debugMode)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))

			logger.Info("catalog refreshed", "fetched", 2)
			assert.Contains(t, buf.String(), "msg=\"catalog refreshed\" fetched=2")
		})
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lcsolved.log")
	var buf bytes.Buffer
	logger := NewLogger(&buf, config.LogConfig{File: path, MaxSizeMB: 1}, false)

	logger.Warn("mochi api unreachable")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "mochi api unreachable")
	assert.Contains(t, buf.String(), "mochi api unreachable")
}
