package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lcsolved/internal/config"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, WithFeedURL("http://127.0.0.1:1/data.json"))

	want := filepath.Join(tmpDir, "config.yml")
	assert.Equal(t, want, got)

	t.Setenv("MOCHI_API_KEY", "")
	loader, err := config.NewConfigLoader(got)
	require.NoError(t, err)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, filepath.Join(tmpDir, "lcsolved.db"), cfg.Database.Path)
	assert.Equal(t, "http://127.0.0.1:1/data.json", cfg.Catalog.FeedURL)
	assert.Equal(t, config.DefaultMochiBaseURL, cfg.Mochi.BaseURL)
	assert.Zero(t, cfg.Sync.SettleDelay)
	assert.Empty(t, cfg.Mochi.APIKey)
}

func TestSetupTestConfigWithAPIKey(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfigWithAPIKey(t, tmpDir, WithMochiBaseURL("http://127.0.0.1:2"))

	_, err := os.Stat(got)
	require.NoError(t, err)
	assert.Equal(t, "fake-key-for-testing", os.Getenv("MOCHI_API_KEY"))

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "base_url: http://127.0.0.1:2")
}

func TestNewSQLiteDB(t *testing.T) {
	db := NewSQLiteDB(t)

	var count int
	require.NoError(t, db.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM questions"))
	assert.Equal(t, 0, count)
	require.NoError(t, db.GetContext(context.Background(), &count, "SELECT COUNT(*) FROM flashcards"))
	assert.Equal(t, 0, count)
}
