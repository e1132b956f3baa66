// Package testutil provides shared test helpers for config files and SQLite-backed stores.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lcsolved/internal/config"
	"github.com/at-ishikawa/lcsolved/internal/database"
)

// ConfigOption configures optional fields of a generated config file.
type ConfigOption func(*testConfig)

type testConfig struct {
	feedURL      string
	mochiBaseURL string
	settleDelay  string
}

// WithFeedURL points the catalog feed at a test server.
func WithFeedURL(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.feedURL = url
	}
}

// WithMochiBaseURL points the flashcard client at a test server.
func WithMochiBaseURL(url string) ConfigOption {
	return func(cfg *testConfig) {
		cfg.mochiBaseURL = url
	}
}

// SetupTestConfig writes a config file that stores data in a SQLite file under tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := testConfig{
		feedURL:      config.DefaultQuestionFeedURL,
		mochiBaseURL: config.DefaultMochiBaseURL,
		settleDelay:  "0s",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
catalog:
  feed_url: %s
mochi:
  base_url: %s
sync:
  settle_delay: %s
  retry_attempts: 0
  retry_delay: 1ms
`,
		filepath.Join(tmpDir, "lcsolved.db"),
		cfg.feedURL,
		cfg.mochiBaseURL,
		cfg.settleDelay,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey also sets a fake Mochi API key for commands that require it.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()
	t.Setenv("MOCHI_API_KEY", "fake-key-for-testing")
	return SetupTestConfig(t, tmpDir, opts...)
}

// NewSQLiteDB opens a migrated SQLite database in a temporary directory.
// It is closed when the test finishes.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}
