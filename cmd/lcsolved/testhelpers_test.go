package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// runCommand executes the root command with args and returns its stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newUpstreams(t *testing.T) (feedURL, mochiURL string) {
	t.Helper()
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"Rating": 1737.1, "ID": 3044, "Title": "Most Frequent Prime", "TitleSlug": "most-frequent-prime", "ContestID_en": "Weekly Contest 385", "ProblemIndex": "Q3"},
			{"Rating": 2250, "ID": 2999, "Title": "Count the Number of Powerful Integers", "TitleSlug": "count-the-number-of-powerful-integers", "ContestID_en": "Biweekly Contest 121", "ProblemIndex": "Q4"},
			{"Rating": 1200, "ID": 1, "Title": "Two Sum", "TitleSlug": "two-sum"}
		]`))
	}))
	t.Cleanup(feed.Close)

	mochi := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs":[
			{"id":"c1","content":"**3044. Most Frequent Prime**\nsieve + counting"},
			{"id":"c2","content":""}
		]}`))
	}))
	t.Cleanup(mochi.Close)
	return feed.URL, mochi.URL
}
