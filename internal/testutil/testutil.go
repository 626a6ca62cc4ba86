// Package testutil provides shared test helpers for creating config files and record fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/traitel/calmnight/internal/record"
)

// SetupTestConfig creates a minimal config file and the data and export directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{"data", "export"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`storage:
  backend: yaml
  data_directory: %s
outputs:
  export_directory: %s
analytics:
  streak_lookback_days: 30
  mood_window_days: 7
  average_window: 14
`,
		filepath.Join(tmpDir, "data"),
		filepath.Join(tmpDir, "export"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake OpenAI API key for tests
// that require API key validation to pass.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("openai:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// CheckInHistoryOption configures CreateCheckInHistory.
type CheckInHistoryOption func(*checkInHistoryConfig)

type checkInHistoryConfig struct {
	days      int
	emotion   string
	intensity int
}

// WithDays sets how many consecutive days, ending at asOf, get a check-in.
func WithDays(days int) CheckInHistoryOption {
	return func(cfg *checkInHistoryConfig) {
		cfg.days = days
	}
}

// WithCheckIn sets the emotion and intensity of every generated check-in.
func WithCheckIn(emotion string, intensity int) CheckInHistoryOption {
	return func(cfg *checkInHistoryConfig) {
		cfg.emotion = emotion
		cfg.intensity = intensity
	}
}

// CreateCheckInHistory writes one check-in per day for consecutive days ending at asOf into dataDir.
// By default three "Content" check-ins with intensity 3 are written. The written records are returned oldest first.
func CreateCheckInHistory(t *testing.T, dataDir string, asOf time.Time, opts ...CheckInHistoryOption) []record.CheckIn {
	t.Helper()

	cfg := checkInHistoryConfig{
		days:      3,
		emotion:   "Content",
		intensity: 3,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	checkIns := make([]record.CheckIn, 0, cfg.days)
	for offset := cfg.days - 1; offset >= 0; offset-- {
		c, err := record.NewCheckIn(cfg.emotion, cfg.intensity, "", asOf.AddDate(0, 0, -offset))
		require.NoError(t, err)
		checkIns = append(checkIns, c)
	}
	require.NoError(t, record.WriteYamlFile(filepath.Join(dataDir, record.CheckInsFileName), checkIns))
	return checkIns
}

// CreateJournals writes one journal per entry into dataDir, an hour apart and ending at asOf.
func CreateJournals(t *testing.T, dataDir string, asOf time.Time, entries ...string) []record.Journal {
	t.Helper()

	journals := make([]record.Journal, 0, len(entries))
	for i, entry := range entries {
		at := asOf.Add(-time.Duration(len(entries)-1-i) * time.Hour)
		j, err := record.NewJournal(entry, "", at)
		require.NoError(t, err)
		journals = append(journals, j)
	}
	require.NoError(t, record.WriteYamlFile(filepath.Join(dataDir, record.JournalsFileName), journals))
	return journals
}
