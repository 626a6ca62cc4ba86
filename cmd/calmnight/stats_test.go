package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traitel/calmnight/internal/testutil"
)

func TestNewStatsCommand(t *testing.T) {
	cmd := newStatsCommand()

	assert.Equal(t, "stats", cmd.Use)
	assert.Contains(t, cmd.Aliases, "dashboard")
	assert.NotNil(t, cmd.RunE)
}

func TestNewStatsCommand_RunE(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		contains []string
	}{
		{
			name: "empty history",
			contains: []string{
				"Check-ins:       0",
				"Current streak:  0 days",
				"Most common:     Balanced",
			},
		},
		{
			name: "six consecutive days",
			days: 6,
			contains: []string{
				"Check-ins:       6",
				"Current streak:  6 days",
				"Most common:     Stressed",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disableColor(t)
			tmpDir := t.TempDir()
			setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
			if tt.days > 0 {
				testutil.CreateCheckInHistory(t, filepath.Join(tmpDir, "data"), time.Now(),
					testutil.WithDays(tt.days), testutil.WithCheckIn("Stressed", 6))
			}

			out, err := execute(t, newStatsCommand(), "")
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}
