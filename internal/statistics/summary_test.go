package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traitel/calmnight/internal/config"
	"github.com/traitel/calmnight/internal/record"
)

func TestSummarize(t *testing.T) {
	t.Run("three check-ins today", func(t *testing.T) {
		checkIns := []record.CheckIn{
			checkInAt("Anxious", 3, testNow.Add(-3*time.Hour)),
			checkInAt("Anxious", 5, testNow.Add(-2*time.Hour)),
			checkInAt("Sad", 8, testNow.Add(-time.Hour)),
		}

		got := Summarize(checkIns, nil, testNow, DefaultOptions())

		assert.Equal(t, testNow, got.AsOf)
		assert.Equal(t, 3, got.TotalCheckIns)
		assert.Equal(t, 0, got.TotalJournals)
		assert.Equal(t, 1, got.CurrentStreak)
		assert.Equal(t, 1, got.LongestStreak)
		assert.Equal(t, 5.7, got.AverageMood)
		assert.Equal(t, "Anxious", got.MostCommonEmotion)
		require.Len(t, got.DailyMood, 7)
		require.NotNil(t, got.DailyMood[6].Score)
		assert.Equal(t, 5.7, *got.DailyMood[6].Score)
		assert.Equal(t, Distribution{
			{Emotion: "Anxious", Count: 2, Color: "#8B5CF6"},
			{Emotion: "Sad", Count: 1, Color: "#F59E0B"},
		}, got.Distribution)
		require.Len(t, got.Insights, 1)
		assert.Equal(t, "Your Growth", got.Insights[0].Title)
	})

	t.Run("empty history", func(t *testing.T) {
		opts := DefaultOptions()
		opts.MoodWindowDays = 14

		got := Summarize(nil, nil, testNow, opts)

		assert.Equal(t, 0, got.CurrentStreak)
		assert.Equal(t, 0, got.LongestStreak)
		assert.Equal(t, 5.0, got.AverageMood)
		assert.Equal(t, "Balanced", got.MostCommonEmotion)
		assert.Len(t, got.DailyMood, 14)
		assert.Empty(t, got.Distribution)
		assert.Len(t, got.Insights, 1)
	})
}

func TestNewOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AnalyticsConfig
		want Options
	}{
		{
			name: "config defaults",
			cfg:  config.DefaultAnalyticsConfig(),
			want: Options{
				StreakLookbackDays: 30,
				MoodWindowDays:     7,
				AverageWindow:      14,
				Palette:            config.DefaultPalette,
			},
		},
		{
			name: "configured windows",
			cfg: config.AnalyticsConfig{
				StreakLookbackDays: 60,
				MoodWindowDays:     14,
				AverageWindow:      7,
				Palette:            []string{"#000000"},
			},
			want: Options{
				StreakLookbackDays: 60,
				MoodWindowDays:     14,
				AverageWindow:      7,
				Palette:            []string{"#000000"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewOptions(tt.cfg))
		})
	}
	assert.Equal(t, NewOptions(config.DefaultAnalyticsConfig()), DefaultOptions())
}
