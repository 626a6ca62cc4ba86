package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traitel/calmnight/internal/record"
)

func TestComputeDailyMood(t *testing.T) {
	t.Run("window over empty input has no data", func(t *testing.T) {
		got := ComputeDailyMood(nil, testNow, 7)
		require.Len(t, got, 7)
		for _, d := range got {
			assert.False(t, d.HasData())
			assert.Nil(t, d.Score)
			assert.Zero(t, d.Entries)
		}
		assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), got[0].Day)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), got[6].Day)
		assert.Equal(t, "Mon", got[0].Label)
		assert.Equal(t, "Sun", got[6].Label)
	})

	t.Run("averages per day and leaves gaps absent", func(t *testing.T) {
		records := []record.CheckIn{
			checkInAt("Anxious", 3, testNow.Add(-time.Hour)),
			checkInAt("Anxious", 5, testNow.Add(-2*time.Hour)),
			checkInAt("Sad", 8, testNow),
			checkInAt("Stressed", 9, time.Date(2025, 6, 13, 8, 0, 0, 0, time.UTC)),
			checkInAt("Content", 1, time.Date(2025, 6, 13, 22, 0, 0, 0, time.UTC)),
			// outside the window
			checkInAt("Lonely", 10, time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)),
		}

		got := ComputeDailyMood(records, testNow, 3)
		require.Len(t, got, 3)

		assert.Equal(t, 13, got[0].Day.Day())
		require.NotNil(t, got[0].Score)
		assert.Equal(t, 6.0, *got[0].Score)
		assert.Equal(t, 2, got[0].Entries)

		assert.Equal(t, 14, got[1].Day.Day())
		assert.Nil(t, got[1].Score)

		assert.Equal(t, 15, got[2].Day.Day())
		require.NotNil(t, got[2].Score)
		assert.Equal(t, 5.7, *got[2].Score)
		assert.Equal(t, 3, got[2].Entries)
	})

	t.Run("window length is honored for any input size", func(t *testing.T) {
		records := []record.CheckIn{daysAgo(0), daysAgo(20), daysAgo(40)}
		for _, window := range []int{0, 1, 7, 14, 30} {
			assert.Len(t, ComputeDailyMood(records, testNow, window), window)
		}
	})

	t.Run("window crosses a month boundary", func(t *testing.T) {
		asOf := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
		got := ComputeDailyMood(nil, asOf, 3)
		require.Len(t, got, 3)
		assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), got[0].Day)
		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got[1].Day)
	})
}

func TestOverallAverageMood(t *testing.T) {
	tests := []struct {
		name    string
		records []record.CheckIn
		window  int
		want    float64
	}{
		{name: "empty input is neutral", records: nil, window: 14, want: 5.0},
		{name: "empty slice is neutral", records: []record.CheckIn{}, window: 7, want: 5.0},
		{
			name: "fewer records than the window uses all of them",
			records: []record.CheckIn{
				checkInAt("Anxious", 3, testNow),
				checkInAt("Anxious", 5, testNow),
				checkInAt("Sad", 8, testNow),
			},
			window: 14,
			want:   5.7,
		},
		{
			name: "only the last records by position are used",
			records: []record.CheckIn{
				checkInAt("Stressed", 10, testNow),
				checkInAt("Content", 2, testNow.Add(-48*time.Hour)),
				checkInAt("Content", 1, testNow.Add(-72*time.Hour)),
			},
			window: 2,
			want:   9.5,
		},
		{
			name: "rounds to one decimal",
			records: []record.CheckIn{
				checkInAt("Sad", 4, testNow),
				checkInAt("Sad", 4, testNow),
				checkInAt("Sad", 5, testNow),
			},
			window: 7,
			want:   6.7,
		},
		{
			name:    "zero window is neutral",
			records: []record.CheckIn{checkInAt("Sad", 4, testNow)},
			window:  0,
			want:    5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverallAverageMood(tt.records, tt.window))
		})
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 6.0, round(6.0))
	assert.Equal(t, 6.7, round(6.66))
	assert.Equal(t, 6.3, round(6.25))
}
