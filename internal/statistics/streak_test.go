package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/traitel/calmnight/internal/record"
)

var testNow = time.Date(2025, 6, 15, 20, 30, 0, 0, time.UTC)

func checkInAt(emotion string, intensity int, at time.Time) record.CheckIn {
	return record.CheckIn{Emotion: emotion, Intensity: intensity, Timestamp: at}
}

// daysAgo returns a check-in at noon, n calendar days before testNow.
func daysAgo(n int) record.CheckIn {
	return checkInAt("Content", 5, time.Date(2025, 6, 15-n, 12, 0, 0, 0, time.UTC))
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name     string
		records  []record.CheckIn
		asOf     time.Time
		lookback int
		want     int
	}{
		{
			name:     "no records",
			records:  nil,
			asOf:     testNow,
			lookback: 30,
			want:     0,
		},
		{
			name: "all records today",
			records: []record.CheckIn{
				checkInAt("Anxious", 3, testNow.Add(-time.Hour)),
				checkInAt("Anxious", 5, testNow.Add(-2*time.Hour)),
				checkInAt("Sad", 8, testNow),
			},
			asOf:     testNow,
			lookback: 30,
			want:     1,
		},
		{
			name:     "six consecutive days ending today with a gap before",
			records:  []record.CheckIn{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4), daysAgo(5), daysAgo(7)},
			asOf:     testNow,
			lookback: 30,
			want:     6,
		},
		{
			name:     "empty today does not break a run ending yesterday",
			records:  []record.CheckIn{daysAgo(1), daysAgo(2), daysAgo(3)},
			asOf:     testNow,
			lookback: 30,
			want:     3,
		},
		{
			name:     "empty yesterday ends the streak",
			records:  []record.CheckIn{daysAgo(0), daysAgo(2), daysAgo(3)},
			asOf:     testNow,
			lookback: 30,
			want:     1,
		},
		{
			name:     "only old records",
			records:  []record.CheckIn{daysAgo(5), daysAgo(6)},
			asOf:     testNow,
			lookback: 30,
			want:     0,
		},
		{
			name:     "lookback caps the streak",
			records:  []record.CheckIn{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4)},
			asOf:     testNow,
			lookback: 3,
			want:     3,
		},
		{
			name:     "duplicates on a day are counted once",
			records:  []record.CheckIn{daysAgo(0), daysAgo(0), daysAgo(1), daysAgo(1), daysAgo(1)},
			asOf:     testNow,
			lookback: 30,
			want:     2,
		},
		{
			name:     "unordered records",
			records:  []record.CheckIn{daysAgo(2), daysAgo(0), daysAgo(1)},
			asOf:     testNow,
			lookback: 30,
			want:     3,
		},
		{
			name: "calendar days follow the location of asOf",
			records: []record.CheckIn{
				// 2025-06-15 03:00 UTC is still 2025-06-14 in New York
				checkInAt("Sad", 4, time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)),
				checkInAt("Sad", 4, time.Date(2025, 6, 13, 18, 0, 0, 0, time.UTC)),
			},
			asOf:     time.Date(2025, 6, 15, 9, 0, 0, 0, mustLoadLocation("America/New_York")),
			lookback: 30,
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStreak(tt.records, tt.asOf, tt.lookback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		records []record.CheckIn
		want    int
	}{
		{name: "no records", want: 0},
		{name: "single day", records: []record.CheckIn{daysAgo(3), daysAgo(3)}, want: 1},
		{
			name:    "longest run is in the past",
			records: []record.CheckIn{daysAgo(0), daysAgo(1), daysAgo(5), daysAgo(6), daysAgo(7), daysAgo(8)},
			want:    4,
		},
		{
			name: "run across a month boundary",
			records: []record.CheckIn{
				checkInAt("Bored", 2, time.Date(2025, 2, 27, 10, 0, 0, 0, time.UTC)),
				checkInAt("Bored", 2, time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC)),
				checkInAt("Bored", 2, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(tt.records, time.UTC))
		})
	}
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, -4*60*60)
	}
	return loc
}
