package inference

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
)

func TestNewReflectionRequest(t *testing.T) {
	now := time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)
	checkIns := []record.CheckIn{
		{Emotion: "Sad", Intensity: 7, Timestamp: now.AddDate(0, 0, -2)},
		{Emotion: "Anxious", Intensity: 6, Notes: "work", Timestamp: now.AddDate(0, 0, -1)},
		{Emotion: "Content", Intensity: 2, Timestamp: now},
	}
	journals := []record.Journal{{Entry: "better today", Gratitude: "friends", Timestamp: now}}
	summary := statistics.Summarize(checkIns, journals, now, statistics.DefaultOptions())

	got := NewReflectionRequest(checkIns, journals, summary, 2, 5)

	require.Len(t, got.CheckIns, 2)
	assert.Equal(t, CheckIn{Emotion: "Anxious", Intensity: 6, Notes: "work", Day: "2025-06-14"}, got.CheckIns[0])
	assert.Equal(t, "Content", got.CheckIns[1].Emotion)
	assert.Equal(t, []JournalEntry{{Entry: "better today", Gratitude: "friends", Day: "2025-06-15"}}, got.Journals)
	assert.Equal(t, summary.AverageMood, got.AverageMood)
	assert.Equal(t, 3, got.CurrentStreak)
	assert.False(t, got.IsEmpty())

	empty := NewReflectionRequest(nil, nil, statistics.Summarize(nil, nil, now, statistics.DefaultOptions()), 10, 10)
	assert.True(t, empty.IsEmpty())
	assert.NotNil(t, empty.CheckIns)
}
