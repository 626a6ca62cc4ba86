package guidance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour int) time.Time {
	return time.Date(2025, 6, 15, hour, 30, 0, 0, time.UTC)
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 0, want: "Good morning"},
		{hour: 11, want: "Good morning"},
		{hour: 12, want: "Good afternoon"},
		{hour: 16, want: "Good afternoon"},
		{hour: 17, want: "Good evening"},
		{hour: 21, want: "Good evening"},
		{hour: 22, want: "You're up late"},
		{hour: 23, want: "You're up late"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Greeting(at(tt.hour)))
		})
	}
}

func TestIsLateNight(t *testing.T) {
	late := []int{20, 21, 23, 0, 3, 6}
	for _, h := range late {
		assert.True(t, IsLateNight(at(h)), "hour %d", h)
	}
	day := []int{7, 12, 19}
	for _, h := range day {
		assert.False(t, IsLateNight(at(h)), "hour %d", h)
	}
}

func TestDailyAffirmation(t *testing.T) {
	// 2025-06-15 is a Sunday
	sunday := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	saturday := sunday.AddDate(0, 0, 6)

	assert.Equal(t, "You are exactly where you need to be right now.", DailyAffirmation(sunday))
	assert.Equal(t, "Every craving is temporary. You are permanent.", DailyAffirmation(sunday.AddDate(0, 0, 1)))
	assert.Equal(t, DailyAffirmation(sunday), DailyAffirmation(saturday))
	assert.Len(t, Affirmations(), 6)
}

func TestJournalPrompts(t *testing.T) {
	prompts := JournalPrompts()
	require.Len(t, prompts, 5)
	assert.Equal(t, "What emotions came up for you today?", prompts[0])

	prompts[0] = "changed"
	assert.Equal(t, "What emotions came up for you today?", JournalPrompts()[0])
}

func TestCrisisSteps(t *testing.T) {
	steps := CrisisSteps()
	require.Len(t, steps, 4)
	assert.Contains(t, steps[1].Options, "Overwhelmed")
}

func TestFindTechnique(t *testing.T) {
	tests := []struct {
		id         string
		wantName   string
		wantCycle  time.Duration
		wantCycles int
		wantErr    bool
	}{
		{id: "4-4-6", wantName: "Calming Breath", wantCycle: 14 * time.Second, wantCycles: 21},
		{id: "4-7-8", wantName: "Sleep Breath", wantCycle: 19 * time.Second, wantCycles: 15},
		{id: "6-2-6", wantName: "Balanced Breath", wantCycle: 14 * time.Second, wantCycles: 21},
		{id: "1-1-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := FindTechnique(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantCycle, got.CycleDuration())
			assert.Equal(t, tt.wantCycles, got.SessionCycles(5*time.Minute))
			assert.Len(t, got.Phases(), 3)
		})
	}
}

func TestSessionCycles_NonPositive(t *testing.T) {
	tech, err := FindTechnique(DefaultTechniqueID)
	require.NoError(t, err)
	assert.Equal(t, 0, tech.SessionCycles(0))
	assert.Equal(t, 0, Technique{}.SessionCycles(time.Minute))
	assert.Len(t, BreathingTechniques(), 3)
}
