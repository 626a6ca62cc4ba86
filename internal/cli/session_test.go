package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
	"github.com/traitel/calmnight/internal/wellness"
)

var sessionNow = time.Date(2025, 6, 15, 22, 15, 0, 0, time.UTC)

func newTestService() (*wellness.Service, *record.MemoryRepository) {
	repo := record.NewMemoryRepository(nil, nil)
	svc := wellness.NewService(repo, statistics.DefaultOptions(),
		wellness.WithClock(wellness.ClockFunc(func() time.Time { return sessionNow })))
	return svc, repo
}

type failingRecorder struct{}

func (failingRecorder) RecordCheckIn(ctx context.Context, emotion string, intensity int, notes string) (record.CheckIn, error) {
	return record.CheckIn{}, errors.New("disk full")
}

func TestCheckInSession(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name         string
		input        string
		once         bool
		wantCheckIns []record.CheckIn
		wantOutput   []string
	}{
		{
			name:  "records by menu number and by label",
			input: "1\n7\ndeadline\ncontent\n2\n\n\n",
			wantCheckIns: []record.CheckIn{
				{Emotion: "Anxious", Intensity: 7, Notes: "deadline", Timestamp: sessionNow},
				{Emotion: "Content", Intensity: 2, Timestamp: sessionNow},
			},
			wantOutput: []string{"Recorded Anxious at intensity 7", "Recorded Content at intensity 2"},
		},
		{
			name:  "once stops after the first check-in",
			input: "Sad\n4\n\nLonely\n3\n\n",
			once:  true,
			wantCheckIns: []record.CheckIn{
				{Emotion: "Sad", Intensity: 4, Timestamp: sessionNow},
			},
		},
		{
			name:         "invalid answers are reported and skipped",
			input:        "Hungry\nSad\n11\n\nquit\n",
			wantCheckIns: []record.CheckIn{},
			wantOutput:   []string{`Unknown emotion "Hungry"`, "Invalid check-in: invalid record: intensity must be 10 or less"},
		},
		{
			name:         "non-numeric intensity",
			input:        "Bored\nvery\n",
			wantCheckIns: []record.CheckIn{},
			wantOutput:   []string{`Intensity must be a number, got "very"`},
		},
		{
			name:         "end of input",
			input:        "",
			wantCheckIns: []record.CheckIn{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			var out bytes.Buffer
			base := NewInteractiveCLI(strings.NewReader(tt.input), &out)

			err := base.Run(context.Background(), NewCheckInSession(base, svc, tt.once))
			require.NoError(t, err)

			got, err := repo.LoadCheckIns(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantCheckIns, got)
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestCheckInSession_RecorderError(t *testing.T) {
	var out bytes.Buffer
	base := NewInteractiveCLI(strings.NewReader("Sad\n5\n\n"), &out)

	err := base.Run(context.Background(), NewCheckInSession(base, failingRecorder{}, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestJournalSession(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		input       string
		wantJournal *record.Journal
		wantOutput  []string
	}{
		{
			name:  "multi-line entry with gratitude",
			input: "Long day at work.\nThe walk helped.\n\nmy sister\n",
			wantJournal: &record.Journal{
				Entry:     "Long day at work.\nThe walk helped.",
				Gratitude: "my sister",
				Timestamp: sessionNow,
				Date:      "6/15/2025",
			},
			wantOutput: []string{"What small victory can you celebrate?", "Saved your entry for 6/15/2025."},
		},
		{
			name:  "entry without trailing newline",
			input: "Just one line",
			wantJournal: &record.Journal{
				Entry:     "Just one line",
				Timestamp: sessionNow,
				Date:      "6/15/2025",
			},
		},
		{
			name:       "empty entry is not saved",
			input:      "\n",
			wantOutput: []string{"Nothing written"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			var out bytes.Buffer
			base := NewInteractiveCLI(strings.NewReader(tt.input), &out)

			err := base.Run(context.Background(), NewJournalSession(base, svc, "What small victory can you celebrate?"))
			require.NoError(t, err)

			got, err := repo.LoadJournals(context.Background())
			require.NoError(t, err)
			if tt.wantJournal == nil {
				assert.Empty(t, got)
			} else {
				require.Len(t, got, 1)
				assert.Equal(t, *tt.wantJournal, got[0])
			}
			for _, want := range tt.wantOutput {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestParseEmotion(t *testing.T) {
	tests := []struct {
		answer string
		want   string
		ok     bool
	}{
		{answer: "1", want: "Anxious", ok: true},
		{answer: "7", want: "Overwhelmed", ok: true},
		{answer: "0"},
		{answer: "8"},
		{answer: "lonely", want: "Lonely", ok: true},
		{answer: "happy"},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, ok := parseEmotion(tt.answer)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
