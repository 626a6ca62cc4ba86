package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/traitel/calmnight/internal/inference"
	mock_inference "github.com/traitel/calmnight/internal/mocks/inference"
	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
	"github.com/traitel/calmnight/internal/testutil"
	"github.com/traitel/calmnight/internal/wellness"
)

func TestNewReflectCommand(t *testing.T) {
	cmd := newReflectCommand()

	assert.Equal(t, "reflect", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	checkInsFlag := cmd.Flags().Lookup("check-ins")
	require.NotNil(t, checkInsFlag)
	assert.Equal(t, "20", checkInsFlag.DefValue)

	journalsFlag := cmd.Flags().Lookup("journals")
	require.NotNil(t, journalsFlag)
	assert.Equal(t, "5", journalsFlag.DefValue)
}

func TestNewReflectCommand_RunE_missingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

	_, err := execute(t, newReflectCommand(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestRunReflect(t *testing.T) {
	now := time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC)
	checkIns := []record.CheckIn{
		{Emotion: "Anxious", Intensity: 3, Timestamp: now.Add(-2 * time.Hour)},
		{Emotion: "Stressed", Intensity: 9, Timestamp: now.Add(-time.Hour)},
		{Emotion: "Content", Intensity: 2, Timestamp: now},
	}
	journals := []record.Journal{{Entry: "Long day", Timestamp: now, Date: "6/15/2025"}}

	tests := []struct {
		name     string
		checkIns []record.CheckIn
		journals []record.Journal
		setup    func(client *mock_inference.MockClient)
		contains []string
		wantErr  bool
	}{
		{
			name:     "prints the reflection and suggestions",
			checkIns: checkIns,
			journals: journals,
			setup: func(client *mock_inference.MockClient) {
				client.EXPECT().Reflect(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req inference.ReflectionRequest) (inference.ReflectionResponse, error) {
						// Only the two most recent check-ins are sent
						require.Len(t, req.CheckIns, 2)
						assert.Equal(t, "Stressed", req.CheckIns[0].Emotion)
						assert.Equal(t, "2025-06-15", req.CheckIns[1].Day)
						require.Len(t, req.Journals, 1)
						assert.Equal(t, 1, req.CurrentStreak)
						return inference.ReflectionResponse{
							Reflection:  "You checked in through a hard evening.",
							Suggestions: []string{"Try the 4-7-8 breath", "Write one line tomorrow"},
						}, nil
					})
			},
			contains: []string{
				"You checked in through a hard evening.",
				"Things you could try:",
				"  - Try the 4-7-8 breath",
			},
		},
		{
			name:     "nothing recorded skips the request",
			setup:    func(client *mock_inference.MockClient) {},
			contains: []string{"Nothing to reflect on yet."},
		},
		{
			name:     "client error is returned",
			checkIns: checkIns,
			setup: func(client *mock_inference.MockClient) {
				client.EXPECT().Reflect(gomock.Any(), gomock.Any()).
					Return(inference.ReflectionResponse{}, errors.New("rate limited"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			disableColor(t)
			ctrl := gomock.NewController(t)
			client := mock_inference.NewMockClient(ctrl)
			tt.setup(client)

			service := wellness.NewService(
				record.NewMemoryRepository(tt.checkIns, tt.journals),
				statistics.DefaultOptions(),
				wellness.WithClock(wellness.ClockFunc(func() time.Time { return now })),
			)

			var out bytes.Buffer
			err := runReflect(context.Background(), &out, service, client, 2, 5)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
