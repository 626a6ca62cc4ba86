package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	Reflect(ctx context.Context, params ReflectionRequest) (ReflectionResponse, error)
}

// CheckIn is a check-in as sent to the model
type CheckIn struct {
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
	Day       string `json:"day"`
}

// JournalEntry is a journal entry as sent to the model
type JournalEntry struct {
	Entry     string `json:"entry"`
	Gratitude string `json:"gratitude,omitempty"`
	Day       string `json:"day"`
}

// ReflectionRequest holds the recent history the reflection is written about
type ReflectionRequest struct {
	CheckIns          []CheckIn      `json:"check_ins"`
	Journals          []JournalEntry `json:"journals"`
	AverageMood       float64        `json:"average_mood"`
	MostCommonEmotion string         `json:"most_common_emotion"`
	CurrentStreak     int            `json:"current_streak"`
}

// IsEmpty reports whether there is nothing to reflect on
func (r ReflectionRequest) IsEmpty() bool {
	return len(r.CheckIns) == 0 && len(r.Journals) == 0
}

// ReflectionResponse is a short, supportive reflection on the user's recent history
type ReflectionResponse struct {
	Reflection  string   `json:"reflection"`
	Suggestions []string `json:"suggestions"`
}

const (
	DefaultMaxRetryAttempts = 3
)
