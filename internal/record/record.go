// Package record defines check-in and journal records and the repositories that persist them.
package record

import (
	"strings"
	"time"
)

// Emotions is the vocabulary a check-in can be labelled with.
var Emotions = []string{"Anxious", "Sad", "Stressed", "Bored", "Lonely", "Content", "Overwhelmed"}

// journalDateLayout mirrors the numeric en-US date shown next to a journal entry.
const journalDateLayout = "1/2/2006"

// CheckIn is a single emotion and intensity captured at one instant.
type CheckIn struct {
	Emotion   string    `yaml:"emotion" json:"emotion" validate:"required,emotion"`
	Intensity int       `yaml:"intensity" json:"intensity" validate:"min=1,max=10"`
	Notes     string    `yaml:"notes,omitempty" json:"notes,omitempty"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp" validate:"timestamp"`
}

// Journal is a free-text reflection with an optional gratitude note.
type Journal struct {
	Entry     string    `yaml:"entry" json:"entry" validate:"required"`
	Gratitude string    `yaml:"gratitude,omitempty" json:"gratitude,omitempty"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp" validate:"timestamp"`
	// Date is derived from Timestamp for display and is never read back as authoritative.
	Date string `yaml:"date,omitempty" json:"date,omitempty"`
}

// NewCheckIn builds a validated check-in recorded at the given instant.
func NewCheckIn(emotion string, intensity int, notes string, at time.Time) (CheckIn, error) {
	c := CheckIn{
		Emotion:   strings.TrimSpace(emotion),
		Intensity: intensity,
		Notes:     strings.TrimSpace(notes),
		Timestamp: at,
	}
	if err := Validate(c); err != nil {
		return CheckIn{}, err
	}
	return c, nil
}

// NewJournal builds a validated journal entry recorded at the given instant.
// Entries consisting only of whitespace are rejected.
func NewJournal(entry, gratitude string, at time.Time) (Journal, error) {
	j := Journal{
		Entry:     strings.TrimSpace(entry),
		Gratitude: strings.TrimSpace(gratitude),
		Timestamp: at,
		Date:      at.Format(journalDateLayout),
	}
	if err := Validate(j); err != nil {
		return Journal{}, err
	}
	return j, nil
}

// IsKnownEmotion reports whether label belongs to Emotions.
func IsKnownEmotion(label string) bool {
	for _, e := range Emotions {
		if e == label {
			return true
		}
	}
	return false
}
