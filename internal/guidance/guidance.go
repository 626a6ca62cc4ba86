// Package guidance holds the static companion content: greetings, affirmations, prompts and breathing techniques.
package guidance

import (
	"time"
)

var affirmations = []string{
	"You are exactly where you need to be right now.",
	"Every craving is temporary. You are permanent.",
	"You're not broken - you're healing.",
	"Your feelings are valid, and you can handle them.",
	"This moment is just a moment. It will pass.",
	"You've overcome difficult moments before. You can do it again.",
}

var journalPrompts = []string{
	"What emotions came up for you today?",
	"What triggered any urges to eat emotionally?",
	"What small victory can you celebrate?",
	"What do you need more of in your life?",
	"How can you be gentler with yourself tomorrow?",
}

// Greeting returns a salutation for the hour of t.
func Greeting(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "Good morning"
	case hour < 17:
		return "Good afternoon"
	case hour < 22:
		return "Good evening"
	default:
		return "You're up late"
	}
}

// IsLateNight reports whether t falls between 20:00 and 06:59.
func IsLateNight(t time.Time) bool {
	hour := t.Hour()
	return hour >= 20 || hour <= 6
}

// DailyAffirmation picks the affirmation for t's weekday.
// Sunday and Saturday share the first affirmation.
func DailyAffirmation(t time.Time) string {
	return affirmations[int(t.Weekday())%len(affirmations)]
}

// Affirmations returns every affirmation.
func Affirmations() []string {
	return append([]string(nil), affirmations...)
}

// JournalPrompts returns the reflection prompts offered above a new journal entry.
func JournalPrompts() []string {
	return append([]string(nil), journalPrompts...)
}

// CrisisStep is one screen of the guided urge-support flow.
type CrisisStep struct {
	Title   string
	Content string
	Options []string
}

// CrisisSteps returns the guided urge-support flow in order.
func CrisisSteps() []CrisisStep {
	return []CrisisStep{
		{Title: "Take a moment", Content: "You reached out, and that takes courage. Let's pause together."},
		{
			Title:   "What are you really feeling?",
			Content: "Beneath the urge to eat, what emotion is calling for attention?",
			Options: []string{"Anxious", "Lonely", "Stressed", "Bored", "Sad", "Overwhelmed"},
		},
		{Title: "Let's breathe together", Content: "Follow the rhythm. Breathe in for 4, hold for 4, out for 6."},
		{Title: "You did it", Content: "Notice how you feel now. This moment of awareness is healing."},
	}
}
