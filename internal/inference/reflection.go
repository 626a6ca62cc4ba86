package inference

import (
	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
)

const dayLayout = "2006-01-02"

// NewReflectionRequest keeps the last maxCheckIns check-ins and maxJournals journals.
func NewReflectionRequest(checkIns []record.CheckIn, journals []record.Journal, summary statistics.Summary, maxCheckIns, maxJournals int) ReflectionRequest {
	req := ReflectionRequest{
		CheckIns:          make([]CheckIn, 0),
		Journals:          make([]JournalEntry, 0),
		AverageMood:       summary.AverageMood,
		MostCommonEmotion: summary.MostCommonEmotion,
		CurrentStreak:     summary.CurrentStreak,
	}
	for _, c := range tail(checkIns, maxCheckIns) {
		req.CheckIns = append(req.CheckIns, CheckIn{
			Emotion:   c.Emotion,
			Intensity: c.Intensity,
			Notes:     c.Notes,
			Day:       c.Timestamp.Format(dayLayout),
		})
	}
	for _, j := range tail(journals, maxJournals) {
		req.Journals = append(req.Journals, JournalEntry{
			Entry:     j.Entry,
			Gratitude: j.Gratitude,
			Day:       j.Timestamp.Format(dayLayout),
		})
	}
	return req
}

func tail[T any](items []T, n int) []T {
	if n < 0 || len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}
