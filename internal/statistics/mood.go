package statistics

import (
	"math"
	"time"

	"github.com/traitel/calmnight/internal/record"
)

// neutralMood is reported when there are no check-ins to average.
const neutralMood = 5.0

// DailyMood is the wellness score of one calendar day.
type DailyMood struct {
	Day time.Time
	// Label is the short weekday name, e.g. "Mon"
	Label string
	// Score is nil when the day has no check-ins. Scores otherwise fall in [1,10].
	Score   *float64
	Entries int
}

// HasData reports whether the day holds at least one check-in.
func (d DailyMood) HasData() bool {
	return d.Score != nil
}

// wellnessScore inverts intensity so that a calm check-in scores high.
func wellnessScore(c record.CheckIn) float64 {
	return float64(11 - c.Intensity)
}

// round rounds to one decimal place, half away from zero.
func round(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeDailyMood returns exactly windowDays entries, oldest first, one per calendar day ending at asOf's day.
// Days are evaluated in asOf's location.
func ComputeDailyMood(records []record.CheckIn, asOf time.Time, windowDays int) []DailyMood {
	if windowDays < 0 {
		windowDays = 0
	}
	loc := asOf.Location()

	type bucket struct {
		sum     float64
		entries int
	}
	buckets := make(map[calendarDay]*bucket)
	for _, r := range records {
		d := dayOf(r.Timestamp, loc)
		b, ok := buckets[d]
		if !ok {
			b = &bucket{}
			buckets[d] = b
		}
		b.sum += wellnessScore(r)
		b.entries++
	}

	result := make([]DailyMood, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		d := daysBefore(asOf, offset)
		day := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
		mood := DailyMood{
			Day:   day,
			Label: day.Format("Mon"),
		}
		if b, ok := buckets[d]; ok {
			score := round(b.sum / float64(b.entries))
			mood.Score = &score
			mood.Entries = b.entries
		}
		result = append(result, mood)
	}
	return result
}

// OverallAverageMood averages the wellness score of the last windowDays check-ins by position.
// Every check-in is used when fewer exist, and 5.0 is returned when there are none.
func OverallAverageMood(records []record.CheckIn, windowDays int) float64 {
	recent := records
	if windowDays >= 0 && len(recent) > windowDays {
		recent = recent[len(recent)-windowDays:]
	}
	if len(recent) == 0 {
		return neutralMood
	}

	var sum float64
	for _, r := range recent {
		sum += wellnessScore(r)
	}
	return round(sum / float64(len(recent)))
}
