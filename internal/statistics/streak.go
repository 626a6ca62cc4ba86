// Package statistics derives streaks, mood scores, emotion distributions and insights from check-ins.
// Every function is pure: callers pass the reference instant and nothing reads the system clock.
package statistics

import (
	"sort"
	"time"

	"github.com/traitel/calmnight/internal/record"
)

// calendarDay identifies a day in a particular location, independent of the time of day.
type calendarDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) calendarDay {
	y, m, d := t.In(loc).Date()
	return calendarDay{year: y, month: m, day: d}
}

// daysBefore returns the calendar day offset days before t, in t's location.
func daysBefore(t time.Time, offset int) calendarDay {
	y, m, d := t.Date()
	return dayOf(time.Date(y, m, d-offset, 12, 0, 0, 0, t.Location()), t.Location())
}

// ordinal counts days since the epoch so consecutive calendar days differ by exactly one,
// regardless of DST transitions in the original location.
func (c calendarDay) ordinal() int64 {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func daysWithRecords(records []record.CheckIn, loc *time.Location) map[calendarDay]struct{} {
	days := make(map[calendarDay]struct{}, len(records))
	for _, r := range records {
		days[dayOf(r.Timestamp, loc)] = struct{}{}
	}
	return days
}

// ComputeStreak counts consecutive calendar days holding at least one check-in,
// walking backward from the day of asOf for at most maxLookbackDays days.
// An empty current day does not end the streak, so a streak survives until the user checks in today.
func ComputeStreak(records []record.CheckIn, asOf time.Time, maxLookbackDays int) int {
	if len(records) == 0 {
		return 0
	}

	days := daysWithRecords(records, asOf.Location())
	streak := 0
	for offset := 0; offset < maxLookbackDays; offset++ {
		if _, ok := days[daysBefore(asOf, offset)]; ok {
			streak++
			continue
		}
		if offset == 0 {
			continue
		}
		break
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days, evaluated in loc, that hold a check-in.
func LongestStreak(records []record.CheckIn, loc *time.Location) int {
	if len(records) == 0 {
		return 0
	}

	days := daysWithRecords(records, loc)
	ordinals := make([]int64, 0, len(days))
	for d := range days {
		ordinals = append(ordinals, d.ordinal())
	}
	sort.Slice(ordinals, func(i, j int) bool { return ordinals[i] < ordinals[j] })

	longest, current := 1, 1
	for i := 1; i < len(ordinals); i++ {
		if ordinals[i] == ordinals[i-1]+1 {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}
