package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/traitel/calmnight/internal/guidance"
	"github.com/traitel/calmnight/internal/statistics"
)

const moodBarWidth = 10

// RenderDashboard prints the summary the way the home screen shows it
func RenderDashboard(w io.Writer, s statistics.Summary) error {
	bold := color.New(color.Bold)
	heading := color.New(color.FgMagenta, color.Bold)
	italic := color.New(color.Italic)

	var b strings.Builder
	_, _ = bold.Fprintf(&b, "%s\n", guidance.Greeting(s.AsOf))
	_, _ = italic.Fprintf(&b, "%q\n\n", guidance.DailyAffirmation(s.AsOf))

	_, _ = heading.Fprintf(&b, "Wellness Summary (%s)\n", s.AsOf.Format("2006-01-02"))
	fmt.Fprintf(&b, "  %-16s %d\n", "Check-ins:", s.TotalCheckIns)
	fmt.Fprintf(&b, "  %-16s %d\n", "Journals:", s.TotalJournals)
	fmt.Fprintf(&b, "  %-16s %.1f / 10\n", "Average mood:", s.AverageMood)
	fmt.Fprintf(&b, "  %-16s %s\n", "Current streak:", pluralDays(s.CurrentStreak))
	fmt.Fprintf(&b, "  %-16s %s\n", "Longest streak:", pluralDays(s.LongestStreak))
	fmt.Fprintf(&b, "  %-16s %s\n", "Most common:", s.MostCommonEmotion)
	b.WriteString("\n")

	_, _ = heading.Fprintf(&b, "Mood (last %d days)\n", len(s.DailyMood))
	for _, d := range s.DailyMood {
		if !d.HasData() {
			fmt.Fprintf(&b, "  %s %s  %4s  no data\n", d.Label, d.Day.Format("01/02"), "-")
			continue
		}
		fmt.Fprintf(&b, "  %s %s  %4.1f  %s\n", d.Label, d.Day.Format("01/02"), *d.Score, moodBar(*d.Score))
	}
	b.WriteString("\n")

	_, _ = heading.Fprintln(&b, "Emotions")
	if len(s.Distribution) == 0 {
		b.WriteString("  No check-ins yet.\n")
	}
	for _, c := range s.Distribution {
		fmt.Fprintf(&b, "  %-12s %3d  %5.1f%%  %s\n", c.Emotion, c.Count, s.Distribution.Percentage(c.Emotion), c.Color)
	}
	b.WriteString("\n")

	_, _ = heading.Fprintln(&b, "Insights")
	for _, i := range s.Insights {
		_, _ = bold.Fprintf(&b, "  * %s\n", i.Title)
		fmt.Fprintf(&b, "    %s\n", i.Body)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write dashboard: %w", err)
	}
	return nil
}

func moodBar(score float64) string {
	filled := int(score*moodBarWidth/10 + 0.5)
	if filled > moodBarWidth {
		filled = moodBarWidth
	}
	return strings.Repeat("#", filled) + strings.Repeat(".", moodBarWidth-filled)
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
