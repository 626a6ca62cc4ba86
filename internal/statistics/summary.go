package statistics

import (
	"time"

	"github.com/traitel/calmnight/internal/config"
	"github.com/traitel/calmnight/internal/record"
)

// Options sets the windows used by Summarize.
type Options struct {
	StreakLookbackDays int
	MoodWindowDays     int
	AverageWindow      int
	Palette            []string
}

// NewOptions maps the analytics section of the config onto Options.
func NewOptions(cfg config.AnalyticsConfig) Options {
	return Options{
		StreakLookbackDays: cfg.StreakLookbackDays,
		MoodWindowDays:     cfg.MoodWindowDays,
		AverageWindow:      cfg.AverageWindow,
		Palette:            cfg.Palette,
	}
}

// DefaultOptions returns the windows the dashboard uses when nothing is configured.
func DefaultOptions() Options {
	return NewOptions(config.DefaultAnalyticsConfig())
}

// Summary is everything the dashboard shows.
type Summary struct {
	AsOf              time.Time
	TotalCheckIns     int
	TotalJournals     int
	AverageMood       float64
	CurrentStreak     int
	LongestStreak     int
	MostCommonEmotion string
	DailyMood         []DailyMood
	Distribution      Distribution
	Insights          []Insight
}

// Summarize computes a Summary of both sequences as of asOf.
func Summarize(checkIns []record.CheckIn, journals []record.Journal, asOf time.Time, opts Options) Summary {
	return Summary{
		AsOf:              asOf,
		TotalCheckIns:     len(checkIns),
		TotalJournals:     len(journals),
		AverageMood:       OverallAverageMood(checkIns, opts.AverageWindow),
		CurrentStreak:     ComputeStreak(checkIns, asOf, opts.StreakLookbackDays),
		LongestStreak:     LongestStreak(checkIns, asOf.Location()),
		MostCommonEmotion: MostCommonEmotion(checkIns),
		DailyMood:         ComputeDailyMood(checkIns, asOf, opts.MoodWindowDays),
		Distribution:      ComputeDistribution(checkIns, opts.Palette),
		Insights:          GenerateInsights(checkIns, journals),
	}
}
