package server

import (
	"time"

	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
)

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	AsOf              time.Time            `json:"as_of"`
	TotalCheckIns     int                  `json:"total_check_ins"`
	TotalJournals     int                  `json:"total_journals"`
	AverageMood       float64              `json:"average_mood"`
	CurrentStreak     int                  `json:"current_streak"`
	LongestStreak     int                  `json:"longest_streak"`
	MostCommonEmotion string               `json:"most_common_emotion"`
	DailyMood         []DailyMood          `json:"daily_mood"`
	Distribution      []EmotionCount       `json:"distribution"`
	Insights          []statistics.Insight `json:"insights"`
}

type DailyMood struct {
	Day     string   `json:"day"`
	Label   string   `json:"label"`
	Score   *float64 `json:"score"`
	Entries int      `json:"entries"`
}

type EmotionCount struct {
	Emotion    string  `json:"emotion"`
	Count      int     `json:"count"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
}

type RecordCheckInRequest struct {
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
	Notes     string `json:"notes,omitempty"`
}

type RecordCheckInResponse struct {
	CheckIn record.CheckIn `json:"check_in"`
}

type RecordJournalRequest struct {
	Entry     string `json:"entry"`
	Gratitude string `json:"gratitude,omitempty"`
}

type RecordJournalResponse struct {
	Journal record.Journal `json:"journal"`
}

type ListJournalsRequest struct {
	// Limit caps the number of journals returned. Zero returns all of them.
	Limit int `json:"limit,omitempty"`
}

type ListJournalsResponse struct {
	Journals []record.Journal `json:"journals"`
}

func newGetSummaryResponse(s statistics.Summary) *GetSummaryResponse {
	daily := make([]DailyMood, 0, len(s.DailyMood))
	for _, d := range s.DailyMood {
		daily = append(daily, DailyMood{
			Day:     d.Day.Format(time.DateOnly),
			Label:   d.Label,
			Score:   d.Score,
			Entries: d.Entries,
		})
	}

	distribution := make([]EmotionCount, 0, len(s.Distribution))
	for _, c := range s.Distribution {
		distribution = append(distribution, EmotionCount{
			Emotion:    c.Emotion,
			Count:      c.Count,
			Color:      c.Color,
			Percentage: s.Distribution.Percentage(c.Emotion),
		})
	}

	return &GetSummaryResponse{
		AsOf:              s.AsOf,
		TotalCheckIns:     s.TotalCheckIns,
		TotalJournals:     s.TotalJournals,
		AverageMood:       s.AverageMood,
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		MostCommonEmotion: s.MostCommonEmotion,
		DailyMood:         daily,
		Distribution:      distribution,
		Insights:          s.Insights,
	}
}
