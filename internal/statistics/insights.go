package statistics

import (
	"fmt"
	"strings"

	"github.com/traitel/calmnight/internal/record"
)

const (
	patternThreshold = 5
	patternWindow    = 7
	journalThreshold = 2
)

// Insight is a short message derived from the user's history.
type Insight struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// GenerateInsights applies each rule in order and returns every insight that matches.
// The growth insight is always last.
func GenerateInsights(checkIns []record.CheckIn, journals []record.Journal) []Insight {
	insights := make([]Insight, 0, 3)

	if len(checkIns) > patternThreshold {
		recent := checkIns[len(checkIns)-min(patternWindow, len(checkIns)):]
		insights = append(insights, Insight{
			Title: "Pattern Recognition",
			Body: fmt.Sprintf("You've been feeling %s most often this week. This awareness is the first step to healing.",
				strings.ToLower(MostCommonEmotion(recent))),
		})
	}

	if len(journals) > journalThreshold {
		insights = append(insights, Insight{
			Title: "Journal Reflection",
			Body:  "Your journaling shows incredible self-awareness. Keep nurturing this mindful relationship with your emotions.",
		})
	}

	insights = append(insights, Insight{
		Title: "Your Growth",
		Body:  "Every check-in is progress. You're building emotional intelligence one moment at a time.",
	})
	return insights
}
