package statistics

import (
	"github.com/traitel/calmnight/internal/record"
)

// DefaultEmotion is reported by MostCommonEmotion when there is nothing to count.
const DefaultEmotion = "Balanced"

// EmotionCount is how often one emotion was recorded and the color it is drawn with.
type EmotionCount struct {
	Emotion string
	Count   int
	Color   string
}

// Distribution lists emotion counts in the order each emotion was first recorded.
type Distribution []EmotionCount

// Get returns the count for emotion.
func (d Distribution) Get(emotion string) (EmotionCount, bool) {
	for _, c := range d {
		if c.Emotion == emotion {
			return c, true
		}
	}
	return EmotionCount{}, false
}

// Total is the number of check-ins counted.
func (d Distribution) Total() int {
	total := 0
	for _, c := range d {
		total += c.Count
	}
	return total
}

// Percentage returns the share of emotion among all counted check-ins, from 0 to 100.
func (d Distribution) Percentage(emotion string) float64 {
	total := d.Total()
	c, ok := d.Get(emotion)
	if !ok || total == 0 {
		return 0
	}
	return round(float64(c.Count) * 100 / float64(total))
}

// ComputeDistribution counts check-ins per emotion and colors each emotion with
// palette[i % len(palette)], where i is the order in which it was first seen.
// Colors are left empty when palette is empty.
func ComputeDistribution(records []record.CheckIn, palette []string) Distribution {
	result := make(Distribution, 0)
	index := make(map[string]int)
	for _, r := range records {
		if i, ok := index[r.Emotion]; ok {
			result[i].Count++
			continue
		}

		i := len(result)
		index[r.Emotion] = i
		var color string
		if len(palette) > 0 {
			color = palette[i%len(palette)]
		}
		result = append(result, EmotionCount{Emotion: r.Emotion, Count: 1, Color: color})
	}
	return result
}

// MostCommonEmotion returns the most frequent emotion. Ties go to the emotion seen first.
func MostCommonEmotion(records []record.CheckIn) string {
	best := EmotionCount{Emotion: DefaultEmotion}
	for _, c := range ComputeDistribution(records, nil) {
		if c.Count > best.Count {
			best = c
		}
	}
	return best.Emotion
}
