package guidance

import (
	"fmt"
	"time"
)

// DefaultTechniqueID is offered first.
const DefaultTechniqueID = "4-4-6"

// Phase is one step of a breathing cycle.
type Phase struct {
	Name        string
	Duration    time.Duration
	Instruction string
}

// Technique is a paced breathing pattern.
type Technique struct {
	ID     string
	Name   string
	Inhale time.Duration
	Hold   time.Duration
	Exhale time.Duration
}

var techniques = []Technique{
	{ID: "4-4-6", Name: "Calming Breath", Inhale: 4 * time.Second, Hold: 4 * time.Second, Exhale: 6 * time.Second},
	{ID: "4-7-8", Name: "Sleep Breath", Inhale: 4 * time.Second, Hold: 7 * time.Second, Exhale: 8 * time.Second},
	{ID: "6-2-6", Name: "Balanced Breath", Inhale: 6 * time.Second, Hold: 2 * time.Second, Exhale: 6 * time.Second},
}

// BreathingTechniques returns every technique in display order.
func BreathingTechniques() []Technique {
	return append([]Technique(nil), techniques...)
}

// FindTechnique looks a technique up by its ID, e.g. "4-7-8".
func FindTechnique(id string) (Technique, error) {
	for _, t := range techniques {
		if t.ID == id {
			return t, nil
		}
	}
	return Technique{}, fmt.Errorf("unknown breathing technique %q", id)
}

// CycleDuration is the length of one inhale, hold and exhale.
func (t Technique) CycleDuration() time.Duration {
	return t.Inhale + t.Hold + t.Exhale
}

// SessionCycles returns how many complete cycles fit in d.
func (t Technique) SessionCycles(d time.Duration) int {
	cycle := t.CycleDuration()
	if cycle <= 0 || d <= 0 {
		return 0
	}
	return int(d / cycle)
}

// Phases returns the steps of one cycle in order.
func (t Technique) Phases() []Phase {
	return []Phase{
		{Name: "inhale", Duration: t.Inhale, Instruction: "Breathe in slowly..."},
		{Name: "hold", Duration: t.Hold, Instruction: "Hold gently..."},
		{Name: "exhale", Duration: t.Exhale, Instruction: "Release and let go..."},
	}
}
