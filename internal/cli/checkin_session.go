package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/traitel/calmnight/internal/record"
)

// CheckInRecorder stores a check-in taken now.
type CheckInRecorder interface {
	RecordCheckIn(ctx context.Context, emotion string, intensity int, notes string) (record.CheckIn, error)
}

// CheckInSession asks for an emotion, an intensity and optional notes, then records a check-in.
// An empty emotion, "quit" or "exit" ends the flow.
type CheckInSession struct {
	*InteractiveCLI
	recorder CheckInRecorder
	once     bool
}

// NewCheckInSession creates a CheckInSession. When once is set the flow ends after one recorded check-in.
func NewCheckInSession(base *InteractiveCLI, recorder CheckInRecorder, once bool) *CheckInSession {
	return &CheckInSession{
		InteractiveCLI: base,
		recorder:       recorder,
		once:           once,
	}
}

func (s *CheckInSession) Session(ctx context.Context) error {
	_, _ = fmt.Fprintln(s.stdoutWriter, "How are you feeling right now?")
	for i, e := range record.Emotions {
		_, _ = fmt.Fprintf(s.stdoutWriter, "  %d) %s\n", i+1, e)
	}

	answer, err := s.ask("Emotion: ")
	if err != nil {
		return err
	}
	if answer == "" || answer == "quit" || answer == "exit" {
		return errEnd
	}
	emotion, ok := parseEmotion(answer)
	if !ok {
		_, _ = fmt.Fprintf(s.stdoutWriter, "Unknown emotion %q\n", answer)
		return nil
	}

	answer, err = s.ask("Intensity (1-10): ")
	if err != nil {
		return err
	}
	intensity, err := strconv.Atoi(answer)
	if err != nil {
		_, _ = fmt.Fprintf(s.stdoutWriter, "Intensity must be a number, got %q\n", answer)
		return nil
	}

	notes, err := s.ask("Notes (optional): ")
	if err != nil && !errors.Is(err, errEnd) {
		return err
	}

	c, err := s.recorder.RecordCheckIn(ctx, emotion, intensity, notes)
	if err != nil {
		var validationErr *record.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(s.stdoutWriter, "Invalid check-in: %v\n", validationErr)
			return nil
		}
		return fmt.Errorf("recorder.RecordCheckIn() > %w", err)
	}

	_, _ = s.italic.Fprintf(s.stdoutWriter, "Recorded %s at intensity %d. Thank you for checking in.\n", c.Emotion, c.Intensity)
	if s.once {
		return errEnd
	}
	return nil
}

// parseEmotion accepts either the 1-based menu number or the label in any case.
func parseEmotion(answer string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(record.Emotions) {
			return record.Emotions[n-1], true
		}
		return "", false
	}
	for _, e := range record.Emotions {
		if strings.EqualFold(e, answer) {
			return e, true
		}
	}
	return "", false
}
