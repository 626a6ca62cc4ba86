package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/traitel/calmnight/internal/record"
)

// JournalRecorder stores a journal entry written now.
type JournalRecorder interface {
	RecordJournal(ctx context.Context, entry, gratitude string) (record.Journal, error)
}

// JournalSession shows a reflection prompt, reads a multi-line entry terminated by an empty line
// and an optional gratitude note, then records the journal and ends.
type JournalSession struct {
	*InteractiveCLI
	recorder JournalRecorder
	prompt   string
}

// NewJournalSession creates a JournalSession. prompt may be empty.
func NewJournalSession(base *InteractiveCLI, recorder JournalRecorder, prompt string) *JournalSession {
	return &JournalSession{
		InteractiveCLI: base,
		recorder:       recorder,
		prompt:         prompt,
	}
}

func (s *JournalSession) Session(ctx context.Context) error {
	if s.prompt != "" {
		_, _ = s.italic.Fprintf(s.stdoutWriter, "%s\n", s.prompt)
	}
	_, _ = fmt.Fprintln(s.stdoutWriter, "Write your entry. Finish with an empty line.")

	var lines []string
	for {
		line, err := s.ask("> ")
		if errors.Is(err, errEnd) {
			break
		}
		if err != nil {
			return err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(s.stdoutWriter, "Nothing written, the entry was not saved.")
		return errEnd
	}

	gratitude, err := s.ask("Something you are grateful for (optional): ")
	if err != nil && !errors.Is(err, errEnd) {
		return err
	}

	j, err := s.recorder.RecordJournal(ctx, strings.Join(lines, "\n"), gratitude)
	if err != nil {
		return fmt.Errorf("recorder.RecordJournal() > %w", err)
	}
	_, _ = s.italic.Fprintf(s.stdoutWriter, "Saved your entry for %s.\n", j.Date)
	return errEnd
}
