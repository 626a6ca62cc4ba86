// Package wellness records check-ins and journals and summarizes them as of the current time.
package wellness

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/traitel/calmnight/internal/record"
	"github.com/traitel/calmnight/internal/statistics"
)

// Service connects a record.Repository to the statistics functions.
type Service struct {
	repo   record.Repository
	clock  Clock
	opts   statistics.Options
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the system clock.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithLogger replaces slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service.
func NewService(repo record.Repository, opts statistics.Options, options ...Option) *Service {
	s := &Service{
		repo:   repo,
		clock:  SystemClock{},
		opts:   opts,
		logger: slog.Default(),
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Now returns the instant the service considers current.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// RecordCheckIn validates and stores a check-in taken now.
func (s *Service) RecordCheckIn(ctx context.Context, emotion string, intensity int, notes string) (record.CheckIn, error) {
	c, err := record.NewCheckIn(emotion, intensity, notes, s.clock.Now())
	if err != nil {
		return record.CheckIn{}, err
	}
	if err := s.repo.AppendCheckIn(ctx, c); err != nil {
		return record.CheckIn{}, fmt.Errorf("repo.AppendCheckIn() > %w", err)
	}
	s.logger.Debug("recorded check-in", "emotion", c.Emotion, "intensity", c.Intensity)
	return c, nil
}

// RecordJournal validates and stores a journal entry written now.
func (s *Service) RecordJournal(ctx context.Context, entry, gratitude string) (record.Journal, error) {
	j, err := record.NewJournal(entry, gratitude, s.clock.Now())
	if err != nil {
		return record.Journal{}, err
	}
	if err := s.repo.AppendJournal(ctx, j); err != nil {
		return record.Journal{}, fmt.Errorf("repo.AppendJournal() > %w", err)
	}
	s.logger.Debug("recorded journal", "date", j.Date)
	return j, nil
}

// Journals returns stored journals, most recent first.
func (s *Service) Journals(ctx context.Context) ([]record.Journal, error) {
	journals, err := s.repo.LoadJournals(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.LoadJournals() > %w", err)
	}
	result := make([]record.Journal, len(journals))
	for i, j := range journals {
		result[len(journals)-1-i] = j
	}
	return result, nil
}

// Summary loads both sequences and summarizes them as of now.
// A sequence that fails to load is logged and treated as empty so the summary is always available.
func (s *Service) Summary(ctx context.Context) statistics.Summary {
	checkIns, journals := s.Load(ctx)
	return statistics.Summarize(checkIns, journals, s.clock.Now(), s.opts)
}

// Load returns both sequences, substituting an empty one for any that cannot be read.
func (s *Service) Load(ctx context.Context) ([]record.CheckIn, []record.Journal) {
	checkIns, err := s.repo.LoadCheckIns(ctx)
	if err != nil {
		s.logger.Warn("failed to load check-ins, continuing without them", "error", err)
		checkIns = []record.CheckIn{}
	}
	journals, err := s.repo.LoadJournals(ctx)
	if err != nil {
		s.logger.Warn("failed to load journals, continuing without them", "error", err)
		journals = []record.Journal{}
	}
	return checkIns, journals
}
