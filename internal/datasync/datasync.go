// Package datasync copies check-ins and journals between repositories, e.g. from YAML files into MySQL.
package datasync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/traitel/calmnight/internal/record"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	CheckInsNew     int
	CheckInsSkipped int
	CheckInsInvalid int
	JournalsNew     int
	JournalsSkipped int
	JournalsInvalid int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool
}

// Importer appends records from a source repository that the target doesn't hold yet.
type Importer struct {
	writer io.Writer
}

// NewImporter creates a new Importer that reports each record to writer.
func NewImporter(writer io.Writer) *Importer {
	return &Importer{writer: writer}
}

// Import copies missing check-ins and journals from source into target, preserving source order.
// A check-in is identified by its timestamp and emotion, a journal by its timestamp and entry.
// Timestamps are compared at millisecond precision, the precision MySQL stores.
// Records that fail validation are reported as skipped and counted as invalid.
func (imp *Importer) Import(ctx context.Context, source record.Repository, target record.BatchRepository, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	if err := imp.importCheckIns(ctx, source, target, opts, &result); err != nil {
		return nil, err
	}
	if err := imp.importJournals(ctx, source, target, opts, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (imp *Importer) importCheckIns(ctx context.Context, source record.Repository, target record.BatchRepository, opts ImportOptions, result *ImportResult) error {
	incoming, err := source.LoadCheckIns(ctx)
	if err != nil {
		return fmt.Errorf("source.LoadCheckIns() > %w", err)
	}
	existing, err := target.LoadCheckIns(ctx)
	if err != nil {
		return fmt.Errorf("target.LoadCheckIns() > %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		seen[checkInKey(c)] = struct{}{}
	}

	var toCreate []record.CheckIn
	for i, c := range incoming {
		invalid, err := validationFailure(c)
		if err != nil {
			return fmt.Errorf("check-in %d: %w", i, err)
		}
		if invalid != nil {
			fmt.Fprintf(imp.writer, "  [SKIP]  check-in %d %s (%v)\n", i, formatTimestamp(c.Timestamp), invalid)
			result.CheckInsInvalid++
			continue
		}

		key := checkInKey(c)
		if _, ok := seen[key]; ok {
			fmt.Fprintf(imp.writer, "  [SKIP]  check-in %s %s\n", formatTimestamp(c.Timestamp), c.Emotion)
			result.CheckInsSkipped++
			continue
		}
		seen[key] = struct{}{}
		toCreate = append(toCreate, c)
		fmt.Fprintf(imp.writer, "  [NEW]  check-in %s %s\n", formatTimestamp(c.Timestamp), c.Emotion)
		result.CheckInsNew++
	}

	if opts.DryRun || len(toCreate) == 0 {
		return nil
	}
	if err := target.BatchAppendCheckIns(ctx, toCreate); err != nil {
		return fmt.Errorf("BatchAppendCheckIns() > %w", err)
	}
	return nil
}

func (imp *Importer) importJournals(ctx context.Context, source record.Repository, target record.BatchRepository, opts ImportOptions, result *ImportResult) error {
	incoming, err := source.LoadJournals(ctx)
	if err != nil {
		return fmt.Errorf("source.LoadJournals() > %w", err)
	}
	existing, err := target.LoadJournals(ctx)
	if err != nil {
		return fmt.Errorf("target.LoadJournals() > %w", err)
	}

	seen := make(map[string]struct{}, len(existing))
	for _, j := range existing {
		seen[journalKey(j)] = struct{}{}
	}

	var toCreate []record.Journal
	for i, j := range incoming {
		invalid, err := validationFailure(j)
		if err != nil {
			return fmt.Errorf("journal %d: %w", i, err)
		}
		if invalid != nil {
			fmt.Fprintf(imp.writer, "  [SKIP]  journal %d %s (%v)\n", i, formatTimestamp(j.Timestamp), invalid)
			result.JournalsInvalid++
			continue
		}

		key := journalKey(j)
		if _, ok := seen[key]; ok {
			fmt.Fprintf(imp.writer, "  [SKIP]  journal %s\n", formatTimestamp(j.Timestamp))
			result.JournalsSkipped++
			continue
		}
		seen[key] = struct{}{}
		toCreate = append(toCreate, j)
		fmt.Fprintf(imp.writer, "  [NEW]  journal %s\n", formatTimestamp(j.Timestamp))
		result.JournalsNew++
	}

	if opts.DryRun || len(toCreate) == 0 {
		return nil
	}
	if err := target.BatchAppendJournals(ctx, toCreate); err != nil {
		return fmt.Errorf("BatchAppendJournals() > %w", err)
	}
	return nil
}

// validationFailure separates a record's validation failure from an error of the validator itself.
func validationFailure(r any) (*record.ValidationError, error) {
	err := record.Validate(r)
	if err == nil {
		return nil, nil
	}
	var validationErr *record.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, nil
	}
	return nil, err
}

func checkInKey(c record.CheckIn) string {
	return formatTimestamp(c.Timestamp) + "|" + c.Emotion
}

func journalKey(j record.Journal) string {
	return formatTimestamp(j.Timestamp) + "|" + j.Entry
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Millisecond).Format("2006-01-02T15:04:05.000Z")
}
