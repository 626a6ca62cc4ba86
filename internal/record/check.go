package record

import (
	"errors"
	"fmt"
	"time"
)

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is one problem found in a stored sequence.
type Issue struct {
	File     string
	Index    int
	Message  string
	Severity string
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s[%d]: %s", i.File, i.Index, i.Message)
}

// CheckResult lists the issues found by Check.
type CheckResult struct {
	Errors   []Issue
	Warnings []Issue
}

func (r *CheckResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *CheckResult) add(issue Issue) {
	if issue.Severity == SeverityError {
		r.Errors = append(r.Errors, issue)
		return
	}
	r.Warnings = append(r.Warnings, issue)
}

// Check re-validates stored records. Invalid records are errors. Timestamps that go backwards,
// timestamps after asOf and journal dates that disagree with their timestamp are warnings.
func Check(checkIns []CheckIn, journals []Journal, asOf time.Time) *CheckResult {
	result := &CheckResult{}

	var previous time.Time
	for i, c := range checkIns {
		for _, issue := range validationIssues(CheckInsFileName, i, Validate(c)) {
			result.add(issue)
		}
		checkTimestamp(result, CheckInsFileName, i, c.Timestamp, previous, asOf)
		previous = c.Timestamp
	}

	previous = time.Time{}
	for i, j := range journals {
		for _, issue := range validationIssues(JournalsFileName, i, Validate(j)) {
			result.add(issue)
		}
		checkTimestamp(result, JournalsFileName, i, j.Timestamp, previous, asOf)
		previous = j.Timestamp

		if j.Date != "" && !j.Timestamp.IsZero() {
			if want := j.Timestamp.Format(journalDateLayout); j.Date != want {
				result.add(Issue{
					File:     JournalsFileName,
					Index:    i,
					Message:  fmt.Sprintf("date %q does not match the timestamp, expected %q", j.Date, want),
					Severity: SeverityWarning,
				})
			}
		}
	}
	return result
}

func validationIssues(file string, index int, err error) []Issue {
	if err == nil {
		return nil
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return []Issue{{File: file, Index: index, Message: err.Error(), Severity: SeverityError}}
	}
	issues := make([]Issue, 0, len(validationErr.Fields))
	for _, f := range validationErr.Fields {
		issues = append(issues, Issue{File: file, Index: index, Message: f.Message, Severity: SeverityError})
	}
	return issues
}

func checkTimestamp(result *CheckResult, file string, index int, ts, previous, asOf time.Time) {
	if ts.IsZero() {
		return
	}
	if !previous.IsZero() && ts.Before(previous) {
		result.add(Issue{
			File:     file,
			Index:    index,
			Message:  fmt.Sprintf("timestamp %s is earlier than the previous record", ts.Format(time.RFC3339)),
			Severity: SeverityWarning,
		})
	}
	if ts.After(asOf) {
		result.add(Issue{
			File:     file,
			Index:    index,
			Message:  fmt.Sprintf("timestamp %s is in the future", ts.Format(time.RFC3339)),
			Severity: SeverityWarning,
		})
	}
}
