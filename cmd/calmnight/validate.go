package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/record"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check stored check-ins and journals for invalid or inconsistent records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			repo, closeRepo, err := openRepository(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			// Load errors are fatal here, unlike in the dashboard
			checkIns, err := repo.LoadCheckIns(cmd.Context())
			if err != nil {
				return fmt.Errorf("load check-ins: %w", err)
			}
			journals, err := repo.LoadJournals(cmd.Context())
			if err != nil {
				return fmt.Errorf("load journals: %w", err)
			}

			result := record.Check(checkIns, journals, time.Now())
			displayCheckResult(cmd.OutOrStdout(), result)
			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		},
	}
}

func displayCheckResult(w io.Writer, result *record.CheckResult) {
	_, _ = fmt.Fprintln(w, "=== Validation Results ===")
	if len(result.Errors) > 0 {
		_, _ = fmt.Fprintf(w, "✗ Errors (%d):\n", len(result.Errors))
		for _, e := range result.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", e.Error())
		}
	}
	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(w, "⚠ Warnings (%d):\n", len(result.Warnings))
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintf(w, "  - %s\n", warning.Error())
		}
	}
	if !result.HasErrors() && len(result.Warnings) == 0 {
		_, _ = fmt.Fprintln(w, "✓ All validations passed!")
	}
}
