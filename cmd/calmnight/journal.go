package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/cli"
	"github.com/traitel/calmnight/internal/guidance"
)

func newJournalCommand() *cobra.Command {
	var noPrompt bool

	command := &cobra.Command{
		Use:   "journal",
		Short: "Write a journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, closeRepo, err := newService()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			prompt := ""
			if !noPrompt {
				prompts := guidance.JournalPrompts()
				prompt = prompts[service.Now().YearDay()%len(prompts)]
			}

			base := cli.NewInteractiveCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			return base.Run(cmd.Context(), cli.NewJournalSession(base, service, prompt))
		},
	}
	command.Flags().BoolVar(&noPrompt, "no-prompt", false, "don't show a reflection prompt")

	command.AddCommand(newJournalListCommand())
	return command
}

func newJournalListCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "list",
		Short: "Show recent journal entries, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, closeRepo, err := newService()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			journals, err := service.Journals(cmd.Context())
			if err != nil {
				return fmt.Errorf("load journals: %w", err)
			}
			if len(journals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No journal entries yet.")
				return nil
			}
			if limit > 0 && len(journals) > limit {
				journals = journals[:limit]
			}

			w := cmd.OutOrStdout()
			for _, j := range journals {
				_, _ = fmt.Fprintf(w, "== %s ==\n%s\n", j.Date, strings.TrimSpace(j.Entry))
				if j.Gratitude != "" {
					_, _ = fmt.Fprintf(w, "Grateful for: %s\n", j.Gratitude)
				}
				_, _ = fmt.Fprintln(w)
			}
			return nil
		},
	}
	command.Flags().IntVar(&limit, "limit", 10, "number of entries to show, 0 for all")
	return command
}
