package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/inference"
	"github.com/traitel/calmnight/internal/inference/openai"
	"github.com/traitel/calmnight/internal/wellness"
)

func newReflectCommand() *cobra.Command {
	var maxCheckIns int
	var maxJournals int

	command := &cobra.Command{
		Use:   "reflect",
		Short: "Ask OpenAI for a short reflection on your recent check-ins and journals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, service, closeRepo, err := newService()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			if cfg.OpenAI.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable is required")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Using OpenAI provider (model: %s)\n", cfg.OpenAI.Model)
			openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, inference.DefaultMaxRetryAttempts)
			defer func() {
				_ = openaiClient.Close()
			}()

			return runReflect(cmd.Context(), cmd.OutOrStdout(), service, openaiClient, maxCheckIns, maxJournals)
		},
	}

	command.Flags().IntVar(&maxCheckIns, "check-ins", 20, "number of most recent check-ins to send")
	command.Flags().IntVar(&maxJournals, "journals", 5, "number of most recent journals to send")
	return command
}

func runReflect(ctx context.Context, w io.Writer, service *wellness.Service, client inference.Client, maxCheckIns, maxJournals int) error {
	checkIns, journals := service.Load(ctx)
	summary := service.Summary(ctx)
	req := inference.NewReflectionRequest(checkIns, journals, summary, maxCheckIns, maxJournals)
	if req.IsEmpty() {
		_, _ = fmt.Fprintln(w, "Nothing to reflect on yet. Try a check-in or a journal entry first.")
		return nil
	}

	res, err := client.Reflect(ctx, req)
	if err != nil {
		return fmt.Errorf("client.Reflect() > %w", err)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, res.Reflection)
	if len(res.Suggestions) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = color.New(color.Bold).Fprintln(w, "Things you could try:")
		for _, s := range res.Suggestions {
			_, _ = fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	return nil
}
