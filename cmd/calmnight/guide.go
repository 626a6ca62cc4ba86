package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/guidance"
)

func newGuideCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "guide",
		Short: "Breathing techniques, journal prompts, affirmations and urge support",
	}

	command.AddCommand(
		newGuideBreathingCommand(),
		newGuidePromptsCommand(),
		newGuideAffirmationCommand(),
		newGuideCrisisCommand(),
	)
	return command
}

func newGuideBreathingCommand() *cobra.Command {
	var minutes int

	command := &cobra.Command{
		Use:   "breathing [technique]",
		Short: "Show a breathing technique, or list them all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			bold := color.New(color.Bold)

			if len(args) == 0 {
				for _, t := range guidance.BreathingTechniques() {
					_, _ = fmt.Fprintf(w, "%-6s %s (%s per cycle)\n", t.ID, t.Name, t.CycleDuration())
				}
				return nil
			}

			technique, err := guidance.FindTechnique(args[0])
			if err != nil {
				return err
			}
			_, _ = bold.Fprintf(w, "%s (%s)\n", technique.Name, technique.ID)
			for _, p := range technique.Phases() {
				_, _ = fmt.Fprintf(w, "  %-7s %2.0fs  %s\n", p.Name, p.Duration.Seconds(), p.Instruction)
			}
			session := time.Duration(minutes) * time.Minute
			_, _ = fmt.Fprintf(w, "%d cycles fit in %d minutes.\n", technique.SessionCycles(session), minutes)
			return nil
		},
	}
	command.Flags().IntVar(&minutes, "minutes", 5, "session length used to count cycles")
	return command
}

func newGuidePromptsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prompts",
		Short: "List journal prompts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, p := range guidance.JournalPrompts() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, p)
			}
			return nil
		},
	}
}

func newGuideAffirmationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "affirmation",
		Short: "Show today's affirmation",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s. %s\n", guidance.Greeting(now), guidance.DailyAffirmation(now))
			return nil
		},
	}
}

func newGuideCrisisCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "crisis",
		Short: "Walk through the urge-support steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			bold := color.New(color.Bold)
			for i, step := range guidance.CrisisSteps() {
				_, _ = bold.Fprintf(w, "%d. %s\n", i+1, step.Title)
				_, _ = fmt.Fprintf(w, "   %s\n", step.Content)
				for _, o := range step.Options {
					_, _ = fmt.Fprintf(w, "   - %s\n", o)
				}
			}
			return nil
		},
	}
}
