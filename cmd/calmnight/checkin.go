package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/traitel/calmnight/internal/cli"
	"github.com/traitel/calmnight/internal/record"
)

// emotionFlag accepts a vocabulary label in any letter case and stores its canonical form.
type emotionFlag string

func (e *emotionFlag) Set(val string) error {
	for _, label := range record.Emotions {
		if strings.EqualFold(strings.TrimSpace(val), label) {
			*e = emotionFlag(label)
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(record.Emotions, ", "))
}

func (e *emotionFlag) String() string {
	return string(*e)
}

func (e *emotionFlag) Type() string {
	return "emotion"
}

var _ pflag.Value = (*emotionFlag)(nil)

func newCheckInCommand() *cobra.Command {
	var emotion emotionFlag
	var intensity int
	var notes string
	var repeat bool

	command := &cobra.Command{
		Use:   "checkin",
		Short: "Record how you are feeling right now",
		Long: "Record an emotion and its intensity from 1 to 10.\n" +
			"Without --emotion the check-in is taken interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, service, closeRepo, err := newService()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			if emotion != "" {
				c, err := service.RecordCheckIn(cmd.Context(), string(emotion), intensity, notes)
				if err != nil {
					return fmt.Errorf("record check-in: %w", err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s at intensity %d.\n", c.Emotion, c.Intensity)
				return nil
			}

			base := cli.NewInteractiveCLI(cmd.InOrStdin(), cmd.OutOrStdout())
			return base.Run(cmd.Context(), cli.NewCheckInSession(base, service, !repeat))
		},
	}

	command.Flags().Var(&emotion, "emotion", "emotion to record, e.g. Anxious")
	command.Flags().IntVar(&intensity, "intensity", 5, "intensity from 1 to 10, used with --emotion")
	command.Flags().StringVar(&notes, "notes", "", "optional notes, used with --emotion")
	command.Flags().BoolVar(&repeat, "repeat", false, "keep asking for check-ins until an empty answer")
	return command
}
