package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/backup"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload all records to the configured backup endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, service, closeRepo, err := newService()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			if cfg.Backup.URL == "" {
				return fmt.Errorf("backup.url is not set in the config")
			}

			checkIns, journals := service.Load(cmd.Context())
			receipt, err := backup.NewClient(cfg.Backup.URL, cfg.Backup.Token).Push(cmd.Context(), backup.Snapshot{
				ExportedAt: service.Now(),
				CheckIns:   checkIns,
				Journals:   journals,
			})
			if err != nil {
				return fmt.Errorf("push backup: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Backed up %d check-ins and %d journals", len(checkIns), len(journals))
			if receipt.ID != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (id: %s)", receipt.ID)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
