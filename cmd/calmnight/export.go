package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/export"
	"github.com/traitel/calmnight/internal/statistics"
)

func newExportCommand() *cobra.Command {
	var outputDirectory string
	var withPDF bool

	command := &cobra.Command{
		Use:   "export",
		Short: "Export journals, check-ins and the summary as markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, service, closeRepo, err := newService()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeRepo()
			}()

			if outputDirectory == "" {
				outputDirectory = cfg.Outputs.ExportDirectory
			}

			tmpl, err := export.ParseTemplate(cfg.Templates.ExportTemplate)
			if err != nil {
				return fmt.Errorf("parse template: %w", err)
			}

			checkIns, journals := service.Load(cmd.Context())
			summary := statistics.Summarize(checkIns, journals, service.Now(), statistics.NewOptions(cfg.Analytics))
			result, err := export.WriteFiles(outputDirectory, tmpl, export.NewData(checkIns, journals, summary), withPDF)
			if err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", result.MarkdownPath)
			if result.PDFPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", result.PDFPath)
			}
			return nil
		},
	}

	command.Flags().StringVarP(&outputDirectory, "output", "o", "", "output directory (defaults to outputs.export_directory)")
	command.Flags().BoolVar(&withPDF, "pdf", false, "also convert the markdown to PDF")
	return command
}
