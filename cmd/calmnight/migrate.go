package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/traitel/calmnight/internal/database"
	"github.com/traitel/calmnight/internal/datasync"
	"github.com/traitel/calmnight/internal/record"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(newMigrateSchemaCommand())
	migrateCmd.AddCommand(newMigrateImportDBCommand())
	migrateCmd.AddCommand(newMigrateExportDBCommand())

	return migrateCmd
}

func newMigrateSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			return database.Migrate(db)
		},
	}
}

func newMigrateImportDBCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import YAML records into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			source := record.NewYAMLRepository(cfg.Storage.DataDirectory)
			return runImport(cmd, source, record.NewDBRepository(db), dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}

func newMigrateExportDBCommand() *cobra.Command {
	var outputDir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "export-db",
		Short: "Export database records to YAML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			return runImport(cmd, record.NewDBRepository(db), record.NewYAMLRepository(outputDir), dryRun)
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "./export", "Output directory for YAML files")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without writing files")
	return cmd
}

func runImport(cmd *cobra.Command, source record.Repository, target record.BatchRepository, dryRun bool) error {
	w := cmd.OutOrStdout()
	importer := datasync.NewImporter(w)
	opts := datasync.ImportOptions{DryRun: dryRun}

	result, err := importer.Import(cmd.Context(), source, target, opts)
	if err != nil {
		return fmt.Errorf("import records: %w", err)
	}
	printImportSummary(w, result, opts)
	return nil
}

func printImportSummary(w io.Writer, result *datasync.ImportResult, opts datasync.ImportOptions) {
	_, _ = fmt.Fprintln(w, "\nImport Summary:")
	if opts.DryRun {
		_, _ = fmt.Fprintln(w, "  (dry-run mode, no changes made)")
	}
	_, _ = fmt.Fprintf(w, "  Check-ins:  %d new, %d skipped, %d invalid\n", result.CheckInsNew, result.CheckInsSkipped, result.CheckInsInvalid)
	_, _ = fmt.Fprintf(w, "  Journals:   %d new, %d skipped, %d invalid\n", result.JournalsNew, result.JournalsSkipped, result.JournalsInvalid)
}
