package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/database"
	"github.com/at-ishikawa/lcsolved/internal/datasync"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
)

func newDBCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database maintenance commands",
	}
	cmd.AddCommand(
		newDBMigrateCommand(),
		newDBExportCommand(),
		newDBImportCommand(),
	)
	return cmd
}

func newDBMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema is up to date (%s)\n", db.DriverName())
			return nil
		},
	}
}

func newDBExportCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export database data to YAML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := datasync.NewExporter(a.Questions, a.Cards).Export(cmd.Context())
			if err != nil {
				return err
			}
			if err := datasync.NewYAMLSink(outputDir).WriteAll(data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d questions and %d flashcards to %s\n", len(data.Questions), len(data.Flashcards), outputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output", "./export", "Output directory")
	return cmd
}

func newDBImportCommand() *cobra.Command {
	var (
		inputDir string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import YAML files written by export; existing rows are kept",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := datasync.ReadYAML(inputDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := datasync.ImportOptions{DryRun: dryRun}
			var result *datasync.ImportResult
			err = database.RunInTx(cmd.Context(), a.DB, func(ctx context.Context, tx *sqlx.Tx) error {
				importer := datasync.NewImporter(catalog.NewDBQuestionRepository(tx), flashcard.NewDBCardRepository(tx), out)
				result, err = importer.Import(ctx, data, opts)
				return err
			})
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "  Questions:  %d new, %d skipped\n", result.QuestionsNew, result.QuestionsSkipped)
			fmt.Fprintf(out, "  Flashcards: %d new, %d skipped\n", result.FlashcardsNew, result.FlashcardsSkipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "./export", "Directory containing questions.yml and flashcards.yml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	return cmd
}
