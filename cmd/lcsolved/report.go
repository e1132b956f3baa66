package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lcsolved/internal/cli"
	"github.com/at-ishikawa/lcsolved/internal/statistics"
)

func newReportCommand() *cobra.Command {
	var (
		bucket   int
		markdown string
		toPDF    bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show solved progress per rating bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket <= 0 {
				return fmt.Errorf("--bucket must be positive")
			}
			if toPDF && markdown == "" {
				return fmt.Errorf("--pdf requires --markdown to be specified")
			}

			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			questions, err := a.Questions.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("load questions: %w", err)
			}
			result := statistics.CalculateProgress(questions, bucket)
			if err := cli.NewPrinter(cmd.OutOrStdout()).Progress(result); err != nil {
				return err
			}
			if markdown == "" {
				return nil
			}

			written, err := cli.WriteProgressMarkdown(markdown, result, time.Now(), toPDF)
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}
			return err
		},
	}

	cmd.Flags().IntVar(&bucket, "bucket", statistics.DefaultBucketWidth, "Rating bucket width")
	cmd.Flags().StringVar(&markdown, "markdown", "", "Also write the report as markdown to this .md file")
	cmd.Flags().BoolVar(&toPDF, "pdf", false, "Convert the markdown report to PDF, requires --markdown")
	return cmd
}
