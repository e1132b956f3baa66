package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lcsolved/internal/cli"
	"github.com/at-ishikawa/lcsolved/internal/query"
)

func newQuestionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Query and maintain the question catalog",
	}
	cmd.AddCommand(
		newQuestionsListCommand(),
		newQuestionsUnsolvedCommand(),
		newQuestionsResetSolvedCommand(),
	)
	return cmd
}

func newQuestionsListCommand() *cobra.Command {
	var (
		filter               query.Filter
		ratingMin, ratingMax float64
		format               string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questions matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("rating-min") {
				filter.RatingMin = &ratingMin
			}
			if cmd.Flags().Changed("rating-max") {
				filter.RatingMax = &ratingMax
			}
			if err := filter.Validate(); err != nil {
				return err
			}

			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			questions, err := a.Engine.Query(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("query questions: %w", err)
			}
			return cli.NewPrinter(cmd.OutOrStdout()).Questions(questions, format)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&filter.Keyword, "keyword", "", "Case-insensitive substring of the title")
	flags.StringVar(&filter.ContestNumber, "contest", "", "Substring of the contest name")
	flags.Float64Var(&ratingMin, "rating-min", 0, "Minimum rating (inclusive)")
	flags.Float64Var(&ratingMax, "rating-max", 0, "Maximum rating (inclusive)")
	flags.StringVar(&filter.SortBy, "sort-by", query.SortByID, "Sort field: id or rating")
	flags.StringVar(&filter.SortOrder, "sort-order", query.SortOrderDesc, "Sort order: asc or desc")
	addFormatFlag(flags, &format)
	return cmd
}

func newQuestionsUnsolvedCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "unsolved",
		Short: "List questions that are not solved yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			questions, err := a.Engine.Unsolved(cmd.Context())
			if err != nil {
				return fmt.Errorf("list unsolved questions: %w", err)
			}
			return cli.NewPrinter(cmd.OutOrStdout()).Questions(questions, format)
		},
	}

	addFormatFlag(cmd.Flags(), &format)
	return cmd
}

func newQuestionsResetSolvedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-solved",
		Short: "Mark every question unsolved; the next reconciliation restores the flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			n, err := a.Questions.ResetSolved(cmd.Context())
			if err != nil {
				return fmt.Errorf("reset solved status: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %d questions to unsolved\n", n)
			return nil
		},
	}
}

func addFormatFlag(flags *pflag.FlagSet, format *string) {
	flags.StringVar(format, "format", cli.FormatTable, "Output format: table, json or yaml")
}
