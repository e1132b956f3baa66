package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lcsolved/internal/catalog"
	"github.com/at-ishikawa/lcsolved/internal/cli"
	"github.com/at-ishikawa/lcsolved/internal/config"
	"github.com/at-ishikawa/lcsolved/internal/flashcard"
)

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Question catalog commands",
	}
	cmd.AddCommand(newCatalogSyncCommand())
	return cmd
}

func newCatalogSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch the question feed and store new questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			var result *catalog.IngestResult
			if err := a.RunUntilIdle(cmd.Context(), func(ctx context.Context) error {
				result, err = a.Orchestrator.RefreshCatalog(ctx)
				return err
			}); err != nil {
				return err
			}

			stats := a.Queue.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fetched %d questions, scheduled %d inserts\n", result.Fetched, result.Scheduled)
			fmt.Fprintf(out, "Insert tasks: %d succeeded, %d failed\n", stats.Succeeded, stats.Failed)
			if result.EnqueueFailed > 0 {
				fmt.Fprintf(out, "Could not schedule %d inserts; they are retried on the next sync\n", result.EnqueueFailed)
			}
			return nil
		},
	}
}

func newCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Mochi flashcard commands",
	}
	cmd.AddCommand(
		newCardsSyncCommand(),
		newCardsListCommand(),
	)
	return cmd
}

func newCardsSyncCommand() *cobra.Command {
	var settleDelay time.Duration

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch new flashcards, then reconcile solved status after the settle delay",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := openApp(cmd.Context(), func(cfg *config.Config) {
				if cmd.Flags().Changed("settle-delay") {
					cfg.Sync.SettleDelay = settleDelay
				}
			})
			if err != nil {
				return err
			}
			defer a.Close()
			if cfg.Mochi.APIKey == "" {
				return flashcard.ErrMissingAPIKey
			}

			var result *flashcard.IngestResult
			if err := a.RunUntilIdle(cmd.Context(), func(ctx context.Context) error {
				result, err = a.Orchestrator.SyncFlashcards(ctx)
				if err == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Waiting %s before reconciling...\n", cfg.Sync.SettleDelay)
				}
				return err
			}); err != nil {
				return err
			}

			stats := a.Queue.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Flashcards: %d fetched, %d new, %d skipped, %d empty\n", result.Fetched, result.New, result.Skipped, result.Empty)
			if stats.Failed > 0 {
				return fmt.Errorf("reconciliation failed; see the log for details")
			}
			fmt.Fprintln(out, "Solved status reconciled")
			return nil
		},
	}

	cmd.Flags().DurationVar(&settleDelay, "settle-delay", 0, "Delay before reconciling (defaults to sync.settle_delay)")
	return cmd
}

func newCardsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			cards, err := a.Cards.FindAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("list flashcards: %w", err)
			}
			return cli.NewPrinter(cmd.OutOrStdout()).Cards(cards)
		},
	}
}

func newReconcileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Mark questions solved when a stored flashcard carries their title",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openApp(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Orchestrator.Reconcile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d questions solved, updated %d\n", result.Matched, result.Total, result.Updated)
			return nil
		},
	}
}
