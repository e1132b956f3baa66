package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lcsolved/internal/app"
	"github.com/at-ishikawa/lcsolved/internal/config"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "lcsolved",
		Short:         "Track which rated practice questions are solved, based on Mochi flashcards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode, config.LogConfig{})
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newCatalogCommand(),
		newCardsCommand(),
		newReconcileCommand(),
		newQuestionsCommand(),
		newReportCommand(),
		newDBCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger. Logs go to stderr so that
// command output can be piped.
func setupLogger(debugMode bool, cfg config.LogConfig) {
	slog.SetDefault(app.NewLogger(os.Stderr, cfg, debugMode))
}
