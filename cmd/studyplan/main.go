package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "studyplan",
		Short:         "Study plan scheduling for exam preparation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newCatalogCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newLogCommand())
	rootCmd.AddCommand(newSyncCommand())
	rootCmd.AddCommand(newStatsCommand())

	return rootCmd
}

func main() {
	// Missing .env is fine, environment variables may be set directly.
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
