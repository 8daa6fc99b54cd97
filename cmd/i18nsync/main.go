// Command i18nsync keeps translation resource files in sync with a schema.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18nsync/pkg/logger"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logFormat  string

	log   = logger.NewNope()
	flush = func() {}

	newLogger = logger.NewWithSentry
)

var rootCmd = &cobra.Command{
	Use:   "i18nsync",
	Short: "Generate and reconcile translation resources from a schema",
	Long: `i18nsync derives translation keys from schema units (enums, tagged unions,
interfaces), merges them into existing resource files without overwriting
human translations, and renders a typed resource index.

Set SENTRY_DSN to forward warnings and errors to Sentry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		format, err := logger.ParseFormat(logFormat)
		if err != nil {
			return err
		}
		log, flush = newLogger(
			logger.SentryConfig{
				DSN:         os.Getenv("SENTRY_DSN"),
				Environment: os.Getenv("SENTRY_ENVIRONMENT"),
			},
			logger.WithWriter(cmd.ErrOrStderr()),
			logger.WithLevel(level),
			logger.WithFormat(format),
		)
		slog.SetDefault(log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "i18nsync.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Reconcile without writing any file")
	generateCmd.Flags().StringVar(&statePath, "state", "", "Write the translation state as JSON to this file")

	watchCmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "Quiet period before regenerating")

	rootCmd.AddCommand(generateCmd, watchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the exit code. Failures are
// logged, so they reach Sentry, and pending events are flushed in every case.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.ErrorContext(ctx, "command failed", slog.String("error", err.Error()))
	}
	flush()

	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
