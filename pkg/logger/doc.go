// Package logger builds the slog loggers used by the generator and the CLI.
//
// New returns a JSON (or text) logger writing to stderr by default:
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
// Every logger built here decorates its handler with context extractors.
// The run id extractor is always installed, so records logged with a
// context from WithRunID carry a "run_id" attribute:
//
//	ctx = logger.WithRunID(ctx, logger.NewRunID())
//	log.InfoContext(ctx, "file reconciled", slog.String("path", p))
//
// NewWithSentry additionally forwards warnings and errors to Sentry when a
// DSN is configured and falls back to local logging otherwise.
//
// NewNope discards everything and is the default when no logger is given.
package logger
