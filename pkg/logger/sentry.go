package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `yaml:"dsn"`
	Environment string `yaml:"environment"`
	// MinLevel selects what reaches Sentry: warnings and errors by default,
	// errors only when set to slog.LevelError.
	MinLevel slog.Level `yaml:"-"`
}

// NewWithSentry creates a logger that writes locally (configured by opts)
// and forwards warnings and errors to Sentry.
// An empty DSN or a failed SDK init falls back to the local logger.
// The returned flush func waits for buffered events and is safe to call
// when Sentry is disabled.
func NewWithSentry(cfg SentryConfig, opts ...Option) (*slog.Logger, func()) {
	o := newOptions(opts)
	extractors := append([]ContextExtractor{RunIDExtractor()}, o.extractors...)
	local := o.handler()
	noop := func() {}

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, extractors...)), noop
	}

	env := cfg.Environment
	if env == "" {
		env = "production"
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: env,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, extractors...)), noop
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}
	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	flush := func() { sentry.Flush(2 * time.Second) }
	return slog.New(NewLogHandlerDecorator(newMultiHandler(local, remote), extractors...)), flush
}
