package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the handler used to render records.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures a logger built by New.
type Option func(*options)

type options struct {
	writer     io.Writer
	format     Format
	level      slog.Leveler
	extractors []ContextExtractor
}

// WithWriter sets the output. Default: os.Stderr, keeping stdout free for
// command output.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithFormat selects JSON or text output. Default: JSON.
func WithFormat(f Format) Option {
	return func(o *options) {
		o.format = f
	}
}

// WithLevel sets the minimum level. Default: info.
func WithLevel(l slog.Leveler) Option {
	return func(o *options) {
		if l != nil {
			o.level = l
		}
	}
}

// WithExtractors adds context extractors applied on every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(o *options) {
		o.extractors = append(o.extractors, extractors...)
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		writer: os.Stderr,
		format: FormatJSON,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.format == FormatText {
		return slog.NewTextHandler(o.writer, ho)
	}
	return slog.NewJSONHandler(o.writer, ho)
}

// New creates a structured logger. Records always carry the run id when
// the context has one.
func New(opts ...Option) *slog.Logger {
	o := newOptions(opts)
	extractors := append([]ContextExtractor{RunIDExtractor()}, o.extractors...)
	return slog.New(NewLogHandlerDecorator(o.handler(), extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses debug, info, warn/warning and error (case-insensitive).
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// ParseFormat parses "json" or "text" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatText:
		return FormatText, nil
	}
	return FormatJSON, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
