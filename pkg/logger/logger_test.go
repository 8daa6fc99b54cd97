package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/i18nsync/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with run id", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf))

		ctx := logger.WithRunID(context.Background(), "run-1")
		log.InfoContext(ctx, "file reconciled", slog.String("path", "en/common.json"))

		rec := decode(t, &buf)
		require.Equal(t, "file reconciled", rec["msg"])
		require.Equal(t, "run-1", rec["run_id"])
		require.Equal(t, "en/common.json", rec["path"])
	})

	t.Run("level filter", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		require.Zero(t, buf.Len())
		log.Warn("shown")
		require.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf), logger.WithFormat(logger.FormatText))
		log.Info("hello", slog.Int("keys", 3))
		require.Contains(t, buf.String(), "msg=hello")
		require.Contains(t, buf.String(), "keys=3")
	})

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		lang := func(context.Context) (slog.Attr, bool) { return slog.String("lang", "fr"), true }
		log := logger.New(logger.WithWriter(&buf), logger.WithExtractors(lang, nil))
		log.Info("x")
		require.Equal(t, "fr", decode(t, &buf)["lang"])
	})
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := func(context.Context) (slog.Attr, bool) { return slog.String("a", "1"), true }
	b := func(context.Context) (slog.Attr, bool) { return slog.Attr{}, false }
	c := func(context.Context) (slog.Attr, bool) { return slog.String("c", "3"), true }

	h := logger.NewLogHandlerDecorator(slog.NewJSONHandler(&buf, nil), a, b)
	h = logger.NewLogHandlerDecorator(h, c)

	slog.New(h).With("static", true).Info("msg")
	rec := decode(t, &buf)
	require.Equal(t, "1", rec["a"])
	require.Equal(t, "3", rec["c"])
	require.Equal(t, true, rec["static"])
}

func TestRunID(t *testing.T) {
	t.Parallel()

	require.Empty(t, logger.RunID(context.Background()))
	id := logger.NewRunID()
	require.Len(t, id, 36)
	require.NotEqual(t, id, logger.NewRunID())
	require.Equal(t, id, logger.RunID(logger.WithRunID(context.Background(), id)))
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, tt.in)
	}
	_, err := logger.ParseLevel("verbose")
	require.ErrorIs(t, err, logger.ErrUnknownLevel)

	f, err := logger.ParseFormat("TEXT")
	require.NoError(t, err)
	require.Equal(t, logger.FormatText, f)
	_, err = logger.ParseFormat("xml")
	require.ErrorIs(t, err, logger.ErrUnknownFormat)
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, flush := logger.NewWithSentry(logger.SentryConfig{}, logger.WithWriter(&buf))
	defer flush()

	log.Error("local only")
	require.Contains(t, buf.String(), "local only")
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
}
