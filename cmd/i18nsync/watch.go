package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

const defaultDebounce = 500 * time.Millisecond

var debounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever the schema or config file changes",
	Long: `Runs generate once, then again every time the schema file or the config
file is saved. Rapid saves are coalesced. A failing run is logged and the
watcher keeps going; stop it with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		w, err := newWatcher(configPath, cfg, debounce, log)
		if err != nil {
			return err
		}
		defer w.Close()

		return w.Run(cmd.Context(), func(ctx context.Context, cfg *Config) error {
			res, err := generate(ctx, cfg, log, false)
			if err != nil {
				return err
			}
			return report(ctx, cmd.OutOrStdout(), cfg, res, "")
		})
	},
}

// watcher re-runs a callback whenever one of the watched files settles.
// Directories are watched instead of files so editors that save by
// renaming a temp file are still noticed.
type watcher struct {
	fs         *fsnotify.Watcher
	configPath string
	cfg        *Config
	files      map[string]bool
	pending    *debouncer
	logger     *slog.Logger
}

func newWatcher(configPath string, cfg *Config, quiet time.Duration, l *slog.Logger) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &watcher{
		fs:         fw,
		configPath: filepath.Clean(configPath),
		pending:    newDebouncer(quiet),
		logger:     l,
	}
	if err := w.track(cfg); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// track points the watcher at the files of cfg.
func (w *watcher) track(cfg *Config) error {
	files := map[string]bool{
		w.configPath:                     true,
		filepath.Clean(cfg.SchemaPath()): true,
	}
	for name := range files {
		dir := filepath.Dir(name)
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.cfg = cfg
	w.files = files
	return nil
}

// Close stops watching.
func (w *watcher) Close() error {
	return w.fs.Close()
}

// Run calls fn once, then after every settled change, until ctx is done.
func (w *watcher) Run(ctx context.Context, fn func(ctx context.Context, cfg *Config) error) error {
	w.invoke(ctx, fn)

	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.pending.touch(filepath.Clean(event.Name), time.Now())

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "watcher error", slog.String("error", err.Error()))

		case now := <-tick.C:
			settled := w.pending.settled(now)
			if len(settled) == 0 {
				continue
			}
			for _, name := range settled {
				w.logger.InfoContext(ctx, "change detected", slog.String("file", name))
				if name == w.configPath {
					w.reload(ctx)
				}
			}
			w.invoke(ctx, fn)
		}
	}
}

func (w *watcher) invoke(ctx context.Context, fn func(ctx context.Context, cfg *Config) error) {
	if err := fn(ctx, w.cfg); err != nil {
		w.logger.ErrorContext(ctx, "generation failed", slog.String("error", err.Error()))
	}
}

// reload re-reads the config file. A broken config keeps the previous one.
func (w *watcher) reload(ctx context.Context) {
	cfg, err := LoadConfig(w.configPath)
	if err != nil {
		w.logger.ErrorContext(ctx, "keeping previous config", slog.String("error", err.Error()))
		return
	}
	if err := w.track(cfg); err != nil {
		w.logger.ErrorContext(ctx, "keeping previous config", slog.String("error", err.Error()))
	}
}
