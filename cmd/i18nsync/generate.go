package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/i18nsync"
	"github.com/dmitrymomot/i18nsync/pkg/audit"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
)

var (
	dryRun    bool
	statePath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Reconcile every configured resource file once",
	Long: `Loads the schema, reconciles every configured file and the default
namespace, renders the index and writes the files whose content changed.

Nothing is written when any file fails to reconcile.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		res, err := generate(cmd.Context(), cfg, log, dryRun)
		if err != nil {
			return err
		}
		return report(cmd.Context(), cmd.OutOrStdout(), cfg, res, statePath)
	},
}

// generate runs the generator once against the current schema file.
func generate(ctx context.Context, cfg *Config, l *slog.Logger, dry bool) (*i18nsync.Result, error) {
	data, err := os.ReadFile(cfg.SchemaPath())
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	set, err := schema.Load(data, filepath.Ext(cfg.SchemaPath()))
	if err != nil {
		return nil, err
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, i18nsync.WithSchema(set), i18nsync.WithLogger(l))
	if dry {
		opts = append(opts, i18nsync.WithDryRun())
	}
	return i18nsync.Run(ctx, opts...)
}

// report prints the changed files and a per-language summary, then
// persists the state to statePath and Redis where configured.
func report(ctx context.Context, w io.Writer, cfg *Config, res *i18nsync.Result, statePath string) error {
	verb := "wrote"
	if res.DryRun {
		verb = "would write"
	}
	changed := res.Changed()
	if len(changed) == 0 {
		fmt.Fprintln(w, "everything up to date")
	}
	for _, p := range changed {
		fmt.Fprintf(w, "%s %s\n", verb, p)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tKEYS\tGENERATED\tUNTRANSLATED\tORPHANED")
	for _, s := range audit.Summarize(res.State) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", s.Language, s.Total, s.Generated, s.Pending, s.Orphaned)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if statePath != "" {
		if err := writeState(statePath, res.State); err != nil {
			return err
		}
	}
	if cfg.Audit.RedisURL != "" {
		if err := exportState(ctx, cfg.Audit, res); err != nil {
			return err
		}
	}
	return nil
}

func writeState(name string, s audit.State) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	if err := audit.WriteJSON(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportState(ctx context.Context, cfg AuditConfig, res *i18nsync.Result) error {
	client, err := audit.OpenRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer client.Close()

	var opts []audit.RedisOption
	if cfg.Prefix != "" {
		opts = append(opts, audit.WithRedisPrefix(cfg.Prefix))
	}
	if cfg.TTL > 0 {
		opts = append(opts, audit.WithRedisTTL(cfg.TTL))
	}
	return audit.NewRedisExporter(client, opts...).Export(ctx, res.RunID, res.State)
}
