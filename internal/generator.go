package internal

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/i18nsync/pkg/audit"
	"github.com/dmitrymomot/i18nsync/pkg/index"
	"github.com/dmitrymomot/i18nsync/pkg/logger"
	"github.com/dmitrymomot/i18nsync/pkg/naming"
	"github.com/dmitrymomot/i18nsync/pkg/reconcile"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/storage"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// recorder receives every translation kept in a file.
type recorder interface {
	Record(lang, namespace string, t translation.Translation, generated *string)
}

// Generator keeps translation files in sync with a schema.
// A Generator is reusable; every Run starts from scratch.
type Generator struct {
	schema    *schema.Set
	fileFunc  FileFunc
	defaultNS *DefaultNamespace
	index     *index.Config
	storage   storage.Storage
	logger    *slog.Logger
	caser     *naming.Caser
	handler   reconcile.Handler
	files     []FileTarget
	dryRun    bool
}

// Result is the outcome of a run.
type Result struct {
	RunID string       `json:"run_id"`
	Files []FileResult `json:"files"`
	// Index is nil when no index is configured.
	Index *FileResult `json:"index,omitempty"`
	// State holds every translation kept in the run, keyed by "lang:namespace:path".
	State audit.State `json:"state"`
	// DryRun reports that nothing was written.
	DryRun bool `json:"dry_run"`
}

// Changed returns the paths that were (or, in a dry run, would be) written.
func (r *Result) Changed() []string {
	var out []string
	for _, f := range r.Files {
		if f.Changed {
			out = append(out, f.Path)
		}
	}
	if r.Index != nil && r.Index.Changed {
		out = append(out, r.Index.Path)
	}
	return out
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		storage: storage.NewDir("."),
		logger:  logger.NewNope(),
		caser:   naming.New(),
		handler: reconcile.DefaultHandler,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run reconciles every configured file, builds the index and writes what
// changed. Files are only written once everything reconciled; any error
// aborts the run before the first write.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if g.schema == nil {
		return nil, ErrMissingSchema
	}

	runID := logger.NewRunID()
	ctx = logger.WithRunID(ctx, runID)
	start := time.Now()
	g.logger.InfoContext(ctx, "generation started", slog.Int("units", g.schema.Len()), slog.Bool("dry_run", g.dryRun))

	targets, err := g.targets()
	if err != nil {
		return nil, err
	}

	registry := audit.NewRegistry()
	var files []*pending

	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := g.reconcile(ctx, g.fileJob(t), registry)
		if err != nil {
			return nil, err
		}
		files = append(files, p)
	}

	if g.defaultNS != nil {
		ps, err := g.reconcileDefaultNamespace(ctx, *g.defaultNS, registry)
		if err != nil {
			return nil, err
		}
		files = append(files, ps...)
	}

	var idx *pending
	if g.index != nil {
		idx, err = g.buildIndex(ctx, files)
		if err != nil {
			return nil, err
		}
	}

	if !g.dryRun {
		if err := g.commit(ctx, files, idx); err != nil {
			return nil, err
		}
	}

	res := &Result{
		RunID:  runID,
		Files:  make([]FileResult, 0, len(files)),
		State:  registry.State(),
		DryRun: g.dryRun,
	}
	for _, p := range files {
		res.Files = append(res.Files, p.result)
	}
	if idx != nil {
		res.Index = &idx.result
	}

	g.logger.InfoContext(ctx, "generation finished",
		slog.Int("files", len(res.Files)),
		slog.Int("changed", len(res.Changed())),
		slog.Int("keys", len(res.State)),
		slog.Duration("took", time.Since(start)),
	)
	return res, nil
}

// targets returns the validated file targets of the run in order.
func (g *Generator) targets() ([]FileTarget, error) {
	targets := append([]FileTarget(nil), g.files...)
	if g.fileFunc != nil {
		more, err := g.fileFunc(g.schema)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileFunc, err)
		}
		targets = append(targets, more...)
	}
	if len(targets) == 0 && g.defaultNS == nil {
		return nil, ErrNothingToGenerate
	}

	seen := make(map[string]struct{}, len(targets))
	claim := func(name string) error {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateTarget, name)
		}
		seen[name] = struct{}{}
		return nil
	}

	for _, t := range targets {
		if t.Name == "" || t.Language == "" {
			return nil, fmt.Errorf("%w: %q needs a name and a language", ErrInvalidTarget, t.Path())
		}
		if err := claim(t.Path()); err != nil {
			return nil, err
		}
	}
	if g.defaultNS != nil {
		if err := g.defaultNS.validate(); err != nil {
			return nil, err
		}
		for _, lang := range g.defaultNS.Languages {
			if err := claim(g.defaultNS.Path(lang)); err != nil {
				return nil, err
			}
		}
	}
	return targets, nil
}

// buildIndex renders the index over every file with content.
func (g *Generator) buildIndex(ctx context.Context, files []*pending) (*pending, error) {
	cfg := *g.index
	if g.defaultNS != nil {
		cfg.DefaultNamespace = g.defaultNS.name()
	}

	var entries []index.File
	for _, p := range files {
		if p.result.Keys == 0 {
			continue
		}
		entries = append(entries, index.File{
			Path:      p.result.Path,
			Language:  p.result.Language,
			Namespace: p.result.Namespace,
		})
	}

	a, err := index.Assemble(cfg, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndex, err)
	}
	data, err := index.Render(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndex, err)
	}

	raw, found, err := g.read(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}

	keys := 0
	for _, lang := range a.Table.Languages() {
		keys += len(a.Table[lang])
	}
	return &pending{
		result: FileResult{
			Path:    cfg.Path,
			Keys:    keys,
			Changed: !found || !bytes.Equal(raw, data),
		},
		data: data,
	}, nil
}

// commit writes every changed file, the index last.
func (g *Generator) commit(ctx context.Context, files []*pending, idx *pending) error {
	if idx != nil {
		files = append(files, idx)
	}
	for _, p := range files {
		if !p.result.Changed {
			continue
		}
		if err := g.storage.Write(ctx, p.result.Path, p.data); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCommit, p.result.Path, err)
		}
		g.logger.DebugContext(ctx, "file written", slog.String("file", p.result.Path))
	}
	return nil
}
