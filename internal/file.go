package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"slices"

	"github.com/dmitrymomot/i18nsync/pkg/index"
	"github.com/dmitrymomot/i18nsync/pkg/reconcile"
	"github.com/dmitrymomot/i18nsync/pkg/resolve"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/storage"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// FileTarget binds one resource file to a language and to the schema units
// it holds translations for.
type FileTarget struct {
	// Dir and Name locate the file in storage.
	Dir  string
	Name string
	// Language is the language tag of the file (required).
	Language string
	// Namespace overrides the namespace derived from Name in the index.
	Namespace string
	// BasePath, when set, is used as the path of every unit instead of
	// the kind-derived default. Ignored when PathGetter is set.
	BasePath string
	// Filter selects the units of the file. Nil accepts every unit not
	// flagged as unassigned.
	Filter func(schema.Unit) bool
	// PathGetter overrides path resolution.
	PathGetter resolve.PathGetter
	// Writer overrides resolve.DefaultWriter.
	Writer resolve.Writer
	// Handler overrides the generator's conflict handler for this file.
	Handler reconcile.Handler
	// Unmatched is the policy for keys no unit produced anymore. Default: keep.
	Unmatched reconcile.Unmatched
	// Format is inferred from the file extension when empty.
	Format translation.Format
}

// Path returns the storage name of the file.
func (f FileTarget) Path() string {
	return path.Join(f.Dir, f.Name)
}

// FileFunc derives file targets from the full schema.
type FileFunc func(set *schema.Set) ([]FileTarget, error)

// FileResult reports the outcome of one file.
type FileResult struct {
	Path      string          `json:"path"`
	Language  string          `json:"language"`
	Namespace string          `json:"namespace"`
	Keys      int             `json:"keys"`
	Changed   bool            `json:"changed"`
	Stats     reconcile.Stats `json:"stats"`
}

// job is one reconciliation unit: a file, its candidate units and the way
// candidates are produced. Main files and catch-all files share it.
type job struct {
	name       string
	lang       string
	namespace  string
	format     translation.Format
	units      []schema.Unit
	candidates func(u schema.Unit, existing translation.Map) ([]translation.Translation, bool)
	opts       []reconcile.Option
}

// pending is a reconciled file waiting for the commit phase.
type pending struct {
	result FileResult
	data   []byte
}

func (g *Generator) fileJob(t FileTarget) job {
	writer := t.Writer
	if writer == nil {
		writer = resolve.DefaultWriter(g.caser)
	}
	filter := t.Filter
	if filter == nil {
		filter = func(u schema.Unit) bool { return !u.Unassigned }
	}
	handler := t.Handler
	if handler == nil {
		handler = g.handler
	}
	format := t.Format
	if format == "" {
		format = translation.FormatFromName(t.Name)
	}

	return job{
		name:      t.Path(),
		lang:      t.Language,
		namespace: index.Namespace(index.File{Path: t.Path(), Namespace: t.Namespace}),
		format:    format,
		units:     g.schema.Filter(filter),
		candidates: func(u schema.Unit, existing translation.Map) ([]translation.Translation, bool) {
			p, ok := resolve.Path(u, t.PathGetter, t.BasePath)
			if !ok {
				return nil, false
			}
			return writer(u, p, existing)
		},
		opts: []reconcile.Option{
			reconcile.WithHandler(handler),
			reconcile.WithUnmatched(t.Unmatched),
		},
	}
}

// reconcile runs one job: read, generate, merge, record, encode.
// Nothing is written here.
func (g *Generator) reconcile(ctx context.Context, j job, rec recorder) (*pending, error) {
	log := g.logger.With(slog.String("file", j.name), slog.String("language", j.lang))

	raw, found, err := g.read(ctx, j.name)
	if err != nil {
		return nil, err
	}

	existing := translation.Map{}
	if found {
		m, err := translation.Read(raw, j.format)
		if err != nil {
			log.WarnContext(ctx, "ignoring unreadable file content", slog.String("error", err.Error()))
		} else {
			existing = m
		}
	}

	generated := j.generate(existing)
	// Writers may reuse recorded values; the audit trail compares against
	// what the schema alone would produce.
	defaults := j.generate(translation.Map{})

	opts := append(slices.Clip(j.opts), reconcile.WithObserver(func(p reconcile.Prospect, d reconcile.Decision, _ *translation.Translation) {
		if d == reconcile.DecisionDropped {
			log.DebugContext(ctx, "key dropped", slog.String("key", p.Key))
		}
	}))
	merged, stats, err := reconcile.Reconcile(generated, existing, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReconcile, j.name, err)
	}

	data, err := translation.Write(merged, j.format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReconcile, j.name, err)
	}

	for _, key := range translation.Keys(merged) {
		var gen *string
		if t, ok := defaults[key]; ok {
			gen = &t.Value
		}
		rec.Record(j.lang, j.namespace, merged[key], gen)
	}

	res := FileResult{
		Path:      j.name,
		Language:  j.lang,
		Namespace: j.namespace,
		Keys:      len(merged),
		Stats:     stats,
	}
	if found {
		res.Changed = !bytes.Equal(raw, data)
	} else {
		// An empty file that never existed is not created.
		res.Changed = len(merged) > 0
	}

	log.InfoContext(ctx, "file reconciled",
		slog.Int("keys", res.Keys),
		slog.Bool("changed", res.Changed),
		slog.Int("added", stats.Added),
		slog.Int("preserved", stats.Preserved),
		slog.Int("retained", stats.Retained),
		slog.Int("dropped", stats.Dropped),
	)
	return &pending{result: res, data: data}, nil
}

// generate collects the candidates of every unit. Later units overwrite
// earlier ones on key collision.
func (j job) generate(existing translation.Map) translation.Map {
	out := translation.Map{}
	for _, u := range j.units {
		ts, ok := j.candidates(u, existing)
		if !ok {
			continue
		}
		for _, t := range ts {
			out.Set(t)
		}
	}
	return out
}

// read returns the stored content of name. found is false when the file
// does not exist yet.
func (g *Generator) read(ctx context.Context, name string) (data []byte, found bool, err error) {
	data, err = g.storage.Read(ctx, name)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("%w: %s: %w", ErrReadFile, name, err)
	}
	return data, true, nil
}
