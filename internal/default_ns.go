package internal

import (
	"context"
	"fmt"
	"path"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/i18nsync/pkg/reconcile"
	"github.com/dmitrymomot/i18nsync/pkg/resolve"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/translation"
)

// DefaultNamespaceName is the namespace of the catch-all files when
// DefaultNamespace.Name is empty.
const DefaultNamespaceName = "translation"

// DefaultNamespace configures the catch-all files holding translations of
// units that are not bound to any specific file. One file is produced per
// language at Dir/<lang>/FileName.
type DefaultNamespace struct {
	// Name is the namespace name. Default: "translation".
	Name string
	Dir  string
	// FileName defaults to "<Name>.json".
	FileName  string
	Languages []string
	// PathGetter overrides resolve.DefaultNamespacePath.
	PathGetter resolve.NamespacePathGetter
	// Writer overrides resolve.DefaultNamespaceWriter.
	Writer resolve.NamespaceWriter
	// Handler overrides the generator's conflict handler.
	Handler   reconcile.Handler
	Unmatched reconcile.Unmatched
}

func (dn DefaultNamespace) name() string {
	if dn.Name == "" {
		return DefaultNamespaceName
	}
	return dn.Name
}

func (dn DefaultNamespace) fileName() string {
	if dn.FileName == "" {
		return dn.name() + ".json"
	}
	return dn.FileName
}

// Path returns the storage name of the catch-all file of lang.
func (dn DefaultNamespace) Path(lang string) string {
	return path.Join(dn.Dir, lang, dn.fileName())
}

func (dn DefaultNamespace) validate() error {
	if len(dn.Languages) == 0 {
		return fmt.Errorf("%w: no languages", ErrInvalidDefaultNamespace)
	}
	seen := make(map[string]struct{}, len(dn.Languages))
	for _, lang := range dn.Languages {
		if lang == "" {
			return fmt.Errorf("%w: empty language", ErrInvalidDefaultNamespace)
		}
		if _, ok := seen[lang]; ok {
			return fmt.Errorf("%w: language %q listed twice", ErrInvalidDefaultNamespace, lang)
		}
		seen[lang] = struct{}{}
	}
	return nil
}

func (g *Generator) namespaceJob(dn DefaultNamespace, lang string, units []schema.Unit) job {
	getter := dn.PathGetter
	if getter == nil {
		getter = resolve.DefaultNamespacePath
	}
	writer := dn.Writer
	if writer == nil {
		writer = resolve.DefaultNamespaceWriter(g.caser)
	}
	handler := dn.Handler
	if handler == nil {
		handler = g.handler
	}
	name := dn.Path(lang)

	return job{
		name:      name,
		lang:      lang,
		namespace: dn.name(),
		format:    translation.FormatFromName(name),
		units:     units,
		candidates: func(u schema.Unit, existing translation.Map) ([]translation.Translation, bool) {
			p, ok := getter(u, lang)
			if !ok {
				return nil, false
			}
			return writer(u, lang, p, existing)
		},
		opts: []reconcile.Option{
			reconcile.WithHandler(handler),
			reconcile.WithUnmatched(dn.Unmatched),
		},
	}
}

// reconcileDefaultNamespace runs one reconciliation per language over the
// unassigned units. Languages touch disjoint files and registry keys, so
// they run concurrently. Results keep the configured language order.
func (g *Generator) reconcileDefaultNamespace(ctx context.Context, dn DefaultNamespace, rec recorder) ([]*pending, error) {
	units := g.schema.Unassigned()
	out := make([]*pending, len(dn.Languages))

	eg, ctx := errgroup.WithContext(ctx)
	for i, lang := range dn.Languages {
		j := g.namespaceJob(dn, lang, units)
		eg.Go(func() error {
			p, err := g.reconcile(ctx, j, rec)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
