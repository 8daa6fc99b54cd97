package internal

import (
	"log/slog"

	"github.com/dmitrymomot/i18nsync/pkg/index"
	"github.com/dmitrymomot/i18nsync/pkg/naming"
	"github.com/dmitrymomot/i18nsync/pkg/reconcile"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/storage"
)

// Option configures the generator.
type Option func(*Generator)

// WithSchema sets the schema units translations are generated from.
func WithSchema(set *schema.Set) Option {
	return func(g *Generator) {
		g.schema = set
	}
}

// WithFiles adds file targets. Targets are reconciled in the order given.
func WithFiles(files ...FileTarget) Option {
	return func(g *Generator) {
		g.files = append(g.files, files...)
	}
}

// WithFileFunc derives file targets from the schema at run time.
// The targets it returns are reconciled after the ones passed to WithFiles.
//
// Example:
//
//	i18nsync.WithFileFunc(func(set *schema.Set) ([]i18nsync.FileTarget, error) {
//	    var out []i18nsync.FileTarget
//	    for _, lang := range []string{"en", "fr"} {
//	        out = append(out, i18nsync.FileTarget{Dir: "locales/" + lang, Name: "enums.json", Language: lang})
//	    }
//	    return out, nil
//	})
func WithFileFunc(fn FileFunc) Option {
	return func(g *Generator) {
		g.fileFunc = fn
	}
}

// WithDefaultNamespace enables the catch-all namespace for unassigned units.
func WithDefaultNamespace(dn DefaultNamespace) Option {
	return func(g *Generator) {
		g.defaultNS = &dn
	}
}

// WithIndex enables generation of the resource index file.
func WithIndex(cfg index.Config) Option {
	return func(g *Generator) {
		g.index = &cfg
	}
}

// WithStorage sets where resources are read from and written to.
// Default: the current working directory.
func WithStorage(s storage.Storage) Option {
	return func(g *Generator) {
		if s != nil {
			g.storage = s
		}
	}
}

// WithLogger sets the logger. Default: a logger discarding everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCaser sets the casing rules used by the default writers.
func WithCaser(c *naming.Caser) Option {
	return func(g *Generator) {
		if c != nil {
			g.caser = c
		}
	}
}

// WithHandler sets the conflict handler used for files that do not
// configure their own. Default: reconcile.DefaultHandler.
func WithHandler(h reconcile.Handler) Option {
	return func(g *Generator) {
		if h != nil {
			g.handler = h
		}
	}
}

// WithDryRun reconciles everything but writes nothing.
func WithDryRun() Option {
	return func(g *Generator) {
		g.dryRun = true
	}
}
