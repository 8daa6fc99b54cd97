package i18nsync

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/i18nsync/internal"
	"github.com/dmitrymomot/i18nsync/pkg/index"
	"github.com/dmitrymomot/i18nsync/pkg/naming"
	"github.com/dmitrymomot/i18nsync/pkg/reconcile"
	"github.com/dmitrymomot/i18nsync/pkg/schema"
	"github.com/dmitrymomot/i18nsync/pkg/storage"
)

// Type aliases - public API
type (
	// Generator keeps translation files in sync with a schema.
	Generator = internal.Generator

	// Option configures the generator.
	Option = internal.Option

	// FileTarget binds one resource file to a language and the units it holds.
	FileTarget = internal.FileTarget

	// FileFunc derives file targets from the schema at run time.
	FileFunc = internal.FileFunc

	// DefaultNamespace configures the catch-all files for unassigned units.
	DefaultNamespace = internal.DefaultNamespace

	// Result is the outcome of a run.
	Result = internal.Result

	// FileResult reports the outcome of one file.
	FileResult = internal.FileResult
)

// DefaultNamespaceName is the catch-all namespace used when none is configured.
const DefaultNamespaceName = internal.DefaultNamespaceName

// Errors returned by Run.
var (
	ErrMissingSchema           = internal.ErrMissingSchema
	ErrNothingToGenerate       = internal.ErrNothingToGenerate
	ErrInvalidTarget           = internal.ErrInvalidTarget
	ErrDuplicateTarget         = internal.ErrDuplicateTarget
	ErrInvalidDefaultNamespace = internal.ErrInvalidDefaultNamespace
	ErrFileFunc                = internal.ErrFileFunc
	ErrReadFile                = internal.ErrReadFile
	ErrReconcile               = internal.ErrReconcile
	ErrIndex                   = internal.ErrIndex
	ErrCommit                  = internal.ErrCommit
)

// New creates a generator.
//
// Example:
//
//	gen := i18nsync.New(
//	    i18nsync.WithSchema(set),
//	    i18nsync.WithStorage(storage.NewDir("web")),
//	    i18nsync.WithFiles(i18nsync.FileTarget{Dir: "locales/en", Name: "enums.json", Language: "en"}),
//	)
//	res, err := gen.Run(ctx)
func New(opts ...Option) *Generator {
	return internal.New(opts...)
}

// Run creates a generator and runs it once.
func Run(ctx context.Context, opts ...Option) (*Result, error) {
	return internal.New(opts...).Run(ctx)
}

// WithSchema sets the schema units translations are generated from.
func WithSchema(set *schema.Set) Option {
	return internal.WithSchema(set)
}

// WithFiles adds file targets, reconciled in the order given.
func WithFiles(files ...FileTarget) Option {
	return internal.WithFiles(files...)
}

// WithFileFunc derives additional file targets from the schema at run time.
func WithFileFunc(fn FileFunc) Option {
	return internal.WithFileFunc(fn)
}

// WithDefaultNamespace enables catch-all files for unassigned units.
func WithDefaultNamespace(dn DefaultNamespace) Option {
	return internal.WithDefaultNamespace(dn)
}

// WithIndex enables generation of the resource index file.
func WithIndex(cfg index.Config) Option {
	return internal.WithIndex(cfg)
}

// WithStorage sets where resources are read from and written to.
func WithStorage(s storage.Storage) Option {
	return internal.WithStorage(s)
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithCaser sets the casing rules of the default writers.
func WithCaser(c *naming.Caser) Option {
	return internal.WithCaser(c)
}

// WithHandler sets the default conflict handler.
func WithHandler(h reconcile.Handler) Option {
	return internal.WithHandler(h)
}

// WithDryRun reconciles everything but writes nothing.
func WithDryRun() Option {
	return internal.WithDryRun()
}
