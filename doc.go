// Package i18nsync keeps localization resource files in sync with an API
// schema without clobbering what translators wrote.
//
// Translations of enums, one-of unions and interfaces are derived from a
// schema.Set and merged into the persisted resource files. The merge is
// conservative: a value already present in a file always wins over the
// freshly generated default, keys the schema no longer produces are kept
// unless a file says otherwise, and output is sorted so that re-running
// without changes leaves every file byte-identical.
//
// # Quick Start
//
//	set, err := schema.LoadFile(os.DirFS("."), "schema.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := i18nsync.Run(ctx,
//	    i18nsync.WithSchema(set),
//	    i18nsync.WithStorage(storage.NewDir("web")),
//	    i18nsync.WithFiles(
//	        i18nsync.FileTarget{Dir: "public/locales/en", Name: "enums.json", Language: "en"},
//	        i18nsync.FileTarget{Dir: "public/locales/fr", Name: "enums.json", Language: "fr"},
//	    ),
//	    i18nsync.WithDefaultNamespace(i18nsync.DefaultNamespace{
//	        Dir:       "public/locales",
//	        Languages: []string{"en", "fr"},
//	    }),
//	    i18nsync.WithIndex(index.Config{Path: "src/i18n.ts"}),
//	)
//
// # Conflict resolution
//
// Every key of a file is turned into a prospect carrying the generated and
// the persisted value. Equal sides are kept as is. Everything else goes to
// the conflict handler (reconcile.DefaultHandler unless WithHandler or
// FileTarget.Handler say otherwise). Keys only present in the file go
// through the file's unmatched policy first: reconcile.Keep (default),
// reconcile.Remove or reconcile.Custom.
//
// # Atomic runs
//
// Nothing is written until every file reconciled and the index rendered.
// Files whose content did not change are not rewritten. WithDryRun skips
// writing entirely; Result still reports which files would change.
//
// # Audit
//
// Result.State maps "lang:namespace:path" to the kept value and the schema
// unit it came from. See package audit for coverage summaries and export.
package i18nsync
