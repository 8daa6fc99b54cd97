// Package reconcile merges freshly generated translations into persisted ones
// without clobbering human edits.
//
// Reconcile builds one Prospect per key found on either side and resolves it:
//
//   - both sides equal: kept as is, the handler is not consulted;
//   - sides differ, or only one side exists: resolved by the Handler;
//   - only the persisted side exists: the Unmatched policy decides first
//     (Keep hands the key to the Handler, Remove drops it, Custom transforms it).
//
// DefaultHandler prefers the persisted value whenever there is one, so a
// translator's edit is never replaced by a regenerated default and keys that
// vanished from the schema are retained:
//
//	out, stats, err := reconcile.Reconcile(generated, existing,
//		reconcile.WithUnmatched(reconcile.Remove()),
//	)
//
// Handlers are expected to be total functions; an error returned by a handler
// aborts the merge and is wrapped with ErrHandler.
package reconcile
