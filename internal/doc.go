// Package internal holds the generation engine.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/i18nsync" instead, which re-exports the public API.
//
// # Run
//
// A Generator run goes through four phases:
//
//  1. Every FileTarget (static ones first, then the ones returned by the
//     FileFunc) is reconciled in configuration order: the persisted file is
//     read and flattened, candidates are produced by the path getter and
//     writer of every accepted unit, and the two sides are merged by
//     reconcile.Reconcile.
//  2. When a DefaultNamespace is configured, the unassigned units are
//     reconciled into one catch-all file per language. Languages run
//     concurrently.
//  3. When an index is configured, every file with content is added to the
//     resource index, which is rendered with package index.
//  4. Changed files are written. Nothing is written before this phase, so a
//     failing run never leaves half-updated files behind.
//
// Each kept translation is recorded in an audit.Registry owned by the run
// and returned as Result.State.
//
// # Failure policy
//
// A missing file is empty. Unreadable content (malformed JSON/YAML or
// ambiguous paths) is logged and treated as empty. Storage errors, handler
// errors and path collisions in the merged result abort the run.
package internal
