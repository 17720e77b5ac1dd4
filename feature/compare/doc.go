// Package compare verifies that the online copy of the template library matches
// the library source of truth.
//
// The feature is organised around two units of work:
//
//   - Task: one tier and document kind (e.g. Free templates). RunTask lists the
//     library and online directories, matches entries by name through
//     core/reconcile and diffs every matched pair with core/diff.
//   - Runner: executes an ordered list of tasks, never stopping at the first
//     failure, and folds every outcome into a single Verdict.
//
// A Verdict fails when a directory is missing, a library document has no online
// counterpart, a matched pair differs, or a document cannot be parsed. Documents
// that only exist online are reported but do not fail the run unless
// FailOnExtra is set.
//
// # Components
//
//   - Plan: builds the task list from configuration.
//   - Service: runs the comparison and forwards the verdict to the optional
//     history store, report archive and metrics.
//   - Handler: exposes the comparison over HTTP.
//   - Feature: registers the handler with the loader.
//
// # HTTP Endpoints
//
//   - GET /compare : Run a comparison and return the verdict.
//   - GET /compare/tasks : List the configured tasks.
//   - GET /compare/history : List recent runs (requires the history database).
//   - GET /compare/history/:id/report : Fetch an archived report (requires storage).
package compare
