// Package metrics exposes Prometheus metrics for comparison runs.
//
// Metrics are registered on a caller supplied registry so that tests and the
// HTTP server do not share global state.
package metrics
