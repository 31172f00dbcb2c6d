// Package analysis turns an optimizer's process-reassignment log into queryable
// arrays and derived analytics.
//
// # Reading Guide
//
//   - dataset.go: Dataset, a fixed-schema struct of arrays, one element per move
//   - loader.go: LoadDataset reads the log (via analysis/movelog) and selects a prefix
//   - vector.go: reduction of list-literal resource columns to one scalar per move
//   - changepoint.go: solution segment boundaries from the flat move stream
//   - transitions.go: per-segment size aggregates and improvement deltas
//   - selection.go: n largest / n smallest entries of any metric array
//   - query.go: per-process and per-machine lookups over a position index
//   - metadata.go, compare.go: dataset-wide counts and two-run comparison
//
// Smoothing and feature helpers for the derived series live in analysis/signal.
//
// A Dataset is immutable once loaded. Every derived view (boundaries, transition
// statistics) is recomputed per call and never cached on the Dataset, so concurrent
// readers need no locking. All data is held in memory; the package makes no
// provision for logs larger than RAM.
package analysis
