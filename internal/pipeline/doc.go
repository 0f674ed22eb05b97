// Package pipeline orchestrates a batch run: discover sidecars, extract
// metadata, and apply capture times, on a background goroutine so the caller
// never blocks while the batch is processed.
//
// Progress flows one way from the worker to the caller through an ordered,
// unbounded, single-producer/single-consumer queue: one fraction per record
// and a terminal 1.0 on normal completion. The caller always receives a
// terminal signal — either a Result with counts or an error from Wait — and a
// file lock guarantees at most one run is in flight per journal.
package pipeline
