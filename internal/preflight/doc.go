// Package preflight validates the target directory before a run starts, so
// configuration problems surface synchronously instead of mid-batch.
package preflight
