// Package match locates the media file each sidecar record names and rewrites
// its on-disk timestamps to the recorded capture time.
//
// Matching is an exact path join of directory and title: no case folding, no
// extension inference, no fuzzy lookup. A missing media file is a skip, not an
// error; sidecars commonly reference files the user has deleted. A timestamp
// write failure is recorded as a per-file failure so the batch can finish and
// report which files were already rewritten.
package match
