// Package sidecar discovers and parses the JSON metadata sidecar files that
// photo export tools write next to each media file.
//
// Discovery is a flat, non-recursive directory listing filtered by extension.
// Extraction is strictly sequential and fails fast: the first unreadable or
// malformed sidecar aborts the batch with an error naming the offending path,
// so a single corrupt file never produces a half-applied run.
package sidecar
