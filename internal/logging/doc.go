// Package logging constructs the slog loggers used across phototime.
//
// It maps config-level format and level strings onto slog handlers, opens
// per-run log files alongside stdout, and exposes small attribute helpers so
// call sites stay terse. Obtain loggers through New or NewFromConfig rather
// than constructing slog handlers directly.
package logging
