// Package journal persists batch runs and per-file outcomes in SQLite.
//
// Each pipeline run is recorded when it starts, updated with counts and a
// terminal status when it finishes, and accompanied by one row per processed
// record. The journal is what preserves "which files were already rewritten"
// when a run fails partway, and it backs the history command.
//
// Schema changes bump the version in schema.go; users clear the journal
// database to adopt the new schema.
package journal
