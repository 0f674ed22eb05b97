package sidecar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Sentinel errors tag extraction failures for later classification. Every
// error returned by ExtractAll wraps exactly one of these.
var (
	ErrUnreadable = errors.New("sidecar unreadable")
	ErrMalformed  = errors.New("sidecar malformed")
	ErrSchema     = errors.New("sidecar schema")
)

const (
	fieldTitle     = "title"
	fieldTakenTime = "photoTakenTime"
	fieldTimestamp = "timestamp"
)

// ExtractAll parses each sidecar path in order and returns the full record
// sequence, or a descriptive error for the first file that cannot be read or
// does not match the expected shape. No partial record list is returned on
// failure.
func ExtractAll(paths []string) ([]Metadata, error) {
	records := make([]Metadata, 0, len(paths))
	for _, path := range paths {
		record, err := extractOne(path)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func extractOne(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: read %s: %w", ErrUnreadable, path, err)
	}

	var document map[string]any
	if err := json.Unmarshal(data, &document); err != nil {
		return Metadata{}, fmt.Errorf("%w: parse %s: %w", ErrMalformed, path, err)
	}

	rawTitle, ok := document[fieldTitle]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %s: missing %q field", ErrSchema, path, fieldTitle)
	}
	title, ok := rawTitle.(string)
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %s: %q field is not a string", ErrSchema, path, fieldTitle)
	}

	takenAt, err := extractTakenAt(path, document)
	if err != nil {
		return Metadata{}, err
	}

	return Metadata{Title: title, TakenAt: takenAt}, nil
}

func extractTakenAt(path string, document map[string]any) (int64, error) {
	rawTakenTime, ok := document[fieldTakenTime]
	if !ok {
		return 0, fmt.Errorf("%w: %s: missing %q field", ErrSchema, path, fieldTakenTime)
	}
	takenTime, ok := rawTakenTime.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: %s: %q field is not an object", ErrSchema, path, fieldTakenTime)
	}

	rawTimestamp, ok := takenTime[fieldTimestamp]
	if !ok {
		return 0, fmt.Errorf("%w: %s: missing %q.%q field", ErrSchema, path, fieldTakenTime, fieldTimestamp)
	}
	timestamp, ok := rawTimestamp.(string)
	if !ok {
		return 0, fmt.Errorf("%w: %s: %q.%q field is not a string", ErrSchema, path, fieldTakenTime, fieldTimestamp)
	}

	seconds, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: capture timestamp %q is not an integer", ErrSchema, path, timestamp)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("%w: %s: capture timestamp %q is negative", ErrSchema, path, timestamp)
	}
	return seconds, nil
}
