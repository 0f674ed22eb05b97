package sidecar

import "time"

// Metadata is one validated sidecar record. Title is the expected filename of
// the associated media file exactly as stored, with no normalization. TakenAt
// is the original capture time in Unix epoch seconds.
type Metadata struct {
	Title   string
	TakenAt int64
}

// CaptureTime returns the capture moment at whole-second granularity.
func (m Metadata) CaptureTime() time.Time {
	return time.Unix(m.TakenAt, 0).UTC()
}
