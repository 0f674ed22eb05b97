package match

// Outcome classifies what happened to a single record.
type Outcome string

const (
	// OutcomeWritten means the media file existed and its timestamps were set.
	OutcomeWritten Outcome = "written"
	// OutcomeSkipped means no media file existed at the expected path.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the media file existed but the timestamp write failed.
	OutcomeFailed Outcome = "failed"
)

// FileResult is the per-record outcome of one matching attempt.
type FileResult struct {
	Title   string
	Path    string
	Outcome Outcome
	Err     error
}

// Detail returns the failure cause, or an empty string for non-failures.
func (r FileResult) Detail() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
