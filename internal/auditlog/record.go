// Package auditlog keeps a local history of inventory imports: where the
// rows came from and how many were accepted or skipped.
package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeError   = "error"
	OutcomeDryRun  = "dry-run"
)

// Import sources.
const (
	SourceFile    = "file"
	SourceHetzner = "hetzner"
)

// ImportEntry is one persisted import run.
type ImportEntry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Source     string    `json:"source"`
	FileName   string    `json:"fileName,omitempty"`
	Format     string    `json:"format,omitempty"`
	TotalRows  int       `json:"totalRows"`
	Accepted   int       `json:"accepted"`
	Skipped    int       `json:"skipped"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"durationMs"`
}

// OutcomeFor classifies a finished run by its counts. A run that skipped
// some rows but accepted others is partial.
func OutcomeFor(accepted, skipped int) string {
	switch {
	case skipped == 0:
		return OutcomeSuccess
	case accepted == 0:
		return OutcomeError
	default:
		return OutcomePartial
	}
}
