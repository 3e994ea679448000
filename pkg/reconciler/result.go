package reconciler

import (
	"fmt"
	"time"

	"github.com/guidemap/guidemap/pkg/proposals"
)

// Result represents the outcome of one reconciliation pass.
type Result struct {
	// Accepted lists proposals whose place was materialized this pass.
	Accepted []proposals.ID

	// Failed maps proposals driven to a terminal failure to the recorded
	// reason.
	Failed map[proposals.ID]string

	// Deferred lists proposals left untouched for a later pass: below the
	// vote threshold, or waiting out a transient lookup failure.
	Deferred []proposals.ID

	// Errors collects per-proposal processing errors. A proposal error never
	// aborts the pass for other proposals.
	Errors []error

	// Metadata about the pass.
	Metadata ResultMetadata
}

// ResultMetadata contains metadata about a reconciliation pass.
type ResultMetadata struct {
	// RunID identifies the pass in logs across overlapping runs.
	RunID string

	// Mode is what triggered the pass.
	Mode Mode

	// Threshold is the net vote threshold the pass evaluated against.
	Threshold int

	// DryRun indicates the pass wrote nothing.
	DryRun bool

	// StartTime when the pass started.
	StartTime time.Time

	// EndTime when the pass completed.
	EndTime time.Time

	// Duration of the pass.
	Duration time.Duration

	// Stats about the pass.
	Stats ResultStatistics
}

// ResultStatistics contains counters for a reconciliation pass.
type ResultStatistics struct {
	Examined   int
	Candidates int
	Accepted   int
	Failed     int
	Deferred   int
}

// NewResult creates a result for a starting pass.
func NewResult(runID string, mode Mode, threshold int, dryRun bool) *Result {
	return &Result{
		Failed: make(map[proposals.ID]string),
		Metadata: ResultMetadata{
			RunID:     runID,
			Mode:      mode,
			Threshold: threshold,
			DryRun:    dryRun,
			StartTime: time.Now(),
		},
	}
}

// IsSuccess returns true if the pass completed without processing errors.
func (r *Result) IsSuccess() bool {
	return len(r.Errors) == 0
}

// Finalize calculates duration and counters.
func (r *Result) Finalize() {
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	r.Metadata.Stats.Accepted = len(r.Accepted)
	r.Metadata.Stats.Failed = len(r.Failed)
	r.Metadata.Stats.Deferred = len(r.Deferred)
}

// Summary returns a human-readable summary of the pass.
func (r *Result) Summary() string {
	prefix := "Pass completed."
	if r.Metadata.DryRun {
		prefix = "Dry run completed."
	}
	if !r.IsSuccess() {
		prefix = fmt.Sprintf("Pass completed with %d errors.", len(r.Errors))
	}
	return fmt.Sprintf("%s Examined: %d, accepted: %d, failed: %d, deferred: %d.",
		prefix,
		r.Metadata.Stats.Examined,
		len(r.Accepted),
		len(r.Failed),
		len(r.Deferred))
}
