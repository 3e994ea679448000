// Package tracker connects the reconciler to the system that owns the
// proposals. A Source hands each pass an immutable snapshot of the open
// proposals and receives the pass's outcomes: label changes, comments, and
// closures. All decisions within a pass are made from the snapshot; counts
// are never re-read mid-pass.
package tracker

import (
	"context"

	"github.com/guidemap/guidemap/pkg/proposals"
)

// Source is the external proposal system at its interface.
type Source interface {
	// Snapshot returns the open proposals as they stood when called.
	// The returned slice and its proposals belong to the caller.
	Snapshot(ctx context.Context) ([]proposals.Proposal, error)

	// Comment appends an outcome comment to a proposal's record.
	Comment(ctx context.Context, id proposals.ID, body string) error

	// AddLabel adds a label to a proposal. Adding an existing label is a
	// no-op.
	AddLabel(ctx context.Context, id proposals.ID, label string) error

	// RemoveLabel removes a label from a proposal. Removing an absent label
	// is a no-op.
	RemoveLabel(ctx context.Context, id proposals.ID, label string) error

	// Close archives a proposal. A proposal is closed, never deleted.
	Close(ctx context.Context, id proposals.ID) error
}
