package reconciler

import (
	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
)

// Mode identifies what triggered a reconciliation pass. The pipeline behaves
// identically in every mode; the mode is carried for reporting.
type Mode string

// Trigger modes.
const (
	// ModeScheduled is a pass started by the schedule tick.
	ModeScheduled Mode = "scheduled"

	// ModeLabel is a pass started by a label-change event.
	ModeLabel Mode = "label"

	// ModeManual is a pass started by an operator.
	ModeManual Mode = "manual"
)

// options holds reconciler configuration.
type options struct {
	threshold        int
	mode             Mode
	dryRun           bool
	maxLookupRetries int
}

// Option configures a Reconciler.
type Option func(*options) error

// WithThreshold sets the net vote threshold for acceptance.
func WithThreshold(threshold int) Option {
	return func(o *options) error {
		if threshold <= 0 {
			return errors.NewValidationError("threshold", threshold, "must be positive")
		}
		o.threshold = threshold
		return nil
	}
}

// WithMode sets the trigger mode recorded on the pass.
func WithMode(mode Mode) Option {
	return func(o *options) error {
		o.mode = mode
		return nil
	}
}

// WithDryRun makes the pass decide everything but write nothing: no tree
// commit, no label changes, no comments.
func WithDryRun(dryRun bool) Option {
	return func(o *options) error {
		o.dryRun = dryRun
		return nil
	}
}

// WithMaxLookupRetries caps how many passes a transient geocoder failure is
// retried across before converting to a permanent validation failure.
func WithMaxLookupRetries(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return errors.NewValidationError("maxLookupRetries", n, "must be positive")
		}
		o.maxLookupRetries = n
		return nil
	}
}

// newOptions applies options over defaults.
func newOptions(opts ...Option) (*options, error) {
	o := &options{
		threshold:        constants.VoteThreshold,
		mode:             ModeManual,
		maxLookupRetries: constants.MaxLookupRetries,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}
