// Package reconciler implements the reconciliation pass over pending
// proposals: tally votes, validate the city, materialize the entry document,
// regenerate the ancestor indexes, and report the outcome back to each
// proposal's tracking record.
//
// Passes are short-lived batch jobs that may overlap. The concurrency
// discipline is optimistic idempotency, not locking: every mutating step
// detects "already done" by inspecting current tree state, and the tree is
// committed once per accepted proposal so a killed pass leaves at most one
// incomplete item, which self-heals on the next pass.
package reconciler

import (
	"context"

	"github.com/google/uuid"

	"github.com/guidemap/guidemap/internal/geocode"
	"github.com/guidemap/guidemap/internal/store"
	"github.com/guidemap/guidemap/internal/tracker"
	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
	"github.com/guidemap/guidemap/pkg/logging"
	"github.com/guidemap/guidemap/pkg/proposals"
)

// Reconciler runs reconciliation passes.
type Reconciler interface {
	// Run executes one complete pass over all eligible proposals.
	// Per-proposal failures are collected in the Result, never aborting the
	// pass; the returned error is non-nil only when the pass could not run
	// at all.
	Run(ctx context.Context) (*Result, error)
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	source   tracker.Source
	resolver geocode.Resolver
	tree     store.Tree
	indexer  *Indexer
	opts     *options
}

// New creates a Reconciler over a proposal source, a city resolver, and a
// document tree.
func New(source tracker.Source, resolver geocode.Resolver, tree store.Tree, opts ...Option) (Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		source:   source,
		resolver: resolver,
		tree:     tree,
		indexer:  NewIndexer(tree),
		opts:     options,
	}, nil
}

// Run executes one reconciliation pass.
func (r *reconciler) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.FromContext(ctx)

	result := NewResult(runID, r.opts.mode, r.opts.threshold, r.opts.dryRun)

	logger.Info().
		Str("mode", string(r.opts.mode)).
		Int("threshold", r.opts.threshold).
		Bool("dry_run", r.opts.dryRun).
		Msg("Starting reconciliation pass")

	// One immutable snapshot per pass; decisions never re-read counts.
	snapshot, err := r.source.Snapshot(ctx)
	if err != nil {
		return nil, errors.WrapIO("snapshot", "proposals", err)
	}

	for i := range snapshot {
		p := &snapshot[i]
		result.Metadata.Stats.Examined++

		if !r.candidate(ctx, p) {
			continue
		}
		result.Metadata.Stats.Candidates++

		if err := r.process(ctx, p, result); err != nil {
			// Isolate the failure: drop this proposal's staged writes and
			// move on to the next item.
			r.tree.Discard()
			result.Errors = append(result.Errors,
				errors.WrapProposal(string(p.ID), "process", err))
			logger.Error().
				Err(err).
				Str("proposal", string(p.ID)).
				Msg("Failed to process proposal")
		}
	}

	result.Finalize()
	logger.Info().
		Int("accepted", len(result.Accepted)).
		Int("failed", len(result.Failed)).
		Int("deferred", len(result.Deferred)).
		Int("errors", len(result.Errors)).
		Msg("Reconciliation pass complete")

	return result, nil
}

// candidate reports whether a proposal should be processed this pass: open,
// moderator-approved, and not already in a terminal state. Terminal
// detection happens here, before any side-effecting work.
func (r *reconciler) candidate(ctx context.Context, p *proposals.Proposal) bool {
	logger := logging.FromContext(ctx)

	state := proposals.StateOf(p)
	if state.Terminal() {
		logger.Debug().
			Str("proposal", string(p.ID)).
			Str("state", state.String()).
			Msg("Skipping terminal proposal")
		return false
	}
	if state != proposals.StateModApproved {
		logger.Debug().
			Str("proposal", string(p.ID)).
			Str("state", state.String()).
			Msg("Skipping proposal awaiting moderation")
		return false
	}
	return state.CanTransition(proposals.StateValidating)
}

// process runs the pipeline for a single proposal: tally, validate,
// materialize, regenerate indexes, report.
func (r *reconciler) process(ctx context.Context, p *proposals.Proposal, result *Result) error {
	logger := logging.FromContext(ctx).With().
		Str("proposal", string(p.ID)).
		Logger()
	ctx = logging.WithLogger(ctx, &logger)

	// Incomplete submissions cannot be validated and fail terminally.
	if missing := requiredMissing(p); len(missing) > 0 {
		return r.fail(ctx, p, result, reasonMissingFields, missingFieldsComment(missing))
	}

	// Vote gate: not enough votes is "not yet", never a failure. The
	// proposal is left untouched and silently re-examined next pass.
	net := p.NetVotes()
	if !proposals.Eligible(net, r.opts.threshold) {
		logger.Debug().
			Int("net", net).
			Int("threshold", r.opts.threshold).
			Msg("Deferring proposal below vote threshold")
		result.Deferred = append(result.Deferred, p.ID)
		return nil
	}

	logger.Info().Int("net", net).Msg("Validating proposal")

	res, err := r.resolver.Resolve(ctx, p.Country, p.City)
	if err != nil {
		if errors.IsTransient(err) {
			return r.deferLookup(ctx, p, result, err)
		}
		return err
	}

	switch res.Status {
	case geocode.StatusNotFound:
		return r.fail(ctx, p, result, reasonNotFound, notFoundComment(p))
	case geocode.StatusAmbiguous:
		return r.fail(ctx, p, result, reasonAmbiguous, ambiguousComment(p))
	}

	return r.accept(ctx, p, result, res.Location, net)
}

// accept materializes the proposal's entry, regenerates the ancestor
// indexes, commits the change-set, and reports acceptance. The tree commit
// and the state transition form one logical unit: a failed commit leaves the
// proposal non-terminal and retryable, and a committed entry with a failed
// write-back is completed by a later pass via the provenance marker.
func (r *reconciler) accept(ctx context.Context, p *proposals.Proposal, result *Result, loc *geocode.Location, net int) error {
	logger := logging.FromContext(ctx)

	mat, err := r.materialize(ctx, p, loc)
	if err != nil {
		return err
	}

	// Regenerate every index on the path to the root from ground truth,
	// staged entry included.
	if err := r.indexer.Path(loc.Country, loc.City); err != nil {
		return err
	}

	if r.opts.dryRun {
		r.tree.Discard()
		logger.Info().
			Str("path", mat.path).
			Bool("created", mat.created).
			Msg("Dry run: would accept proposal")
		result.Accepted = append(result.Accepted, p.ID)
		return nil
	}

	// One durable change-set per accepted proposal.
	if err := r.tree.Commit(); err != nil {
		return err
	}

	result.Accepted = append(result.Accepted, p.ID)

	// Write-back failures after the commit are recorded but do not fail the
	// proposal: the entry is durable and the next pass detects it by its
	// provenance marker and completes the transition.
	if err := r.report(ctx, p, transitionAccepted, acceptedComment(p, loc, net)); err != nil {
		result.Errors = append(result.Errors,
			errors.WrapProposal(string(p.ID), "report", err))
		logger.Warn().
			Err(err).
			Msg("Accepted entry committed but write-back failed; next pass self-heals")
	}
	return nil
}

// fail drives a proposal to the validation-failed terminal state with a
// closing comment naming the reason.
func (r *reconciler) fail(ctx context.Context, p *proposals.Proposal, result *Result, reason, comment string) error {
	logger := logging.FromContext(ctx)
	logger.Warn().Str("reason", reason).Msg("Proposal failed validation")

	result.Failed[p.ID] = reason

	if r.opts.dryRun {
		return nil
	}
	return r.report(ctx, p, transitionFailed, comment)
}

// deferLookup handles a transient geocoder failure: bump the bounded retry
// counter and leave the proposal moderator-approved for the next pass, or
// convert to a permanent failure once the cap is reached.
func (r *reconciler) deferLookup(ctx context.Context, p *proposals.Proposal, result *Result, lookupErr error) error {
	logger := logging.FromContext(ctx)

	attempt := p.LookupRetries() + 1
	if attempt >= r.opts.maxLookupRetries {
		logger.Warn().
			Err(lookupErr).
			Int("attempts", attempt).
			Msg("Lookup retries exhausted, failing proposal")
		return r.fail(ctx, p, result, reasonLookupGaveUp, lookupGaveUpComment(p, attempt))
	}

	logger.Warn().
		Err(lookupErr).
		Int("attempt", attempt).
		Int("cap", r.opts.maxLookupRetries).
		Msg("Transient lookup failure, deferring to next pass")
	result.Deferred = append(result.Deferred, p.ID)

	if r.opts.dryRun {
		return nil
	}

	// Transient failures are silent: counter label only, no comment.
	if attempt > 1 {
		if err := r.source.RemoveLabel(ctx, p.ID, proposals.LookupRetryLabel(attempt-1)); err != nil {
			return err
		}
	}
	return r.source.AddLabel(ctx, p.ID, proposals.LookupRetryLabel(attempt))
}

// transition names the two terminal write-backs.
type transition int

const (
	transitionAccepted transition = iota
	transitionFailed
)

// report writes a proposal's terminal outcome to its tracking record:
// closing comment, label swap, closure. Label operations are individually
// idempotent, so a repeated report converges on the same record.
func (r *reconciler) report(ctx context.Context, p *proposals.Proposal, t transition, comment string) error {
	if err := r.source.Comment(ctx, p.ID, comment); err != nil {
		return err
	}

	for _, label := range []string{constants.LabelPending, constants.LabelModApproved} {
		if err := r.source.RemoveLabel(ctx, p.ID, label); err != nil {
			return err
		}
	}
	if n := p.LookupRetries(); n > 0 {
		if err := r.source.RemoveLabel(ctx, p.ID, proposals.LookupRetryLabel(n)); err != nil {
			return err
		}
	}

	terminal := constants.LabelAccepted
	if t == transitionFailed {
		terminal = constants.LabelValidationFailed
	}
	if err := r.source.AddLabel(ctx, p.ID, terminal); err != nil {
		return err
	}

	return r.source.Close(ctx, p.ID)
}

// requiredMissing returns the required submission fields absent from a
// proposal, including an unknown category.
func requiredMissing(p *proposals.Proposal) []string {
	var missing []string
	if p.Title == "" {
		missing = append(missing, "place name")
	}
	if p.City == "" {
		missing = append(missing, "city")
	}
	if !p.Category.Valid() {
		missing = append(missing, "category")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	return missing
}
