package proposals

import (
	"github.com/guidemap/guidemap/pkg/constants"
)

// State is a proposal's position in its lifecycle.
//
//	Submitted → PendingVotes → ModApproved → Validating → Accepted
//	                                       ↘ ValidationFailed
//	ModApproved/PendingVotes → Rejected (explicit moderator signal only)
//
// Validating is transient within a single pass and is never persisted;
// a proposal observed between passes is always in one of the other states.
type State string

// Lifecycle states.
const (
	// StateSubmitted is a freshly opened proposal with no lifecycle labels.
	// Functionally identical to StatePendingVotes: both await votes.
	StateSubmitted State = "submitted"

	// StatePendingVotes is a proposal collecting community votes.
	StatePendingVotes State = "pending-votes"

	// StateModApproved is a proposal a moderator has cleared for validation.
	StateModApproved State = "mod-approved"

	// StateValidating is the in-pass transient state while the city is being
	// verified. It resolves to Accepted or ValidationFailed within the pass.
	StateValidating State = "validating"

	// StateAccepted is the terminal state of a proposal whose place was added.
	StateAccepted State = "accepted"

	// StateValidationFailed is the terminal state of a proposal whose city
	// could not be verified.
	StateValidationFailed State = "validation-failed"

	// StateRejected is the terminal state of a proposal a moderator declined.
	StateRejected State = "rejected"
)

// transitions is the set of legal state transitions. Terminal states have no
// outgoing edges: they are absorbing.
var transitions = map[State][]State{
	StateSubmitted:    {StatePendingVotes, StateModApproved, StateRejected},
	StatePendingVotes: {StateModApproved, StateRejected},
	StateModApproved:  {StateValidating, StateRejected},
	StateValidating:   {StateAccepted, StateValidationFailed},
}

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// Terminal reports whether the state is absorbing. Re-processing a proposal
// in a terminal state must be detected as a no-op before any side effects.
func (s State) Terminal() bool {
	switch s {
	case StateAccepted, StateValidationFailed, StateRejected:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal transition.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label returns the tracking-record label for a persistable state, or ""
// for states with no label (Submitted, the transient Validating).
func (s State) Label() string {
	switch s {
	case StatePendingVotes:
		return constants.LabelPending
	case StateModApproved:
		return constants.LabelModApproved
	case StateAccepted:
		return constants.LabelAccepted
	case StateValidationFailed:
		return constants.LabelValidationFailed
	case StateRejected:
		return constants.LabelRejected
	}
	return ""
}

// StateOf derives a proposal's current state from its labels and closed
// flag. Terminal labels win over non-terminal ones, so a stale mod-approved
// label on a closed, accepted proposal does not resurrect it.
func StateOf(p *Proposal) State {
	switch {
	case p.HasLabel(constants.LabelAccepted):
		return StateAccepted
	case p.HasLabel(constants.LabelValidationFailed):
		return StateValidationFailed
	case p.HasLabel(constants.LabelRejected):
		return StateRejected
	case p.Closed:
		// Closed without a terminal label: treat as rejected rather than
		// inventing an eligible state for an archived record.
		return StateRejected
	case p.HasLabel(constants.LabelModApproved):
		return StateModApproved
	case p.HasLabel(constants.LabelPending):
		return StatePendingVotes
	}
	return StateSubmitted
}
