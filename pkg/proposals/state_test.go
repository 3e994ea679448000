package proposals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/proposals"
)

func TestStateTerminal(t *testing.T) {
	terminal := []proposals.State{
		proposals.StateAccepted,
		proposals.StateValidationFailed,
		proposals.StateRejected,
	}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "state %s", s)
	}

	open := []proposals.State{
		proposals.StateSubmitted,
		proposals.StatePendingVotes,
		proposals.StateModApproved,
		proposals.StateValidating,
	}
	for _, s := range open {
		assert.False(t, s.Terminal(), "state %s", s)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from proposals.State
		to   proposals.State
		want bool
	}{
		{proposals.StateModApproved, proposals.StateValidating, true},
		{proposals.StateValidating, proposals.StateAccepted, true},
		{proposals.StateValidating, proposals.StateValidationFailed, true},
		{proposals.StatePendingVotes, proposals.StateModApproved, true},
		{proposals.StatePendingVotes, proposals.StateRejected, true},

		// Validation is gated on explicit moderator approval.
		{proposals.StatePendingVotes, proposals.StateValidating, false},
		{proposals.StateSubmitted, proposals.StateValidating, false},

		// Rejection is a moderation decision, never a vote outcome.
		{proposals.StateValidating, proposals.StateRejected, false},

		// Terminal states are absorbing.
		{proposals.StateAccepted, proposals.StateValidating, false},
		{proposals.StateValidationFailed, proposals.StateModApproved, false},
		{proposals.StateRejected, proposals.StatePendingVotes, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransition(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		closed bool
		want   proposals.State
	}{
		{"no labels", nil, false, proposals.StateSubmitted},
		{"pending", []string{constants.LabelPending}, false, proposals.StatePendingVotes},
		{"mod approved", []string{constants.LabelPending, constants.LabelModApproved}, false, proposals.StateModApproved},
		{"accepted", []string{constants.LabelAccepted}, true, proposals.StateAccepted},
		{"validation failed", []string{constants.LabelValidationFailed}, true, proposals.StateValidationFailed},
		{"rejected", []string{constants.LabelRejected}, true, proposals.StateRejected},
		{"closed without terminal label", nil, true, proposals.StateRejected},

		// A stale mod-approved label must not resurrect a terminal proposal.
		{"terminal wins over stale approval",
			[]string{constants.LabelModApproved, constants.LabelAccepted}, true,
			proposals.StateAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &proposals.Proposal{ID: "1", Labels: tt.labels, Closed: tt.closed}
			assert.Equal(t, tt.want, proposals.StateOf(p))
		})
	}
}

func TestLookupRetries(t *testing.T) {
	p := &proposals.Proposal{ID: "1"}
	assert.Equal(t, 0, p.LookupRetries())

	p.Labels = []string{constants.LabelModApproved, proposals.LookupRetryLabel(2)}
	assert.Equal(t, 2, p.LookupRetries())

	assert.Equal(t, "lookup-retry-3", proposals.LookupRetryLabel(3))
}

func TestStateLabel(t *testing.T) {
	assert.Equal(t, constants.LabelAccepted, proposals.StateAccepted.Label())
	assert.Equal(t, constants.LabelModApproved, proposals.StateModApproved.Label())
	assert.Equal(t, "", proposals.StateValidating.Label(), "transient state has no label")
	assert.Equal(t, "", proposals.StateSubmitted.Label())
}
