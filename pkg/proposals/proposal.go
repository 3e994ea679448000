// Package proposals defines the proposal domain model: the candidate places
// submitted by the community, their vote tallies, and the lifecycle each one
// moves through on its way to a terminal outcome.
package proposals

import (
	"slices"
	"strconv"
	"strings"

	"github.com/guidemap/guidemap/pkg/constants"
)

// ID is the opaque, stable identifier of a proposal, assigned by the intake
// system.
type ID string

// Proposal is a candidate place submitted for inclusion in the guide.
// It is owned by the intake system; guidemap reads it as part of a pass
// snapshot and writes back only labels, comments, and the closed flag.
type Proposal struct {
	ID          ID       `yaml:"id"`
	Title       string   `yaml:"title"`
	City        string   `yaml:"city"`
	Country     string   `yaml:"country,omitempty"`
	Category    Category `yaml:"category"`
	Description string   `yaml:"description"`
	Address     string   `yaml:"address,omitempty"`
	Website     string   `yaml:"website,omitempty"`
	Upvotes     int      `yaml:"upvotes"`
	Downvotes   int      `yaml:"downvotes"`
	Labels      []string `yaml:"labels,omitempty"`
	Closed      bool     `yaml:"closed,omitempty"`

	// Body is the raw structured intake form text. When set, ParseBody fields
	// take precedence over the flat fields above.
	Body string `yaml:"body,omitempty"`
}

// HasLabel reports whether the proposal carries the given label.
func (p *Proposal) HasLabel(label string) bool {
	return slices.Contains(p.Labels, label)
}

// ModApproved reports whether a moderator has cleared the proposal for
// validation.
func (p *Proposal) ModApproved() bool {
	return p.HasLabel(constants.LabelModApproved)
}

// NetVotes returns the proposal's net support.
func (p *Proposal) NetVotes() int {
	return Tally(p.Upvotes, p.Downvotes)
}

// LookupRetries returns how many passes have already hit a transient
// geocoder failure for this proposal, read from its retry counter label.
func (p *Proposal) LookupRetries() int {
	for _, label := range p.Labels {
		if rest, ok := strings.CutPrefix(label, constants.LabelLookupRetryPrefix); ok {
			if n, err := strconv.Atoi(rest); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}

// LookupRetryLabel returns the retry counter label for the given attempt
// count.
func LookupRetryLabel(n int) string {
	return constants.LabelLookupRetryPrefix + strconv.Itoa(n)
}
