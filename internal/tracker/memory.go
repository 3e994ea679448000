package tracker

import (
	"context"
	"slices"
	"sync"

	"github.com/guidemap/guidemap/pkg/errors"
	"github.com/guidemap/guidemap/pkg/proposals"
)

// Memory is an in-memory Source used by tests and as the working state of
// the snapshot-file source.
type Memory struct {
	mu       sync.Mutex
	order    []proposals.ID
	byID     map[proposals.ID]*proposals.Proposal
	comments map[proposals.ID][]string
}

// NewMemory creates an in-memory source seeded with the given proposals.
func NewMemory(seed ...proposals.Proposal) *Memory {
	m := &Memory{
		byID:     make(map[proposals.ID]*proposals.Proposal),
		comments: make(map[proposals.ID][]string),
	}
	for i := range seed {
		p := seed[i]
		m.order = append(m.order, p.ID)
		m.byID[p.ID] = &p
	}
	return m
}

// Snapshot returns copies of all open proposals in insertion order.
func (m *Memory) Snapshot(_ context.Context) ([]proposals.Proposal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []proposals.Proposal
	for _, id := range m.order {
		p := m.byID[id]
		if p.Closed {
			continue
		}
		cp := *p
		cp.Labels = slices.Clone(p.Labels)
		out = append(out, cp)
	}
	return out, nil
}

// Comment records a comment on a proposal.
func (m *Memory) Comment(_ context.Context, id proposals.ID, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byID[id]; !ok {
		return errors.ErrNotFound
	}
	m.comments[id] = append(m.comments[id], body)
	return nil
}

// AddLabel adds a label to a proposal.
func (m *Memory) AddLabel(_ context.Context, id proposals.ID, label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return errors.ErrNotFound
	}
	if !slices.Contains(p.Labels, label) {
		p.Labels = append(p.Labels, label)
	}
	return nil
}

// RemoveLabel removes a label from a proposal.
func (m *Memory) RemoveLabel(_ context.Context, id proposals.ID, label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return errors.ErrNotFound
	}
	p.Labels = slices.DeleteFunc(slices.Clone(p.Labels), func(l string) bool {
		return l == label
	})
	return nil
}

// Close marks a proposal closed.
func (m *Memory) Close(_ context.Context, id proposals.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return errors.ErrNotFound
	}
	p.Closed = true
	return nil
}

// Get returns the current record for a proposal, for assertions and
// snapshot-file persistence.
func (m *Memory) Get(id proposals.ID) (proposals.Proposal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.byID[id]
	if !ok {
		return proposals.Proposal{}, false
	}
	cp := *p
	cp.Labels = slices.Clone(p.Labels)
	return cp, true
}

// Comments returns the comments recorded on a proposal.
func (m *Memory) Comments(id proposals.ID) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.comments[id])
}

// All returns the current records of every proposal, open and closed, in
// insertion order.
func (m *Memory) All() []proposals.Proposal {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]proposals.Proposal, 0, len(m.order))
	for _, id := range m.order {
		p := m.byID[id]
		cp := *p
		cp.Labels = slices.Clone(p.Labels)
		out = append(out, cp)
	}
	return out
}
