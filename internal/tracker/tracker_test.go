package tracker_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidemap/guidemap/internal/tracker"
	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
	"github.com/guidemap/guidemap/pkg/proposals"
)

func TestMemorySnapshotSkipsClosed(t *testing.T) {
	m := tracker.NewMemory(
		proposals.Proposal{ID: "1", Title: "Open"},
		proposals.Proposal{ID: "2", Title: "Closed", Closed: true},
		proposals.Proposal{ID: "3", Title: "Also open"},
	)

	snap, err := m.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap, 2)
	assert.Equal(t, proposals.ID("1"), snap[0].ID)
	assert.Equal(t, proposals.ID("3"), snap[1].ID)
}

func TestMemorySnapshotIsolation(t *testing.T) {
	m := tracker.NewMemory(proposals.Proposal{
		ID:     "1",
		Labels: []string{constants.LabelPending},
	})

	snap, err := m.Snapshot(context.Background())
	require.NoError(t, err)
	snap[0].Labels[0] = "mutated"

	current, ok := m.Get("1")
	require.True(t, ok)
	assert.Equal(t, []string{constants.LabelPending}, current.Labels)
}

func TestMemoryLabels(t *testing.T) {
	ctx := context.Background()
	m := tracker.NewMemory(proposals.Proposal{ID: "1"})

	require.NoError(t, m.AddLabel(ctx, "1", constants.LabelAccepted))
	// Adding twice stays a single label.
	require.NoError(t, m.AddLabel(ctx, "1", constants.LabelAccepted))

	p, _ := m.Get("1")
	assert.Equal(t, []string{constants.LabelAccepted}, p.Labels)

	require.NoError(t, m.RemoveLabel(ctx, "1", constants.LabelAccepted))
	// Removing an absent label is a no-op.
	require.NoError(t, m.RemoveLabel(ctx, "1", constants.LabelAccepted))

	p, _ = m.Get("1")
	assert.Empty(t, p.Labels)
}

func TestMemoryCommentAndClose(t *testing.T) {
	ctx := context.Background()
	m := tracker.NewMemory(proposals.Proposal{ID: "1"})

	require.NoError(t, m.Comment(ctx, "1", "first"))
	require.NoError(t, m.Comment(ctx, "1", "second"))
	assert.Equal(t, []string{"first", "second"}, m.Comments("1"))

	require.NoError(t, m.Close(ctx, "1"))
	p, _ := m.Get("1")
	assert.True(t, p.Closed)
}

func TestMemoryUnknownProposal(t *testing.T) {
	ctx := context.Background()
	m := tracker.NewMemory()

	assert.True(t, errors.IsNotFound(m.Comment(ctx, "missing", "hello")))
	assert.True(t, errors.IsNotFound(m.AddLabel(ctx, "missing", "x")))
	assert.True(t, errors.IsNotFound(m.RemoveLabel(ctx, "missing", "x")))
	assert.True(t, errors.IsNotFound(m.Close(ctx, "missing")))
}

const snapshotYAML = `proposals:
  - id: "101"
    labels: [pending-votes, mod-approved]
    upvotes: 150
    downvotes: 20
    body: |
      ### Place Name
      Old Town Cafe
      ### City
      Rome
      ### Category
      Eat
      ### Description
      Cozy espresso bar.
      ### Address (optional)
      _No response_
  - id: "102"
    title: Colosseum
    city: Rome
    country: Italy
    category: See
    description: Ancient amphitheatre.
    upvotes: 10
    downvotes: 1
    labels: [pending-votes]
`

func TestLoadSnapshotParsesBodies(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "proposals.yaml", []byte(snapshotYAML), 0o644))

	snap, err := tracker.LoadSnapshot(fs, "proposals.yaml")
	require.NoError(t, err)

	p, ok := snap.Get("101")
	require.True(t, ok)
	assert.Equal(t, "Old Town Cafe", p.Title)
	assert.Equal(t, "Rome", p.City)
	assert.Equal(t, proposals.CategoryEat, p.Category)
	assert.Equal(t, "Cozy espresso bar.", p.Description)
	assert.Empty(t, p.Address)
	assert.True(t, p.ModApproved())
	assert.Equal(t, 130, p.NetVotes())

	p, ok = snap.Get("102")
	require.True(t, ok)
	assert.Equal(t, "Colosseum", p.Title)
	assert.False(t, p.ModApproved())
}

func TestSnapshotSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "proposals.yaml", []byte(snapshotYAML), 0o644))

	snap, err := tracker.LoadSnapshot(fs, "proposals.yaml")
	require.NoError(t, err)

	require.NoError(t, snap.AddLabel(ctx, "101", constants.LabelAccepted))
	require.NoError(t, snap.RemoveLabel(ctx, "101", constants.LabelPending))
	require.NoError(t, snap.Close(ctx, "101"))
	require.NoError(t, snap.Save(ctx))

	reloaded, err := tracker.LoadSnapshot(fs, "proposals.yaml")
	require.NoError(t, err)

	p, ok := reloaded.Get("101")
	require.True(t, ok)
	assert.True(t, p.Closed)
	assert.Contains(t, p.Labels, constants.LabelAccepted)
	assert.NotContains(t, p.Labels, constants.LabelPending)

	// Closed proposals drop out of the next pass's snapshot.
	open, err := reloaded.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, proposals.ID("102"), open[0].ID)
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := tracker.LoadSnapshot(afero.NewMemMapFs(), "absent.yaml")
	require.Error(t, err)
}
