package guide

import (
	"strings"

	"github.com/guidemap/guidemap/pkg/proposals"
)

// Entry is a single accepted place: one leaf document in the tree, keyed by
// (country, city, category, slug). Once written it is never mutated by the
// reconciler; indexes above it are regenerated instead.
type Entry struct {
	Title       string
	Description string
	Address     string
	Website     string
	Category    proposals.Category
	Country     string
	City        string
	Slug        string

	// Source is the proposal the entry was materialized from. It is rendered
	// into the document's provenance line and doubles as the idempotency
	// marker overlapping passes use to detect an already-materialized
	// proposal.
	Source proposals.ID
}

// sourceMarkerPrefix starts the provenance line at the bottom of every entry
// document.
const sourceMarkerPrefix = "> Added via proposal "

// SourceMarker returns the provenance line recorded in an entry document.
func SourceMarker(id proposals.ID) string {
	return sourceMarkerPrefix + string(id)
}

// ParseEntry extracts the title and source proposal from a rendered entry
// document. It tolerates hand-written documents without a provenance line;
// those simply never match a proposal.
func ParseEntry(content []byte) (title string, source proposals.ID) {
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if title == "" {
			if h, ok := strings.CutPrefix(line, "# "); ok {
				title = strings.TrimSpace(h)
				continue
			}
		}
		if rest, ok := strings.CutPrefix(line, sourceMarkerPrefix); ok {
			source = proposals.ID(strings.TrimSpace(rest))
		}
	}
	return title, source
}
