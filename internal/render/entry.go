package render

import (
	"github.com/guidemap/guidemap/pkg/guide"
)

// Entry renders an accepted place as its entry document. The layout is
// stable and parseable: title heading, description, labeled address and
// website lines, then the provenance line naming the source proposal.
func Entry(e guide.Entry) (string, error) {
	b := NewBuilder()

	b.H1(e.Title).LF()
	b.PlainText(e.Description).LF()

	if e.Address != "" {
		b.PlainText(Bold("📍 Address:") + " " + e.Address).LF()
	}
	if e.Website != "" {
		b.PlainText(Bold("🔗 Website:") + " " + Link(e.Website, e.Website)).LF()
	}

	b.HorizontalRule().LF()
	b.PlainText(guide.SourceMarker(e.Source))

	return b.String()
}
