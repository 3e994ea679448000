package reconciler

import (
	"context"
	"path"

	"github.com/guidemap/guidemap/internal/geocode"
	"github.com/guidemap/guidemap/internal/render"
	"github.com/guidemap/guidemap/pkg/guide"
	"github.com/guidemap/guidemap/pkg/logging"
	"github.com/guidemap/guidemap/pkg/proposals"
)

// materialization is the outcome of materializing one proposal.
type materialization struct {
	path    string
	slug    string
	created bool
}

// materialize writes the entry document for an accepted proposal, or detects
// that an earlier or overlapping pass already wrote it. Detection inspects
// current tree state, never in-memory run history: every sibling entry is
// checked for this proposal's provenance marker before a new slug is chosen,
// so re-processing completes the state transition without double-applying.
func (r *reconciler) materialize(ctx context.Context, p *proposals.Proposal, loc *geocode.Location) (materialization, error) {
	logger := logging.FromContext(ctx)

	dir := guide.CategoryDir(loc.Country, loc.City, p.Category)
	infos, err := r.tree.List(dir)
	if err != nil {
		return materialization{}, err
	}

	var siblings []string
	for _, info := range infos {
		if info.Dir {
			continue
		}
		siblings = append(siblings, info.Name)

		content, ok, err := r.tree.Read(path.Join(dir, info.Name))
		if err != nil || !ok {
			continue
		}
		if _, source := guide.ParseEntry(content); source == p.ID {
			logger.Info().
				Str("path", path.Join(dir, info.Name)).
				Msg("Entry already materialized, completing state transition only")
			return materialization{
				path: path.Join(dir, info.Name),
				slug: info.Name,
			}, nil
		}
	}

	slug := guide.NextSlug(guide.Slug(p.Title), siblings)
	entryPath := guide.EntryPath(loc.Country, loc.City, p.Category, slug)

	content, err := render.Entry(guide.Entry{
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Website:     p.Website,
		Category:    p.Category,
		Country:     loc.Country,
		City:        loc.City,
		Slug:        slug,
		Source:      p.ID,
	})
	if err != nil {
		return materialization{}, err
	}

	if err := r.tree.Write(entryPath, []byte(content)); err != nil {
		return materialization{}, err
	}

	logger.Info().
		Str("path", entryPath).
		Msg("Materialized entry")

	return materialization{path: entryPath, slug: slug, created: true}, nil
}
