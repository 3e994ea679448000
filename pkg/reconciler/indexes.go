package reconciler

import (
	"path"
	"strings"

	"github.com/guidemap/guidemap/internal/render"
	"github.com/guidemap/guidemap/internal/store"
	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
	"github.com/guidemap/guidemap/pkg/guide"
	"github.com/guidemap/guidemap/pkg/proposals"
)

// Indexer regenerates index documents from the current tree contents.
// Regeneration always enumerates children from ground truth, never from a
// delta, so it stays correct after crashes and partial runs and never drops
// an entry it didn't examine. Output is deterministic, making redundant
// regeneration a no-op overwrite.
type Indexer struct {
	tree store.Tree
}

// NewIndexer creates an Indexer over the given tree.
func NewIndexer(tree store.Tree) *Indexer {
	return &Indexer{tree: tree}
}

// entryFiles lists the markdown entry files in a directory, excluding the
// index document itself.
func (ix *Indexer) entryFiles(dir string) ([]string, error) {
	infos, err := ix.tree.List(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, info := range infos {
		if info.Dir || info.Name == constants.IndexFile || !strings.HasSuffix(info.Name, ".md") {
			continue
		}
		files = append(files, info.Name)
	}
	return files, nil
}

// subdirs lists the child directories of a directory.
func (ix *Indexer) subdirs(dir string) ([]string, error) {
	infos, err := ix.tree.List(dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, info := range infos {
		if info.Dir {
			dirs = append(dirs, info.Name)
		}
	}
	return dirs, nil
}

// City regenerates a city's index document from its category directories.
func (ix *Indexer) City(country, city string) error {
	var sections []render.Section
	for _, category := range proposals.Categories() {
		files, err := ix.entryFiles(guide.CategoryDir(country, city, category))
		if err != nil {
			return err
		}
		items := make([]render.Item, 0, len(files))
		for _, f := range files {
			items = append(items, render.Item{
				Name: guide.DisplayName(f),
				Href: path.Join(category.String(), f),
			})
		}
		sections = append(sections, render.Section{Category: category, Items: items})
	}

	content, err := render.CityIndex(guide.DisplayName(guide.DirName(city)), sections)
	if err != nil {
		return errors.WrapIO("render", guide.CityIndexPath(country, city), err)
	}
	return ix.tree.Write(guide.CityIndexPath(country, city), []byte(content))
}

// Country regenerates a country's index document from its city directories.
func (ix *Indexer) Country(country string) error {
	dirs, err := ix.subdirs(guide.CountryDir(country))
	if err != nil {
		return err
	}
	cities := make([]render.Item, 0, len(dirs))
	for _, d := range dirs {
		cities = append(cities, render.Item{
			Name: guide.DisplayName(d),
			Href: path.Join(d, constants.IndexFile),
		})
	}

	content, err := render.CountryIndex(guide.DisplayName(guide.DirName(country)), cities)
	if err != nil {
		return errors.WrapIO("render", guide.CountryIndexPath(country), err)
	}
	return ix.tree.Write(guide.CountryIndexPath(country), []byte(content))
}

// Root regenerates the root index document from the country directories.
func (ix *Indexer) Root() error {
	dirs, err := ix.subdirs(guide.Root())
	if err != nil {
		return err
	}
	countries := make([]render.Item, 0, len(dirs))
	for _, d := range dirs {
		countries = append(countries, render.Item{
			Name: guide.DisplayName(d),
			Href: path.Join(d, constants.IndexFile),
		})
	}

	content, err := render.RootIndex(countries)
	if err != nil {
		return errors.WrapIO("render", guide.RootIndexPath(), err)
	}
	return ix.tree.Write(guide.RootIndexPath(), []byte(content))
}

// Path regenerates every index document on the path from a city up to the
// root, the set affected by a mutation under that city.
func (ix *Indexer) Path(country, city string) error {
	if err := ix.City(country, city); err != nil {
		return err
	}
	if err := ix.Country(country); err != nil {
		return err
	}
	return ix.Root()
}

// All regenerates every index document in the tree.
func (ix *Indexer) All() error {
	countries, err := ix.subdirs(guide.Root())
	if err != nil {
		return err
	}
	for _, country := range countries {
		cities, err := ix.subdirs(guide.CountryDir(country))
		if err != nil {
			return err
		}
		for _, city := range cities {
			if err := ix.City(country, city); err != nil {
				return err
			}
		}
		if err := ix.Country(country); err != nil {
			return err
		}
	}
	return ix.Root()
}
