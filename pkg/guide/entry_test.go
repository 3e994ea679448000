package guide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidemap/guidemap/pkg/guide"
	"github.com/guidemap/guidemap/pkg/proposals"
)

func TestEntryPath(t *testing.T) {
	got := guide.EntryPath("Italy", "Rome", proposals.CategoryEat, "old-town-cafe")
	assert.Equal(t, "countries/Italy/Rome/Eat/old-town-cafe.md", got)

	got = guide.EntryPath("united states", "new york", proposals.CategorySee, "the-met")
	assert.Equal(t, "countries/United_States/New_York/See/the-met.md", got)
}

func TestIndexPaths(t *testing.T) {
	assert.Equal(t, "countries/README.md", guide.RootIndexPath())
	assert.Equal(t, "countries/Italy/README.md", guide.CountryIndexPath("Italy"))
	assert.Equal(t, "countries/Italy/Rome/README.md", guide.CityIndexPath("Italy", "Rome"))
}

func TestParseEntry(t *testing.T) {
	content := []byte("# Old Town Cafe\n\nGood coffee.\n\n---\n\n" +
		guide.SourceMarker("42") + "\n")

	title, source := guide.ParseEntry(content)
	assert.Equal(t, "Old Town Cafe", title)
	assert.Equal(t, proposals.ID("42"), source)
}

func TestParseEntryHandwritten(t *testing.T) {
	title, source := guide.ParseEntry([]byte("# Legacy Place\n\nAdded by hand.\n"))
	assert.Equal(t, "Legacy Place", title)
	assert.Equal(t, proposals.ID(""), source, "no provenance line, no source")
}
