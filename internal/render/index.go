package render

import (
	"github.com/guidemap/guidemap/pkg/proposals"
)

// Item is one link in a generated index listing.
type Item struct {
	Name string
	Href string
}

// Section is one category's listing in a city index.
type Section struct {
	Category proposals.Category
	Items    []Item
}

// noPlaces is the placeholder for a city with no entries yet.
const noPlaces = "*No places added yet.*"

// links renders items as bullet list entries.
func links(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = Link(item.Name, item.Href)
	}
	return out
}

// CityIndex renders a city's index document: the category sections with
// their place listings, then back-links to the country and root indexes.
// Sections arrive sorted; empty sections are omitted.
func CityIndex(city string, sections []Section) (string, error) {
	b := NewBuilder()

	b.H1(city).LF()
	b.PlainTextf("Your community guide to %s!", city).LF()

	empty := true
	for _, section := range sections {
		if len(section.Items) == 0 {
			continue
		}
		empty = false
		b.H2(section.Category.Heading()).LF()
		b.BulletList(links(section.Items)...).LF()
	}
	if empty {
		b.PlainText(noPlaces).LF()
	}

	b.HorizontalRule().LF()
	b.PlainText("> " + Link("← Back to Country", "../README.md") +
		" | " + Link("← Back to All Countries", "../../README.md"))

	return b.String()
}

// CountryIndex renders a country's index document listing its cities.
func CountryIndex(country string, cities []Item) (string, error) {
	b := NewBuilder()

	b.H1(country).LF()
	b.PlainTextf("Explore cities in %s!", country).LF()
	b.H2("🏙️ Cities").LF()

	if len(cities) > 0 {
		b.BulletList(links(cities)...).LF()
	} else {
		b.Italic("No cities added yet.").LF()
	}

	b.HorizontalRule().LF()
	b.PlainText("> " + Link("← Back to All Countries", "../README.md"))

	return b.String()
}

// RootIndex renders the root index document listing all countries.
func RootIndex(countries []Item) (string, error) {
	b := NewBuilder()

	b.H1("🌍 Countries Index").LF()
	b.PlainText("Welcome to the guide! Browse places by country below.").LF()
	b.H2("Available Countries").LF()

	if len(countries) > 0 {
		items := make([]string, len(countries))
		for i, c := range countries {
			items[i] = "🌍 " + Link(c.Name, c.Href)
		}
		b.BulletList(items...).LF()
	} else {
		b.Italic("No countries yet. Be the first to propose a place!").LF()
	}

	b.HorizontalRule().LF()
	b.PlainText("> This index is automatically updated when new places are approved.")

	return b.String()
}
