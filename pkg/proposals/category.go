package proposals

import (
	"strings"

	"github.com/guidemap/guidemap/pkg/errors"
)

// Category classifies a place within a city. Adding a category is a data
// change here plus a row in the rendering table, not a new type.
type Category string

// Known categories.
const (
	// CategoryEat covers restaurants, cafes, bars, and street food.
	CategoryEat Category = "Eat"

	// CategorySee covers sights, museums, parks, and viewpoints.
	CategorySee Category = "See"
)

// categoryRendering maps each category to how its index section is rendered.
var categoryRendering = map[Category]struct {
	emoji   string
	heading string
}{
	CategoryEat: {emoji: "🍽️", heading: "🍽️ Eat"},
	CategorySee: {emoji: "👀", heading: "👀 See"},
}

// Categories returns all known categories in canonical render order.
func Categories() []Category {
	return []Category{CategoryEat, CategorySee}
}

// Valid reports whether the category is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryRendering[c]
	return ok
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Heading returns the index section heading for the category.
func (c Category) Heading() string {
	return categoryRendering[c].heading
}

// Emoji returns the category's emoji marker.
func (c Category) Emoji() string {
	return categoryRendering[c].emoji
}

// ParseCategory parses a free-text category value from the intake form,
// accepting any casing of a known category name.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for known := range categoryRendering {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	return Category(trimmed), errors.NewValidationError("category", s, "unknown category")
}
