// Package guide defines the directory tree domain model: accepted place
// entries, the slug and naming rules that key them, and the canonical paths
// they live at under the countries/ tree.
package guide

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Slug derives the canonical file slug from a place title: lowercased, with
// every run of non-alphanumeric characters collapsed to a single hyphen.
//
//	"Old Town Cafe"         → "old-town-cafe"
//	"Trattoria da Mario!"   → "trattoria-da-mario"
func Slug(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	if b.Len() == 0 {
		return "unnamed"
	}
	return b.String()
}

// DirName converts a country or city name to its canonical directory name:
// title-cased words joined with underscores.
//
//	"new york" → "New_York"
//	"Italy"    → "Italy"
func DirName(name string) string {
	var words []string
	word := strings.Builder{}
	flush := func() {
		if word.Len() > 0 {
			words = append(words, titleCaser.String(word.String()))
			word.Reset()
		}
	}
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	if len(words) == 0 {
		return "Unnamed"
	}
	return strings.Join(words, "_")
}

// DisplayName converts a directory name or slug back to a human-readable
// name for index listings.
//
//	"New_York"      → "New York"
//	"old-town-cafe" → "Old Town Cafe"
func DisplayName(name string) string {
	name = strings.TrimSuffix(name, ".md")
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return titleCaser.String(name)
}

// NextSlug returns the first free slug for base given the sibling file names
// already present in the target directory. The base slug is used when free;
// collisions get a deterministic numeric suffix: base-2, base-3, and so on.
func NextSlug(base string, siblings []string) string {
	taken := make(map[string]bool, len(siblings))
	for _, s := range siblings {
		taken[strings.TrimSuffix(s, ".md")] = true
	}
	if !taken[base] {
		return base
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate
		}
	}
}
