// Package geocode resolves free-text city names to canonical locations via
// an external lookup service. Results are classified into exactly one of
// four outcomes: resolved, ambiguous, not found, or a transient lookup
// error. Only a resolved outcome lets a proposal continue; ambiguity is
// treated as failure and never auto-picked.
package geocode

import (
	"context"
	"strings"
)

// Status classifies the outcome of a lookup.
type Status string

// Lookup outcomes.
const (
	// StatusResolved means a single canonical location was found.
	StatusResolved Status = "resolved"

	// StatusAmbiguous means several equally plausible locations matched.
	StatusAmbiguous Status = "ambiguous"

	// StatusNotFound means no location matched.
	StatusNotFound Status = "not_found"
)

// Location is the canonical, de-duplicated record a resolved lookup
// produces. It is immutable once produced and cached by normalized
// (country, city) key.
type Location struct {
	Country    string  `yaml:"country"`
	City       string  `yaml:"city"`
	Lat        float64 `yaml:"lat"`
	Lon        float64 `yaml:"lon"`
	Confidence float64 `yaml:"confidence,omitempty"`
}

// Result is the classified outcome of a lookup. Location is set only when
// Status is StatusResolved.
type Result struct {
	Status   Status    `yaml:"status"`
	Location *Location `yaml:"location,omitempty"`
}

// Resolver resolves a city name with an optional country hint.
// A non-nil error is always transient (network, timeout, service failure);
// definitive outcomes, including not-found and ambiguous, come back in the
// Result.
type Resolver interface {
	Resolve(ctx context.Context, country, city string) (Result, error)
}

// Normalize canonicalizes a name for cache keys and queries: trimmed,
// lowercased, internal whitespace collapsed to single spaces.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Key builds the cache key for a (country, city) pair.
func Key(country, city string) string {
	return Normalize(country) + "|" + Normalize(city)
}
