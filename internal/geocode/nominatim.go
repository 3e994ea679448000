package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/guidemap/guidemap/pkg/constants"
	"github.com/guidemap/guidemap/pkg/errors"
	"github.com/guidemap/guidemap/pkg/logging"
)

// ambiguityMargin is the maximum importance gap between the top two distinct
// matches for a lookup to count as ambiguous. A clear front-runner wins even
// when lesser matches exist.
const ambiguityMargin = 0.1

// Client resolves city names against a Nominatim-compatible geocoding
// service.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
	attempts  uint64
	backoff   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the geocoding service base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithUserAgent sets the User-Agent header sent to the service. Nominatim's
// usage policy requires an identifying agent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithAttempts sets the number of attempts per lookup call.
func WithAttempts(n uint64) Option {
	return func(c *Client) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithBackoff sets the base backoff between attempts.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.backoff = d
	}
}

// NewClient creates a Nominatim client with options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: constants.LookupTimeout},
		baseURL:   constants.DefaultNominatimURL,
		userAgent: constants.UserAgent,
		attempts:  constants.LookupAttempts,
		backoff:   constants.LookupBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// nominatimResult is one match in a Nominatim search response.
type nominatimResult struct {
	PlaceID     int64   `json:"place_id"`
	Lat         string  `json:"lat"`
	Lon         string  `json:"lon"`
	Importance  float64 `json:"importance"`
	DisplayName string  `json:"display_name"`
	Address     struct {
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		Country      string `json:"country"`
	} `json:"address"`
}

// Resolve queries the service and classifies the outcome. Service errors and
// timeouts are retried with exponential backoff up to the configured attempt
// cap before surfacing as a transient LookupError.
func (c *Client) Resolve(ctx context.Context, country, city string) (Result, error) {
	logger := logging.FromContext(ctx)

	var matches []nominatimResult

	backoff := retry.WithMaxRetries(c.attempts-1,
		retry.NewExponential(c.backoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var attemptErr error
		matches, attemptErr = c.search(ctx, country, city)
		if attemptErr != nil {
			logger.Warn().
				Err(attemptErr).
				Str("city", city).
				Msg("Geocoder attempt failed")
			return retry.RetryableError(attemptErr)
		}
		return nil
	})
	if err != nil {
		return Result{}, errors.NewLookupError(country, city, 0, err)
	}

	return classify(country, city, matches), nil
}

// search performs a single search request.
func (c *Client) search(ctx context.Context, country, city string) ([]nominatimResult, error) {
	q := url.Values{}
	q.Set("format", "jsonv2")
	q.Set("addressdetails", "1")
	q.Set("accept-language", "en")
	q.Set("limit", "5")
	if country != "" {
		q.Set("city", city)
		q.Set("country", country)
	} else {
		q.Set("q", city)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var matches []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("decoding geocoder response: %w", err)
	}
	return matches, nil
}

// classify turns raw matches into a Result. Matches that resolve to the same
// canonical (country, city) pair are duplicates of one location; distinct
// pairs whose importance scores are too close to call are ambiguous.
func classify(country, city string, matches []nominatimResult) Result {
	if len(matches) == 0 {
		return Result{Status: StatusNotFound}
	}

	locations := make([]Location, 0, len(matches))
	seen := map[string]bool{}
	top := -1.0
	for _, m := range matches {
		loc := m.location(city)
		if loc.Country == "" {
			continue
		}
		key := Key(loc.Country, loc.City)
		if seen[key] {
			continue
		}
		seen[key] = true
		locations = append(locations, loc)
		if len(locations) == 1 {
			top = m.Importance
		} else if top-m.Importance < ambiguityMargin {
			return Result{Status: StatusAmbiguous}
		}
	}

	if len(locations) == 0 {
		return Result{Status: StatusNotFound}
	}
	return Result{Status: StatusResolved, Location: &locations[0]}
}

// location extracts the canonical record from a match, preferring the most
// specific settlement field the way the address schema nests them.
func (m nominatimResult) location(queried string) Location {
	name := m.Address.City
	if name == "" {
		name = m.Address.Town
	}
	if name == "" {
		name = m.Address.Village
	}
	if name == "" {
		name = m.Address.Municipality
	}
	if name == "" {
		name = queried
	}

	lat, _ := strconv.ParseFloat(m.Lat, 64)
	lon, _ := strconv.ParseFloat(m.Lon, 64)

	return Location{
		Country:    m.Address.Country,
		City:       name,
		Lat:        lat,
		Lon:        lon,
		Confidence: m.Importance,
	}
}
