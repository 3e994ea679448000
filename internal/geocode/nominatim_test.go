package geocode_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidemap/guidemap/internal/geocode"
	"github.com/guidemap/guidemap/pkg/errors"
)

const romeResponse = `[
  {
    "place_id": 1,
    "lat": "41.8933203",
    "lon": "12.4829321",
    "importance": 0.83,
    "display_name": "Rome, Italy",
    "address": {"city": "Rome", "country": "Italy"}
  }
]`

const springfieldResponse = `[
  {
    "place_id": 1,
    "lat": "39.7990",
    "lon": "-89.6439",
    "importance": 0.62,
    "display_name": "Springfield, Illinois",
    "address": {"city": "Springfield", "country": "United States"}
  },
  {
    "place_id": 2,
    "lat": "42.1015",
    "lon": "-72.5898",
    "importance": 0.61,
    "display_name": "Springfield, Massachusetts",
    "address": {"city": "Springfield", "country": "United States of America"}
  }
]`

func newServer(t *testing.T, handler http.HandlerFunc) *geocode.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return geocode.NewClient(
		geocode.WithBaseURL(server.URL),
		geocode.WithAttempts(1),
	)
}

func TestResolveResolved(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Rome", r.URL.Query().Get("city"))
		assert.Equal(t, "Italy", r.URL.Query().Get("country"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(romeResponse))
	})

	result, err := client.Resolve(context.Background(), "Italy", "Rome")
	require.NoError(t, err)
	require.Equal(t, geocode.StatusResolved, result.Status)
	require.NotNil(t, result.Location)
	assert.Equal(t, "Rome", result.Location.City)
	assert.Equal(t, "Italy", result.Location.Country)
	assert.InDelta(t, 41.89332, result.Location.Lat, 0.001)
}

func TestResolveNormalizesSettlementFields(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"place_id":1,"lat":"1","lon":"2","importance":0.5,
			"address":{"town":"Positano","country":"Italy"}}]`))
	})

	result, err := client.Resolve(context.Background(), "Italy", "positano")
	require.NoError(t, err)
	require.Equal(t, geocode.StatusResolved, result.Status)
	assert.Equal(t, "Positano", result.Location.City)
}

func TestResolveNotFound(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	})

	result, err := client.Resolve(context.Background(), "", "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, geocode.StatusNotFound, result.Status)
	assert.Nil(t, result.Location)
}

func TestResolveAmbiguous(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(springfieldResponse))
	})

	result, err := client.Resolve(context.Background(), "", "Springfield")
	require.NoError(t, err)
	assert.Equal(t, geocode.StatusAmbiguous, result.Status)
}

func TestResolveClearFrontRunnerWins(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[
			{"place_id":1,"lat":"1","lon":"2","importance":0.9,
			 "address":{"city":"Paris","country":"France"}},
			{"place_id":2,"lat":"3","lon":"4","importance":0.3,
			 "address":{"city":"Paris","country":"United States"}}
		]`))
	})

	result, err := client.Resolve(context.Background(), "", "Paris")
	require.NoError(t, err)
	require.Equal(t, geocode.StatusResolved, result.Status)
	assert.Equal(t, "France", result.Location.Country)
}

func TestResolveTransientError(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Resolve(context.Background(), "Italy", "Rome")
	require.Error(t, err)
	assert.True(t, errors.IsTransient(err))

	var lookupErr *errors.LookupError
	assert.True(t, errors.As(err, &lookupErr))
}

func TestResolveRetriesServerErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(romeResponse))
	}))
	t.Cleanup(server.Close)

	client := geocode.NewClient(
		geocode.WithBaseURL(server.URL),
		geocode.WithAttempts(2),
		geocode.WithBackoff(time.Millisecond),
	)

	result, err := client.Resolve(context.Background(), "Italy", "Rome")
	require.NoError(t, err)
	assert.Equal(t, geocode.StatusResolved, result.Status)
	assert.Equal(t, 2, calls)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "new york", geocode.Normalize("  New   York "))
	assert.Equal(t, "italy|rome", geocode.Key("Italy", "ROME"))
}
