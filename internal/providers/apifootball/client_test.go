package apifootball

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/providers"
)

const liveFixturePayload = `{
	"get": "fixtures",
	"errors": [],
	"results": 1,
	"response": [
		{
			"fixture": {"id": 777, "status": {"short": "HT", "elapsed": 45}},
			"league": {"name": "Serie A"},
			"teams": {
				"home": {"id": 496, "name": "Juventus", "logo": "https://example.com/496.png"},
				"away": {"id": 505, "name": "Inter", "logo": "https://example.com/505.png"}
			},
			"goals": {"home": 1, "away": null}
		}
	]
}`

func TestFetchLiveSendsAuthHeadersAndParams(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Write([]byte(liveFixturePayload))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, APIKey: "secret-key"})
	result, err := client.FetchLive(context.Background())
	require.NoError(t, err)

	require.NotNil(t, gotReq)
	assert.Equal(t, "secret-key", gotReq.Header.Get(headerAPIKey))
	assert.Equal(t, apiHost, gotReq.Header.Get(headerAPIHost))
	assert.Equal(t, "all", gotReq.URL.Query().Get("live"))
	assert.Equal(t, "/fixtures", gotReq.URL.Path)

	require.Len(t, result, 1)
	m := result[0]
	assert.Equal(t, "777", m.ID)
	assert.Equal(t, matches.StatusHalfTime, m.Status)
	assert.Equal(t, 1, m.HomeTeam.Score)
	assert.Equal(t, 0, m.AwayTeam.Score, "null goals default to 0")
	require.NotNil(t, m.Minute)
	assert.Equal(t, 45, *m.Minute)
}

func TestFetchByDateValidatesFormat(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused"})
	_, err := client.FetchByDate(context.Background(), "28/08/2026")
	assert.Error(t, err)
}

func TestFetchByDatePassesDateParam(t *testing.T) {
	var gotDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.URL.Query().Get("date")
		w.Write([]byte(`{"get":"fixtures","errors":[],"response":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result, err := client.FetchByDate(context.Background(), "2026-08-28")
	require.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, "2026-08-28", gotDate)
}

func TestFetchByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"get":"fixtures","errors":[],"response":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchByID(context.Background(), "12345")
	assert.ErrorIs(t, err, providers.ErrFixtureNotFound)
}

func TestNon2xxBecomesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("rate limit exceeded"))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchLive(context.Background())

	ue, ok := providers.AsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, ue.StatusCode)
	assert.Contains(t, ue.Error(), "rate limit exceeded")
}

func TestVendorErrorObjectIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"get":"fixtures","errors":{"token":"Error/Missing application key."},"response":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchLive(context.Background())

	ue, ok := providers.AsUpstreamError(err)
	require.True(t, ok)
	assert.Contains(t, ue.Error(), "token: Error/Missing application key.")
}

func TestVendorErrorArrayIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"get":"fixtures","errors":["requests limit reached"],"response":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	_, err := client.FetchLive(context.Background())

	_, ok := providers.AsUpstreamError(err)
	require.True(t, ok)
	assert.Contains(t, err.Error(), "requests limit reached")
}

func TestEmptyErrorsAreNotFailures(t *testing.T) {
	// Both empty shapes the vendor produces.
	for _, errs := range []string{`[]`, `{}`, `null`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"get":"fixtures","errors":` + errs + `,"response":[]}`))
		}))

		client := NewClient(Config{BaseURL: srv.URL})
		_, err := client.FetchLive(context.Background())
		assert.NoError(t, err, "errors=%s", errs)
		srv.Close()
	}
}

func TestFetchEventsAndPossession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fixtures/events":
			w.Write([]byte(`{"get":"fixtures/events","errors":[],"response":[
				{"time":{"elapsed":12},"team":{"name":"Juventus"},"player":{"id":55,"name":"Dusan Vlahovic"},"type":"Goal","detail":"Normal Goal"}
			]}`))
		case "/fixtures/statistics":
			w.Write([]byte(`{"get":"fixtures/statistics","errors":[],"response":[
				{"team":{"id":496},"statistics":[{"type":"Ball Possession","value":"54%"}]},
				{"team":{"id":505},"statistics":[{"type":"Ball Possession","value":"46%"}]}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})

	events, err := client.FetchEvents(context.Background(), "777")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "12-55-Goal", events[0].ID)
	assert.Equal(t, matches.EventGoal, events[0].Type)

	pos, err := client.FetchPossession(context.Background(), "777")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, 54, pos.Home)
	assert.Equal(t, 46, pos.Away)
}
