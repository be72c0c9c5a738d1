package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appleague "futbol-dashboard-service/internal/app/league"
	appmatches "futbol-dashboard-service/internal/app/matches"
	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/http/middleware"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/metrics"
	"futbol-dashboard-service/internal/poller"
	"futbol-dashboard-service/internal/store"
	"futbol-dashboard-service/internal/testutil"
)

const testAdminPassword = "test-secret"

type stubPollerStatus struct {
	status poller.Status
}

func (s stubPollerStatus) Status() poller.Status { return s.status }

type testEnv struct {
	router  *gin.Engine
	backend *store.MemoryBackend
	matches *appmatches.Service
}

func newTestEnv(t *testing.T, provider *testutil.StubProvider) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := store.NewMemoryBackend()
	leagueStore := store.NewLeagueStore(store.Config{
		Backend: backend,
		Logger:  logging.Nop(),
	})
	matchSvc := appmatches.NewService(provider, store.NewMatchCache(), nil, logging.Nop())
	leagueSvc := appleague.NewService(leagueStore, logging.Nop())

	router := NewRouter(RouterConfig{
		Logger:        logging.Nop(),
		Metrics:       metrics.NewRecorder(),
		Matches:       matchSvc,
		League:        leagueSvc,
		Poller:        stubPollerStatus{status: poller.Status{LastSuccess: time.Now()}},
		AdminPassword: testAdminPassword,
	})
	return &testEnv{router: router, backend: backend, matches: matchSvc}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set(middleware.HeaderAdminPassword, testAdminPassword)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/ready", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyDegradedWhenPollerFailing(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})
	gin.SetMode(gin.TestMode)

	router := NewRouter(RouterConfig{
		Logger:  logging.Nop(),
		Metrics: metrics.NewRecorder(),
		Matches: env.matches,
		League:  appleague.NewService(store.NewLeagueStore(store.Config{Logger: logging.Nop()}), logging.Nop()),
		Poller:  stubPollerStatus{status: poller.Status{}},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLiveMatchesServedFromCache(t *testing.T) {
	provider := &testutil.StubProvider{Live: []matches.Match{
		{ID: "m1", Status: matches.StatusLive},
	}}
	env := newTestEnv(t, provider)

	_, err := env.matches.RefreshLive(context.Background())
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/v1/matches/live", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]json.RawMessage](t, w)
	var list []matches.Match
	require.NoError(t, json.Unmarshal(body["matches"], &list))
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].ID)
}

func TestMatchesByDateRequiresDate(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodGet, "/api/v1/matches", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/matches?date=not-a-date", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchByIDNotFound(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodGet, "/api/v1/matches/unknown", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchStatisticsNullPossession(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodGet, "/api/v1/matches/m1/statistics", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"possession":null}`, w.Body.String())
}

func TestAdminRoutesRequirePassword(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodPost, "/api/v1/league/players", gin.H{
		"fullName": "Juan Pérez",
		"position": "Forward",
	}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLeaguePlayerLifecycleOverHTTP(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodPost, "/api/v1/league/players", gin.H{
		"fullName": "Juan Pérez",
		"alias":    "Juanpe",
		"dorsal":   9,
		"position": "Forward",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[map[string]any](t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	w = env.do(t, http.MethodGet, "/api/v1/league/players", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPatch, "/api/v1/league/players/"+id, gin.H{
		"alias": "El Capitán",
	}, true)
	require.Equal(t, http.StatusOK, w.Code)
	patched := decode[map[string]any](t, w)
	assert.Equal(t, "El Capitán", patched["alias"])

	w = env.do(t, http.MethodPost, "/api/v1/league/sessions", gin.H{
		"date": "2025-03-02",
		"playerStats": []gin.H{
			{"playerId": id, "goals": 2, "assists": 1},
		},
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/league/players/"+id+"/averages", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	averages := decode[map[string]float64](t, w)
	assert.InDelta(t, 2.0, averages["goalsPerGame"], 0.0001)
	assert.InDelta(t, 1.0, averages["assistsPerGame"], 0.0001)

	w = env.do(t, http.MethodGet, "/api/v1/league/leaderboard", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/league/players/"+id, nil, true)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Session history survives the roster removal.
	w = env.do(t, http.MethodGet, "/api/v1/league/sessions", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	sessions := decode[map[string]json.RawMessage](t, w)
	assert.Contains(t, string(sessions["sessions"]), id)
}

func TestCreatePlayerValidation(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodPost, "/api/v1/league/players", gin.H{
		"fullName": "Ana",
		"position": "Striker",
	}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStorageFailureMapsTo500(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})
	env.backend.SaveErr = assert.AnError

	w := env.do(t, http.MethodPost, "/api/v1/league/players", gin.H{
		"fullName": "Juan Pérez",
		"position": "Forward",
	}, true)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	payload := decode[map[string]any](t, w)
	assert.Equal(t, "storage_error", payload["error"])
}

func TestAveragesUnknownPlayer(t *testing.T) {
	env := newTestEnv(t, &testutil.StubProvider{})

	w := env.do(t, http.MethodGet, "/api/v1/league/players/ghost/averages", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
