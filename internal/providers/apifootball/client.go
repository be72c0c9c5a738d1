package apifootball

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/providers"
	"futbol-dashboard-service/internal/timeutil"
)

// Config controls how the API-Football client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timezone   string
}

// Client fetches fixtures from API-Football and maps them to the app's
// match model.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
	loc        *time.Location
}

// NewClient constructs an API-Football client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
		loc:        resolveLocation(cfg.Timezone),
	}
}

// FetchLive retrieves all fixtures currently in play.
func (c *Client) FetchLive(ctx context.Context) ([]matches.Match, error) {
	var fixtures []fixtureResponse
	if err := c.get(ctx, "/fixtures", map[string]string{"live": "all"}, &fixtures); err != nil {
		return nil, err
	}
	return mapFixtures(fixtures), nil
}

// FetchByDate retrieves the fixtures for a given day (YYYY-MM-DD). An empty
// date means today in the client's configured timezone.
func (c *Client) FetchByDate(ctx context.Context, date string) ([]matches.Match, error) {
	if date == "" {
		date = timeutil.FormatDate(c.now().In(c.loc))
	} else if _, err := timeutil.ParseDate(date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	var fixtures []fixtureResponse
	if err := c.get(ctx, "/fixtures", map[string]string{"date": date}, &fixtures); err != nil {
		return nil, err
	}
	return mapFixtures(fixtures), nil
}

// FetchByID retrieves a single fixture by its upstream id.
func (c *Client) FetchByID(ctx context.Context, id string) (matches.Match, error) {
	var fixtures []fixtureResponse
	if err := c.get(ctx, "/fixtures", map[string]string{"id": id}, &fixtures); err != nil {
		return matches.Match{}, err
	}
	if len(fixtures) == 0 {
		return matches.Match{}, providers.ErrFixtureNotFound
	}
	return mapFixture(fixtures[0]), nil
}

// FetchEvents retrieves the goal/card/substitution timeline for a fixture.
func (c *Client) FetchEvents(ctx context.Context, fixtureID string) ([]matches.MatchEvent, error) {
	var events []eventResponse
	if err := c.get(ctx, "/fixtures/events", map[string]string{"fixture": fixtureID}, &events); err != nil {
		return nil, err
	}
	return mapEvents(events), nil
}

// FetchPossession retrieves fixture statistics and extracts the possession
// split. Returns nil (with a nil error) when upstream reports no usable
// possession metric.
func (c *Client) FetchPossession(ctx context.Context, fixtureID string) (*matches.Possession, error) {
	var stats []statisticsResponse
	if err := c.get(ctx, "/fixtures/statistics", map[string]string{"fixture": fixtureID}, &stats); err != nil {
		return nil, err
	}
	return extractPossession(stats), nil
}

// get performs a GET against the upstream API, attaching the auth headers
// and query parameters, and decodes the response payload into out. A
// non-2xx status or a non-empty vendor errors field is a failure, never a
// partial success.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set(headerAPIHost, apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Messages:   []string{strings.TrimSpace(string(body))},
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: decode response: %w", providerName, err)
	}

	if msgs := vendorErrors(env.Errors); len(msgs) > 0 {
		return &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Messages:   msgs,
		}
	}

	if len(env.Response) == 0 {
		return nil
	}
	return json.Unmarshal(env.Response, out)
}

// vendorErrors extracts error messages from the vendor's errors field,
// which may be a JSON array or an object keyed by parameter name.
func vendorErrors(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var asMap map[string]string
	if err := json.Unmarshal(raw, &asMap); err == nil {
		keys := make([]string, 0, len(asMap))
		for key := range asMap {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		msgs := make([]string, 0, len(keys))
		for _, key := range keys {
			msgs = append(msgs, key+": "+asMap[key])
		}
		return msgs
	}

	var asList []any
	if err := json.Unmarshal(raw, &asList); err == nil {
		msgs := make([]string, 0, len(asList))
		for _, item := range asList {
			msgs = append(msgs, fmt.Sprintf("%v", item))
		}
		return msgs
	}

	return []string{string(raw)}
}
