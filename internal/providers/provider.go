package providers

import (
	"context"

	"futbol-dashboard-service/internal/domain/matches"
)

// FixtureProvider defines how upstream fixture data is fetched and
// normalized. The date parameter, when provided, should be a YYYY-MM-DD
// string; providers interpret an empty date as "today" in their configured
// timezone.
type FixtureProvider interface {
	// FetchLive returns all fixtures currently in play.
	FetchLive(ctx context.Context) ([]matches.Match, error)
	// FetchByDate returns the fixtures scheduled or played on a given day.
	FetchByDate(ctx context.Context, date string) ([]matches.Match, error)
	// FetchByID returns one fixture; ErrFixtureNotFound when absent upstream.
	FetchByID(ctx context.Context, id string) (matches.Match, error)
}

// EventProvider fetches the normalized timeline for one fixture.
type EventProvider interface {
	FetchEvents(ctx context.Context, fixtureID string) ([]matches.MatchEvent, error)
}

// StatisticsProvider fetches possession for one fixture. A nil Possession
// with a nil error means upstream reported no usable possession metric;
// callers must treat that as "unknown", never as 0-0.
type StatisticsProvider interface {
	FetchPossession(ctx context.Context, fixtureID string) (*matches.Possession, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	FixtureProvider
	EventProvider
	StatisticsProvider
}
