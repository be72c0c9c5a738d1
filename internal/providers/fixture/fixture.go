// Package fixture returns a static set of matches useful for local testing
// and for running the dashboard without an API-Football key.
package fixture

import (
	"context"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/providers"
)

// Provider serves deterministic example fixtures.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchLive returns a deterministic set of in-play matches.
func (p *Provider) FetchLive(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	return sampleMatches(), nil
}

// FetchByDate returns the same sample set for any valid date.
func (p *Provider) FetchByDate(ctx context.Context, date string) ([]matches.Match, error) {
	_ = ctx
	_ = date
	return sampleMatches(), nil
}

// FetchByID returns the sample match with the given id.
func (p *Provider) FetchByID(ctx context.Context, id string) (matches.Match, error) {
	_ = ctx
	for _, m := range sampleMatches() {
		if m.ID == id {
			return m, nil
		}
	}
	return matches.Match{}, providers.ErrFixtureNotFound
}

// FetchEvents returns a deterministic timeline for any fixture id.
func (p *Provider) FetchEvents(ctx context.Context, fixtureID string) ([]matches.MatchEvent, error) {
	_ = ctx
	_ = fixtureID
	return []matches.MatchEvent{
		{ID: "23-101-Goal", Minute: 23, Type: matches.EventGoal, Team: "Barcelona", Player: "Lamine Yamal", Detail: "Normal Goal"},
		{ID: "41-202-Card", Minute: 41, Type: matches.EventCard, Team: "Real Madrid", Player: "Aurélien Tchouaméni", Detail: "Yellow Card"},
		{ID: "58-103-subst", Minute: 58, Type: matches.EventSubstitution, Team: "Barcelona", Player: "Fermín López", Detail: "Substitution 1"},
	}, nil
}

// FetchPossession returns a fixed split for any fixture id.
func (p *Provider) FetchPossession(ctx context.Context, fixtureID string) (*matches.Possession, error) {
	_ = ctx
	_ = fixtureID
	return &matches.Possession{Home: 61, Away: 39}, nil
}

func sampleMatches() []matches.Match {
	minute := 63
	return []matches.Match{
		{
			ID:       "fixture-1",
			HomeTeam: matches.MatchTeam{ID: "529", Name: "Barcelona", Score: 2},
			AwayTeam: matches.MatchTeam{ID: "541", Name: "Real Madrid", Score: 1},
			Status:   matches.StatusLive,
			Minute:   &minute,
			League:   "La Liga",
		},
		{
			ID:       "fixture-2",
			HomeTeam: matches.MatchTeam{ID: "50", Name: "Manchester City", Score: 0},
			AwayTeam: matches.MatchTeam{ID: "42", Name: "Arsenal", Score: 0},
			Status:   matches.StatusUpcoming,
			League:   "Premier League",
		},
	}
}
