package providers

import (
	"context"
	"sync/atomic"

	"futbol-dashboard-service/internal/domain/matches"
)

// stubProvider is a scriptable DataProvider for wrapper tests.
type stubProvider struct {
	calls   atomic.Int64
	live    []matches.Match
	failFor int64 // fail this many leading calls
	err     error
}

func (s *stubProvider) FetchLive(ctx context.Context) ([]matches.Match, error) {
	n := s.calls.Add(1)
	if n <= s.failFor {
		return nil, s.err
	}
	return s.live, nil
}

func (s *stubProvider) FetchByDate(ctx context.Context, date string) ([]matches.Match, error) {
	return s.FetchLive(ctx)
}

func (s *stubProvider) FetchByID(ctx context.Context, id string) (matches.Match, error) {
	list, err := s.FetchLive(ctx)
	if err != nil {
		return matches.Match{}, err
	}
	if len(list) == 0 {
		return matches.Match{}, ErrFixtureNotFound
	}
	return list[0], nil
}

func (s *stubProvider) FetchEvents(ctx context.Context, fixtureID string) ([]matches.MatchEvent, error) {
	if _, err := s.FetchLive(ctx); err != nil {
		return nil, err
	}
	return []matches.MatchEvent{}, nil
}

func (s *stubProvider) FetchPossession(ctx context.Context, fixtureID string) (*matches.Possession, error) {
	if _, err := s.FetchLive(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}
