// Package testutil holds shared fakes for package tests.
package testutil

import (
	"context"
	"sync"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/providers"
)

// StubProvider is a scriptable DataProvider. Set the result fields up front
// and inspect call counts afterwards. Safe for concurrent use.
type StubProvider struct {
	mu sync.Mutex

	Live       []matches.Match
	ByDate     map[string][]matches.Match
	ByID       map[string]matches.Match
	Events     map[string][]matches.MatchEvent
	Possession map[string]*matches.Possession
	Err        error

	LiveCalls   int
	ByDateCalls int
}

var _ providers.DataProvider = (*StubProvider)(nil)

func (s *StubProvider) FetchLive(ctx context.Context) ([]matches.Match, error) {
	s.mu.Lock()
	s.LiveCalls++
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Live, nil
}

// DateCalls reads the FetchByDate call count safely from another goroutine.
func (s *StubProvider) DateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ByDateCalls
}

func (s *StubProvider) FetchByDate(ctx context.Context, date string) ([]matches.Match, error) {
	s.mu.Lock()
	s.ByDateCalls++
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.ByDate[date], nil
}

func (s *StubProvider) FetchByID(ctx context.Context, id string) (matches.Match, error) {
	if s.Err != nil {
		return matches.Match{}, s.Err
	}
	m, ok := s.ByID[id]
	if !ok {
		return matches.Match{}, providers.ErrFixtureNotFound
	}
	return m, nil
}

func (s *StubProvider) FetchEvents(ctx context.Context, fixtureID string) ([]matches.MatchEvent, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Events[fixtureID], nil
}

func (s *StubProvider) FetchPossession(ctx context.Context, fixtureID string) (*matches.Possession, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Possession[fixtureID], nil
}
