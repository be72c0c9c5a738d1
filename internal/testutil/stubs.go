package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"futbol-dashboard-service/internal/domain/matches"
)

// StubRefresher fakes the poller's live refresh dependency. Notify, when
// set, receives a tick after every call.
type StubRefresher struct {
	Matches []matches.Match
	Err     error
	Notify  chan struct{}
	Calls   atomic.Int64
}

func (s *StubRefresher) RefreshLive(ctx context.Context) ([]matches.Match, error) {
	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case s.Notify <- struct{}{}:
		default:
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Matches, nil
}

// StubSnapshotWriter records snapshots by date instead of touching disk.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written map[string]matches.DayResponse
	Err     error
}

func (s *StubSnapshotWriter) WriteMatchesSnapshot(date string, snapshot matches.DayResponse) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Written == nil {
		s.Written = make(map[string]matches.DayResponse)
	}
	s.Written[date] = snapshot
	return nil
}

// Snapshot returns the recorded snapshot for a date.
func (s *StubSnapshotWriter) Snapshot(date string) (matches.DayResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.Written[date]
	return snap, ok
}
