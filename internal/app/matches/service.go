// Package matches exposes the read-side application service for fixture
// data: live listings straight from the poll cache, on-demand lookups by
// date or id, and per-fixture events and possession.
package matches

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	domain "futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/providers"
	"futbol-dashboard-service/internal/store"
	"futbol-dashboard-service/internal/timeutil"
)

// SnapshotLoader reads previously persisted day snapshots from disk.
type SnapshotLoader interface {
	LoadMatches(date string) (domain.DayResponse, error)
}

// Service answers fixture queries. Live listings come from the cache the
// poller maintains; date and detail lookups go upstream, with on-disk
// snapshots as the fallback when upstream is down.
type Service struct {
	provider  providers.DataProvider
	cache     *store.MatchCache
	snapshots SnapshotLoader
	logger    zerolog.Logger
	now       func() time.Time
}

func NewService(provider providers.DataProvider, cache *store.MatchCache, snapshots SnapshotLoader, logger zerolog.Logger) *Service {
	return &Service{
		provider:  provider,
		cache:     cache,
		snapshots: snapshots,
		logger:    logger,
		now:       time.Now,
	}
}

// Live returns the currently cached fixtures. The poller refreshes the
// cache on its own schedule; a request never triggers an upstream call.
func (s *Service) Live(ctx context.Context) []domain.Match {
	list := s.cache.ListMatches()
	if list == nil {
		list = []domain.Match{}
	}
	return list
}

// LastRefreshed reports when the live cache was last filled.
func (s *Service) LastRefreshed() time.Time {
	return s.cache.UpdatedAt()
}

// RefreshLive pulls the live fixtures upstream and replaces the cache. The
// poller calls this once per cycle.
func (s *Service) RefreshLive(ctx context.Context) ([]domain.Match, error) {
	list, err := s.provider.FetchLive(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh live fixtures: %w", err)
	}
	s.cache.SetMatches(list, s.now())
	logging.FromContext(ctx, s.logger).Debug().
		Int(logging.FieldCount, len(list)).
		Msg("live fixture cache refreshed")
	return list, nil
}

// ByDate returns all fixtures for a YYYY-MM-DD date. When upstream fails
// and a snapshot for the date exists on disk, the snapshot is served.
func (s *Service) ByDate(ctx context.Context, date string) (domain.DayResponse, error) {
	if _, err := timeutil.ParseDate(date); err != nil {
		return domain.DayResponse{}, fmt.Errorf("%w: date must be YYYY-MM-DD", store.ErrValidation)
	}
	list, err := s.provider.FetchByDate(ctx, date)
	if err != nil {
		if s.snapshots != nil {
			if day, snapErr := s.snapshots.LoadMatches(date); snapErr == nil {
				logging.FromContext(ctx, s.logger).Warn().
					Err(err).
					Str(logging.FieldDate, date).
					Msg("upstream fetch failed, serving day snapshot")
				return day, nil
			}
		}
		return domain.DayResponse{}, err
	}
	return domain.NewDayResponse(date, list), nil
}

// ByID returns one fixture, preferring the cache and falling back upstream
// for fixtures outside the current live set.
func (s *Service) ByID(ctx context.Context, id string) (domain.Match, error) {
	if m, err := s.cache.GetMatch(id); err == nil {
		return m, nil
	}
	return s.provider.FetchByID(ctx, id)
}

// Events returns the timeline for one fixture.
func (s *Service) Events(ctx context.Context, id string) ([]domain.MatchEvent, error) {
	events, err := s.provider.FetchEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []domain.MatchEvent{}
	}
	return events, nil
}

// Possession returns the ball-control split for one fixture, or nil when
// upstream has not reported statistics yet.
func (s *Service) Possession(ctx context.Context, id string) (*domain.Possession, error) {
	return s.provider.FetchPossession(ctx, id)
}
