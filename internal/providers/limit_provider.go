package providers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/metrics"
)

// rateLimitedProvider wraps a DataProvider and enforces a minimum interval
// between upstream calls. The free API-Football tier allows only a handful
// of requests per minute, so calls block until the interval elapses.
type rateLimitedProvider struct {
	next     DataProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   zerolog.Logger
	metrics  *metrics.Recorder
	name     string
}

// NewRateLimitedProvider returns a DataProvider that limits calls to the
// given interval.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger zerolog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
		metrics:  recorder,
		name:     name,
	}
}

// Close stops the internal ticker. Safe to call once during shutdown.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		return ErrProviderUnavailable
	}
	start := time.Now()
	select {
	case <-ctx.Done():
		logging.FromContext(ctx, p.logger).Warn().
			Str(logging.FieldProvider, p.name).
			Msg("rate-limited fetch canceled")
		return ctx.Err()
	case <-p.ticker.C:
	}
	if waited := time.Since(start); waited > time.Millisecond {
		p.metrics.RecordRateLimit(p.name, waited)
	}
	return nil
}

func (p *rateLimitedProvider) FetchLive(ctx context.Context) ([]matches.Match, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchLive(ctx)
}

func (p *rateLimitedProvider) FetchByDate(ctx context.Context, date string) ([]matches.Match, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchByDate(ctx, date)
}

func (p *rateLimitedProvider) FetchByID(ctx context.Context, id string) (matches.Match, error) {
	if err := p.wait(ctx); err != nil {
		return matches.Match{}, err
	}
	return p.next.FetchByID(ctx, id)
}

func (p *rateLimitedProvider) FetchEvents(ctx context.Context, fixtureID string) ([]matches.MatchEvent, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchEvents(ctx, fixtureID)
}

func (p *rateLimitedProvider) FetchPossession(ctx context.Context, fixtureID string) (*matches.Possession, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchPossession(ctx, fixtureID)
}
