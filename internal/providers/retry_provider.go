package providers

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with exponential backoff retries.
type retryingProvider struct {
	inner       DataProvider
	logger      zerolog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/interval are <= 0, defaults are used. Client errors (4xx
// except 429) are not retried.
func NewRetryingProvider(inner DataProvider, logger zerolog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

func (r *retryingProvider) FetchLive(ctx context.Context) ([]matches.Match, error) {
	return retryFetch(ctx, r, "live", func() ([]matches.Match, error) {
		return r.inner.FetchLive(ctx)
	})
}

func (r *retryingProvider) FetchByDate(ctx context.Context, date string) ([]matches.Match, error) {
	return retryFetch(ctx, r, "by-date", func() ([]matches.Match, error) {
		return r.inner.FetchByDate(ctx, date)
	})
}

func (r *retryingProvider) FetchByID(ctx context.Context, id string) (matches.Match, error) {
	return retryFetch(ctx, r, "by-id", func() (matches.Match, error) {
		return r.inner.FetchByID(ctx, id)
	})
}

func (r *retryingProvider) FetchEvents(ctx context.Context, fixtureID string) ([]matches.MatchEvent, error) {
	return retryFetch(ctx, r, "events", func() ([]matches.MatchEvent, error) {
		return r.inner.FetchEvents(ctx, fixtureID)
	})
}

func (r *retryingProvider) FetchPossession(ctx context.Context, fixtureID string) (*matches.Possession, error) {
	return retryFetch(ctx, r, "statistics", func() (*matches.Possession, error) {
		return r.inner.FetchPossession(ctx, fixtureID)
	})
}

func retryFetch[T any](ctx context.Context, r *retryingProvider, op string, fn func() (T, error)) (T, error) {
	var result T

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.interval
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		start := time.Now()
		value, err := fn()
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err != nil {
			if permanent(err) {
				return backoff.Permanent(err)
			}
			r.logWarn(ctx, op, attempt, err)
			return err
		}
		result = value
		return nil
	}, policy)

	return result, err
}

// permanent reports whether an upstream failure should not be retried.
func permanent(err error) bool {
	ue, ok := AsUpstreamError(err)
	if !ok {
		return false
	}
	return ue.StatusCode >= 400 && ue.StatusCode < 500 && ue.StatusCode != 429
}

func (r *retryingProvider) logWarn(ctx context.Context, op string, attempt int, err error) {
	logger := logging.FromContext(ctx, r.logger)
	logger.Warn().
		Str(logging.FieldProvider, r.name).
		Str("op", op).
		Int("attempt", attempt).
		Int("max_attempts", r.maxAttempts).
		Err(err).
		Msg("provider fetch retry")
}
