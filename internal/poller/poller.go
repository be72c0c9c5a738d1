// Package poller drives the live fixture refresh loop: fetch on an
// interval, feed the in-memory cache, and persist the day's snapshot.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/metrics"
	"futbol-dashboard-service/internal/timeutil"
)

const defaultInterval = 30 * time.Second

// LiveRefresher pulls the live fixtures upstream and caches them.
type LiveRefresher interface {
	RefreshLive(ctx context.Context) ([]matches.Match, error)
}

// SnapshotWriter persists fixture snapshots to disk.
type SnapshotWriter interface {
	WriteMatchesSnapshot(date string, snapshot matches.DayResponse) error
}

// Poller refreshes live fixtures on an interval and writes today's snapshot
// to disk.
type Poller struct {
	refresher LiveRefresher
	writer    SnapshotWriter
	logger    zerolog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	now       func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(refresher LiveRefresher, writer SnapshotWriter, logger zerolog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher: refresher,
		writer:    writer,
		logger:    logger,
		metrics:   recorder,
		interval:  interval,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logger.Info().
			Int64(logging.FieldDurationMS, p.interval.Milliseconds()).
			Msg("poller started")
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logger.Info().Msg("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logger.Info().Msg("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	list, err := p.refresher.RefreshLive(ctx)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		p.logger.Error().
			Err(err).
			Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()).
			Msg("poller fetch failed")
		p.recordFailure(err, start)
		return
	}

	if p.writer != nil {
		today := timeutil.FormatDate(p.now().UTC())
		snap := matches.NewDayResponse(today, list)
		if writeErr := p.writer.WriteMatchesSnapshot(today, snap); writeErr != nil {
			p.logger.Error().Err(writeErr).Msg("poller snapshot write failed")
		}
	}
	p.recordSuccess(start)
	p.logger.Info().
		Int(logging.FieldCount, len(list)).
		Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()).
		Msg("poller refreshed fixtures")
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
