package snapshots

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/providers"
	"futbol-dashboard-service/internal/timeutil"
)

// Syncer backfills the recent fixture snapshots on startup and keeps them
// fresh once a day. Fetches are spaced by Interval so a backfill never
// bursts through the upstream quota.
type Syncer struct {
	provider  providers.FixtureProvider
	writer    *Writer
	cfg       SyncConfig
	logger    zerolog.Logger
	now       func() time.Time
	newTicker func(time.Duration) *time.Ticker
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled      bool
	Days         int
	Interval     time.Duration
	DailyHourUTC int
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider providers.FixtureProvider, writer *Writer, cfg SyncConfig, logger zerolog.Logger) *Syncer {
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.DailyHourUTC < 0 || cfg.DailyHourUTC > 23 {
		cfg.DailyHourUTC = 2
	}

	return &Syncer{
		provider:  provider,
		writer:    writer,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		newTicker: time.NewTicker,
	}
}

// Run performs a one-time backfill for the last N days, spaced by Interval,
// then keeps refreshing daily. Callers should run this in a goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.provider == nil {
		return
	}
	s.logger.Info().
		Int("past_days", s.cfg.Days).
		Str("interval", s.cfg.Interval.String()).
		Int("daily_hour_utc", s.cfg.DailyHourUTC).
		Msg("snapshot sync starting")
	s.backfill(ctx, s.now().UTC())
	go s.daily(ctx)
}

func (s *Syncer) backfill(ctx context.Context, now time.Time) {
	dates := s.buildDates(now)
	for i, date := range dates {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.fetchAndWrite(ctx, date)
		if i < len(dates)-1 {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
}

func (s *Syncer) daily(ctx context.Context) {
	ticker := s.newTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.UTC().Hour() == s.cfg.DailyHourUTC {
				s.backfill(ctx, s.now().UTC())
			}
		}
	}
}

func (s *Syncer) buildDates(now time.Time) []string {
	var dates []string
	today := timeutil.FormatDate(now)
	yesterday := timeutil.FormatDate(now.AddDate(0, 0, -1))

	// Always refresh today and yesterday to capture live/final scores.
	dates = append(dates, today, yesterday)

	// Past window beyond yesterday: only fetch if missing (startup or outage).
	for i := 2; i < s.cfg.Days; i++ {
		date := timeutil.FormatDate(now.AddDate(0, 0, -i))
		if !s.hasSnapshot(kindMatches, date) {
			dates = append(dates, date)
		}
	}

	return dates
}

func (s *Syncer) fetchAndWrite(ctx context.Context, date string) {
	start := time.Now()
	list, err := s.provider.FetchByDate(ctx, date)
	if err != nil {
		s.logger.Warn().Str("date", date).Err(err).Msg("snapshot sync fetch failed")
		return
	}
	if len(list) == 0 {
		s.logger.Debug().Str("date", date).Msg("snapshot sync received no fixtures")
		return
	}
	if err := s.writer.WriteMatchesSnapshot(date, matches.NewDayResponse(date, list)); err != nil {
		s.logger.Warn().Str("date", date).Err(err).Msg("snapshot sync write failed")
		return
	}
	s.logger.Info().
		Str("date", date).
		Int(logging.FieldCount, len(list)).
		Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()).
		Msg("fixtures snapshot written")
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Syncer) hasSnapshot(kind snapshotKind, date string) bool {
	if s == nil || s.writer == nil || s.writer.basePath == "" || date == "" {
		return false
	}
	_, err := os.Stat(s.writer.snapshotPath(kind, date))
	return err == nil
}
