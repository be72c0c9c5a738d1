package snapshots

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futbol-dashboard-service/internal/domain/matches"
	"futbol-dashboard-service/internal/logging"
	"futbol-dashboard-service/internal/testutil"
	"futbol-dashboard-service/internal/timeutil"
)

func newTestSyncer(t *testing.T, provider *testutil.StubProvider, days int) (*Syncer, string) {
	t.Helper()
	base := t.TempDir()
	s := NewSyncer(provider, NewWriter(base, days), SyncConfig{
		Enabled:  true,
		Days:     days,
		Interval: time.Millisecond,
	}, logging.Nop())
	return s, base
}

func TestBackfillWritesRecentDays(t *testing.T) {
	now := time.Now().UTC()
	byDate := make(map[string][]matches.Match)
	for i := 0; i < 3; i++ {
		d := timeutil.FormatDate(now.AddDate(0, 0, -i))
		byDate[d] = []matches.Match{{ID: "m-" + d}}
	}
	s, base := newTestSyncer(t, &testutil.StubProvider{ByDate: byDate}, 3)

	s.backfill(context.Background(), now)

	for i := 0; i < 3; i++ {
		d := timeutil.FormatDate(now.AddDate(0, 0, -i))
		_, err := os.Stat(MatchSnapshotPath(base, d))
		assert.NoError(t, err, d)
	}
}

func TestBackfillSkipsExistingOlderDays(t *testing.T) {
	now := time.Now().UTC()
	older := timeutil.FormatDate(now.AddDate(0, 0, -2))

	s, _ := newTestSyncer(t, &testutil.StubProvider{ByDate: map[string][]matches.Match{}}, 4)
	require.NoError(t, s.writer.WriteMatchesSnapshot(older, sampleDay(older)))

	dates := s.buildDates(now)
	assert.Contains(t, dates, timeutil.FormatDate(now))
	assert.Contains(t, dates, timeutil.FormatDate(now.AddDate(0, 0, -1)))
	assert.NotContains(t, dates, older)
	assert.Contains(t, dates, timeutil.FormatDate(now.AddDate(0, 0, -3)))
}

func TestBackfillToleratesFetchFailures(t *testing.T) {
	now := time.Now().UTC()
	s, base := newTestSyncer(t, &testutil.StubProvider{Err: assert.AnError}, 2)

	s.backfill(context.Background(), now)

	_, err := os.Stat(MatchSnapshotPath(base, timeutil.FormatDate(now)))
	assert.True(t, os.IsNotExist(err))
}

func TestRunDisabledIsNoop(t *testing.T) {
	s := NewSyncer(&testutil.StubProvider{}, NewWriter(t.TempDir(), 2), SyncConfig{Enabled: false}, logging.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Run(ctx)
}

func TestBackfillStopsOnCancel(t *testing.T) {
	now := time.Now().UTC()
	s, base := newTestSyncer(t, &testutil.StubProvider{ByDate: map[string][]matches.Match{
		timeutil.FormatDate(now): {{ID: "m1"}},
	}}, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.backfill(ctx, now)

	_, err := os.Stat(MatchSnapshotPath(base, timeutil.FormatDate(now)))
	assert.True(t, os.IsNotExist(err))
}
