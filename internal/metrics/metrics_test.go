package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCountsProviderAttempts(t *testing.T) {
	rec := NewRecorder()

	rec.RecordProviderAttempt("apifootball", 20*time.Millisecond, nil)
	rec.RecordProviderAttempt("apifootball", 30*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2, rec.ProviderCalls("apifootball"))
	assert.Equal(t, 1, rec.ProviderErrors("apifootball"))
	assert.Equal(t, 30*time.Millisecond, rec.Snapshot("apifootball").LastCallLatency)
}

func TestRecorderCountsStoreActivity(t *testing.T) {
	rec := NewRecorder()

	rec.RecordStoreWrite("addPlayer", nil)
	rec.RecordStoreWrite("addGameSession", errors.New("disk full"))
	rec.RecordBlobReset()

	writes, failures := rec.StoreWrites()
	assert.Equal(t, 2, writes)
	assert.Equal(t, 1, failures)
	assert.Equal(t, 1, rec.BlobResets())
}

func TestRecorderCountsPollerCycles(t *testing.T) {
	rec := NewRecorder()

	rec.RecordPollerCycle(time.Millisecond, nil)
	rec.RecordPollerCycle(time.Millisecond, errors.New("fetch failed"))

	cycles, failures := rec.PollerCycles()
	assert.Equal(t, 2, cycles)
	assert.Equal(t, 1, failures)
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", 0, nil)
	rec.RecordPollerCycle(0, nil)
	rec.RecordStoreWrite("x", nil)
	rec.RecordBlobReset()
	rec.RecordHTTPRequest("GET", "/", 200, 0)
	assert.Equal(t, 0, rec.ProviderCalls("x"))
}

func TestSetupDisabledReturnsRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	require.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Nil(t, handler)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupEnabledBuildsPrometheusHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.NotNil(t, handler)
	require.NoError(t, shutdown(context.Background()))
}
