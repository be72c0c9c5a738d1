package config

import "time"

const (
	envPrefix = "FUTBOL"

	defaultPort = "4000"
	// Conservative default poll interval to respect upstream quotas
	// (API-Football free tier: 10 req/min, 100 req/day).
	defaultPollInterval = 2 * time.Minute
	defaultProvider     = "fixture"

	defaultAPIFootballBaseURL  = "https://v3.football.api-sports.io"
	defaultAPIFootballTimezone = "UTC"

	defaultLeagueDataFile = "data/league.json"
	// Shipped default matches the seeded admin credential; override in any
	// real deployment.
	defaultAdminPassword = "Futadmin365"

	defaultMetricsEnabled = true
	defaultMetricsPort    = "9090"
	defaultServiceName    = "futbol-dashboard-service"

	defaultSnapshotSync = true
	defaultSnapshotDays = 7
	// Snapshot fetch cadence during backfill; spaced to stay under the
	// upstream quota and leave headroom.
	defaultSnapshotInterval = 90 * time.Second
	defaultSnapshotFolder   = "data/snapshots"

	defaultLogLevel  = "info"
	defaultLogFormat = "json"
)
