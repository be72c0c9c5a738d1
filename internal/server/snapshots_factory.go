package server

import (
	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/config"
	"futbol-dashboard-service/internal/providers"
	"futbol-dashboard-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
	syncer *snapshots.Syncer
}

func buildSnapshots(cfg config.Config, provider providers.FixtureProvider, logger zerolog.Logger) snapshotComponents {
	basePath := cfg.Snapshots.Folder
	writer := snapshots.NewWriter(basePath, cfg.Snapshots.Days+1)
	store := snapshots.NewFSStore(basePath)
	syncer := snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{
		Enabled:  cfg.Snapshots.Enabled,
		Days:     cfg.Snapshots.Days,
		Interval: cfg.Snapshots.Interval,
	}, logger)

	return snapshotComponents{
		store:  store,
		writer: writer,
		syncer: syncer,
	}
}
