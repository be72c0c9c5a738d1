package snapshots

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Retention   Retention   `json:"retention"`
	Matches     MatchesMeta `json:"matches"`
}

type Retention struct {
	MatchDays int `json:"matchDays"`
}

type MatchesMeta struct {
	Dates         []string  `json:"dates"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			MatchDays: retentionDays,
		},
		Matches: MatchesMeta{
			Dates:         []string{},
			LastRefreshed: time.Time{},
		},
	}
}

func readManifest(path string, retentionDays int) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return defaultManifest(retentionDays), err
	}
	var m Manifest
	if err := sonic.Unmarshal(raw, &m); err != nil {
		return defaultManifest(retentionDays), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := sonic.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
