package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 2*time.Minute, cfg.PollInterval)
	assert.Equal(t, "fixture", cfg.Provider)
	assert.Equal(t, "https://v3.football.api-sports.io", cfg.APIFootball.BaseURL)
	assert.Equal(t, "UTC", cfg.APIFootball.Timezone)
	assert.Equal(t, "data/league.json", cfg.League.DataFile)
	assert.NotEmpty(t, cfg.League.AdminPassword)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "9090", cfg.Metrics.Port)
	assert.True(t, cfg.Snapshots.Enabled)
	assert.Equal(t, 7, cfg.Snapshots.Days)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FUTBOL_PORT", "8080")
	t.Setenv("FUTBOL_PROVIDER", "apifootball")
	t.Setenv("FUTBOL_POLL_INTERVAL", "30s")
	t.Setenv("FUTBOL_APIFOOTBALL_API_KEY", "secret-key")
	t.Setenv("FUTBOL_LEAGUE_ADMIN_PASSWORD", "hunter2")
	t.Setenv("FUTBOL_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "apifootball", cfg.Provider)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, "secret-key", cfg.APIFootball.APIKey)
	assert.Equal(t, "hunter2", cfg.League.AdminPassword)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
port: "5000"
provider: apifootball
league:
  data_file: /tmp/league.json
log:
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "apifootball", cfg.Provider)
	assert.Equal(t, "/tmp/league.json", cfg.League.DataFile)
	assert.Equal(t, "console", cfg.Log.Format)
	// Untouched sections keep defaults.
	assert.Equal(t, "9090", cfg.Metrics.Port)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("FUTBOL_PROVIDER", "espn")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
