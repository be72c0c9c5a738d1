// Package config loads runtime configuration from an optional YAML file and
// FUTBOL_-prefixed environment variables, with sensible defaults for every
// knob.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string            `mapstructure:"port" validate:"required"`
	PollInterval time.Duration     `mapstructure:"poll_interval" validate:"gt=0"`
	Provider     string            `mapstructure:"provider" validate:"oneof=fixture apifootball"`
	APIFootball  APIFootballConfig `mapstructure:"apifootball"`
	League       LeagueConfig      `mapstructure:"league"`
	Metrics      MetricsConfig     `mapstructure:"metrics"`
	Snapshots    SnapshotConfig    `mapstructure:"snapshots"`
	Log          LogConfig         `mapstructure:"log"`
}

// APIFootballConfig controls how we talk to the API-Football vendor API.
type APIFootballConfig struct {
	BaseURL  string `mapstructure:"base_url" validate:"required,url"`
	APIKey   string `mapstructure:"api_key"`
	Timezone string `mapstructure:"timezone" validate:"required"`
}

// LeagueConfig controls the friend-league blob store and admin access.
type LeagueConfig struct {
	DataFile      string `mapstructure:"data_file" validate:"required"`
	AdminPassword string `mapstructure:"admin_password" validate:"required"`
}

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Port         string `mapstructure:"port"`
	OtlpEndpoint string `mapstructure:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"`
	OtlpInsecure bool   `mapstructure:"otlp_insecure"`
}

// SnapshotConfig controls the date-keyed fixture snapshot syncer.
type SnapshotConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Days     int           `mapstructure:"days" validate:"gte=0"`
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
	Folder   string        `mapstructure:"folder" validate:"required"`
}

// LogConfig controls log output.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Load reads configuration from the optional file at path (empty means env
// and defaults only) plus FUTBOL_-prefixed environment variables, e.g.
// FUTBOL_LEAGUE_ADMIN_PASSWORD overrides league.admin_password.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", defaultPort)
	v.SetDefault("poll_interval", defaultPollInterval)
	v.SetDefault("provider", defaultProvider)

	v.SetDefault("apifootball.base_url", defaultAPIFootballBaseURL)
	v.SetDefault("apifootball.api_key", "")
	v.SetDefault("apifootball.timezone", defaultAPIFootballTimezone)

	v.SetDefault("league.data_file", defaultLeagueDataFile)
	v.SetDefault("league.admin_password", defaultAdminPassword)

	v.SetDefault("metrics.enabled", defaultMetricsEnabled)
	v.SetDefault("metrics.port", defaultMetricsPort)
	v.SetDefault("metrics.otlp_endpoint", "")
	v.SetDefault("metrics.service_name", defaultServiceName)
	v.SetDefault("metrics.otlp_insecure", true)

	v.SetDefault("snapshots.enabled", defaultSnapshotSync)
	v.SetDefault("snapshots.days", defaultSnapshotDays)
	v.SetDefault("snapshots.interval", defaultSnapshotInterval)
	v.SetDefault("snapshots.folder", defaultSnapshotFolder)

	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.format", defaultLogFormat)
}
