package server

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"futbol-dashboard-service/internal/config"
	"futbol-dashboard-service/internal/metrics"
	"futbol-dashboard-service/internal/providers"
	"futbol-dashboard-service/internal/providers/apifootball"
	"futbol-dashboard-service/internal/providers/fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit +
// retry).
type providerFactory struct {
	logger  zerolog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger zerolog.Logger, recorder *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: recorder}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := f.selectProvider(cfg)
	name := normalizeProviderName(cfg.Provider)
	// Shared rate limiter to respect the upstream quota regardless of how
	// short the poll interval is configured.
	limited := providers.NewRateLimitedProvider(base, rateLimitInterval(cfg), f.logger, f.metrics, name)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, name, 0, 0)
}

func (f providerFactory) selectProvider(cfg config.Config) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "apifootball":
		return apifootball.NewClient(apifootball.Config{
			BaseURL:  cfg.APIFootball.BaseURL,
			APIKey:   cfg.APIFootball.APIKey,
			Timezone: cfg.APIFootball.Timezone,
		})
	default:
		f.logger.Warn().
			Str("provider", cfg.Provider).
			Msg("unknown provider, falling back to fixture")
		return fixture.New()
	}
}

// rateLimitInterval keeps the fixture provider snappy in local runs while
// throttling real upstream calls.
func rateLimitInterval(cfg config.Config) time.Duration {
	if cfg.Provider == "apifootball" {
		return time.Minute / 10
	}
	return time.Millisecond
}

func normalizeProviderName(raw string) string {
	if raw == "" {
		return "fixture"
	}
	return strings.ToLower(raw)
}
