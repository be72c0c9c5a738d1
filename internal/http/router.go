// Package http builds the gin engine and mounts all routes.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appleague "futbol-dashboard-service/internal/app/league"
	appmatches "futbol-dashboard-service/internal/app/matches"
	"futbol-dashboard-service/internal/http/handlers"
	"futbol-dashboard-service/internal/http/middleware"
	"futbol-dashboard-service/internal/metrics"
)

// APIV1Prefix is the canonical base path for the public HTTP API.
const APIV1Prefix = "/api/v1"

// RouterConfig carries everything the router mounts.
type RouterConfig struct {
	Logger        zerolog.Logger
	Metrics       *metrics.Recorder
	Matches       *appmatches.Service
	League        *appleague.Service
	Poller        handlers.PollerStatus
	AdminPassword string
}

// NewRouter builds the gin engine with all middleware and routes attached.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Logger, cfg.Metrics))

	health := handlers.NewHealthHandler(cfg.Poller, cfg.League)
	r.GET("/health", health.Liveness)
	r.GET("/ready", health.Readiness)

	matchHandler := handlers.NewMatchHandler(cfg.Matches)
	leagueHandler := handlers.NewLeagueHandler(cfg.League)

	api := r.Group(APIV1Prefix)
	{
		matchHandler.Register(api)
		leagueHandler.Register(api)

		admin := api.Group("", middleware.AdminAuth(cfg.AdminPassword))
		leagueHandler.RegisterAdmin(admin)
	}

	return r
}
