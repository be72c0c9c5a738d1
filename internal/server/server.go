// Package server wires configuration, providers, stores, services, the
// poller and the HTTP surface into one runnable unit.
package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	appleague "futbol-dashboard-service/internal/app/league"
	appmatches "futbol-dashboard-service/internal/app/matches"
	"futbol-dashboard-service/internal/config"
	httpapi "futbol-dashboard-service/internal/http"
	"futbol-dashboard-service/internal/metrics"
	"futbol-dashboard-service/internal/poller"
	"futbol-dashboard-service/internal/providers"
	"futbol-dashboard-service/internal/snapshots"
	"futbol-dashboard-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        zerolog.Logger
	metrics       *metrics.Recorder
	matchService  *appmatches.Service
	leagueService *appleague.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	syncer        *snapshots.Syncer
	provider      providers.DataProvider
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger zerolog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger zerolog.Logger, provider providers.DataProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	snaps := buildSnapshots(cfg, provider, logger)
	matchSvc, leagueSvc := buildServices(cfg, provider, snaps.store, logger, recorder)
	plr := poller.New(matchSvc, snaps.writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, matchSvc, leagueSvc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		matchService:  matchSvc,
		leagueService: leagueSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		syncer:        snaps.syncer,
		provider:      provider,
		metricsStop:   metricsShutdown,
	}
}

func buildServices(cfg config.Config, provider providers.DataProvider, snapStore snapshots.Store, logger zerolog.Logger, recorder *metrics.Recorder) (*appmatches.Service, *appleague.Service) {
	leagueStore := store.NewLeagueStore(store.Config{
		Backend: store.NewFSBackend(cfg.League.DataFile),
		Logger:  logger,
		Metrics: recorder,
	})
	matchSvc := appmatches.NewService(provider, store.NewMatchCache(), snapStore, logger)
	leagueSvc := appleague.NewService(leagueStore, logger)
	return matchSvc, leagueSvc
}

func buildHTTPServer(cfg config.Config, matchSvc *appmatches.Service, leagueSvc *appleague.Service, logger zerolog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Logger:        logger,
		Metrics:       recorder,
		Matches:       matchSvc,
		League:        leagueSvc,
		Poller:        plr,
		AdminPassword: cfg.League.AdminPassword,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

func buildMetrics(cfg config.Config, logger zerolog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("metrics setup failed, continuing without telemetry")
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}
	return rec, metricsSrv, shutdown
}

// Run starts the poller, snapshot syncer and HTTP server, then waits for
// context cancellation to shut down gracefully. The syncer runs on the same
// context so cancellation stops both polling loops.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	go s.syncer.Run(ctx)
	s.poller.Start(ctx)

	<-ctx.Done()
	s.logger.Info().Msg("shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			s.logger.Warn().Err(err).Msg("metrics shutdown failed")
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn().Err(err).Msg("metrics server shutdown failed")
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("failed to stop poller")
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.provider.(interface{ Close() }); ok {
		rl.Close()
	}

	s.logger.Info().Msg("shutdown complete")
}

func launchServer(name string, srv httpServer, logger zerolog.Logger, onError func(error)) {
	go func() {
		logger.Info().Str("addr", srv.Addr()).Msg("starting " + name + " server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn().Err(err).Msg(name + " server failed")
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
