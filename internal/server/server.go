package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pbertain/wnbapuff/internal/app/schedule"
	"github.com/pbertain/wnbapuff/internal/app/scores"
	"github.com/pbertain/wnbapuff/internal/app/seasoninfo"
	"github.com/pbertain/wnbapuff/internal/app/standings"
	"github.com/pbertain/wnbapuff/internal/config"
	httpserver "github.com/pbertain/wnbapuff/internal/http"
	"github.com/pbertain/wnbapuff/internal/http/handlers"
	"github.com/pbertain/wnbapuff/internal/http/middleware"
	"github.com/pbertain/wnbapuff/internal/logging"
	"github.com/pbertain/wnbapuff/internal/metrics"
	"github.com/pbertain/wnbapuff/internal/poller"
	"github.com/pbertain/wnbapuff/internal/providers"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/seasonconfig"
	"github.com/pbertain/wnbapuff/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	registry      *season.Registry
	seasons       *season.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and poller wiring. The season
// calendar is loaded from cfg.Seasons.FilePath (or the embedded defaults).
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	var provs builtProviders
	if provider == nil {
		provs = newProviderFactory(logger, recorder).build(cfg)
	} else {
		wrapped := providers.NewRetryingProvider(provider, logger, 0, 0)
		provs = builtProviders{serving: wrapped, polling: wrapped}
	}

	registry, seasons, err := buildSeasons(cfg)
	if err != nil {
		return nil, err
	}

	memoryStore := store.NewMemoryStore()
	snaps := buildSnapshots(cfg)
	plr := poller.New(provs.polling, cfg.Sports, memoryStore, snaps.writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, memoryStore, snaps, seasons, registry, logger, provs.serving, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		registry:      registry,
		seasons:       seasons,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildSeasons(cfg config.Config) (*season.Registry, *season.Service, error) {
	defs, err := seasonconfig.Load(cfg.Seasons.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("load season calendar: %w", err)
	}
	registry := season.NewRegistry()
	registry.ReplaceAll(defs)
	return registry, season.NewService(registry), nil
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, snaps snapshotComponents, seasons *season.Service, registry *season.Registry, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(
		scores.NewService(memoryStore, snaps.store, provider, seasons, logger),
		schedule.NewService(provider, seasons),
		standings.NewService(provider, memoryStore, seasons, logger),
		seasoninfo.NewService(seasons, cfg.Seasons.TransitionThresholdDays),
		cfg.Sports,
		logger,
		statusFn,
	)

	// Admin endpoints are only mounted when a token is configured.
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" {
		admin = handlers.NewAdminHandler(registry, cfg.Seasons.FilePath, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
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
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited providers to avoid ticker leaks when present.
	if rl, ok := s.pollerProvider().(interface{ Close() }); ok {
		rl.Close()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// pollerProvider attempts to extract the underlying provider from the poller when available.
// Best-effort helper to enable cleanup of rate-limited tickers; safe if not supported.
func (s *Server) pollerProvider() providers.ScoreProvider {
	if pa, ok := s.poller.(interface {
		Provider() providers.ScoreProvider
	}); ok {
		return pa.Provider()
	}
	return nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
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

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
