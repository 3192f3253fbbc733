package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/sports-dashboard-service/internal/config"
	"github.com/preston-bernstein/sports-dashboard-service/internal/dashboard"
	httpserver "github.com/preston-bernstein/sports-dashboard-service/internal/http"
	"github.com/preston-bernstein/sports-dashboard-service/internal/http/handlers"
	"github.com/preston-bernstein/sports-dashboard-service/internal/http/middleware"
	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
	"github.com/preston-bernstein/sports-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
	"github.com/preston-bernstein/sports-dashboard-service/internal/store"
	"github.com/preston-bernstein/sports-dashboard-service/internal/sweeper"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	sessions      *store.MemoryStore
	httpServer    httpServer
	metricsServer httpServer
	sweeper       Sweeper
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and session sweeper.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	}
	loader := dashboard.NewLoader(provider, logger, recorder)
	sessions := factory.sessions(cfg, provider, loader)
	swp := sweeper.New(sessions, logger, 0)
	httpSrv := buildHTTPServer(cfg, provider, loader, sessions, logger, recorder, swp)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		sessions:      sessions,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		sweeper:       swp,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, swp Sweeper) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		sweeper:    swp,
	}
}

func buildHTTPServer(cfg config.Config, provider providers.DataProvider, loader *dashboard.Loader, sessions handlers.SessionStore, logger *slog.Logger, recorder *metrics.Recorder, swp Sweeper) httpServer {
	var statusFn func() sweeper.Status
	if swp != nil {
		statusFn = swp.Status
	}

	handler := handlers.NewHandler(provider, loader, sessions, logger, statusFn)
	router := httpserver.NewRouter(handler)
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

// Run starts the sweeper and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.sweeper.Start(ctx)

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

	if err := s.sweeper.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop session sweeper", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), cfg.Metrics.Telemetry())
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && cfg.Metrics.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    cfg.Metrics.Addr(),
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
