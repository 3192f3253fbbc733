package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/sports-dashboard-service/internal/config"
	"github.com/preston-bernstein/sports-dashboard-service/internal/dashboard"
	"github.com/preston-bernstein/sports-dashboard-service/internal/logging"
	"github.com/preston-bernstein/sports-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers/fixture"
	"github.com/preston-bernstein/sports-dashboard-service/internal/store"
)

// providerFactory assembles the data provider and everything that shares it.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build selects the configured provider, falling back to fixture data when
// the name is not recognized.
func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	provider, err := selectProvider(cfg, f.logger, f.metrics)
	if err != nil {
		logging.Warn(context.Background(), f.logger, "falling back to fixture provider",
			logging.FieldProvider, cfg.Provider,
			"error", err,
		)
		return fixture.New()
	}
	return provider
}

// sessions builds the session store; every session shares provider and loader.
func (f providerFactory) sessions(cfg config.Config, provider providers.DataProvider, loader *dashboard.Loader) *store.MemoryStore {
	return store.NewMemoryStore(func(id string) *dashboard.Session {
		return dashboard.NewSession(id, provider, loader, f.logger)
	}, cfg.Sessions.TTL, cfg.Sessions.MaxSessions)
}
