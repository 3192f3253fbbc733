package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/preston-bernstein/sports-dashboard-service/internal/config"
	"github.com/preston-bernstein/sports-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/sports-dashboard-service/internal/providers/fixture"
)

// selectProvider maps cfg.Provider to a data provider. Unknown names return
// an error wrapping providers.ErrProviderUnavailable.
func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.DataProvider, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderESPN, "":
		return espn.NewClient(espn.Config{
			BaseURL:      cfg.ESPN.BaseURL,
			HTTPClient:   &http.Client{Timeout: cfg.ESPN.HTTPTimeout},
			MaxAttempts:  cfg.ESPN.MaxAttempts,
			InitialDelay: cfg.ESPN.InitialBackoff,
			RosterKeys:   cfg.ESPN.RosterKeys,
			Logger:       logger,
			Metrics:      recorder,
		}), nil
	case config.ProviderFixture:
		return fixture.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", providers.ErrProviderUnavailable, cfg.Provider)
	}
}
