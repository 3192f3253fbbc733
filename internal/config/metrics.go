package config

import "github.com/preston-bernstein/sports-dashboard-service/internal/metrics"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

// Telemetry converts the settings into the metrics package's setup input.
// An empty service name falls back to the default.
func (m MetricsConfig) Telemetry() metrics.TelemetryConfig {
	name := m.ServiceName
	if name == "" {
		name = defaultServiceName
	}
	return metrics.TelemetryConfig{
		Enabled:      m.Enabled,
		Port:         m.Port,
		ServiceName:  name,
		OtlpEndpoint: m.OtlpEndpoint,
		OtlpInsecure: m.OtlpInsecure,
	}
}

// Addr is the listen address of the Prometheus endpoint.
func (m MetricsConfig) Addr() string {
	return ":" + m.Port
}
