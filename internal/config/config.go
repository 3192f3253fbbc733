package config

// Config holds runtime configuration for the server.
type Config struct {
	Port     string
	Provider string
	Log      LogConfig
	ESPN     ESPNConfig
	Sessions SessionConfig
	Metrics  MetricsConfig
}

// LogConfig selects the slog handler and level.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		ESPN:     loadESPN(),
		Sessions: loadSessions(),
		Metrics:  loadMetrics(),
	}
}
