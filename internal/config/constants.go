package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envEspnBaseURL     = "ESPN_BASE_URL"
	envEspnAttempts    = "ESPN_MAX_ATTEMPTS"
	envEspnBackoff     = "ESPN_INITIAL_BACKOFF"
	envEspnHTTPTimeout = "ESPN_HTTP_TIMEOUT"
	envEspnRosterKeys  = "ESPN_ROSTER_KEYS"
	envSessionTTL      = "SESSION_TTL"
	envSessionMax      = "SESSION_MAX"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort      = "4000"
	defaultProvider  = ProviderESPN
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultEspnBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultEspnAttempts    = 3
	defaultEspnBackoff     = 1 * Duration(time.Second)
	defaultEspnHTTPTimeout = 10 * Duration(time.Second)

	defaultSessionTTL = 30 * Duration(time.Minute)
	// Upper bound on live sessions; the oldest idle session is evicted past it.
	defaultSessionMax = 1000

	defaultMetricsPort = "9090"
	defaultServiceName = "sports-dashboard-service"
)

// Provider names accepted by PROVIDER.
const (
	ProviderESPN    = "espn"
	ProviderFixture = "fixture"
)

var defaultRosterKeys = []string{"athletes", "roster"}
