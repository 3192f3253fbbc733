package config

// ESPNConfig controls how we talk to the ESPN site API.
type ESPNConfig struct {
	BaseURL        string
	MaxAttempts    int
	InitialBackoff Duration
	HTTPTimeout    Duration
	// RosterKeys is the lookup order for the roster list in roster payloads.
	RosterKeys []string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL:        envOrDefault(envEspnBaseURL, defaultEspnBaseURL),
		MaxAttempts:    intEnvOrDefault(envEspnAttempts, defaultEspnAttempts),
		InitialBackoff: durationEnvOrDefault(envEspnBackoff, defaultEspnBackoff),
		HTTPTimeout:    durationEnvOrDefault(envEspnHTTPTimeout, defaultEspnHTTPTimeout),
		RosterKeys:     listEnvOrDefault(envEspnRosterKeys, defaultRosterKeys),
	}
}
