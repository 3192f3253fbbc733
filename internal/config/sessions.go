package config

// SessionConfig bounds the in-memory dashboard sessions.
type SessionConfig struct {
	TTL         Duration // idle time before a session is pruned
	MaxSessions int
}

func loadSessions() SessionConfig {
	return SessionConfig{
		TTL:         durationEnvOrDefault(envSessionTTL, defaultSessionTTL),
		MaxSessions: intEnvOrDefault(envSessionMax, defaultSessionMax),
	}
}
