package config

import "time"

type SessionConfig interface {
	GetSessionTTL() time.Duration
	GetSessionCleanupInterval() time.Duration
	GetGithubRequestTimeout() time.Duration
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetSessionTTL() time.Duration {
	return GetDurationEnv("SESSION_TTL", 24*time.Hour)
}

func (Session) GetSessionCleanupInterval() time.Duration {
	return GetDurationEnv("SESSION_CLEANUP_INTERVAL", 5*time.Minute)
}

// GetGithubRequestTimeout bounds each outbound call to GitHub (token
// exchange, profile fetch). Expiry is treated the same as a transport
// failure.
func (Session) GetGithubRequestTimeout() time.Duration {
	return GetDurationEnv("GITHUB_REQUEST_TIMEOUT", 10*time.Second)
}

// GetDurationEnv reads a duration env var (e.g. "30m", "12h"), falling back
// to the default when unset or unparseable.
func GetDurationEnv(envVar string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(GetEnv(envVar, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
