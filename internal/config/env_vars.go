package config

import (
	"fmt"
	"os"
)

const (
	portEnvVar        = "PORT"
	appNameVar        = "APP_NAME"
	frontendURLEnvVar = "FRONTEND_URL"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "GitHub Login")
}

// GetFrontendURL returns the base URL of the frontend the browser is sent
// back to after the OAuth flow (e.g. "http://localhost:3000")
func (EnvVars) GetFrontendURL() string {
	return GetEnv(frontendURLEnvVar, "http://localhost:3000")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
