package config_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/go-github-login/internal/config"
	"github.com/stretchr/testify/require"
)

func TestGetPort(t *testing.T) {
	c := config.New()

	t.Run("default", func(t *testing.T) {
		require.Equal(t, ":8080", c.GetPort())
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		require.Equal(t, ":9090", c.GetPort())
	})

	t.Run("already prefixed", func(t *testing.T) {
		t.Setenv("PORT", ":9090")
		require.Equal(t, ":9090", c.GetPort())
	})
}

func TestGetAllowedOrigins(t *testing.T) {
	c := config.New()

	t.Run("defaults to frontend URL", func(t *testing.T) {
		t.Setenv("FRONTEND_URL", "http://frontend.test")
		origins := c.GetAllowedOrigins()
		require.True(t, origins.IsAllowedOrigin("http://frontend.test"))
		require.False(t, origins.IsAllowedOrigin("http://evil.test"))
	})

	t.Run("extra origins from env", func(t *testing.T) {
		t.Setenv("FRONTEND_URL", "http://frontend.test")
		t.Setenv("ALLOWED_ORIGINS", "http://staging.test, http://preview.test")
		origins := c.GetAllowedOrigins()
		require.True(t, origins.IsAllowedOrigin("http://frontend.test"))
		require.True(t, origins.IsAllowedOrigin("http://staging.test"))
		require.True(t, origins.IsAllowedOrigin("http://preview.test"))
	})
}

func TestSessionConfig(t *testing.T) {
	c := config.New()

	t.Run("defaults", func(t *testing.T) {
		require.Equal(t, 24*time.Hour, c.GetSessionTTL())
		require.Equal(t, 5*time.Minute, c.GetSessionCleanupInterval())
		require.Equal(t, 10*time.Second, c.GetGithubRequestTimeout())
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "30m")
		t.Setenv("SESSION_CLEANUP_INTERVAL", "1m")
		t.Setenv("GITHUB_REQUEST_TIMEOUT", "5s")
		require.Equal(t, 30*time.Minute, c.GetSessionTTL())
		require.Equal(t, time.Minute, c.GetSessionCleanupInterval())
		require.Equal(t, 5*time.Second, c.GetGithubRequestTimeout())
	})

	t.Run("unparseable value falls back to default", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "soon")
		require.Equal(t, 24*time.Hour, c.GetSessionTTL())
	})
}

func TestGithubConfig(t *testing.T) {
	c := config.New()

	t.Setenv("GITHUB_CLIENT_ID", "test-client-id")
	t.Setenv("GITHUB_CLIENT_SECRET", "test-client-secret")
	t.Setenv("GITHUB_CALLBACK_URL", "https://auth.example.com/api/auth/github/callback")

	require.Equal(t, "test-client-id", c.GetGithubClientID())
	require.Equal(t, "test-client-secret", c.GetGithubClientSecret())
	require.Equal(t, "https://auth.example.com/api/auth/github/callback", c.GetGithubCallbackURL())
}
