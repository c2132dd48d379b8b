package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/listique/client/internal/config"
	"github.com/stretchr/testify/assert"
)

// unset clears a variable for one test while keeping the restore that
// t.Setenv registers.
func unset(t *testing.T, name string) {
	t.Setenv(name, "")
	os.Unsetenv(name)
}

func TestEnvConfig(t *testing.T) {

	cfg, err := config.NewEnvConfig(nil)
	assert.Nil(t, err)

	t.Run("Reads the api base url", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://localhost:8080")

		url, err := cfg.GetApiUrl()

		assert.Nil(t, err)
		assert.Equal(t, "http://localhost:8080", url)
	})

	t.Run("Fails when the api base url is not set", func(t *testing.T) {
		unset(t, "API_BASE_URL")

		_, err := cfg.GetApiUrl()

		assert.Error(t, err)
	})

	t.Run("Reads the static api token when present", func(t *testing.T) {
		t.Setenv("API_TOKEN", "static-token")

		token := cfg.GetStaticToken()

		assert.NotNil(t, token)
		assert.Equal(t, "static-token", *token)
	})

	t.Run("Has no static token otherwise", func(t *testing.T) {
		unset(t, "API_TOKEN")
		assert.Nil(t, cfg.GetStaticToken())
	})

	t.Run("Assembles the oauth config", func(t *testing.T) {
		t.Setenv("TOKEN_URL", "http://localhost/oauth2/token")
		t.Setenv("TOKEN_CLIENT_ID", "test-client")
		t.Setenv("TOKEN_CLIENT_SECRET", "test-secret")
		t.Setenv("TOKEN_SCOPES", "tickets:read")

		oauthCfg, err := cfg.GetOAuthTokenCfg()

		assert.Nil(t, err)
		assert.Equal(t, "http://localhost/oauth2/token", oauthCfg.TokenUrl)
		assert.Equal(t, "test-client", oauthCfg.ClientID)
		assert.Equal(t, "test-secret", oauthCfg.ClientSecret)
		assert.NotNil(t, oauthCfg.Scopes)
		assert.Equal(t, "tickets:read", *oauthCfg.Scopes)
	})

	t.Run("Fails when the token url is not set", func(t *testing.T) {
		unset(t, "TOKEN_URL")

		_, err := cfg.GetOAuthTokenCfg()

		assert.Error(t, err)
	})

	t.Run("Falls back to the default ttl", func(t *testing.T) {
		unset(t, "CACHE_TTL_IN_SECONDS")

		ttl, err := cfg.GetTTL()

		assert.Nil(t, err)
		assert.Equal(t, 30*time.Second, ttl)
	})

	t.Run("Reads the ttl in seconds", func(t *testing.T) {
		t.Setenv("CACHE_TTL_IN_SECONDS", "45")

		ttl, err := cfg.GetTTL()

		assert.Nil(t, err)
		assert.Equal(t, 45*time.Second, ttl)
	})

	t.Run("Rejects a ttl that is not a number", func(t *testing.T) {
		t.Setenv("CACHE_TTL_IN_SECONDS", "soon")

		_, err := cfg.GetTTL()

		assert.Error(t, err)
	})

	t.Run("Falls back to the numeric defaults", func(t *testing.T) {
		unset(t, "PAGE_SIZE")
		unset(t, "MAX_RETRIES")
		unset(t, "REQUESTS_PER_SECOND")
		unset(t, "CHANNEL_SIZE")

		tests := []struct {
			name     string
			getter   func() (int, error)
			fallback int
		}{
			{name: "page size", getter: cfg.GetPageSize, fallback: 20},
			{name: "max retries", getter: cfg.GetMaxRetries, fallback: 3},
			{name: "requests per second", getter: cfg.GetRequestsPerSecond, fallback: 10},
			{name: "channel size", getter: cfg.GetChannelSize, fallback: 10},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				value, err := tt.getter()

				assert.Nil(t, err)
				assert.Equal(t, tt.fallback, value)
			})
		}
	})

	t.Run("Reads numeric overrides", func(t *testing.T) {
		t.Setenv("PAGE_SIZE", "50")

		value, err := cfg.GetPageSize()

		assert.Nil(t, err)
		assert.Equal(t, 50, value)
	})

	t.Run("Rejects numeric garbage", func(t *testing.T) {
		t.Setenv("MAX_RETRIES", "lots")

		_, err := cfg.GetMaxRetries()

		assert.Error(t, err)
	})

	t.Run("Reads the redis url", func(t *testing.T) {
		t.Setenv("REDIS_URL", "redis://localhost:6379")

		url, err := cfg.GetRedisUrl()

		assert.Nil(t, err)
		assert.Equal(t, "redis://localhost:6379", url)
	})

	t.Run("Fails when the redis url is not set", func(t *testing.T) {
		unset(t, "REDIS_URL")

		_, err := cfg.GetRedisUrl()

		assert.Error(t, err)
	})
}

func TestNewEnvConfig(t *testing.T) {

	t.Run("Loads variables from an env file", func(t *testing.T) {
		unset(t, "API_BASE_URL")

		envFile := filepath.Join(t.TempDir(), ".env")
		err := os.WriteFile(envFile, []byte("API_BASE_URL=http://from-file:8080\n"), 0600)
		assert.Nil(t, err)

		cfg, err := config.NewEnvConfig(&envFile)
		assert.Nil(t, err)

		url, err := cfg.GetApiUrl()

		assert.Nil(t, err)
		assert.Equal(t, "http://from-file:8080", url)
	})

	t.Run("Fails on a missing env file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "missing.env")

		_, err := config.NewEnvConfig(&envFile)

		assert.Error(t, err)
	})
}
