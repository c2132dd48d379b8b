package config

import (
	"fmt"
	"time"

	"github.com/listique/client/internal/session"
)

// TestConfig satisfies every configurator the client declares, with
// defaults sized for fast tests.
type TestConfig struct {
	ApiUrl     string
	Token      *string
	OAuth      *session.OAuthTokenCfg
	Ttl        time.Duration
	Retries    int
	Rps        int
	PageLen    int
	RedisUri   string
	ChannelCap int
}

func NewTestConfig(apiUrl string, token string) *TestConfig {
	return &TestConfig{
		ApiUrl:     apiUrl,
		Token:      &token,
		Ttl:        time.Minute,
		Retries:    2,
		Rps:        1000,
		PageLen:    5,
		ChannelCap: 10,
	}
}

func (c *TestConfig) GetApiUrl() (string, error) {
	return c.ApiUrl, nil
}

func (c *TestConfig) GetStaticToken() *string {
	return c.Token
}

func (c *TestConfig) GetOAuthTokenCfg() (session.OAuthTokenCfg, error) {

	if c.OAuth == nil {
		return session.OAuthTokenCfg{}, fmt.Errorf("oauth is not configured")
	}

	return *c.OAuth, nil
}

func (c *TestConfig) GetTTL() (time.Duration, error) {
	return c.Ttl, nil
}

func (c *TestConfig) GetMaxRetries() (int, error) {
	return c.Retries, nil
}

func (c *TestConfig) GetRequestsPerSecond() (int, error) {
	return c.Rps, nil
}

func (c *TestConfig) GetPageSize() (int, error) {
	return c.PageLen, nil
}

func (c *TestConfig) GetRedisUrl() (string, error) {

	if c.RedisUri == "" {
		return "", fmt.Errorf("redis is not configured")
	}

	return c.RedisUri, nil
}

func (c *TestConfig) GetChannelSize() (int, error) {
	return c.ChannelCap, nil
}
