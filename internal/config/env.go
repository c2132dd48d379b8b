package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/listique/client/internal/session"
)

const (
	apiBaseUrl        = "API_BASE_URL"
	apiToken          = "API_TOKEN"
	tokenUrl          = "TOKEN_URL"
	tokenClientId     = "TOKEN_CLIENT_ID"
	tokenClientSecret = "TOKEN_CLIENT_SECRET"
	tokenScopes       = "TOKEN_SCOPES"
	redisUrl          = "REDIS_URL"
	cacheTtlInSeconds = "CACHE_TTL_IN_SECONDS"
	pageSize          = "PAGE_SIZE"
	maxRetries        = "MAX_RETRIES"
	requestsPerSecond = "REQUESTS_PER_SECOND"
	channelSize       = "CHANNEL_SIZE"
)

const (
	defaultTtl               = 30 * time.Second
	defaultPageSize          = 20
	defaultMaxRetries        = 3
	defaultRequestsPerSecond = 10
	defaultChannelSize       = 10
)

type EnvConfig struct{}

func (cfg EnvConfig) GetApiUrl() (string, error) {

	url, ok := os.LookupEnv(apiBaseUrl)

	if !ok {
		return "", fmt.Errorf("api base url env variable %s not set", apiBaseUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetStaticToken() *string {

	if token, ok := os.LookupEnv(apiToken); ok {
		return &token
	}

	return nil
}

func (cfg EnvConfig) GetOAuthTokenCfg() (oCfg session.OAuthTokenCfg, err error) {

	url, ok := os.LookupEnv(tokenUrl)

	if !ok {
		return oCfg, fmt.Errorf("token url env variable %s not set", tokenUrl)
	}

	oCfg.TokenUrl = url
	oCfg.ClientID = os.Getenv(tokenClientId)
	oCfg.ClientSecret = os.Getenv(tokenClientSecret)

	if scopes, ok := os.LookupEnv(tokenScopes); ok {
		oCfg.Scopes = &scopes
	}

	return oCfg, nil
}

func (cfg EnvConfig) GetRedisUrl() (string, error) {

	url, ok := os.LookupEnv(redisUrl)

	if !ok {
		return "", fmt.Errorf("redis url %s not set", redisUrl)
	}

	return url, nil
}

func (cfg EnvConfig) GetTTL() (time.Duration, error) {

	ttlStr, ok := os.LookupEnv(cacheTtlInSeconds)

	if !ok {
		return defaultTtl, nil
	}

	ttl, err := strconv.Atoi(ttlStr)

	if err != nil {
		return 0, fmt.Errorf("failed to parse cache ttl %s - %w", ttlStr, err)
	}

	return time.Duration(ttl) * time.Second, nil
}

func (cfg EnvConfig) GetPageSize() (int, error) {
	return lookupInt(pageSize, defaultPageSize)
}

func (cfg EnvConfig) GetMaxRetries() (int, error) {
	return lookupInt(maxRetries, defaultMaxRetries)
}

func (cfg EnvConfig) GetRequestsPerSecond() (int, error) {
	return lookupInt(requestsPerSecond, defaultRequestsPerSecond)
}

func (cfg EnvConfig) GetChannelSize() (int, error) {
	return lookupInt(channelSize, defaultChannelSize)
}

func lookupInt(envVar string, fallback int) (int, error) {

	valueStr, ok := os.LookupEnv(envVar)

	if !ok {
		return fallback, nil
	}

	value, err := strconv.Atoi(valueStr)

	if err != nil {
		return 0, fmt.Errorf("failed to parse %s - %w", envVar, err)
	}

	return value, nil
}

func NewEnvConfig(envFile *string) (*EnvConfig, error) {

	if envFile == nil {
		cfg := EnvConfig{}
		return &cfg, nil
	}

	err := godotenv.Load(*envFile)

	if err != nil {
		return nil, fmt.Errorf("failed to load env file %s - %w", *envFile, err)
	}

	cfg := EnvConfig{}
	return &cfg, nil
}
