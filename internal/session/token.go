package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type TokenSourceConfigurator interface {
	GetStaticToken() *string
	GetOAuthTokenCfg() (OAuthTokenCfg, error)
}

// NewTokenSource picks a static token when one is configured and falls back
// to the client credentials flow otherwise.
func NewTokenSource(c TokenSourceConfigurator) (TokenSource, error) {

	if token := c.GetStaticToken(); token != nil {
		return NewStaticTokenSource(*token), nil
	}

	cfg, err := c.GetOAuthTokenCfg()

	if err != nil {
		return nil, fmt.Errorf("failed to configure a token source - %w", err)
	}

	return NewOAuthTokenSource(cfg), nil
}

type StaticTokenSource struct {
	token string
}

func NewStaticTokenSource(token string) *StaticTokenSource {

	if expiry, ok := TokenExpiry(token); ok && time.Now().After(expiry) {
		slog.Warn("configured api token is already expired", "expiredAt", expiry)
	}

	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) Token(ctx context.Context) (string, error) {
	return s.token, nil
}

type OAuthTokenCfg struct {
	TokenUrl     string
	ClientID     string
	ClientSecret string
	Scopes       *string
}

type OAuthTokenSource struct {
	tokenUrl     string
	clientID     string
	clientSecret string
	scopes       *string
	client       *http.Client
	token        string
	tokenExpiry  time.Time
	mutex        sync.RWMutex
}

func NewOAuthTokenSource(cfg OAuthTokenCfg) *OAuthTokenSource {
	return &OAuthTokenSource{
		tokenUrl:     cfg.TokenUrl,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		scopes:       cfg.Scopes,
		client:       http.DefaultClient,
	}
}

func (s *OAuthTokenSource) Token(ctx context.Context) (string, error) {

	s.mutex.RLock()

	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		token := s.token
		s.mutex.RUnlock()
		return token, nil
	}

	s.mutex.RUnlock()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Double check after acquiring write lock
	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	token, expiry, err := s.GenerateToken(ctx)

	if err != nil {
		return "", err
	}

	s.token = token
	s.tokenExpiry = expiry

	return token, nil
}

func (s *OAuthTokenSource) GenerateToken(ctx context.Context) (string, time.Time, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenUrl, nil)

	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create token request - %w", err)
	}

	query := req.URL.Query()
	query.Set("grant_type", "client_credentials")

	if s.scopes != nil {
		query.Set("scope", *s.scopes)
	}

	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(s.clientID, s.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)

	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to execute token request - %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", time.Time{}, fmt.Errorf("token request failed with status %d - %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to decode token response - %w", err)
	}

	expiry := time.Now().Add(time.Duration(result.ExpiresIn) * time.Second)

	if result.ExpiresIn == 0 {
		if claimed, ok := TokenExpiry(result.AccessToken); ok {
			expiry = claimed
		}
	}

	return result.AccessToken, expiry, nil
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The second return is false when the token is not a JWT or carries no exp.
func TokenExpiry(token string) (time.Time, bool) {

	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()

	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
