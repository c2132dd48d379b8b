package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/listique/client/internal"
	"github.com/listique/client/internal/metrics"
)

type SessionCfg struct {
	Source TokenSource

	// OnTeardown runs once when the session is terminated, e.g. to drop
	// credentials and send the user back to the login screen.
	OnTeardown func(cause error)
}

// Session hands out bearer tokens until the backend rejects one, after
// which it is terminated for good. Termination happens at most once no
// matter how many requests fail concurrently.
type Session struct {
	source     TokenSource
	onTeardown func(error)
	once       sync.Once
	terminated atomic.Bool
}

func NewSession(cfg SessionCfg) (*Session, error) {

	if cfg.Source == nil {
		return nil, fmt.Errorf("token source is required")
	}

	s := &Session{
		source:     cfg.Source,
		onTeardown: cfg.OnTeardown,
	}

	return s, nil
}

func (s *Session) Token(ctx context.Context) (string, error) {

	if s.terminated.Load() {
		return "", internal.AuthError{Reason: "session terminated"}
	}

	token, err := s.source.Token(ctx)

	if err != nil {
		return "", fmt.Errorf("failed to get session token - %w", err)
	}

	return token, nil
}

func (s *Session) Terminate(cause error) {

	s.once.Do(func() {
		s.terminated.Store(true)
		metrics.Teardowns.Inc()
		slog.Warn("terminating session", "cause", cause)

		if s.onTeardown != nil {
			s.onTeardown(cause)
		}
	})
}

func (s *Session) Terminated() bool {
	return s.terminated.Load()
}
