package session_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/listique/client/internal"
	"github.com/listique/client/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {

	ctx := context.Background()

	t.Run("Hands out tokens from its source", func(t *testing.T) {
		s, err := session.NewSession(session.SessionCfg{
			Source: session.NewStaticTokenSource("api-token"),
		})

		assert.Nil(t, err)

		token, err := s.Token(ctx)

		assert.Nil(t, err)
		assert.Equal(t, "api-token", token)
		assert.False(t, s.Terminated())
	})

	t.Run("Requires a token source", func(t *testing.T) {
		_, err := session.NewSession(session.SessionCfg{})
		assert.Error(t, err)
	})

	t.Run("Fails fast once terminated", func(t *testing.T) {
		s, err := session.NewSession(session.SessionCfg{
			Source: session.NewStaticTokenSource("api-token"),
		})

		assert.Nil(t, err)

		s.Terminate(internal.AuthError{StatusCode: 401, Reason: "invalid bearer token"})

		_, err = s.Token(ctx)

		authErr := internal.AuthError{}
		assert.True(t, errors.As(err, &authErr))
		assert.Equal(t, "session terminated", authErr.Reason)
		assert.True(t, s.Terminated())
	})

	t.Run("Runs the teardown hook exactly once", func(t *testing.T) {
		teardowns := atomic.Int32{}

		s, err := session.NewSession(session.SessionCfg{
			Source:     session.NewStaticTokenSource("api-token"),
			OnTeardown: func(cause error) { teardowns.Add(1) },
		})

		assert.Nil(t, err)

		wg := sync.WaitGroup{}

		for range 16 {
			wg.Add(1)

			go func() {
				defer wg.Done()
				s.Terminate(internal.AuthError{StatusCode: 401, Reason: "invalid bearer token"})
			}()
		}

		wg.Wait()

		assert.Equal(t, int32(1), teardowns.Load())
		assert.True(t, s.Terminated())
	})
}
