package cache_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listique/client/internal/cache"
	"github.com/listique/client/internal/di"
	"github.com/listique/client/internal/dto"
	tcfg "github.com/listique/client/internal/testutils/config"
)

func TestRedisStore(t *testing.T) {

	ctx := context.Background()

	scenario, closer, err := di.InjectRedisScenario(ctx)

	if err != nil {
		t.Fatal(err)
		return
	}

	defer closer()

	store := scenario.Store

	t.Run("Misses keys it has never seen", func(t *testing.T) {
		_, err, ok := store.Get(ctx, "res:unknown:gen")

		assert.Nil(t, err)
		assert.False(t, ok)
	})

	t.Run("Round trips a value", func(t *testing.T) {
		err := store.Set(ctx, "greeting", "hello", 0)
		assert.Nil(t, err)

		value, err, ok := store.Get(ctx, "greeting")

		assert.Nil(t, err)
		assert.True(t, ok)
		assert.Equal(t, "hello", value)
	})

	t.Run("Expires entries after their ttl", func(t *testing.T) {
		err := store.Set(ctx, "fleeting", "hello", 50*time.Millisecond)
		assert.Nil(t, err)

		time.Sleep(100 * time.Millisecond)

		_, err, ok := store.Get(ctx, "fleeting")

		assert.Nil(t, err)
		assert.False(t, ok)
	})

	t.Run("Deletes keys", func(t *testing.T) {
		assert.Nil(t, store.Set(ctx, "a", "1", 0))
		assert.Nil(t, store.Set(ctx, "b", "2", 0))

		err := store.Del(ctx, "a", "b", "missing")
		assert.Nil(t, err)

		_, _, ok := store.Get(ctx, "a")
		assert.False(t, ok)

		_, _, ok = store.Get(ctx, "b")
		assert.False(t, ok)
	})

	t.Run("Increments a generation counter", func(t *testing.T) {
		counter, err := store.Incr(ctx, "res:tickets:gen")
		assert.Nil(t, err)
		assert.Equal(t, int64(1), counter)

		counter, err = store.Incr(ctx, "res:tickets:gen")
		assert.Nil(t, err)
		assert.Equal(t, int64(2), counter)
	})

	t.Run("Shares cached pages between cache instances", func(t *testing.T) {
		cfg := tcfg.NewTestConfig("http://localhost", "test-token")

		first, err := cache.NewQueryCache(cache.QueryCacheCfg{Store: store, Configurator: cfg})
		assert.Nil(t, err)

		second, err := cache.NewQueryCache(cache.QueryCacheCfg{Store: store, Configurator: cfg})
		assert.Nil(t, err)

		envelope := []byte(`{"count": 1, "data": [{"id": "a"}]}`)
		page := dto.PageRequest{Page: 1, PageSize: 5}
		loads := atomic.Int32{}

		load := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			return envelope, nil
		}

		raw, fromCache, err := first.LoadPage(ctx, "orders", page, load)

		assert.Nil(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, envelope, raw)

		raw, fromCache, err = second.LoadPage(ctx, "orders", page, load)

		assert.Nil(t, err)
		assert.True(t, fromCache)
		assert.Equal(t, envelope, raw)
		assert.Equal(t, int32(1), loads.Load())
	})
}
