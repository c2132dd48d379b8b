package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listique/client/internal/cache"
	"github.com/listique/client/internal/dto"
	tcfg "github.com/listique/client/internal/testutils/config"
)

func setupQueryCache(t *testing.T, ttl time.Duration) (*cache.QueryCache, *cache.MemoryStore) {

	cfg := tcfg.NewTestConfig("http://localhost", "test-token")
	cfg.Ttl = ttl

	store := cache.NewMemoryStore()

	qc, err := cache.NewQueryCache(cache.QueryCacheCfg{
		Store:        store,
		Configurator: cfg,
	})

	if err != nil {
		t.Fatal(err)
	}

	return qc, store
}

func TestQueryCacheKeys(t *testing.T) {

	t.Run("Equal requests share a key regardless of filter order", func(t *testing.T) {
		a := dto.PageRequest{Page: 1, PageSize: 5, Filters: map[string]string{"status": "open", "owner": "tester"}}
		b := dto.PageRequest{Page: 1, PageSize: 5, Filters: map[string]string{"owner": "tester", "status": "open"}}

		assert.Equal(t, cache.GetPageKey("tickets", 0, a), cache.GetPageKey("tickets", 0, b))
	})

	t.Run("Different pages, sizes, filters and generations get their own keys", func(t *testing.T) {
		base := dto.PageRequest{Page: 1, PageSize: 5}
		key := cache.GetPageKey("tickets", 0, base)

		assert.NotEqual(t, key, cache.GetPageKey("tickets", 0, dto.PageRequest{Page: 2, PageSize: 5}))
		assert.NotEqual(t, key, cache.GetPageKey("tickets", 0, dto.PageRequest{Page: 1, PageSize: 10}))
		assert.NotEqual(t, key, cache.GetPageKey("tickets", 0, dto.PageRequest{
			Page:     1,
			PageSize: 5,
			Filters:  map[string]string{"status": "open"},
		}))
		assert.NotEqual(t, key, cache.GetPageKey("tickets", 1, base))
		assert.NotEqual(t, key, cache.GetPageKey("users", 0, base))
	})
}

func TestQueryCache(t *testing.T) {

	ctx := context.Background()
	envelope := []byte(`{"count": 2, "data": [{"id": "a"}, {"id": "b"}]}`)
	page := dto.PageRequest{Page: 1, PageSize: 5}

	t.Run("Loads a page once and serves it from the cache", func(t *testing.T) {
		qc, _ := setupQueryCache(t, time.Minute)
		loads := atomic.Int32{}

		load := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			return envelope, nil
		}

		raw, fromCache, err := qc.LoadPage(ctx, "tickets", page, load)

		assert.Nil(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, envelope, raw)

		raw, fromCache, err = qc.LoadPage(ctx, "tickets", page, load)

		assert.Nil(t, err)
		assert.True(t, fromCache)
		assert.Equal(t, envelope, raw)
		assert.Equal(t, int32(1), loads.Load())
	})

	t.Run("Bumping the generation strands every cached page", func(t *testing.T) {
		qc, _ := setupQueryCache(t, time.Minute)
		loads := atomic.Int32{}

		load := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			return envelope, nil
		}

		_, _, err := qc.LoadPage(ctx, "tickets", page, load)
		assert.Nil(t, err)

		generation, err := qc.Generation(ctx, "tickets")
		assert.Nil(t, err)
		assert.Equal(t, int64(0), generation)

		assert.Nil(t, qc.Bump(ctx, "tickets"))

		generation, err = qc.Generation(ctx, "tickets")
		assert.Nil(t, err)
		assert.Equal(t, int64(1), generation)

		_, fromCache, err := qc.LoadPage(ctx, "tickets", page, load)

		assert.Nil(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, int32(2), loads.Load())
	})

	t.Run("Bumping one resource leaves the others cached", func(t *testing.T) {
		qc, _ := setupQueryCache(t, time.Minute)
		loads := atomic.Int32{}

		load := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			return envelope, nil
		}

		_, _, err := qc.LoadPage(ctx, "tickets", page, load)
		assert.Nil(t, err)

		_, _, err = qc.LoadPage(ctx, "users", page, load)
		assert.Nil(t, err)

		assert.Nil(t, qc.Bump(ctx, "tickets"))

		_, fromCache, err := qc.LoadPage(ctx, "users", page, load)

		assert.Nil(t, err)
		assert.True(t, fromCache)
		assert.Equal(t, int32(2), loads.Load())
	})

	t.Run("Entries age out on their ttl", func(t *testing.T) {
		qc, _ := setupQueryCache(t, 20*time.Millisecond)
		loads := atomic.Int32{}

		load := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			return envelope, nil
		}

		_, _, err := qc.LoadPage(ctx, "tickets", page, load)
		assert.Nil(t, err)

		time.Sleep(40 * time.Millisecond)

		_, fromCache, err := qc.LoadPage(ctx, "tickets", page, load)

		assert.Nil(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, int32(2), loads.Load())
	})

	t.Run("Concurrent loads of one page share a single flight", func(t *testing.T) {
		qc, _ := setupQueryCache(t, time.Minute)
		loads := atomic.Int32{}

		load := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			time.Sleep(100 * time.Millisecond)
			return envelope, nil
		}

		numLoads := 8
		results := make(chan []byte, numLoads)
		wg := sync.WaitGroup{}

		for range numLoads {
			wg.Add(1)

			go func() {
				defer wg.Done()

				raw, _, err := qc.LoadPage(ctx, "tickets", page, load)
				assert.Nil(t, err)

				results <- raw
			}()
		}

		wg.Wait()
		close(results)

		for raw := range results {
			assert.Equal(t, envelope, raw)
		}

		assert.Equal(t, int32(1), loads.Load())
	})

	t.Run("Loader failures are surfaced and never cached", func(t *testing.T) {
		qc, _ := setupQueryCache(t, time.Minute)
		loads := atomic.Int32{}

		failing := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			return nil, assert.AnError
		}

		_, _, err := qc.LoadPage(ctx, "tickets", page, failing)
		assert.Error(t, err)

		working := func(ctx context.Context) ([]byte, error) {
			loads.Add(1)
			return envelope, nil
		}

		raw, fromCache, err := qc.LoadPage(ctx, "tickets", page, working)

		assert.Nil(t, err)
		assert.False(t, fromCache)
		assert.Equal(t, envelope, raw)
		assert.Equal(t, int32(2), loads.Load())
	})
}
