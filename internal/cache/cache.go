package cache

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/listique/client/internal/dto"
	"github.com/listique/client/internal/hash"
	"github.com/listique/client/internal/metrics"
)

type Key string

type Store interface {
	Get(ctx context.Context, key Key) (string, error, bool)
	Set(ctx context.Context, key Key, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...Key) error
	Incr(ctx context.Context, key Key) (int64, error)
}

type CacheConfigurator interface {
	GetTTL() (time.Duration, error)
}

func GetGenerationKey(resource string) Key {
	return Key(fmt.Sprintf("res:%s:gen", resource))
}

func GetPageKey(resource string, generation int64, page dto.PageRequest) Key {
	filterHash := hash.GetMd5Hash(page.CanonicalFilters())
	return Key(fmt.Sprintf("res:%s:%d:page:%d:size:%d:filters:%s",
		resource, generation, page.Page, page.PageSize, filterHash))
}

type QueryCacheCfg struct {
	Store        Store
	Configurator CacheConfigurator
}

// QueryCache keeps raw listing envelopes keyed by resource, generation,
// page and filters. Invalidation bumps the resource generation, which
// strands every older entry; entries also age out on their own ttl.
type QueryCache struct {
	store Store
	ttl   time.Duration
	group singleflight.Group
}

func NewQueryCache(cfg QueryCacheCfg) (*QueryCache, error) {

	ttl, err := cfg.Configurator.GetTTL()

	if err != nil {
		return nil, fmt.Errorf("failed to get cache ttl - %w", err)
	}

	qc := QueryCache{store: cfg.Store, ttl: ttl}

	return &qc, nil
}

func (qc *QueryCache) Generation(ctx context.Context, resource string) (int64, error) {

	genStr, err, ok := qc.store.Get(ctx, GetGenerationKey(resource))

	if err != nil {
		return 0, fmt.Errorf("failed to get the generation of %s - %w", resource, err)
	}

	if !ok {
		return 0, nil
	}

	generation, err := strconv.ParseInt(genStr, 10, 64)

	if err != nil {
		return 0, fmt.Errorf("failed to parse the generation of %s - %w", resource, err)
	}

	return generation, nil
}

func (qc *QueryCache) Bump(ctx context.Context, resource string) error {

	_, err := qc.store.Incr(ctx, GetGenerationKey(resource))

	if err != nil {
		return fmt.Errorf("failed to bump the generation of %s - %w", resource, err)
	}

	return nil
}

// LoadPage returns the cached envelope when a fresh one exists, otherwise
// runs load and caches its result. Concurrent loads of the same key join a
// single flight and share one response.
func (qc *QueryCache) LoadPage(ctx context.Context, resource string, page dto.PageRequest, load func(ctx context.Context) ([]byte, error)) ([]byte, bool, error) {

	generation, err := qc.Generation(ctx, resource)

	if err != nil {
		return nil, false, err
	}

	key := GetPageKey(resource, generation, page)

	cached, err, ok := qc.store.Get(ctx, key)

	if err != nil {
		return nil, false, fmt.Errorf("failed to get the cached page - %w", err)
	}

	if ok {
		metrics.CacheEvents.WithLabelValues(resource, "hit").Inc()
		return []byte(cached), true, nil
	}

	metrics.CacheEvents.WithLabelValues(resource, "miss").Inc()

	raw, err, shared := qc.group.Do(string(key), func() (interface{}, error) {

		cached, err, ok := qc.store.Get(ctx, key)

		if err == nil && ok {
			return []byte(cached), nil
		}

		body, err := load(ctx)

		if err != nil {
			return nil, err
		}

		if err := qc.store.Set(ctx, key, string(body), qc.ttl); err != nil {
			slog.Error(fmt.Errorf("failed to cache the page - %w", err).Error())
		}

		return body, nil
	})

	if err != nil {
		return nil, false, err
	}

	if shared {
		metrics.CacheEvents.WithLabelValues(resource, "coalesced").Inc()
	}

	return raw.([]byte), false, nil
}
