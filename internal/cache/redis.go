package cache

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

type RedisConfigurator interface {
	GetRedisUrl() (string, error)
}

type StoreRedisApi interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisStore shares cached pages and generations between processes, so an
// invalidation made by one instance is seen by all of them.
type RedisStore struct {
	client StoreRedisApi
}

func (rs *RedisStore) Get(ctx context.Context, key Key) (string, error, bool) {

	value, err := rs.client.Get(ctx, string(key)).Result()

	if err == redis.Nil {
		return "", nil, false
	} else if err != nil {
		return "", fmt.Errorf("failed to retrieve %s - %w", key, err), false
	}

	return value, nil, true
}

func (rs *RedisStore) Set(ctx context.Context, key Key, value string, ttl time.Duration) error {

	_, err := rs.client.Set(ctx, string(key), value, ttl).Result()

	if err != nil {
		return fmt.Errorf("failed to set %s - %w", key, err)
	}

	return nil
}

func (rs *RedisStore) Del(ctx context.Context, keys ...Key) error {

	strKeys := make([]string, 0, len(keys))

	for _, key := range keys {
		strKeys = append(strKeys, string(key))
	}

	_, err := rs.client.Del(ctx, strKeys...).Result()

	if err == redis.Nil {
		return nil
	} else if err != nil {
		return fmt.Errorf("failed to delete keys - %w", err)
	}

	return nil
}

func (rs *RedisStore) Incr(ctx context.Context, key Key) (int64, error) {

	counter, err := rs.client.Incr(ctx, string(key)).Result()

	if err != nil {
		return 0, fmt.Errorf("failed to increment %s - %w", key, err)
	}

	return counter, nil
}

func NewRedisClient(c RedisConfigurator) (*redis.Client, error) {
	url, err := c.GetRedisUrl()

	if err != nil {
		return nil, err
	}

	opt, err := redis.ParseURL(url)

	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url - %w", err)
	}

	return redis.NewClient(opt), nil
}

func NewRedisStore(client StoreRedisApi) (*RedisStore, error) {
	store := RedisStore{client: client}
	return &store, nil
}
