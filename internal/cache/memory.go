package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

func (e entry) expired() bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

// MemoryStore is a process-local Store for single-instance setups and
// tests. Entries expire lazily on access.
type MemoryStore struct {
	mutex   sync.Mutex
	entries map[Key]entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Key]entry)}
}

func (ms *MemoryStore) Get(ctx context.Context, key Key) (string, error, bool) {

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	e, ok := ms.entries[key]

	if !ok {
		return "", nil, false
	}

	if e.expired() {
		delete(ms.entries, key)
		return "", nil, false
	}

	return e.value, nil, true
}

func (ms *MemoryStore) Set(ctx context.Context, key Key, value string, ttl time.Duration) error {

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	e := entry{value: value}

	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}

	ms.entries[key] = e

	return nil
}

func (ms *MemoryStore) Del(ctx context.Context, keys ...Key) error {

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	for _, key := range keys {
		delete(ms.entries, key)
	}

	return nil
}

func (ms *MemoryStore) Incr(ctx context.Context, key Key) (int64, error) {

	ms.mutex.Lock()
	defer ms.mutex.Unlock()

	e := ms.entries[key]

	if e.expired() {
		e = entry{}
	}

	counter := int64(0)

	if e.value != "" {
		parsed, err := strconv.ParseInt(e.value, 10, 64)

		if err != nil {
			return 0, fmt.Errorf("failed to increment %s - %w", key, err)
		}

		counter = parsed
	}

	counter += 1
	e.value = strconv.FormatInt(counter, 10)
	ms.entries[key] = e

	return counter, nil
}
