// Package cache implements the time-boxed memoization of dashboard and
// alert computations. The cache is never a source of truth: every entry
// can be recomputed from the record store at any time.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/finvue/backend/internal/types"
	"github.com/google/uuid"
)

// Cache is a mutex-guarded in-process map of values with expiry times.
//
// Concurrent misses for the same key may each run their computation and
// store the result, the last write wins. Computations are pure and reads
// never write domain data, so the redundant work is benign and a
// single-flight mechanism is intentionally not implemented.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry

	// now is replaced in tests to control expiry.
	now func() time.Time
}

type entry struct {
	value     any
	expiresAt time.Time
}

// New returns an empty cache using the wall clock.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock returns an empty cache using the given clock.
func NewWithClock(now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     now,
	}
}

// lookup returns the unexpired value for key.
func (c *Cache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

// store saves a value with the given TTL.
func (c *Cache) store(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Invalidate removes the given keys. Removing an absent key is a no-op.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if _, ok := c.entries[key]; ok {
			delete(c.entries, key)
			invalidations.WithLabelValues(keyClass(key)).Inc()
		}
	}
}

// ReadThrough returns the cached value for key if it is present and
// unexpired. Otherwise it runs compute, stores the result with the given
// TTL and returns it. A compute error is returned to the caller and
// nothing is stored.
func ReadThrough[T any](c *Cache, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if cached, ok := c.lookup(key); ok {
		if value, ok := cached.(T); ok {
			hits.WithLabelValues(keyClass(key)).Inc()
			return value, nil
		}
	}

	misses.WithLabelValues(keyClass(key)).Inc()

	value, err := compute()
	if err != nil {
		return value, err
	}

	c.store(key, value, ttl)
	return value, nil
}

// DashboardKey is the cache key for the dashboard of a user and month.
func DashboardKey(userID uuid.UUID, month types.Month) string {
	return fmt.Sprintf("dashboard:%s:%s", userID, month)
}

// AlertsKey is the cache key for the alerts of a user.
func AlertsKey(userID uuid.UUID) string {
	return fmt.Sprintf("alerts:%s", userID)
}

// keyClass is the metrics label for a key, the part before the first ":".
func keyClass(key string) string {
	class, _, ok := strings.Cut(key, ":")
	if !ok {
		return "unknown"
	}

	return class
}
