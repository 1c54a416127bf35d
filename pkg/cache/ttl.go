package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a thread-safe cache whose entries expire after a fixed
// time-to-live. Reads of expired entries behave as misses and evict.
type TTL[K comparable, V any] struct {
	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex
	items map[K]entry[V]
}

// Option configures a TTL cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock injects a time source, letting tests advance time without
// sleeping.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// NewTTL creates a TTL cache. The ttl must be positive, otherwise it panics.
func NewTTL[K comparable, V any](ttl time.Duration, opts ...Option) *TTL[K, V] {
	if ttl <= 0 {
		panic("cache TTL must be positive")
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &TTL[K, V]{
		ttl:   ttl,
		now:   o.now,
		items: make(map[K]entry[V]),
	}
}

// Get retrieves a live value. Returns the zero value and false for missing
// or expired keys; expired entries are evicted on the spot.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value with a fresh TTL, sweeping any entries that have
// already expired so the map cannot grow without bound under churn.
func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
		}
	}

	c.items[key] = entry[V]{value: value, expiresAt: now.Add(c.ttl)}
}

// SetIfAbsent stores the value only when no live entry exists for the key.
// Returns true when the value was stored. This is the primitive behind
// duplicate-submission guards.
func (c *TTL[K, V]) SetIfAbsent(key K, value V) bool {
	if _, ok := c.Get(key); ok {
		return false
	}
	c.Set(key, value)
	return true
}

// Delete removes a key regardless of expiry.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len reports the number of stored entries, expired ones included until
// the next sweep.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
