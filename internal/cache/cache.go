// internal/cache/cache.go
package cache

import (
	"context"
	"sync"
	"time"
)

type item struct {
	value     interface{}
	expiresAt time.Time
}

// InMemoryCache is a TTL cache guarded by a mutex. Expired entries are
// never returned and are swept by a background cleanup routine.
type InMemoryCache struct {
	mu          sync.RWMutex
	items       map[string]item
	ttl         time.Duration
	cleanupFreq time.Duration
	now         func() time.Time

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewInMemoryCache creates a new cache with the given entry lifetime and sweep interval
func NewInMemoryCache(ttl, cleanupFreq time.Duration) *InMemoryCache {
	return &InMemoryCache{
		items:       make(map[string]item),
		ttl:         ttl,
		cleanupFreq: cleanupFreq,
		now:         time.Now,
		stop:        make(chan struct{}),
	}
}

// StartCleanup runs the sweep loop until ctx is done or StopCleanup is called.
func (c *InMemoryCache) StartCleanup(ctx context.Context) {
	if c.cleanupFreq <= 0 {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(c.cleanupFreq)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.deleteExpired()
			case <-ctx.Done():
				return
			case <-c.stop:
				return
			}
		}
	}()
}

// StopCleanup stops the sweep loop and waits for it to exit. Safe to call more than once.
func (c *InMemoryCache) StopCleanup() {
	c.once.Do(func() { close(c.stop) })
	c.wg.Wait()
}

func (c *InMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, ok := c.items[key]
	if !ok || c.expired(it) {
		return nil, false
	}
	return it.value, true
}

func (c *InMemoryCache) Set(_ context.Context, key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item{value: value, expiresAt: c.now().Add(c.ttl)}
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// Len returns the number of stored entries, expired or not.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

func (c *InMemoryCache) deleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, it := range c.items {
		if c.expired(it) {
			delete(c.items, key)
		}
	}
}

// A zero ttl keeps entries forever.
func (c *InMemoryCache) expired(it item) bool {
	return c.ttl > 0 && !c.now().Before(it.expiresAt)
}
