package cache

import (
	"fmt"
	"sync"
	"time"

	"MCXTracker/internal/model"
)

// DefaultTTL bounds how long an aligned table is reused before the next
// fetch.
const DefaultTTL = 5 * time.Minute

// Key builds the cache key for one fetch tuple. The duty factor is applied
// downstream of the cached table on every render, so it is not part of the
// key.
func Key(assetTicker, currencyTicker string, period model.Period, interval model.Interval) string {
	return fmt.Sprintf("%s|%s|%s|%s", assetTicker, currencyTicker, period, interval)
}

type entry struct {
	table    model.AlignedTable
	storedAt time.Time
}

// Cache is a time-bounded store of aligned tables, safe for reuse across
// repeated renders with different input tuples.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New creates a cache; a non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached table for key if it is still within the TTL.
func (c *Cache) Get(key string) (model.AlignedTable, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.entries[key]
	if !found {
		return nil, false
	}
	if c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.table, true
}

// Put stores a freshly aligned table. Empty tables are not cached: a
// failed fetch must be re-attempted on the next trigger.
func (c *Cache) Put(key string, table model.AlignedTable) {
	if table.Empty() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{table: table, storedAt: c.now()}
}

// Invalidate drops one tuple; used by the manual refresh path.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops everything.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
