package views

import "sync"

// InvoiceListPath is the one view every invoice mutation invalidates.
const InvoiceListPath = "/dashboard/invoices"

// Cache holds rendered view payloads keyed by path. A mutation marks its
// view stale via Invalidate; the next read recomputes and re-Puts.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]byte
	// invalidations counts Invalidate calls per path, observable in tests.
	invalidations map[string]int
}

func NewCache() *Cache {
	return &Cache{
		entries:       make(map[string][]byte),
		invalidations: make(map[string]int),
	}
}

func (c *Cache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.entries[path]
	return payload, ok
}

func (c *Cache) Put(path string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = payload
}

// PutUnlessInvalidated stores payload only if the path has not been
// invalidated since the caller observed count (via Invalidations). A
// reader that computed its rendering before a concurrent mutation must
// not re-cache that pre-mutation state.
func (c *Cache) PutUnlessInvalidated(path string, payload []byte, count int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invalidations[path] != count {
		return false
	}
	c.entries[path] = payload
	return true
}

// Invalidate drops the cached payload so the next read is recomputed.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
	c.invalidations[path]++
}

// Invalidations reports how many times a path has been invalidated.
func (c *Cache) Invalidations(path string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.invalidations[path]
}
