package iscc

import (
	"sync"
)

// Cache keeps opened systems in memory, keyed by document path, so repeated
// requests for the same document are validated only once.
//
// Cache is safe for concurrent use. Entries stay until Evict or Clear; a
// document edited on disk is not reloaded automatically.
type Cache struct {
	mu      sync.RWMutex
	opts    Options
	systems map[string]*System
}

// NewCache returns an empty cache that opens documents with opts.
func NewCache(opts Options) *Cache {
	return &Cache{
		opts:    opts,
		systems: make(map[string]*System),
	}
}

// Load returns the cached system for path, opening and validating the
// document on first use. Failed loads are not cached.
func (c *Cache) Load(path string) (*System, error) {
	c.mu.RLock()
	if s, ok := c.systems[path]; ok {
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	s, err := Open(path, c.opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.systems[path] = s
	c.mu.Unlock()

	return s, nil
}

// Evict removes path from the cache. The next Load rereads the document.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.systems, path)
	c.mu.Unlock()
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.systems = make(map[string]*System)
	c.mu.Unlock()
}

// Len returns the number of cached systems.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.systems)
}
