package memory

import (
	"context"
	"sync"
)

// Cache implements ports.VerdictCache in memory.
// Safe for concurrent use.
type Cache struct {
	data map[string]map[string]bool
	mu   sync.RWMutex
}

// NewCache creates a new in-memory verdict cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]map[string]bool),
	}
}

// Get returns the cached verdict for word.
func (c *Cache) Get(ctx context.Context, namespace, word string) (bool, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	accepted, ok := c.data[namespace][word]
	return accepted, ok, nil
}

// Put stores the verdict for word.
func (c *Cache) Put(ctx context.Context, namespace, word string, accepted bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	verdicts, ok := c.data[namespace]
	if !ok {
		verdicts = make(map[string]bool)
		c.data[namespace] = verdicts
	}
	verdicts[word] = accepted
	return nil
}

// Purge drops every verdict of namespace.
func (c *Cache) Purge(ctx context.Context, namespace string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, namespace)
	return nil
}

// Len returns the number of verdicts cached for namespace.
func (c *Cache) Len(namespace string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data[namespace])
}
