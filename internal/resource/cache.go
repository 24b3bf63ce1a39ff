package resource

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache is the in-process read cache shared by all resource clients. Entries
// are keyed by resource type + pagination parameters for lists and resource
// type + id for single entities; a mutation on a type invalidates all of its
// list entries plus the touched entity entry.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]any

	// flight coalesces concurrent fetches so at most one request is in
	// flight per key at a time
	flight singleflight.Group
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]any)}
}

func listKey(name string, page, limit int) string {
	return fmt.Sprintf("%s?page=%d&limit=%d", name, page, limit)
}

func entityKey(name string, id int) string {
	return fmt.Sprintf("%s/%d", name, id)
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *Cache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// InvalidateLists drops every list entry cached for the resource type
func (c *Cache) InvalidateLists(name string) {
	prefix := name + "?"
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// InvalidateEntity drops the single-entity entry for (name, id)
func (c *Cache) InvalidateEntity(name string, id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, entityKey(name, id))
}

// Flush drops everything; used on logout so no data outlives the session
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}
