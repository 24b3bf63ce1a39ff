package resource

import (
	"sync"
	"time"
)

// poolTTL is how long an idle session cache is kept before pruning
const poolTTL = 5 * time.Minute

type poolEntry struct {
	cache    *Cache
	lastUsed time.Time
}

// CachePool hands out one Cache per session token, so cached list/detail
// data never crosses users. Idle caches are pruned lazily on access.
type CachePool struct {
	mu      sync.Mutex
	entries map[string]*poolEntry
}

func NewCachePool() *CachePool {
	return &CachePool{entries: make(map[string]*poolEntry)}
}

// For returns the cache for the given session token, creating it on first
// use. An empty token (anonymous request) gets a throwaway cache.
func (p *CachePool) For(token string) *Cache {
	if token == "" {
		return NewCache()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	for key, e := range p.entries {
		if now.Sub(e.lastUsed) > poolTTL {
			delete(p.entries, key)
		}
	}

	e, ok := p.entries[token]
	if !ok {
		e = &poolEntry{cache: NewCache()}
		p.entries[token] = e
	}
	e.lastUsed = now
	return e.cache
}

// Drop removes the cache for a token; called on logout
func (p *CachePool) Drop(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, token)
}
