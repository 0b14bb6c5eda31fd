package searchcache

import (
	"RecipeHub/domain"
	"sync"
	"time"
)

// DefaultTTL bounds how long a stored search survives. Long enough to come
// back from a detail page, short enough that stale results do not linger.
const DefaultTTL = 10 * time.Minute

type entry struct {
	previews  []domain.RecipePreview
	expiresAt time.Time
}

// SearchCache keeps the most recent search result per session so it can be
// replayed without touching the catalog again. It holds shaped local data
// only; catalog responses themselves are never cached across requests.
type SearchCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

func New(ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SearchCache{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Store replaces the session's previous search and evicts any expired
// entries while it holds the lock.
func (c *SearchCache) Store(sessionID string, previews []domain.RecipePreview) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
		}
	}
	c.entries[sessionID] = entry{
		previews:  previews,
		expiresAt: now.Add(c.ttl),
	}
}

func (c *SearchCache) Get(sessionID string) ([]domain.RecipePreview, bool) {
	c.mu.RLock()
	e, ok := c.entries[sessionID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, sessionID)
		c.mu.Unlock()
		return nil, false
	}
	return e.previews, true
}
