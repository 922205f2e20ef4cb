package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/pockettrader/pockettrader/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment when the cached data structure changes to auto-invalidate
// old entries.
const CacheSchemaVersion = "1.0"

// cachedCardEntry wraps a card with version metadata for invalidation
type cachedCardEntry struct {
	Version  string       `json:"version"`
	Card     *domain.Card `json:"card"`
	CachedAt time.Time    `json:"cached_at"`
}

// cardCache provides an in-memory LRU cache for card lookups with
// time-based expiration. Cards are reference data mutated only by
// config sync, so a short TTL is plenty.
type cardCache struct {
	lru *expirable.LRU[string, *cachedCardEntry]
}

func newCardCache(size int, ttl time.Duration) *cardCache {
	return &cardCache{
		lru: expirable.NewLRU[string, *cachedCardEntry](size, nil, ttl),
	}
}

func (c *cardCache) Get(cardID string) (*domain.Card, bool) {
	entry, found := c.lru.Get(cardID)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(cardID)
		return nil, false
	}
	return entry.Card, true
}

func (c *cardCache) Set(cardID string, card *domain.Card) {
	c.lru.Add(cardID, &cachedCardEntry{
		Version:  CacheSchemaVersion,
		Card:     card,
		CachedAt: time.Now(),
	})
}

// Clear removes all entries. Called after a config sync.
func (c *cardCache) Clear() {
	c.lru.Purge()
}
