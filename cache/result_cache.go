package result_cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const TTL = 5 * time.Minute

// maxLocalEntries caps the in-process fallback map. Redis applies its own
// memory policy; the local map has to enforce its bound itself.
const maxLocalEntries = 512

// ── Filtered-result memo ─────────────────────────────────────────────────────
// Memoizes the ordered product IDs of a filtered+sorted result, keyed by
// (catalog snapshot version, canonical encoded criteria). The version in the
// key makes every entry for a stale snapshot unreachable, so the memo can
// never serve a result inconsistent with the current catalog or criteria.

type localEntry struct {
	ids       []string
	fetchedAt time.Time
}

// ResultCache is Redis-backed when a client is supplied and falls back to an
// in-process TTL map otherwise (or whenever Redis misbehaves). Cache failures
// always degrade to recompute, never to an error.
type ResultCache struct {
	client *redis.Client

	mu      sync.RWMutex
	entries map[string]localEntry
}

func New(client *redis.Client) *ResultCache {
	return &ResultCache{
		client:  client,
		entries: make(map[string]localEntry),
	}
}

func key(version uint64, query string) string {
	return fmt.Sprintf("flt:v%d:%s", version, query)
}

func (c *ResultCache) Get(ctx context.Context, version uint64, query string) ([]string, bool) {
	k := key(version, query)

	if c.client != nil {
		raw, err := c.client.Get(ctx, k).Bytes()
		if err == nil {
			var ids []string
			if json.Unmarshal(raw, &ids) == nil {
				return ids, true
			}
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if entry, ok := c.entries[k]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.ids, true
	}
	return nil, false
}

func (c *ResultCache) Set(ctx context.Context, version uint64, query string, ids []string) {
	k := key(version, query)

	if c.client != nil {
		if raw, err := json.Marshal(ids); err == nil {
			c.client.Set(ctx, k, raw, TTL)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = localEntry{ids: ids, fetchedAt: time.Now()}
	c.evictLocked()
}

// evictLocked keeps the local map under maxLocalEntries: expired entries go
// first, then the oldest remaining ones. A burst of distinct queries inside
// one TTL window therefore still cannot grow the map past the cap.
func (c *ResultCache) evictLocked() {
	if len(c.entries) <= maxLocalEntries {
		return
	}
	for ek, entry := range c.entries {
		if time.Since(entry.fetchedAt) >= TTL {
			delete(c.entries, ek)
		}
	}
	for len(c.entries) > maxLocalEntries {
		var oldestKey string
		var oldestAt time.Time
		for ek, entry := range c.entries {
			if oldestKey == "" || entry.fetchedAt.Before(oldestAt) {
				oldestKey = ek
				oldestAt = entry.fetchedAt
			}
		}
		delete(c.entries, oldestKey)
	}
}
