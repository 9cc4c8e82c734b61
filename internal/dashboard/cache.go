package dashboard

import (
	"sync"
	"time"

	"github.com/moznion/go-optional"
)

// snapshotCache holds per-symbol snapshots for a fixed TTL, mirroring the
// original dashboard's 60 second result cache. The refresh action calls
// Reset to drop everything before refetching.
type snapshotCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	snapshot Snapshot
	storedAt time.Time
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached snapshot for the ticker if it is still fresh.
func (c *snapshotCache) Get(ticker string) optional.Option[Snapshot] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[ticker]
	if !ok || c.now().Sub(entry.storedAt) >= c.ttl {
		return optional.None[Snapshot]()
	}

	return optional.Some(entry.snapshot)
}

// Put stores a snapshot for the ticker.
func (c *snapshotCache) Put(ticker string, snapshot Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[ticker] = cacheEntry{
		snapshot: snapshot,
		storedAt: c.now(),
	}
}

// Reset drops all cached snapshots.
func (c *snapshotCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}
