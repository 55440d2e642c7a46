// Package cache keeps the most recently fetched rows of each registered
// sheet in memory. Entries never expire on their own: registration changes
// and explicit refresh are the only invalidation triggers.
package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"SurebetStats/internal/sheetdata"

	"golang.org/x/sync/singleflight"
)

// Entry is one cached fetch result.
type Entry struct {
	Rows      []sheetdata.Record
	UpdatedAt time.Time
}

// FetchFunc produces the rows for a sheet on a cache miss.
type FetchFunc func(ctx context.Context) ([]sheetdata.Record, error)

// RowCache maps registration ids to their most recently fetched rows.
// Concurrent misses on the same id share a single upstream fetch.
type RowCache struct {
	mu      sync.RWMutex
	entries map[uint64]Entry
	group   singleflight.Group
}

func New() *RowCache {
	return &RowCache{entries: make(map[uint64]Entry)}
}

// Lookup returns the cached entry for id, if any.
func (c *RowCache) Lookup(id uint64) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[id]
	return e, ok
}

// GetOrFetch returns the cached entry for id, running fetch on a miss and
// caching its result. hit reports whether the entry was already present when
// the call started. A failed fetch caches nothing and the error is returned
// to every coalesced waiter.
func (c *RowCache) GetOrFetch(ctx context.Context, id uint64, fetch FetchFunc) (entry Entry, hit bool, err error) {
	if e, ok := c.Lookup(id); ok {
		return e, true, nil
	}
	v, err, _ := c.group.Do(strconv.FormatUint(id, 10), func() (interface{}, error) {
		if e, ok := c.Lookup(id); ok {
			return e, nil
		}
		rows, err := fetch(ctx)
		if err != nil {
			return Entry{}, err
		}
		e := Entry{Rows: rows, UpdatedAt: time.Now()}
		c.mu.Lock()
		c.entries[id] = e
		c.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return Entry{}, false, err
	}
	return v.(Entry), false, nil
}

// Invalidate drops the entry for one id.
func (c *RowCache) Invalidate(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Clear drops every entry.
func (c *RowCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]Entry)
}

// Len reports how many sheets are cached.
func (c *RowCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
