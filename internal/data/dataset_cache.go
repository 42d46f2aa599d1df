package data

import (
	"sync"
	"time"

	"swarm-utilization/internal/model"
)

type cacheEntry struct {
	dataset   *model.Dataset
	expiresAt time.Time
}

// DatasetCache keeps loaded results tables in memory, keyed by path.
// A zero TTL keeps entries until Clear is called.
type DatasetCache struct {
	mu    sync.RWMutex
	store map[string]*cacheEntry
	ttl   time.Duration
	opts  CSVOptions
	now   func() time.Time
}

func NewDatasetCache(ttl time.Duration, opts CSVOptions) *DatasetCache {
	return &DatasetCache{
		store: make(map[string]*cacheEntry),
		ttl:   ttl,
		opts:  opts,
		now:   time.Now,
	}
}

// Load returns the cached dataset for path, reading it from disk when absent or expired.
// The returned dataset is shared and must not be modified.
func (c *DatasetCache) Load(path string) (*model.Dataset, error) {
	if ds, ok := c.Get(path); ok {
		return ds, nil
	}

	ds, err := LoadDataset(path, c.opts)
	if err != nil {
		return nil, err
	}
	c.Set(path, ds)
	return ds, nil
}

// Get retrieves a cached dataset if available and not expired.
func (c *DatasetCache) Get(path string) (*model.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[path]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.dataset, true
}

func (c *DatasetCache) Set(path string, ds *model.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[path] = &cacheEntry{
		dataset:   ds,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Clear removes all entries from the cache.
func (c *DatasetCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[string]*cacheEntry)
}
