package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/clockwisecapital/kronos/internal/models"
)

// MemoryCache is the in-process L1 in front of the persistent return cache.
// It holds complete asset-return sets keyed by (analog, version) and
// benchmark data keyed by analog. Entries expire so a long-lived process
// eventually re-reads the authoritative persistent tier.
type MemoryCache struct {
	returns     map[string]returnsEntry
	benchmarks  map[string]benchmarkEntry
	returnsMu   sync.RWMutex
	benchmarkMu sync.RWMutex
	ttl         time.Duration
}

type returnsEntry struct {
	returns   models.AssetReturns
	fetchedAt time.Time
}

type benchmarkEntry struct {
	data      models.BenchmarkData
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		returns:    make(map[string]returnsEntry),
		benchmarks: make(map[string]benchmarkEntry),
		ttl:        ttl,
	}
}

func returnsKey(analogID string, version int) string {
	return fmt.Sprintf("%s:v%d", analogID, version)
}

// GetReturns retrieves a cached asset-return set if fresh
func (c *MemoryCache) GetReturns(analogID string, version int) (models.AssetReturns, bool) {
	c.returnsMu.RLock()
	defer c.returnsMu.RUnlock()

	entry, exists := c.returns[returnsKey(analogID, version)]
	if !exists || time.Since(entry.fetchedAt) > c.ttl {
		return nil, false
	}

	// Copy so callers can't mutate the cached map.
	out := make(models.AssetReturns, len(entry.returns))
	for k, v := range entry.returns {
		out[k] = v
	}
	return out, true
}

// SetReturns caches a complete asset-return set
func (c *MemoryCache) SetReturns(analogID string, version int, returns models.AssetReturns) {
	stored := make(models.AssetReturns, len(returns))
	for k, v := range returns {
		stored[k] = v
	}

	c.returnsMu.Lock()
	defer c.returnsMu.Unlock()
	c.returns[returnsKey(analogID, version)] = returnsEntry{
		returns:   stored,
		fetchedAt: time.Now(),
	}
}

// GetBenchmark retrieves cached benchmark data if fresh
func (c *MemoryCache) GetBenchmark(analogID string) (models.BenchmarkData, bool) {
	c.benchmarkMu.RLock()
	defer c.benchmarkMu.RUnlock()

	entry, exists := c.benchmarks[analogID]
	if !exists || time.Since(entry.fetchedAt) > c.ttl {
		return models.BenchmarkData{}, false
	}
	return entry.data, true
}

// SetBenchmark caches benchmark data for an analog
func (c *MemoryCache) SetBenchmark(analogID string, data models.BenchmarkData) {
	c.benchmarkMu.Lock()
	defer c.benchmarkMu.Unlock()
	c.benchmarks[analogID] = benchmarkEntry{
		data:      data,
		fetchedAt: time.Now(),
	}
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.returnsMu.Lock()
	c.returns = make(map[string]returnsEntry)
	c.returnsMu.Unlock()

	c.benchmarkMu.Lock()
	c.benchmarks = make(map[string]benchmarkEntry)
	c.benchmarkMu.Unlock()
}
