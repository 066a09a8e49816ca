package cache

import (
	"context"
	"sync"

	"bridge-torch-service/internal/ports"
)

// MemorySolutionCache is an in-process cache for tests and for running
// without a database.
type MemorySolutionCache struct {
	mu sync.RWMutex
	m  map[string]ports.CachedSolution
}

func NewMemorySolutionCache() *MemorySolutionCache {
	return &MemorySolutionCache{m: make(map[string]ports.CachedSolution)}
}

func (c *MemorySolutionCache) Get(ctx context.Context, key string) (ports.CachedSolution, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.m[key]
	if !ok {
		return ports.CachedSolution{}, ports.ErrCacheMiss
	}
	return e, nil
}

func (c *MemorySolutionCache) Put(ctx context.Context, key string, entry ports.CachedSolution) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.m[key] = entry
	return nil
}

// Len reports the number of cached entries.
func (c *MemorySolutionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
