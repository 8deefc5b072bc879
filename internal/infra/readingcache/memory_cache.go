package readingcache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yanqian/cosmic-blueprint/internal/domain/reading"
)

const defaultCapacity = 1024

// MemoryCache keeps readings in process memory. It is bounded by entry count
// and every entry expires after the configured TTL.
type MemoryCache struct {
	lru *expirable.LRU[string, reading.Response]
}

// NewMemoryCache constructs a cache holding at most capacity readings. A
// non-positive ttl keeps entries until they are evicted.
func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryCache{lru: expirable.NewLRU[string, reading.Response](capacity, nil, ttl)}
}

// Get implements reading.Cache.
func (c *MemoryCache) Get(_ context.Context, key string) (reading.Response, bool, error) {
	resp, ok := c.lru.Get(key)
	return resp, ok, nil
}

// Set implements reading.Cache.
func (c *MemoryCache) Set(_ context.Context, key string, resp reading.Response) error {
	c.lru.Add(key, resp)
	return nil
}

// Len reports the number of live entries.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

var _ reading.Cache = (*MemoryCache)(nil)
