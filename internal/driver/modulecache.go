package driver

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"lexkit/internal/token"
)

// Cache is an in-memory LRU of token lists in front of an optional disk cache.
type Cache struct {
	mem  *lru.Cache[Key, []token.Token]
	disk *DiskCache

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache keeps up to memEntries lists in memory. disk may be nil.
func NewCache(memEntries int, disk *DiskCache) (*Cache, error) {
	if memEntries <= 0 {
		memEntries = 256
	}
	mem, err := lru.New[Key, []token.Token](memEntries)
	if err != nil {
		return nil, err
	}
	return &Cache{mem: mem, disk: disk}, nil
}

// Get looks in memory first, then on disk. Disk hits are promoted.
func (c *Cache) Get(key Key) ([]token.Token, bool, error) {
	if tokens, ok := c.mem.Get(key); ok {
		c.hits.Add(1)
		return tokens, true, nil
	}
	var payload DiskPayload
	ok, err := c.disk.Get(key, &payload)
	if err != nil || !ok {
		c.misses.Add(1)
		return nil, false, err
	}
	c.mem.Add(key, payload.Tokens)
	c.hits.Add(1)
	return payload.Tokens, true, nil
}

// Put stores tokens in memory and, when configured, on disk.
func (c *Cache) Put(key Key, payload *DiskPayload) error {
	c.mem.Add(key, payload.Tokens)
	return c.disk.Put(key, payload)
}

// Stats returns hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
