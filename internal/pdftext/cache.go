// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached extraction. Requests differing only in
// page limit are distinct entries; a hit never returns text extracted
// under a different page limit.
type Key struct {
	ID        string
	PageLimit int
}

func (k Key) String() string {
	return fmt.Sprintf("%s_%d", k.ID, k.PageLimit)
}

// Cache memoizes extracted text per Key for the process lifetime. It
// has no eviction and no size bound; callers accept unbounded growth.
// Concurrent fills for the same key are coalesced so identical
// requests share one underlying fetch and extraction.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]string
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]string)}
}

// Get returns the cached text for key, if present.
func (c *Cache) Get(key Key) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	text, ok := c.entries[key]
	return text, ok
}

// Put stores text under key, replacing any previous entry.
func (c *Cache) Put(key Key, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = text
}

// GetOrFill returns the cached text for key, running fill at most once
// across concurrent callers on a miss. A successful fill is stored;
// fill errors are returned to every waiting caller and not cached.
func (c *Cache) GetOrFill(key Key, fill func() (string, error)) (string, error) {
	if text, ok := c.Get(key); ok {
		return text, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// A concurrent caller may have filled the entry while this
		// caller was waiting to enter the group.
		if text, ok := c.Get(key); ok {
			return text, nil
		}
		text, err := fill()
		if err != nil {
			return "", err
		}
		c.Put(key, text)
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}
