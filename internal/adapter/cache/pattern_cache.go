package cache

import (
	"sync"

	"friendlytext/internal/adapter/cleaner"
	"friendlytext/internal/domain"
)

// PatternCache keeps compiled stopword removers so that repeated calls with
// the same set skip pattern construction. Least recently used entries are
// evicted once maxSize is reached.
type PatternCache struct {
	mu      sync.Mutex
	entries map[string]*cleaner.StopwordRemover
	order   []string
	maxSize int
	hits    uint64
	misses  uint64
}

func NewPatternCache(maxSize int) *PatternCache {
	if maxSize <= 0 {
		maxSize = 16
	}
	return &PatternCache{
		entries: make(map[string]*cleaner.StopwordRemover),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// Remover returns the cached remover for set, compiling it on a miss.
// Construction errors are returned and nothing is cached.
func (c *PatternCache) Remover(set domain.StopwordSet) (*cleaner.StopwordRemover, error) {
	key := set.Fingerprint()

	c.mu.Lock()
	if r, ok := c.entries[key]; ok {
		c.hits++
		c.moveToEnd(key)
		c.mu.Unlock()
		return r, nil
	}
	c.misses++
	c.mu.Unlock()

	r, err := cleaner.NewStopwordRemover(set)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// another caller may have compiled the same set meanwhile
	if existing, ok := c.entries[key]; ok {
		c.moveToEnd(key)
		return existing, nil
	}
	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = r
	c.order = append(c.order, key)

	return r, nil
}

func (c *PatternCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cleaner.StopwordRemover)
	c.order = c.order[:0]
}

func (c *PatternCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit and miss counts since creation.
func (c *PatternCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *PatternCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *PatternCache) moveToEnd(key string) {
	c.removeFromOrder(key)
	c.order = append(c.order, key)
}

func (c *PatternCache) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
