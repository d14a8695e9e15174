package core

import "sync"

// responseCache keeps parsed API responses for the lifetime of the process,
// keyed by the full request URL. Records are read-only once fetched, so
// entries are handed back as-is.
type responseCache struct {
	mu      sync.Mutex
	entries map[string][]Event
}

func newResponseCache() *responseCache {
	return &responseCache{entries: make(map[string][]Event)}
}

func (c *responseCache) get(key string) ([]Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	events, ok := c.entries[key]

	return events, ok
}

func (c *responseCache) put(key string, events []Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = events
}
