package cache

import "sync"

// StarCache is a process-lifetime store of the last known starred flag per
// project. It bridges the gap between a server payload that may be stale and
// a toggle the user performed in another card instance: cards consult it at
// configure time and every completed toggle round-trip writes it back.
type StarCache struct {
	mu      sync.RWMutex
	starred map[string]bool
}

// NewStarCache creates an empty star cache
func NewStarCache() *StarCache {
	return &StarCache{
		starred: make(map[string]bool),
	}
}

// Get returns the cached starred flag for a project and whether one exists
func (c *StarCache) Get(projectID string) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.starred[projectID]
	return v, ok
}

// Set records the starred flag for a project
func (c *StarCache) Set(projectID string, starred bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.starred[projectID] = starred
}
