package store

import (
	"fmt"
	"sync"
	"time"

	"futbol-dashboard-service/internal/domain/matches"
)

// MatchCache holds the most recent poll of upstream fixtures. It preserves
// the order matches arrived in so list responses are stable between polls.
type MatchCache struct {
	mu        sync.RWMutex
	order     []string
	byID      map[string]matches.Match
	updatedAt time.Time
}

func NewMatchCache() *MatchCache {
	return &MatchCache{byID: make(map[string]matches.Match)}
}

// SetMatches replaces the full cache contents with the given matches.
func (c *MatchCache) SetMatches(list []matches.Match, at time.Time) {
	order := make([]string, 0, len(list))
	byID := make(map[string]matches.Match, len(list))
	for _, m := range list {
		if _, dup := byID[m.ID]; dup {
			continue
		}
		order = append(order, m.ID)
		byID[m.ID] = m
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = order
	c.byID = byID
	c.updatedAt = at
}

// UpsertMatch inserts or replaces a single match, appending new ids at the
// end of the listing order.
func (c *MatchCache) UpsertMatch(m matches.Match) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byID[m.ID]; !ok {
		c.order = append(c.order, m.ID)
	}
	c.byID[m.ID] = m
}

// ListMatches returns cached matches in arrival order.
func (c *MatchCache) ListMatches() []matches.Match {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]matches.Match, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// GetMatch returns one cached match by id.
func (c *MatchCache) GetMatch(id string) (matches.Match, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.byID[id]
	if !ok {
		return matches.Match{}, fmt.Errorf("match %q: %w", id, ErrNotFound)
	}
	return m, nil
}

// UpdatedAt reports when the cache last received a full refresh.
func (c *MatchCache) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

// Len returns the number of cached matches.
func (c *MatchCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
