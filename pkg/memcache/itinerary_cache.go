// pkg/memcache/itinerary_cache.go
package memcache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"wanderlust/internal/models/response_models"
)

// ItineraryCache deduplicates generation requests: repeated generations for
// the same destination and duration inside the TTL reuse the stored result
// instead of calling the upstream again. Invalidation is explicit.
type ItineraryCache interface {
	Get(destination string, duration int) (*response_models.GeneratedItinerary, bool)
	Set(destination string, duration int, itinerary *response_models.GeneratedItinerary)
	Invalidate(destination string, duration int)
}

type cacheEntry struct {
	itinerary *response_models.GeneratedItinerary
	expiresAt time.Time
}

type itineraryCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]cacheEntry
}

func NewItineraryCache(ttl time.Duration) ItineraryCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &itineraryCache{
		ttl:  ttl,
		data: make(map[string]cacheEntry),
	}
}

func cacheKey(destination string, duration int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(destination)), duration)
}

func (c *itineraryCache) Get(destination string, duration int) (*response_models.GeneratedItinerary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[cacheKey(destination, duration)]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.itinerary, true
}

func (c *itineraryCache) Set(destination string, duration int, itinerary *response_models.GeneratedItinerary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[cacheKey(destination, duration)] = cacheEntry{
		itinerary: itinerary,
		expiresAt: time.Now().Add(c.ttl),
	}

	// Opportunistic cleanup once the map grows past a sane bound.
	if len(c.data) > 1000 {
		now := time.Now()
		for key, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, key)
			}
		}
	}
}

func (c *itineraryCache) Invalidate(destination string, duration int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, cacheKey(destination, duration))
}
