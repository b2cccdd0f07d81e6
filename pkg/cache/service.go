package cache

import "time"

// CacheService defines the behavior for caching mechanisms used by the
// search and catalog usecases.
type CacheService interface {
	// Get retrieves a value from the cache; the bool reports presence.
	Get(key string) (interface{}, bool)

	// Set adds a value to the cache with a TTL.
	Set(key string, value interface{}, duration time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Flush removes all items.
	Flush()
}
