// Package cache provides a thread-safe in-memory LRU cache with per-entry
// TTL and background cleanup of expired entries.
//
// Example usage:
//
//	c := cache.NewLRUCache[model.TokenPayload](1000, 5*time.Minute)
//	defer c.Stop()
//
//	c.Set("key1", payload)
//	c.SetWithTTL("key2", payload, time.Minute)
//
//	value, exists := c.Get("key1")
package cache

import "time"

// Cache is the common interface for cache implementations.
type Cache[V any] interface {
	// Get retrieves an item by key. Expired items are reported as missing.
	Get(key string) (V, bool)

	// Set adds or replaces an item using the default TTL.
	Set(key string, value V)

	// SetWithTTL adds or replaces an item with a custom TTL.
	SetWithTTL(key string, value V, ttl time.Duration)

	Delete(key string)

	// Size returns the number of stored items, including expired ones not yet cleaned up.
	Size() int

	MaxSize() int

	Clear()

	// Stop shuts down the background cleanup goroutine.
	Stop()
}

// CacheData is a cached value with its expiration timestamp.
type CacheData[V any] struct {
	Value   V
	Timeout time.Time
}

func (d CacheData[V]) expired(now time.Time) bool {
	return now.After(d.Timeout)
}
