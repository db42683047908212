package port

// Cache is a thread-safe bounded key-value cache.
type Cache[K comparable, V any] interface {
	// Get returns the value and true when a live entry exists.
	Get(key K) (V, bool)
	// Set stores value, possibly evicting the least recently used entry.
	Set(key K, value V)
	// Remove deletes key.
	Remove(key K)
	// Len returns the number of stored entries.
	Len() int
}
