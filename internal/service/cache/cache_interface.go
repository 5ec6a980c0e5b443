package cache

// Cache defines the interface for cache operations.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[V any] interface {
	Cache[V]
	Metrics() Metrics
}

// EvictReason tells an eviction callback why an entry left the cache.
type EvictReason string

const (
	EvictExpired     EvictReason = "expired"
	EvictCapacity    EvictReason = "capacity"
	EvictInvalidated EvictReason = "invalidated"
	EvictCleared     EvictReason = "cleared"
)

// EvictFunc is called for every entry removed from a cache. It runs after
// the cache lock is released.
type EvictFunc[V any] func(key string, value V, reason EvictReason)
