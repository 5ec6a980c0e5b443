package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"
)

// Option configures a TTLCache.
type Option[V any] func(*TTLCache[V])

// WithOnEvict registers a callback for removed entries.
func WithOnEvict[V any](fn EvictFunc[V]) Option[V] {
	return func(c *TTLCache[V]) {
		c.onEvict = fn
	}
}

// WithCleanupInterval sets how often expired entries are swept.
func WithCleanupInterval[V any](d time.Duration) Option[V] {
	return func(c *TTLCache[V]) {
		if d > 0 {
			c.cleanupInterval = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *TTLCache[V]) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRecorder receives every cache operation as an (operation, result) pair.
func WithRecorder[V any](record func(operation, result string)) Option[V] {
	return func(c *TTLCache[V]) {
		if record != nil {
			c.record = record
		}
	}
}

// TTLCache provides thread-safe LRU caching with sliding TTL expiration.
// Every successful Get extends the entry's lifetime.
type TTLCache[V any] struct {
	mu              sync.Mutex
	capacity        int
	ttl             time.Duration
	items           map[string]*entry[V]
	head            *entry[V]
	tail            *entry[V]
	stopCh          chan struct{}
	stopOnce        sync.Once
	cleanupInterval time.Duration
	now             func() time.Time
	onEvict         EvictFunc[V]
	record          func(operation, result string)
	hits            int64
	misses          int64
	evictions       int64
}

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	prev      *entry[V]
	next      *entry[V]
}

type evicted[V any] struct {
	key    string
	value  V
	reason EvictReason
}

// NewTTLCache creates a TTL-based LRU cache. A background goroutine
// periodically removes expired entries until Stop is called.
func NewTTLCache[V any](capacity int, ttl time.Duration, opts ...Option[V]) *TTLCache[V] {
	if capacity < 1 {
		capacity = 1
	}
	c := &TTLCache[V]{
		capacity:        capacity,
		ttl:             ttl,
		items:           make(map[string]*entry[V], capacity),
		stopCh:          make(chan struct{}),
		cleanupInterval: time.Minute,
		now:             time.Now,
		record:          func(string, string) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.startCleanup()
	return c
}

// Get returns the value for key and refreshes its expiry.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	e, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		c.record("get", "miss")
		return zero, false
	}

	now := c.now()
	if !now.Before(e.expiresAt) {
		c.removeEntry(e)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		atomic.AddInt64(&c.evictions, 1)
		c.record("get", "expired")
		c.notify([]evicted[V]{{key: e.key, value: e.value, reason: EvictExpired}})
		return zero, false
	}

	e.expiresAt = now.Add(c.ttl)
	c.moveToFront(e)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	c.record("get", "hit")
	return e.value, true
}

// Set adds or replaces a value. When the cache is over capacity the least
// recently used entry is evicted.
func (c *TTLCache[V]) Set(key string, value V) {
	var out []evicted[V]

	c.mu.Lock()
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = c.now().Add(c.ttl)
		c.moveToFront(e)
		c.mu.Unlock()
		c.record("set", "success")
		return
	}

	e := &entry[V]{key: key, value: value, expiresAt: c.now().Add(c.ttl)}
	c.items[key] = e
	c.addToFront(e)

	for len(c.items) > c.capacity {
		tail := c.tail
		c.removeEntry(tail)
		atomic.AddInt64(&c.evictions, 1)
		out = append(out, evicted[V]{key: tail.key, value: tail.value, reason: EvictCapacity})
	}
	c.mu.Unlock()

	for range out {
		c.record("evict", "capacity")
	}
	c.record("set", "success")
	c.notify(out)
}

// Invalidate removes key from the cache.
func (c *TTLCache[V]) Invalidate(key string) {
	c.mu.Lock()
	e, ok := c.items[key]
	if ok {
		c.removeEntry(e)
	}
	c.mu.Unlock()

	if ok {
		c.record("invalidate", "success")
		c.notify([]evicted[V]{{key: e.key, value: e.value, reason: EvictInvalidated}})
	}
}

// Clear removes all entries and resets the counters.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	out := make([]evicted[V], 0, len(c.items))
	for _, e := range c.items {
		out = append(out, evicted[V]{key: e.key, value: e.value, reason: EvictCleared})
	}
	c.items = make(map[string]*entry[V], c.capacity)
	c.head = nil
	c.tail = nil
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)
	c.mu.Unlock()

	c.record("clear", "success")
	c.notify(out)
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *TTLCache[V]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// Len returns the number of entries, expired or not.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Metrics returns current cache performance metrics.
func (c *TTLCache[V]) Metrics() Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *TTLCache[V]) startCleanup() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// Cleanup removes every expired entry.
func (c *TTLCache[V]) Cleanup() {
	var out []evicted[V]

	c.mu.Lock()
	now := c.now()
	for _, e := range c.items {
		if !now.Before(e.expiresAt) {
			c.removeEntry(e)
			atomic.AddInt64(&c.evictions, 1)
			out = append(out, evicted[V]{key: e.key, value: e.value, reason: EvictExpired})
		}
	}
	c.mu.Unlock()

	for range out {
		c.record("evict", "expired")
	}
	c.notify(out)
}

func (c *TTLCache[V]) notify(out []evicted[V]) {
	if c.onEvict == nil {
		return
	}
	for _, ev := range out {
		c.onEvict(ev.key, ev.value, ev.reason)
	}
}

func (c *TTLCache[V]) removeEntry(e *entry[V]) {
	delete(c.items, e.key)
	c.remove(e)
}

func (c *TTLCache[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *TTLCache[V]) addToFront(e *entry[V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *TTLCache[V]) remove(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}

// Sharded distributes entries across several TTLCaches to reduce lock
// contention. Capacity is split evenly between shards.
type Sharded[V any] struct {
	shards []*TTLCache[V]
}

// NewSharded creates a sharded cache. numShards is rounded up to a power of two.
func NewSharded[V any](capacity int, ttl time.Duration, numShards int, opts ...Option[V]) *Sharded[V] {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*TTLCache[V], n)
	for i := range shards {
		shards[i] = NewTTLCache(perShard, ttl, opts...)
	}
	return &Sharded[V]{shards: shards}
}

func (s *Sharded[V]) shard(key string) *TTLCache[V] {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()&uint32(len(s.shards)-1)]
}

// Get retrieves a value from the owning shard.
func (s *Sharded[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Set stores a value in the owning shard.
func (s *Sharded[V]) Set(key string, value V) {
	s.shard(key).Set(key, value)
}

// Invalidate removes a key from the owning shard.
func (s *Sharded[V]) Invalidate(key string) {
	s.shard(key).Invalidate(key)
}

// Clear removes all entries from all shards.
func (s *Sharded[V]) Clear() {
	for _, shard := range s.shards {
		shard.Clear()
	}
}

// Stop shuts down all shards.
func (s *Sharded[V]) Stop() {
	for _, shard := range s.shards {
		shard.Stop()
	}
}

// Cleanup sweeps expired entries in every shard.
func (s *Sharded[V]) Cleanup() {
	for _, shard := range s.shards {
		shard.Cleanup()
	}
}

// Metrics returns aggregated metrics from all shards.
func (s *Sharded[V]) Metrics() Metrics {
	var total Metrics
	for _, shard := range s.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}
