package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Timed is a cache that invalidates elements on a timer basis or on demand.
// Writes are last-write-wins.
type Timed struct {
	mu    sync.Mutex
	ttl   time.Duration
	clock clockwork.Clock
	cache map[string]element
}

// element holds a timestamped value to save.
type element struct {
	value    []byte
	creation time.Time
}

// NewTimed creates a new Timed cache where elements will be invalidated after
// a time in cache corresponding to TTL.
func NewTimed(ttl time.Duration, clock clockwork.Clock) *Timed {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Timed{
		ttl:   ttl,
		clock: clock,
		cache: make(map[string]element),
	}
}

// Set assigns a value to a key.
func (c *Timed) Set(key string, val []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[key] = element{
		value:    val,
		creation: c.clock.Now(),
	}
}

// Get retrieves a value for a key. The value may not exist or have expired, in
// which case ok will be false.
func (c *Timed) Get(key string) (value []byte, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.cache[key]
	if !ok {
		return nil, false
	}

	// in memory elements might still be invalid
	if elapsed := c.clock.Since(el.creation); elapsed > c.ttl {
		delete(c.cache, key)
		return nil, false
	}

	return el.value, true
}

// Invalidate drops the value of a key if present.
func (c *Timed) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, key)
}
