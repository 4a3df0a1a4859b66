package chatbot

import (
	"encoding/base64"
	"sync"
	"time"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// DefaultCacheCapacity bounds the number of memoized replies.
const DefaultCacheCapacity = 100

// ResponseCache memoizes replies to previously seen messages. It is
// capacity-bounded with insertion-order eviction. An expiry of zero
// disables lookups (every Get misses) while entries are still recorded,
// which keeps replies fresh at the cost of repeat upstream calls.
type ResponseCache struct {
	mu       sync.Mutex
	capacity int
	expiry   time.Duration
	entries  map[string]*cacheEntry
	order    []string

	now func() time.Time // overridable in tests
}

type cacheEntry struct {
	reply    models.ChatReply
	cachedAt time.Time
}

func NewResponseCache(capacity int, expiry time.Duration) *ResponseCache {
	if capacity < 1 {
		capacity = DefaultCacheCapacity
	}
	return &ResponseCache{
		capacity: capacity,
		expiry:   expiry,
		entries:  make(map[string]*cacheEntry),
		now:      time.Now,
	}
}

// CacheKey derives the lookup key from the normalized message.
func CacheKey(message string) string {
	key := base64.StdEncoding.EncodeToString([]byte(Normalize(message)))
	if len(key) > 20 {
		key = key[:20]
	}
	return key
}

// Get returns the memoized reply for message if present and not expired.
func (c *ResponseCache) Get(message string) (models.ChatReply, bool) {
	if c.expiry <= 0 {
		return models.ChatReply{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[CacheKey(message)]
	if !ok || c.now().Sub(entry.cachedAt) >= c.expiry {
		return models.ChatReply{}, false
	}
	return entry.reply, true
}

// Set records a reply, evicting the oldest entry once over capacity.
// Re-setting an existing key keeps its original insertion position.
func (c *ResponseCache) Set(message string, reply models.ChatReply) {
	key := CacheKey(message)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.reply = reply
		existing.cachedAt = c.now()
		return
	}

	c.entries[key] = &cacheEntry{reply: reply, cachedAt: c.now()}
	c.order = append(c.order, key)

	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Len reports the current entry count.
func (c *ResponseCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *ResponseCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.order = nil
}
