package chatbot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

func replyWith(content string) models.ChatReply {
	return models.ChatReply{Message: models.ChatMessage{Content: content, MessageType: models.SenderBot}}
}

func TestResponseCache_ZeroExpiryAlwaysMisses(t *testing.T) {
	cache := NewResponseCache(10, 0)
	cache.Set("hello", replyWith("hi"))

	_, ok := cache.Get("hello")

	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len(), "entries are still recorded while lookups are disabled")
}

func TestResponseCache_HitWithinExpiry(t *testing.T) {
	cache := NewResponseCache(10, time.Hour)
	cache.Set("hello", replyWith("hi"))

	cached, ok := cache.Get("hello")

	require.True(t, ok)
	assert.Equal(t, "hi", cached.Message.Content)
}

func TestResponseCache_ExpiredEntryMisses(t *testing.T) {
	now := time.Now()
	cache := NewResponseCache(10, time.Minute)
	cache.now = func() time.Time { return now }

	cache.Set("hello", replyWith("hi"))

	now = now.Add(2 * time.Minute)
	_, ok := cache.Get("hello")

	assert.False(t, ok)
}

func TestResponseCache_KeyNormalizesMessage(t *testing.T) {
	cache := NewResponseCache(10, time.Hour)
	cache.Set("  Hello  ", replyWith("hi"))

	_, ok := cache.Get("hello")

	assert.True(t, ok)
	assert.Equal(t, CacheKey("  Hello  "), CacheKey("hello"))
}

func TestCacheKey_Bounded(t *testing.T) {
	key := CacheKey("a rather long message that would produce a long base64 string")
	assert.LessOrEqual(t, len(key), 20)
}

func TestResponseCache_EvictsOldestFirst(t *testing.T) {
	cache := NewResponseCache(2, time.Hour)
	cache.Set("first", replyWith("1"))
	cache.Set("second", replyWith("2"))
	cache.Set("third", replyWith("3"))

	assert.Equal(t, 2, cache.Len())

	_, ok := cache.Get("first")
	assert.False(t, ok, "oldest entry is evicted")

	_, ok = cache.Get("second")
	assert.True(t, ok)
	_, ok = cache.Get("third")
	assert.True(t, ok)
}

func TestResponseCache_ResetKeepsInsertionPosition(t *testing.T) {
	cache := NewResponseCache(2, time.Hour)
	cache.Set("first", replyWith("1"))
	cache.Set("second", replyWith("2"))
	cache.Set("first", replyWith("1-updated")) // still the oldest
	cache.Set("third", replyWith("3"))

	_, ok := cache.Get("first")
	assert.False(t, ok)

	cached, ok := cache.Get("second")
	require.True(t, ok)
	assert.Equal(t, "2", cached.Message.Content)
}

func TestResponseCache_Clear(t *testing.T) {
	cache := NewResponseCache(10, time.Hour)
	cache.Set("hello", replyWith("hi"))

	cache.Clear()

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get("hello")
	assert.False(t, ok)
}
