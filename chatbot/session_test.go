package chatbot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionCreator struct {
	id    string
	err   error
	delay time.Duration
	calls int32
}

func (s *stubSessionCreator) CreateChatSession(ctx context.Context) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.id, s.err
}

func TestSessionManager_AcquiresOnce(t *testing.T) {
	creator := &stubSessionCreator{id: "srv-session-1"}
	m := NewSessionManager(creator)

	first := m.Get(context.Background())
	second := m.Get(context.Background())

	assert.Equal(t, "srv-session-1", first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&creator.calls))
	assert.Equal(t, SessionActive, m.State())
}

func TestSessionManager_ConcurrentCallersShareOneCall(t *testing.T) {
	creator := &stubSessionCreator{id: "srv-session-1", delay: 50 * time.Millisecond}
	m := NewSessionManager(creator)

	ids := make([]string, 10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = m.Get(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&creator.calls))
	for _, id := range ids {
		assert.Equal(t, "srv-session-1", id)
	}
}

func TestSessionManager_FallbackOnFailure(t *testing.T) {
	creator := &stubSessionCreator{err: errors.New("upstream down")}
	m := NewSessionManager(creator)

	id := m.Get(context.Background())

	require.True(t, strings.HasPrefix(id, "chat_"), "fallback ids carry a local prefix: %s", id)
	assert.Len(t, strings.Split(id, "_"), 3)
	assert.Equal(t, SessionFailed, m.State())

	// The fallback settles the session: no retry on later calls.
	again := m.Get(context.Background())
	assert.Equal(t, id, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&creator.calls))
}

func TestSessionManager_SettledIDSurvivesLateFlight(t *testing.T) {
	creator := &stubSessionCreator{id: "srv-session-1"}
	m := NewSessionManager(creator)

	settled := m.Get(context.Background())
	require.Equal(t, "srv-session-1", settled)

	// A caller that read an unsettled state can still enter a fresh
	// acquisition after the first one completed. It must reuse the
	// settled id instead of creating a second upstream session.
	late := m.acquire(context.Background())

	assert.Equal(t, settled, late)
	assert.Equal(t, int32(1), atomic.LoadInt32(&creator.calls))
	assert.Equal(t, SessionActive, m.State())
}

func TestSessionManager_StartsUninitialized(t *testing.T) {
	m := NewSessionManager(&stubSessionCreator{id: "x"})
	assert.Equal(t, SessionUninitialized, m.State())
}

func TestFallbackSessionID_Format(t *testing.T) {
	id := fallbackSessionID()

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "chat", parts[0])
	assert.Len(t, parts[1], 9)
}
