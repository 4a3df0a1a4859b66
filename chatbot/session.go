package chatbot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// SessionState tracks the conversation session lifecycle.
type SessionState int

const (
	SessionUninitialized SessionState = iota
	SessionPending
	SessionActive
	SessionFailed
)

func (s SessionState) String() string {
	switch s {
	case SessionPending:
		return "pending"
	case SessionActive:
		return "active"
	case SessionFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

// sessionCreator issues server-side session identifiers.
type sessionCreator interface {
	CreateChatSession(ctx context.Context) (string, error)
}

// SessionManager resolves exactly one session identifier per lifetime.
// Acquisition is memoized through singleflight: concurrent callers before
// resolution share a single upstream session-create call. A failed
// acquisition settles on a locally generated fallback id and the
// conversation continues in degraded mode.
type SessionManager struct {
	creator sessionCreator
	group   singleflight.Group

	mu    sync.RWMutex
	state SessionState
	id    string
}

func NewSessionManager(creator sessionCreator) *SessionManager {
	return &SessionManager{creator: creator}
}

// Warm starts session acquisition in the background so the common case
// settles before the first message arrives.
func (m *SessionManager) Warm() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		m.Get(ctx)
	}()
}

// Get returns the session identifier, blocking on first use until
// acquisition settles. Once settled (active or failed) the same id is
// reused for every subsequent call; Get never returns an error.
func (m *SessionManager) Get(ctx context.Context) string {
	m.mu.RLock()
	if m.state == SessionActive || m.state == SessionFailed {
		id := m.id
		m.mu.RUnlock()
		return id
	}
	m.mu.RUnlock()

	id, _, _ := m.group.Do("session", func() (any, error) {
		return m.acquire(ctx), nil
	})
	return id.(string)
}

// acquire runs one settlement attempt. A caller that read an unsettled
// state but entered a fresh flight after the first one completed must
// not create a second upstream session, so the settled check is
// repeated under the flight before any network call.
func (m *SessionManager) acquire(ctx context.Context) string {
	m.mu.RLock()
	if m.state == SessionActive || m.state == SessionFailed {
		id := m.id
		m.mu.RUnlock()
		return id
	}
	m.mu.RUnlock()

	m.setState(SessionPending, "")

	sessionID, err := m.creator.CreateChatSession(ctx)
	if err != nil || sessionID == "" {
		fallback := fallbackSessionID()
		log.Printf("[chatbot] session creation failed (%v), using fallback id %s", err, fallback)
		m.setState(SessionFailed, fallback)
		return fallback
	}

	m.setState(SessionActive, sessionID)
	return sessionID
}

// State reports the current lifecycle state.
func (m *SessionManager) State() SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *SessionManager) setState(state SessionState, id string) {
	m.mu.Lock()
	m.state = state
	if id != "" {
		m.id = id
	}
	m.mu.Unlock()
}

// fallbackSessionID builds a local id in a format that does not collide
// with server-issued identifiers in practice.
func fallbackSessionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("chat_%s_%d", suffix, time.Now().UnixMilli())
}
