package chatbot

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// fallbackContent is returned whenever the upstream chat call fails.
const fallbackContent = "I'm having trouble connecting right now. You can:\n\n• Try asking in a different way\n• Contact us at support@westendcorporation.in\n• Call us at +91 93119 33481\n\nI'll be back to help you shortly!"

// Relative cost tags per reply source. Advisory accounting only.
const (
	costFree     = 0.0
	costTemplate = 0.1
	costAI       = 1.0
)

// chatBackend is the slice of the upstream API the resolver depends on.
type chatBackend interface {
	CreateChatSession(ctx context.Context) (string, error)
	SendChatMessage(ctx context.Context, sessionID, message string) (*models.ChatReply, error)
	CreateTicket(ctx context.Context, sessionID string, req models.TicketRequest) (string, error)
	GetChatHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}

// Resolver answers user messages through an ordered, short-circuiting
// chain: response cache, local intent table, upstream backend, fixed
// fallback. Every path produces a well-formed reply; none errors out.
type Resolver struct {
	backend   chatBackend
	session   *SessionManager
	cache     *ResponseCache
	intents   []Intent
	templates map[string]string

	now func() time.Time // overridable in tests
}

// NewResolver wires the resolver with the default intent tables and
// kicks off session acquisition immediately, so the session is usually
// active before the first message.
func NewResolver(backend chatBackend, cache *ResponseCache) *Resolver {
	r := &Resolver{
		backend:   backend,
		session:   NewSessionManager(backend),
		cache:     cache,
		intents:   DefaultIntents,
		templates: DefaultTemplates,
		now:       time.Now,
	}
	r.session.Warm()
	return r
}

// SessionID exposes the active session identifier.
func (r *Resolver) SessionID(ctx context.Context) string {
	return r.session.Get(ctx)
}

// SendMessage resolves a reply for one user message.
func (r *Resolver) SendMessage(ctx context.Context, message string) *models.ChatReply {
	sessionID := r.session.Get(ctx)

	// 1. Memoized reply, if caching is enabled and the entry is fresh.
	if cached, ok := r.cache.Get(message); ok {
		cached.SessionID = sessionID
		cached.Source = models.SourceCache
		cached.Cost = costFree
		return &cached
	}

	// 2. Local intent table. A matched intent without a template (for
	// example product_search) still goes upstream.
	if intent, ok := DetectIntent(r.intents, message); ok {
		if template, ok := r.templates[intent]; ok {
			return &models.ChatReply{
				Message: models.ChatMessage{
					ID:           uuid.NewString(),
					Content:      SanitizeReply(template),
					MessageType:  models.SenderBot,
					Timestamp:    r.now().UTC().Format(time.RFC3339),
					Intent:       intent,
					Confidence:   0.9,
					ResponseData: map[string]any{},
				},
				SessionID: sessionID,
				Source:    models.SourceLocal,
				Cost:      costFree,
			}
		}
	}

	// 3. Upstream resolution.
	reply, err := r.backend.SendChatMessage(ctx, sessionID, message)
	if err != nil {
		log.Printf("[chatbot] upstream message failed: %v", err)
		return r.fallbackReply(sessionID)
	}

	reply.Message.Content = SanitizeReply(reply.Message.Content)
	reply.SessionID = sessionID
	if reply.Source == models.SourceAIFallback {
		reply.Cost = costAI
	} else {
		reply.Cost = costTemplate
	}
	r.cache.Set(message, *reply)
	return reply
}

// fallbackReply is the terminal step of the chain: a fixed apology with
// direct contact channels.
func (r *Resolver) fallbackReply(sessionID string) *models.ChatReply {
	return &models.ChatReply{
		Message: models.ChatMessage{
			ID:           uuid.NewString(),
			Content:      SanitizeReply(fallbackContent),
			MessageType:  models.SenderBot,
			Timestamp:    r.now().UTC().Format(time.RFC3339),
			Intent:       "error",
			Confidence:   0.5,
			ResponseData: map[string]any{},
		},
		SessionID: sessionID,
		Source:    models.SourceFallback,
		Cost:      costFree,
	}
}

// CreateTicket files a support ticket against the active session.
// Unlike messaging, a failure here is surfaced so the caller can show
// an actionable error.
func (r *Resolver) CreateTicket(ctx context.Context, req models.TicketRequest) (string, error) {
	sessionID := r.session.Get(ctx)
	return r.backend.CreateTicket(ctx, sessionID, req)
}

// History fetches prior messages for the active session. A fetch
// failure degrades to an empty history rather than blocking the widget.
func (r *Resolver) History(ctx context.Context) []models.ChatMessage {
	sessionID := r.session.Get(ctx)
	messages, err := r.backend.GetChatHistory(ctx, sessionID)
	if err != nil {
		log.Printf("[chatbot] history fetch failed: %v", err)
		return []models.ChatMessage{}
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages
}
