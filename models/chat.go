package models

// ═══════════════════════════════════════════════════════════
// Chat Models
// ═══════════════════════════════════════════════════════════

// Sender roles for a chat turn.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Reply sources, ordered from cheapest to most expensive.
const (
	SourceCache      = "cache"
	SourceLocal      = "local_processing"
	SourceAIFallback = "ai_fallback"
	SourceFallback   = "fallback"
)

// ChatMessage is one turn in a conversation.
type ChatMessage struct {
	ID           string         `json:"id,omitempty"`
	Content      string         `json:"content"`
	MessageType  string         `json:"message_type"`
	Timestamp    string         `json:"timestamp"`
	Intent       string         `json:"intent,omitempty"`
	Confidence   float64        `json:"confidence,omitempty"`
	ResponseData map[string]any `json:"response_data,omitempty"`
}

// ChatReply is the resolver's answer to a user message. Cost is an
// advisory accounting tag, not an enforced budget.
type ChatReply struct {
	Message   ChatMessage `json:"message"`
	SessionID string      `json:"session_id,omitempty"`
	Source    string      `json:"source"`
	Cost      float64     `json:"cost"`
}

// SendMessageRequest is the gateway's chat input.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// TicketRequest is a structured support-ticket payload. Name and email
// are mandatory; the rest is optional context for the support team.
type TicketRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
