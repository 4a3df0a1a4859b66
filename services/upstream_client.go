package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rohit7nkuamr/westend-Corporation-sub000/config"
	"github.com/rohit7nkuamr/westend-Corporation-sub000/models"
)

// UpstreamClient talks to the remote catalog/chat API. All list
// endpoints may answer with either a bare array or a paginated
// {results:[...]} envelope; unwrapList handles both so call sites
// never duplicate that check.
type UpstreamClient struct {
	baseURL string
	http    *http.Client
}

func NewUpstreamClient(baseURL string) *UpstreamClient {
	return &UpstreamClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Transport-level safety net at the widest per-call budget;
		// each call carries its real bound in its context.
		http: &http.Client{Timeout: config.ChatSendTimeout},
	}
}

// ═══════════════════════════════════════════════════════════
// Catalog
// ═══════════════════════════════════════════════════════════

// ProductListOptions narrows the upstream product listing.
type ProductListOptions struct {
	Category string
	Featured bool
}

func (c *UpstreamClient) ListVerticals(ctx context.Context) ([]models.Vertical, error) {
	body, err := c.get(ctx, "/verticals/", nil)
	if err != nil {
		return nil, err
	}
	return unwrapList[models.Vertical](body)
}

func (c *UpstreamClient) ListProducts(ctx context.Context, opts ProductListOptions) ([]models.Product, error) {
	query := url.Values{}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Featured {
		query.Set("featured", "true")
	}
	body, err := c.get(ctx, "/products/", query)
	if err != nil {
		return nil, err
	}
	return unwrapList[models.Product](body)
}

func (c *UpstreamClient) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	body, err := c.get(ctx, fmt.Sprintf("/products/%d/", id), nil)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	return &product, nil
}

func (c *UpstreamClient) SubmitContact(ctx context.Context, req models.ContactRequest) error {
	_, err := c.post(ctx, "/contact/", nil, req, nil)
	return err
}

// ═══════════════════════════════════════════════════════════
// Chat
// ═══════════════════════════════════════════════════════════

func (c *UpstreamClient) CreateChatSession(ctx context.Context) (string, error) {
	body, err := c.post(ctx, "/chat/sessions/", nil, map[string]any{}, nil)
	if err != nil {
		return "", err
	}
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode session response: %w", err)
	}
	if resp.SessionID == "" {
		return "", fmt.Errorf("upstream returned an empty session_id")
	}
	return resp.SessionID, nil
}

// SendChatMessage posts one message. The cache-buster query param and
// no-cache headers are mandatory: neither the backend nor any
// intermediary may short-circuit this call with a stale reply.
func (c *UpstreamClient) SendChatMessage(ctx context.Context, sessionID, message string) (*models.ChatReply, error) {
	query := url.Values{}
	query.Set("_cb", cacheBuster())

	payload := map[string]string{
		"session_id": sessionID,
		"message":    message,
	}
	headers := map[string]string{
		"Cache-Control": "no-cache, no-store, must-revalidate",
		"Pragma":        "no-cache",
		"Expires":       "0",
	}

	body, err := c.post(ctx, "/chat/message/", query, payload, headers)
	if err != nil {
		return nil, err
	}
	var reply models.ChatReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("failed to decode chat reply: %w", err)
	}
	return &reply, nil
}

func (c *UpstreamClient) CreateTicket(ctx context.Context, sessionID string, req models.TicketRequest) (string, error) {
	payload := map[string]string{
		"session_id": sessionID,
		"name":       req.Name,
		"email":      req.Email,
		"phone":      req.Phone,
		"company":    req.Company,
		"subject":    req.Subject,
		"message":    req.Message,
	}
	body, err := c.post(ctx, "/chat/ticket/", nil, payload, nil)
	if err != nil {
		return "", err
	}
	var resp struct {
		TicketID string `json:"ticket_id"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode ticket response: %w", err)
	}
	return resp.TicketID, nil
}

func (c *UpstreamClient) GetChatHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	body, err := c.get(ctx, "/chat/history/"+url.PathEscape(sessionID)+"/", nil)
	if err != nil {
		return nil, err
	}

	// History comes back as {messages:[...]} or as a bare list.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var messages []models.ChatMessage
		if err := json.Unmarshal(trimmed, &messages); err != nil {
			return nil, fmt.Errorf("failed to decode history: %w", err)
		}
		return messages, nil
	}
	var resp struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	return resp.Messages, nil
}
