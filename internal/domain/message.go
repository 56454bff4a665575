package domain

import (
	"errors"
	"strings"
)

// ErrMalformedResponse is returned when a chat response lacks the assistant message.
var ErrMalformedResponse = errors.New("malformed chat response")

// Message is a single conversation entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// ChatResponse is the body returned by POST /api/chat.
// Message is a pointer so that an absent field can be told apart from an empty reply.
type ChatResponse struct {
	Message   *string    `json:"message"`
	Itinerary *Itinerary `json:"itinerary"`
}

// Validate reports ErrMalformedResponse when the assistant message is missing.
func (r *ChatResponse) Validate() error {
	if r == nil || r.Message == nil {
		return ErrMalformedResponse
	}
	return nil
}

// NewChatResponse builds a response carrying text and an optional itinerary.
func NewChatResponse(text string, it *Itinerary) *ChatResponse {
	return &ChatResponse{Message: &text, Itinerary: it}
}

// DisplayText returns the part of an assistant reply that is shown to the user:
// everything before the first MarkerStart, or the whole text when there is none.
// Anything after the marker, including text trailing MarkerEnd, is discarded.
func DisplayText(text string) string {
	if i := strings.Index(text, MarkerStart); i >= 0 {
		return text[:i]
	}
	return text
}
