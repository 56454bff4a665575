// Package live runs one chat session per browser websocket. Each connection
// owns a conversation and an orchestrator whose view writes JSON events back
// to the browser.
package live

import "github.com/xiaot623/tripplanner/internal/domain"

// Message types from client to server
const (
	TypeUserMessage = "user_message"
)

// Message types from server to client
const (
	TypeMessage     = "message"
	TypeLoading     = "loading"
	TypeLoadingDone = "loading_done"
	TypeInput       = "input"
	TypeItinerary   = "itinerary"
	TypeError       = "error"
)

// BaseMessage contains common fields for all messages.
type BaseMessage struct {
	Type string `json:"type"`
	Ts   int64  `json:"ts,omitempty"`
}

// UserMessage is sent by the browser when the user submits input.
type UserMessage struct {
	BaseMessage
	Content string `json:"content"`
}

// MessageEvent displays a conversation message.
type MessageEvent struct {
	BaseMessage
	Role    domain.Role `json:"role"`
	Content string      `json:"content"`
}

// LoadingEvent adds (loading) or removes (loading_done) a placeholder.
type LoadingEvent struct {
	BaseMessage
	ID string `json:"id"`
}

// InputEvent toggles the input controls.
type InputEvent struct {
	BaseMessage
	Enabled bool `json:"enabled"`
}

// ItineraryEvent carries the rendered itinerary and its data for print and download.
type ItineraryEvent struct {
	BaseMessage
	HTML      string            `json:"html"`
	Itinerary *domain.Itinerary `json:"itinerary"`
}

// ErrorEvent reports a protocol error.
type ErrorEvent struct {
	BaseMessage
	Message string `json:"message"`
}
