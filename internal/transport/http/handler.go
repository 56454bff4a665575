package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/web"
)

// ChatService answers a chat turn.
type ChatService interface {
	Chat(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error)
}

// ConnectionCounter reports how many live sessions are open.
type ConnectionCounter interface {
	ConnectionCount() int
}

// Handler handles HTTP requests.
type Handler struct {
	chat     ChatService
	sessions ConnectionCounter
}

// NewHandler creates a new handler. sessions may be nil when the live session is disabled.
func NewHandler(chat ChatService, sessions ConnectionCounter) *Handler {
	return &Handler{
		chat:     chat,
		sessions: sessions,
	}
}

// RegisterRoutes registers routes with the echo server. chatMiddleware only
// applies to the chat endpoint.
func (h *Handler) RegisterRoutes(e *echo.Echo, chatMiddleware ...echo.MiddlewareFunc) {
	e.GET("/", h.Index)
	e.GET("/health", h.Health)

	e.POST("/api/chat", h.Chat, chatMiddleware...)

	// Itinerary rendering
	e.POST("/api/itinerary/view", h.ViewItinerary)
	e.POST("/api/itinerary/print", h.PrintItinerary)
	e.POST("/api/itinerary/download", h.DownloadItinerary)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	connections := 0
	if h.sessions != nil {
		connections = h.sessions.ConnectionCount()
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"connections": connections,
	})
}

// Index serves the browser page.
func (h *Handler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, web.Index)
}
