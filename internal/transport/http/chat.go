package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/tripplanner/internal/domain"
	"github.com/xiaot623/tripplanner/internal/service"
)

// Chat handles POST /api/chat.
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	resp, err := h.chat.Chat(c.Request().Context(), req.Messages)
	if err != nil {
		return chatError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func chatError(c echo.Context, err error) error {
	var policyErr *service.PolicyError
	var llmErr *service.LLMError

	switch {
	case errors.Is(err, service.ErrMissingAPIKey):
		log.Printf("ERROR: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	case errors.As(err, &policyErr):
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "request rejected",
			"reasons": policyErr.Reasons,
		})
	case errors.As(err, &llmErr):
		log.Printf("WARN: %v", err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		log.Printf("ERROR: chat request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to process chat request: " + err.Error()})
	}
}
