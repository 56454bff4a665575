// Package http provides the HTTP server for the travel planner.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/xiaot623/tripplanner/internal/ratelimit"
)

// NewServer creates and configures the public HTTP server.
// liveHandler serves the websocket live session and may be nil.
func NewServer(h *Handler, limiter *ratelimit.RateLimiter, liveHandler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	var chatMiddleware []echo.MiddlewareFunc
	if limiter != nil {
		chatMiddleware = append(chatMiddleware, limiter.Middleware())
	}
	h.RegisterRoutes(e, chatMiddleware...)

	if liveHandler != nil {
		e.GET("/ws", liveHandler)
	}

	return e
}
