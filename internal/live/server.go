package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/xiaot623/tripplanner/internal/config"
	"github.com/xiaot623/tripplanner/internal/conversation"
	"github.com/xiaot623/tripplanner/internal/orchestrator"
	"github.com/xiaot623/tripplanner/internal/ratelimit"
)

// Server handles WebSocket connections.
type Server struct {
	cfg      *config.Config
	hub      *Hub
	backend  orchestrator.Backend
	limiter  *ratelimit.RateLimiter
	upgrader websocket.Upgrader
}

// NewServer creates a new WebSocket server answering turns with backend.
// When limiter is set, every turn counts against the client's IP budget.
func NewServer(cfg *config.Config, h *Hub, backend orchestrator.Backend, limiter *ratelimit.RateLimiter) *Server {
	return &Server{
		cfg:     cfg,
		hub:     h,
		backend: backend,
		limiter: limiter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// session is the per-connection chat state.
type session struct {
	conn   *Connection
	orch   *orchestrator.Orchestrator
	ctx    context.Context
	cancel context.CancelFunc
}

// HandleWebSocket handles WebSocket upgrade and connection lifecycle.
func (s *Server) HandleWebSocket(c echo.Context) error {
	ws, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("Failed to upgrade WebSocket: %v", err)
		return err
	}

	conn := s.hub.NewConnection(ws)
	s.hub.Register(conn)

	ws.SetReadLimit(s.cfg.MaxMessageSize)

	backend := s.backend
	if s.limiter != nil {
		backend = &limitedBackend{next: backend, limiter: s.limiter, clientIP: c.RealIP()}
	}

	ctx, cancel := context.WithCancel(context.Background())
	sess := &session{
		conn:   conn,
		orch:   orchestrator.New(conversation.New(), backend, &socketView{conn: conn}),
		ctx:    ctx,
		cancel: cancel,
	}
	sess.orch.Greet()

	go s.writePump(conn)
	go s.readPump(sess)

	return nil
}

// readPump reads messages from the WebSocket connection.
func (s *Server) readPump(sess *session) {
	conn := sess.conn
	defer func() {
		sess.cancel()
		s.hub.Unregister(conn)
		conn.Close()
	}()

	conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	conn.Conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		return nil
	})

	for {
		_, message, err := conn.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		s.handleMessage(sess, message)
	}
}

// writePump writes messages to the WebSocket connection.
func (s *Server) writePump(conn *Connection) {
	ticker := time.NewTicker(s.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if !ok {
				// Hub closed the channel
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Printf("Failed to write message: %v", err)
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches incoming messages to appropriate handlers.
func (s *Server) handleMessage(sess *session, data []byte) {
	var baseMsg BaseMessage
	if err := json.Unmarshal(data, &baseMsg); err != nil {
		s.sendError(sess.conn, "invalid JSON message")
		return
	}

	switch baseMsg.Type {
	case TypeUserMessage:
		s.handleUserMessage(sess, data)
	default:
		s.sendError(sess.conn, "unknown message type: "+baseMsg.Type)
	}
}

// handleUserMessage claims the turn on the read loop, so turns are accepted in
// arrival order, and completes it off the loop so pings keep flowing. Input
// arriving while a turn is pending is dropped by the orchestrator.
func (s *Server) handleUserMessage(sess *session, data []byte) {
	var msg UserMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		s.sendError(sess.conn, "invalid user_message")
		return
	}

	turn, ok := sess.orch.Begin(msg.Content)
	if !ok {
		log.Printf("[%s] Ignored input (status=%s)", sess.conn.ID, sess.orch.Status())
		return
	}
	go turn.Complete(sess.ctx)
}

// sendError sends an error message to a connection.
func (s *Server) sendError(conn *Connection, message string) {
	if err := conn.SendJSON(&ErrorEvent{BaseMessage: base(TypeError), Message: message}); err != nil {
		log.Printf("WARN: [%s] failed to send error: %v", conn.ID, err)
	}
}
