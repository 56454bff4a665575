// Package orchestrator runs the chat request lifecycle: it appends user turns,
// submits the conversation to the backend and dispatches replies to a View.
package orchestrator

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/xiaot623/tripplanner/internal/conversation"
	"github.com/xiaot623/tripplanner/internal/domain"
)

// Backend answers a chat turn given the full conversation.
type Backend interface {
	Chat(ctx context.Context, messages []domain.Message) (*domain.ChatResponse, error)
}

// View is the UI host the orchestrator drives.
type View interface {
	// ShowMessage displays a message that was just appended to the conversation.
	ShowMessage(msg domain.Message)
	// ShowLoading displays a transient placeholder identified by id.
	ShowLoading(id string)
	// RemoveLoading removes the placeholder if it is still displayed.
	RemoveLoading(id string)
	// SetInputEnabled toggles the input controls.
	SetInputEnabled(enabled bool)
	// ShowItinerary renders the itinerary and makes its tab the active one.
	ShowItinerary(it *domain.Itinerary)
}

// Status is the busy flag guarding the single in-flight request.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
)

func (s Status) String() string {
	if s == StatusPending {
		return "pending"
	}
	return "idle"
}

// Orchestrator owns the request lifecycle of one chat session.
type Orchestrator struct {
	conv    *conversation.State
	backend Backend
	view    View

	mu        sync.Mutex
	status    Status
	itinerary *domain.Itinerary
}

// New creates an orchestrator over an existing conversation.
func New(conv *conversation.State, backend Backend, view View) *Orchestrator {
	return &Orchestrator{
		conv:    conv,
		backend: backend,
		view:    view,
	}
}

// Greet seeds the conversation with the welcome message.
func (o *Orchestrator) Greet() {
	o.addMessage(domain.RoleAssistant, domain.WelcomeText)
}

// Status reports whether a request is in flight.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

// Itinerary returns the itinerary currently shown, or nil.
func (o *Orchestrator) Itinerary() *domain.Itinerary {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.itinerary
}

// Submit sends a user turn and blocks until the reply has been dispatched.
// It returns false without side effects when text is blank or another request
// is still pending.
func (o *Orchestrator) Submit(ctx context.Context, text string) bool {
	turn, ok := o.Begin(text)
	if !ok {
		return false
	}
	turn.Complete(ctx)
	return true
}

// Turn is an accepted user submission holding the busy flag.
type Turn struct {
	o         *Orchestrator
	loadingID string
}

// Begin claims the busy flag, records the user message and shows the loading
// placeholder without blocking. Callers that receive input in order and
// complete turns asynchronously call Begin in arrival order, so a later
// submission is the one rejected while a turn is pending. Complete must be
// called exactly once on the returned Turn.
func (o *Orchestrator) Begin(text string) (*Turn, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	if !o.acquire() {
		return nil, false
	}

	o.addMessage(domain.RoleUser, text)
	o.view.SetInputEnabled(false)

	turn := &Turn{o: o, loadingID: "loading-" + uuid.New().String()[:8]}
	o.view.ShowLoading(turn.loadingID)
	return turn, true
}

// Complete sends the conversation to the backend, dispatches the reply and
// releases the busy flag.
func (t *Turn) Complete(ctx context.Context) {
	o := t.o
	defer func() {
		o.release()
		o.view.SetInputEnabled(true)
	}()

	resp, err := o.backend.Chat(ctx, o.conv.List())
	if err == nil {
		err = resp.Validate()
	}
	o.view.RemoveLoading(t.loadingID)

	if err != nil {
		log.Printf("WARN: chat request failed: %v", err)
		o.addMessage(domain.RoleAssistant, domain.FallbackText)
		return
	}

	o.addMessage(domain.RoleAssistant, domain.DisplayText(*resp.Message))

	if resp.Itinerary != nil {
		o.mu.Lock()
		o.itinerary = resp.Itinerary
		o.mu.Unlock()
		o.view.ShowItinerary(resp.Itinerary)
	}
}

func (o *Orchestrator) acquire() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status == StatusPending {
		return false
	}
	o.status = StatusPending
	return true
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	o.status = StatusIdle
	o.mu.Unlock()
}

func (o *Orchestrator) addMessage(role domain.Role, content string) {
	o.conv.Append(role, content)
	o.view.ShowMessage(domain.Message{Role: role, Content: content})
}
