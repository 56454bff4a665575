// Package conversation holds the append-only log of exchanged messages.
package conversation

import (
	"sync"

	"github.com/xiaot623/tripplanner/internal/domain"
)

// State is an ordered, append-only sequence of messages.
// Messages are never edited, removed or reordered.
type State struct {
	mu       sync.RWMutex
	messages []domain.Message
}

// New creates an empty conversation.
func New() *State {
	return &State{}
}

// Append adds a message to the end of the conversation.
func (s *State) Append(role domain.Role, content string) {
	s.mu.Lock()
	s.messages = append(s.messages, domain.Message{Role: role, Content: content})
	s.mu.Unlock()
}

// List returns a copy of the conversation in insertion order.
func (s *State) List() []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Last returns the most recent message and false when the conversation is empty.
func (s *State) Last() (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.messages) == 0 {
		return domain.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
