// Package conversation holds the client-side conversation state and the
// orchestration around sending messages to the assistant service.
package conversation

import (
	"fmt"
	"sync"
	"time"

	"github.com/abcdental/chat-platform/internal/model"
	"github.com/abcdental/chat-platform/pkg/metrics"
)

// Store is the append-only log of messages for one session. It is the single
// source of truth for rendering; messages are never edited, removed, or
// reordered after append.
type Store struct {
	id string

	mu       sync.RWMutex
	messages []model.Message
}

// NewStore creates a store with the given conversation ID.
func NewStore(id string) *Store {
	return &Store{id: id}
}

// NewSessionStore creates a store with a fresh session-scoped conversation
// ID derived from the creation time.
func NewSessionStore() *Store {
	return NewStore(fmt.Sprintf("chat_%d", time.Now().UnixMilli()))
}

// ID returns the conversation correlation key sent to the assistant service.
// It is stable for the lifetime of the session.
func (s *Store) ID() string {
	return s.id
}

// Append adds a message to the end of the log.
func (s *Store) Append(msg model.Message) {
	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	metrics.MessagesTotal.WithLabelValues(string(msg.Role)).Inc()
}

// All returns the messages in insertion order. The returned slice is a copy;
// callers cannot mutate stored messages through it.
func (s *Store) All() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the log.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Last returns the most recent message, or false when the log is empty.
func (s *Store) Last() (model.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.messages) == 0 {
		return model.Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}
