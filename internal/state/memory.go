package state

import (
	"context"
	"sync"
)

// MemoryStore is the in-memory Store used in development and tests. State
// is lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]DialogueState
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]DialogueState)}
}

// Get returns the state for a conversation.
func (s *MemoryStore) Get(_ context.Context, conversationID string) (*DialogueState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.states[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	out := st
	return &out, nil
}

// Save stores the state under its conversation ID.
func (s *MemoryStore) Save(_ context.Context, state *DialogueState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.states[state.ConversationID] = *state
	return nil
}

// Delete removes a conversation's state.
func (s *MemoryStore) Delete(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, conversationID)
	return nil
}

// Exists reports whether state exists for a conversation.
func (s *MemoryStore) Exists(_ context.Context, conversationID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.states[conversationID]
	return ok, nil
}
