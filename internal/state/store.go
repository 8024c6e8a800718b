// Package state stores per-conversation dialogue state for the assistant
// server. The store is pluggable: in-memory for development, Redis when a
// deployment needs state to survive restarts.
package state

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no state exists for a conversation.
var ErrNotFound = errors.New("state: conversation not found")

// DialogueState is what the assistant remembers about one conversation.
type DialogueState struct {
	ConversationID string   `json:"conversation_id"`
	UserID         int      `json:"user_id"`
	Doctor         string   `json:"doctor,omitempty"`
	Service        string   `json:"service,omitempty"`
	PendingDate    string   `json:"pending_date,omitempty"`
	PendingTime    string   `json:"pending_time,omitempty"`
	History        []string `json:"history,omitempty"`
}

// Store persists dialogue state keyed by conversation ID.
type Store interface {
	Get(ctx context.Context, conversationID string) (*DialogueState, error)
	Save(ctx context.Context, state *DialogueState) error
	Delete(ctx context.Context, conversationID string) error
	Exists(ctx context.Context, conversationID string) (bool, error)
}
