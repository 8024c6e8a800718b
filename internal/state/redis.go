package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dialogue:"

// RedisStore persists dialogue state in Redis with a session TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed store. ttl bounds how long an idle
// session is kept.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func key(conversationID string) string {
	return keyPrefix + conversationID
}

// Get returns the state for a conversation.
func (s *RedisStore) Get(ctx context.Context, conversationID string) (*DialogueState, error) {
	data, err := s.rdb.Get(ctx, key(conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dialogue state: %w", err)
	}

	var st DialogueState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dialogue state: %w", err)
	}
	return &st, nil
}

// Save stores the state and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, state *DialogueState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal dialogue state: %w", err)
	}

	if err := s.rdb.Set(ctx, key(state.ConversationID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save dialogue state: %w", err)
	}
	return nil
}

// Delete removes a conversation's state.
func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	if err := s.rdb.Del(ctx, key(conversationID)).Err(); err != nil {
		return fmt.Errorf("failed to delete dialogue state: %w", err)
	}
	return nil
}

// Exists reports whether state exists for a conversation.
func (s *RedisStore) Exists(ctx context.Context, conversationID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(conversationID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check dialogue state: %w", err)
	}
	return n > 0, nil
}
