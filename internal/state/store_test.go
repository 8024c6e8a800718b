package state

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(rdb, time.Hour),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := s.Get(ctx, "chat_1")
			assert.ErrorIs(t, err, ErrNotFound)

			st := &DialogueState{
				ConversationID: "chat_1",
				UserID:         1,
				Doctor:         "Dr. Wang",
				PendingDate:    "2026-01-10",
				PendingTime:    "09:00",
				History:        []string{"hello"},
			}
			require.NoError(t, s.Save(ctx, st))

			got, err := s.Get(ctx, "chat_1")
			require.NoError(t, err)
			assert.Equal(t, st, got)

			ok, err := s.Exists(ctx, "chat_1")
			require.NoError(t, err)
			assert.True(t, ok)

			require.NoError(t, s.Delete(ctx, "chat_1"))
			ok, err = s.Exists(ctx, "chat_1")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &DialogueState{ConversationID: "chat_1", Doctor: "Dr. Wang"}))

	got, err := s.Get(ctx, "chat_1")
	require.NoError(t, err)
	got.Doctor = "Dr. Evil"

	again, err := s.Get(ctx, "chat_1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Wang", again.Doctor)
}

func TestRedisStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	s := NewRedisStore(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &DialogueState{ConversationID: "chat_1"}))
	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, "chat_1")
	assert.ErrorIs(t, err, ErrNotFound)
}
