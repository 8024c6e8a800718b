package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ASSISTANT_BASE_URL", "USER_ID", "REDIS_URL",
		"NATS_URL", "LOG_LEVEL", "AVAILABILITY_DAYS_AHEAD", "TRACING_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "http://127.0.0.1:8000", cfg.AssistantBaseURL)
	assert.Equal(t, 1, cfg.UserID)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.NATSURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 7, cfg.AvailabilityDaysAhead)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ASSISTANT_BASE_URL", "http://assistant:8000")
	t.Setenv("USER_ID", "42")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("AVAILABILITY_DAYS_AHEAD", "14")
	t.Setenv("TRACING_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "http://assistant:8000", cfg.AssistantBaseURL)
	assert.Equal(t, 42, cfg.UserID)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 14, cfg.AvailabilityDaysAhead)
	assert.True(t, cfg.TracingEnabled)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("USER_ID", "not-a-number")
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("TRACING_ENABLED", "maybe")

	cfg := Load()
	assert.Equal(t, 1, cfg.UserID)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.TracingEnabled)
}
