// Package events publishes chat activity to NATS JetStream for operator
// tooling. Publishing is optional; a nil Publisher is a no-op, and publish
// failures are logged, never surfaced to the chat flow.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/abcdental/chat-platform/internal/model"
	"github.com/abcdental/chat-platform/pkg/logger"
)

const (
	// StreamName is the name of the chat events stream.
	StreamName = "CHAT_EVENTS"

	// SubjectPrefix is the prefix for all chat event subjects.
	SubjectPrefix = "chat"
)

// MessageEvent is the payload published for each recorded message.
type MessageEvent struct {
	ConversationID  string     `json:"conversation_id"`
	MessageID       string     `json:"message_id"`
	Role            model.Role `json:"role"`
	Content         string     `json:"content"`
	Timestamp       string     `json:"timestamp"`
	HasAvailability bool       `json:"has_availability"`
}

// Publisher publishes chat events to JetStream.
type Publisher struct {
	conn   *nats.Conn
	js     jetstream.JetStream
	logger *logger.Logger
}

// Connect establishes a NATS connection and ensures the events stream
// exists.
func Connect(ctx context.Context, url, token string, log *logger.Logger) (*Publisher, error) {
	if log == nil {
		log = logger.Global()
	}

	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	p := &Publisher{conn: nc, js: js, logger: log}
	if err := p.ensureStream(ctx); err != nil {
		nc.Close()
		return nil, err
	}

	return p, nil
}

func (p *Publisher) ensureStream(ctx context.Context) error {
	if _, err := p.js.Stream(ctx, StreamName); err == nil {
		return nil
	}

	_, err := p.js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        StreamName,
		Subjects:    []string{fmt.Sprintf("%s.>", SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      30 * 24 * time.Hour,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
		Description: "Chat message events for operator tooling",
	})
	if err != nil {
		return fmt.Errorf("failed to create stream: %w", err)
	}
	return nil
}

// Subject returns the subject for a message event.
func Subject(conversationID string, role model.Role) string {
	return fmt.Sprintf("%s.%s.msg.%s", SubjectPrefix, conversationID, role)
}

// PublishMessage publishes one message event. A nil Publisher drops the
// event silently.
func (p *Publisher) PublishMessage(ctx context.Context, ev *MessageEvent) {
	if p == nil {
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("failed to marshal chat event", zap.Error(err))
		return
	}

	if _, err := p.js.Publish(ctx, Subject(ev.ConversationID, ev.Role), data); err != nil {
		p.logger.Warn("failed to publish chat event", zap.Error(err))
	}
}

// Close closes the NATS connection.
func (p *Publisher) Close() {
	if p != nil && p.conn != nil {
		p.conn.Close()
	}
}
