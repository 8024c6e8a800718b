package conversation

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abcdental/chat-platform/internal/assistant"
	"github.com/abcdental/chat-platform/internal/model"
	"github.com/abcdental/chat-platform/pkg/logger"
	"github.com/abcdental/chat-platform/pkg/metrics"
)

// ApologyMessage is appended in place of an assistant reply when a dispatch
// fails. The text is fixed; the underlying error is only logged.
const ApologyMessage = "Sorry, there was an error processing your request. Please try again."

const bookingRequestTemplate = "I'd like to book at %s on %s"

// Dispatcher orchestrates one send at a time: optimistic user echo, a single
// request to the assistant service, and the resulting append (reply or
// apology). Failures never escape; the conversation stays usable.
type Dispatcher struct {
	store  *Store
	client assistant.Client
	userID int
	logger *logger.Logger

	busy atomic.Bool
	now  func() time.Time
}

// NewDispatcher creates a dispatcher bound to one store and one assistant
// client.
func NewDispatcher(store *Store, client assistant.Client, userID int, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Global()
	}
	return &Dispatcher{
		store:  store,
		client: client,
		userID: userID,
		logger: log.WithSession(store.ID()),
		now:    time.Now,
	}
}

// Busy reports whether a send is in flight. The input surface is expected to
// disable itself while this is true.
func (d *Dispatcher) Busy() bool {
	return d.busy.Load()
}

// Send dispatches a user-authored message. Blank input is rejected before
// any state change; otherwise the user echo is appended immediately and
// exactly one request is issued, with no retry.
func (d *Dispatcher) Send(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	d.store.Append(model.Message{
		ID:        uuid.New().String(),
		Role:      model.RoleUser,
		Content:   text,
		Timestamp: d.now().Format(time.RFC3339),
	})

	d.busy.Store(true)
	defer d.busy.Store(false)

	resp, err := d.client.SendMessage(ctx, &model.ChatRequest{
		Content:        text,
		UserID:         d.userID,
		ConversationID: d.store.ID(),
	})
	if err != nil {
		d.logger.Error("dispatch failed", zap.Error(err))
		metrics.DispatchFailuresTotal.Inc()
		d.store.Append(model.Message{
			ID:        uuid.New().String(),
			Role:      model.RoleAssistant,
			Content:   ApologyMessage,
			Timestamp: d.now().Format(time.RFC3339),
		})
		return
	}

	msg := model.Message{
		ID:           resp.MessageID,
		Role:         model.RoleAssistant,
		Content:      resp.BotResponse,
		Timestamp:    resp.Timestamp,
		Availability: resp.Availability,
	}
	if msg.HasAvailability() {
		metrics.AvailabilityAttachedTotal.Inc()
	}
	d.store.Append(msg)
}

// SelectDateTime is the single entry point for picker selections. It folds
// the structured (date, time) pick back into the conversation as an
// ordinary booking request message; the assistant service only ever sees
// free text. sourceMessageID identifies which message's payload triggered
// the selection and is not validated against the store.
func (d *Dispatcher) SelectDateTime(ctx context.Context, sourceMessageID, date, timeStr string) {
	d.logger.Info("date/time selected",
		zap.String("source_message_id", sourceMessageID),
		zap.String("date", date),
		zap.String("time", timeStr),
	)
	metrics.BookingSelectionsTotal.Inc()
	d.Send(ctx, fmt.Sprintf(bookingRequestTemplate, timeStr, date))
}
