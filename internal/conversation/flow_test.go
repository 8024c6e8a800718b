package conversation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdental/chat-platform/internal/assistant"
	"github.com/abcdental/chat-platform/internal/model"
	"github.com/abcdental/chat-platform/internal/picker"
	"github.com/abcdental/chat-platform/pkg/logger"
)

// TestBookingFlow exercises the whole client path over the wire: a send that
// returns availability, a picker selection, and the resulting booking
// message.
func TestBookingFlow(t *testing.T) {
	var received []model.ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req model.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		received = append(received, req)

		resp := model.ChatResponse{
			MessageID:   "m1",
			BotResponse: "Sure",
			Timestamp:   "T",
		}
		if len(received) == 1 {
			resp.Availability = &model.AvailabilityData{
				AvailableDates: []model.TimeSlot{{Date: "2026-01-10", Slots: []string{"09:00", "10:00"}}},
				Suggested:      &model.Suggestion{Date: "2026-01-10", Time: "09:00"},
			}
		} else {
			resp.MessageID = "m2"
			resp.BotResponse = "Booked!"
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	store := NewStore("chat_flow")
	d := NewDispatcher(store, assistant.NewHTTPClient(srv.URL, 2*time.Second), 1, logger.NewNop())
	ctx := context.Background()

	d.Send(ctx, "I want to book a cleaning")

	last, ok := store.Last()
	require.True(t, ok)
	require.True(t, last.HasAvailability())

	p := picker.New(last.ID, *last.Availability)
	assert.Equal(t, "2026-01-10", p.SelectedDate(), "suggested date pre-selected")

	hint, ok := p.SuggestionHint()
	require.True(t, ok)
	assert.Equal(t, "09:00", hint)

	date, tm, ok := p.SelectTime("09:00")
	require.True(t, ok)
	d.SelectDateTime(ctx, p.MessageID(), date, tm)

	msgs := store.All()
	require.Len(t, msgs, 4)
	assert.Equal(t, "I'd like to book at 09:00 on 2026-01-10", msgs[2].Content)
	assert.Equal(t, model.RoleUser, msgs[2].Role)
	assert.Equal(t, "Booked!", msgs[3].Content)

	require.Len(t, received, 2)
	assert.Equal(t, "chat_flow", received[1].ConversationID)
	assert.Equal(t, "I'd like to book at 09:00 on 2026-01-10", received[1].Content)
}
