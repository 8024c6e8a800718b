package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abcdental/chat-platform/internal/availability"
	"github.com/abcdental/chat-platform/internal/events"
	"github.com/abcdental/chat-platform/internal/llm"
	"github.com/abcdental/chat-platform/internal/middleware"
	"github.com/abcdental/chat-platform/internal/model"
	"github.com/abcdental/chat-platform/internal/state"
	"github.com/abcdental/chat-platform/pkg/logger"
	"github.com/abcdental/chat-platform/pkg/metrics"
)

// cannedResponses is the reply bank used when no LLM is configured.
var cannedResponses = []string{
	"That's a great question! Our clinic offers comprehensive dental services including cleaning, extractions, and orthodontics.",
	"I'd recommend booking an appointment with Dr. Wang or Dr. Li. Both are highly experienced professionals.",
	"We're open Monday to Friday from 9:00 AM to 6:00 PM. What time works best for you?",
	"Our cleaning service costs $200 and takes about 30 minutes. Would you like to schedule one?",
	"I'm here to help! Feel free to ask about our services, doctors, or appointment availability.",
	"All our dentists are board-certified with years of experience in their respective specializations.",
}

const systemPrompt = "You are the front-desk assistant of ABC Dental Clinic. " +
	"Answer briefly and help the patient book an appointment."

var bookingKeywords = []string{"book", "appointment", "schedule", "reschedule"}

// ChatHandler handles POST /api/chat/message.
type ChatHandler struct {
	availability *availability.Service
	states       state.Store
	llm          llm.Client
	events       *events.Publisher
	logger       *logger.Logger

	daysAhead int
	now       func() time.Time
	pick      func(n int) int
}

// NewChatHandler creates the chat handler. llmClient and publisher may be
// nil; the handler then answers from the canned bank and skips event
// publishing.
func NewChatHandler(
	avail *availability.Service,
	states state.Store,
	llmClient llm.Client,
	publisher *events.Publisher,
	daysAhead int,
	log *logger.Logger,
) *ChatHandler {
	if log == nil {
		log = logger.Global()
	}
	return &ChatHandler{
		availability: avail,
		states:       states,
		llm:          llmClient,
		events:       publisher,
		logger:       log,
		daysAhead:    daysAhead,
		now:          time.Now,
		pick:         rand.Intn,
	}
}

// Send handles POST /api/chat/message.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateMessageContent(req.Content); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = fmt.Sprintf("conv_%d", h.now().UnixMilli())
	}

	resp := &model.ChatResponse{
		MessageID:      "msg_" + uuid.New().String(),
		Timestamp:      h.now().Format(time.RFC3339),
		ConversationID: conversationID,
	}

	if date, timeStr, ok := parseBookingRequest(req.Content); ok {
		resp.BotResponse = fmt.Sprintf(
			"You're all set! I've reserved %s on %s for you. We'll send a reminder the day before.",
			timeStr, date,
		)
		h.recordBooking(ctx, conversationID, req.UserID, date, timeStr)
	} else if hasBookingIntent(req.Content) {
		dates := h.availability.AvailableDates(ctx, h.daysAhead)
		resp.BotResponse = "Of course! Here are our upcoming openings. Pick a date and time that works for you."
		resp.Availability = &model.AvailabilityData{
			AvailableDates: dates,
			Suggested:      availability.Suggest(dates),
		}
		metrics.AvailabilityAttachedTotal.Inc()
	} else {
		resp.BotResponse = h.reply(ctx, conversationID, req.Content)
	}

	h.remember(ctx, conversationID, req.UserID, req.Content)
	h.publish(ctx, conversationID, req, resp)

	writeJSON(w, http.StatusOK, resp)
}

// reply asks the LLM when one is configured, otherwise draws from the
// canned bank. LLM failures degrade to the bank rather than erroring the
// request.
func (h *ChatHandler) reply(ctx context.Context, conversationID, content string) string {
	if h.llm == nil {
		return cannedResponses[h.pick(len(cannedResponses))]
	}

	start := time.Now()
	resp, err := h.llm.Complete(ctx, &llm.CompletionRequest{
		System:   systemPrompt,
		Messages: []llm.ChatMessage{{Role: "user", Content: content}},
	})
	if err != nil {
		h.logger.Warn("LLM completion failed, using canned reply",
			zap.String("conversation_id", conversationID), zap.Error(err))
		metrics.LLMCompletionDuration.WithLabelValues(h.llm.Name(), "error").Observe(time.Since(start).Seconds())
		return cannedResponses[h.pick(len(cannedResponses))]
	}
	metrics.LLMCompletionDuration.WithLabelValues(h.llm.Name(), "success").Observe(time.Since(start).Seconds())
	return resp.Content
}

func (h *ChatHandler) remember(ctx context.Context, conversationID string, userID int, content string) {
	if h.states == nil {
		return
	}
	st, err := h.states.Get(ctx, conversationID)
	if err != nil {
		st = &state.DialogueState{ConversationID: conversationID, UserID: userID}
	}
	st.History = append(st.History, content)
	if err := h.states.Save(ctx, st); err != nil {
		h.logger.Warn("failed to save dialogue state", zap.Error(err))
	}
}

func (h *ChatHandler) recordBooking(ctx context.Context, conversationID string, userID int, date, timeStr string) {
	if h.states == nil {
		return
	}
	st, err := h.states.Get(ctx, conversationID)
	if err != nil {
		st = &state.DialogueState{ConversationID: conversationID, UserID: userID}
	}
	st.PendingDate = date
	st.PendingTime = timeStr
	if err := h.states.Save(ctx, st); err != nil {
		h.logger.Warn("failed to save dialogue state", zap.Error(err))
	}
}

func (h *ChatHandler) publish(ctx context.Context, conversationID string, req model.ChatRequest, resp *model.ChatResponse) {
	h.events.PublishMessage(ctx, &events.MessageEvent{
		ConversationID: conversationID,
		MessageID:      resp.MessageID,
		Role:           model.RoleAssistant,
		Content:        resp.BotResponse,
		Timestamp:      resp.Timestamp,
		HasAvailability: resp.Availability != nil,
	})
}

func hasBookingIntent(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// parseBookingRequest recognizes the picker's booking message, "I'd like to
// book at HH:MM on YYYY-MM-DD".
func parseBookingRequest(content string) (date, timeStr string, ok bool) {
	var t, d string
	if _, err := fmt.Sscanf(strings.TrimSpace(content), "I'd like to book at %s on %s", &t, &d); err != nil {
		return "", "", false
	}
	if len(d) != 10 || len(t) != 5 {
		return "", "", false
	}
	return d, t, true
}
