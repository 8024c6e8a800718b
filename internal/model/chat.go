package model

// ChatRequest is the body sent to POST /api/chat/message.
type ChatRequest struct {
	Content        string `json:"content"`
	UserID         int    `json:"user_id"`
	ConversationID string `json:"conversation_id"`
}

// ChatResponse is the assistant service reply. Availability is attached when
// the assistant wants the user to pick an appointment slot.
type ChatResponse struct {
	MessageID      string            `json:"message_id"`
	BotResponse    string            `json:"bot_response"`
	Timestamp      string            `json:"timestamp"`
	ConversationID string            `json:"conversation_id,omitempty"`
	Availability   *AvailabilityData `json:"availability,omitempty"`
}

// Doctor is one entry from the doctor directory.
type Doctor struct {
	ID             int    `json:"id,omitempty"`
	Name           string `json:"name"`
	Specialization string `json:"specialization,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
}
