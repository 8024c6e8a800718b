// Package model defines data structures for the dental chat platform.
package model

// Role represents the role of a message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a conversation transcript. Role and Content are
// fixed at creation; the store never edits an appended message.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`

	// Availability is attached to assistant messages that invite the user
	// to pick an appointment slot. The presentation layer pairs it with the
	// message ID when invoking the shared selection entry point.
	Availability *AvailabilityData `json:"availability,omitempty"`
}

// HasAvailability reports whether the message carries a usable availability
// payload.
func (m *Message) HasAvailability() bool {
	return m.Availability != nil && len(m.Availability.AvailableDates) > 0
}
