package conversation

import (
	"context"
	"time"

	"github.com/abcdental/chat-platform/internal/greeting"
	"github.com/abcdental/chat-platform/internal/model"
)

// DoctorSource supplies the roster for the opening prompt. The directory
// client satisfies this; it never fails, falling back to a default roster.
type DoctorSource interface {
	FetchDoctors(ctx context.Context) []string
}

// Seed fetches the doctor roster and appends the two opening assistant
// messages. It runs once per session, before any user input is accepted,
// and returns the roster it used.
func Seed(ctx context.Context, store *Store, doctors DoctorSource, now func() time.Time) []string {
	if now == nil {
		now = time.Now
	}
	roster := doctors.FetchDoctors(ctx)

	store.Append(model.Message{
		ID:        "greeting",
		Role:      model.RoleAssistant,
		Content:   greeting.WelcomeMessage(now()),
		Timestamp: now().Format(time.RFC3339),
	})
	store.Append(model.Message{
		ID:        "doctor-selection",
		Role:      model.RoleAssistant,
		Content:   greeting.DoctorPrompt(roster),
		Timestamp: now().Format(time.RFC3339),
	})

	return roster
}
