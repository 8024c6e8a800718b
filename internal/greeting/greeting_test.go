package greeting

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2026, 1, 10, hour, 30, 0, 0, time.UTC)
}

func TestGreetingByHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := "Good evening"
		if hour < 12 {
			want = "Good morning"
		} else if hour < 18 {
			want = "Good afternoon"
		}
		assert.Equal(t, want, Greeting(at(hour)), fmt.Sprintf("hour %d", hour))
	}
}

func TestWelcomeMessageEmbedsGreeting(t *testing.T) {
	msg := WelcomeMessage(at(9))
	assert.True(t, strings.HasPrefix(msg, "Good morning, welcome to ABC Dental Clinic."))
	assert.Contains(t, msg, "How can I help you today?")
}

func TestDoctorPromptJoinsNamesInOrder(t *testing.T) {
	prompt := DoctorPrompt([]string{"Dr. A", "Dr. B"})
	assert.Contains(t, prompt, "Dr. A, Dr. B")
	assert.Less(t, strings.Index(prompt, "Dr. A"), strings.Index(prompt, "Dr. B"))
}

func TestDoctorPromptEmptyRoster(t *testing.T) {
	// Degenerate but non-crashing output is the accepted behavior.
	prompt := DoctorPrompt(nil)
	assert.Equal(t, "Today, we have  available. Which doctor would you like to see?", prompt)
}
