// Package greeting produces the deterministic opening messages for a chat
// session. Nothing here consults the assistant; the clinic decides these
// strings, not the model.
package greeting

import (
	"fmt"
	"strings"
	"time"
)

const welcomeTemplate = `%s, welcome to ABC Dental Clinic.
We provide professional dental services including cleaning, extraction, fillings, checkups, and more.
How can I help you today?`

const doctorPromptTemplate = "Today, we have %s available. Which doctor would you like to see?"

// Greeting returns the time-of-day salutation for the given wall clock.
func Greeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return "Good morning"
	case hour < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// WelcomeMessage embeds the salutation into the clinic introduction.
func WelcomeMessage(now time.Time) string {
	return fmt.Sprintf(welcomeTemplate, Greeting(now))
}

// DoctorPrompt builds the doctor-selection prompt from the available
// roster. An empty roster still yields a prompt; the degenerate wording is
// accepted rather than special-cased.
func DoctorPrompt(doctors []string) string {
	return fmt.Sprintf(doctorPromptTemplate, strings.Join(doctors, ", "))
}
