// Package render draws the conversation for a terminal session. It is a
// pure projection over the store: it owns no conversation state and invokes
// the shared selection entry point verbatim when the user completes a pick.
package render

import (
	"fmt"
	"io"

	"github.com/abcdental/chat-platform/internal/model"
	"github.com/abcdental/chat-platform/internal/picker"
)

// Renderer writes conversation output to a terminal.
type Renderer struct {
	out io.Writer
}

// New creates a renderer writing to out.
func New(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Message draws one message.
func (r *Renderer) Message(msg model.Message) {
	label := "assistant"
	if msg.Role == model.RoleUser {
		label = "you"
	}
	fmt.Fprintf(r.out, "[%s] %s\n", label, msg.Content)
}

// Transcript draws all messages in insertion order.
func (r *Renderer) Transcript(msgs []model.Message) {
	for _, msg := range msgs {
		r.Message(msg)
	}
}

// Picker draws the date menu, and the time menu once a date is selected.
func (r *Renderer) Picker(p *picker.Picker) {
	fmt.Fprintln(r.out, "Select a date:")
	for i, d := range p.Dates() {
		marker := " "
		if d.Date == p.SelectedDate() {
			marker = "*"
		}
		label := d.Date
		if d.DayOfWeek != "" {
			label = fmt.Sprintf("%s (%s)", d.Date, d.DayOfWeek)
		}
		fmt.Fprintf(r.out, " %s %d) %s, %d slots\n", marker, i+1, label, len(d.Slots))
	}

	if p.SelectedDate() == "" {
		return
	}

	fmt.Fprintln(r.out, "Select a time:")
	for i, tm := range p.Times() {
		fmt.Fprintf(r.out, "   %d) %s\n", i+1, tm)
	}
	if hint, ok := p.SuggestionHint(); ok {
		fmt.Fprintf(r.out, "Suggested time: %s\n", hint)
	}
}

// Busy draws the waiting indicator shown while a send is in flight.
func (r *Renderer) Busy() {
	fmt.Fprintln(r.out, "...")
}
