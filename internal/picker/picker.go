// Package picker implements the per-message date/time selection state.
// Each assistant message with availability gets its own Picker instance;
// instances are never shared or reset across messages.
package picker

import (
	"github.com/abcdental/chat-platform/internal/model"
)

// Picker tracks date selection against one message's availability payload.
// It stays interactive for the life of its host message; a completed
// selection does not lock it, and a later re-selection is treated as
// authoritative by the booking service.
type Picker struct {
	messageID    string
	availability model.AvailabilityData
	selectedDate string
}

// New creates a picker for the given message's availability. The suggested
// date is pre-selected only when it actually appears among the listed
// dates; a suggestion pointing at an unlisted date is ignored rather than
// trusted.
func New(messageID string, availability model.AvailabilityData) *Picker {
	p := &Picker{
		messageID:    messageID,
		availability: availability,
	}
	if s := availability.Suggested; s != nil && availability.HasDate(s.Date) {
		p.selectedDate = s.Date
	}
	return p
}

// MessageID identifies the host message whose payload this picker was built
// from.
func (p *Picker) MessageID() string {
	return p.messageID
}

// Dates returns the selectable dates in display order.
func (p *Picker) Dates() []model.TimeSlot {
	return p.availability.AvailableDates
}

// SelectedDate returns the currently selected date, or "" when none is
// selected.
func (p *Picker) SelectedDate() string {
	return p.selectedDate
}

// SelectDate selects a date. Picking a date not in the payload is a no-op
// and reports false; picking a different date replaces the selection and
// recomputes the visible time slots.
func (p *Picker) SelectDate(date string) bool {
	if !p.availability.HasDate(date) {
		return false
	}
	p.selectedDate = date
	return true
}

// Times returns the time slots for the selected date. No selection, or a
// date with no slots, yields an empty list.
func (p *Picker) Times() []string {
	if p.selectedDate == "" {
		return nil
	}
	return p.availability.SlotsFor(p.selectedDate)
}

// SelectTime completes a selection. It reports the (date, time) pair the
// selection bridge should forward, or false when no date is selected or the
// time is not one of that date's slots. The picker's own state does not
// change; the resulting conversation message is someone else's business.
func (p *Picker) SelectTime(timeStr string) (date, selected string, ok bool) {
	if p.selectedDate == "" {
		return "", "", false
	}
	for _, slot := range p.availability.SlotsFor(p.selectedDate) {
		if slot == timeStr {
			return p.selectedDate, timeStr, true
		}
	}
	return "", "", false
}

// SuggestionHint returns the suggested time to highlight. It is visible
// only while the suggested date remains the selected date.
func (p *Picker) SuggestionHint() (string, bool) {
	s := p.availability.Suggested
	if s == nil || p.selectedDate == "" || p.selectedDate != s.Date {
		return "", false
	}
	return s.Time, true
}
