package model

// TimeSlot is one bookable calendar date and its open times. Slots keep the
// order the producer listed them in; an empty slot list is tolerated and
// simply offers nothing to pick.
type TimeSlot struct {
	Date      string   `json:"date"`
	DayOfWeek string   `json:"day_of_week,omitempty"`
	Slots     []string `json:"slots"`
}

// Suggestion is a producer-recommended (date, time) pair. A well-formed
// producer guarantees the pair appears in the listed dates; consumers must
// not assume it does.
type Suggestion struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// AvailabilityData drives the date/time picker attached to an assistant
// message.
type AvailabilityData struct {
	AvailableDates []TimeSlot  `json:"available_dates"`
	Suggested      *Suggestion `json:"suggested,omitempty"`
}

// SlotsFor returns the open times for the given date, or nil when the date
// is not listed.
func (a *AvailabilityData) SlotsFor(date string) []string {
	for _, d := range a.AvailableDates {
		if d.Date == date {
			return d.Slots
		}
	}
	return nil
}

// HasDate reports whether the given date is one of the listed dates.
func (a *AvailabilityData) HasDate(date string) bool {
	for _, d := range a.AvailableDates {
		if d.Date == date {
			return true
		}
	}
	return false
}
