// Package availability generates bookable dates and time slots.
package availability

import (
	"context"
	"time"

	"github.com/abcdental/chat-platform/internal/model"
)

// Business hours and slot granularity for the clinic.
const (
	businessHoursStart  = 9
	businessHoursEnd    = 18
	slotDurationMinutes = 30
)

// preferredSlot is suggested first when open; it is the clinic's most
// popular time.
const preferredSlot = "10:00"

// SlotChecker reports whether a slot is still open. A nil checker treats
// every slot as open, as does a checker error.
type SlotChecker interface {
	IsSlotAvailable(ctx context.Context, date, timeStr string) (bool, error)
}

// Service generates availability windows.
type Service struct {
	checker SlotChecker
	now     func() time.Time
}

// NewService creates an availability service. checker may be nil.
func NewService(checker SlotChecker) *Service {
	return &Service{checker: checker, now: time.Now}
}

// AvailableDates returns open dates within daysAhead days, starting
// tomorrow. Weekends are skipped and dates with no open slots are omitted.
func (s *Service) AvailableDates(ctx context.Context, daysAhead int) []model.TimeSlot {
	var dates []model.TimeSlot
	today := s.now()

	for i := 1; i <= daysAhead; i++ {
		day := today.AddDate(0, 0, i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		slots := s.slotsFor(ctx, day)
		if len(slots) == 0 {
			continue
		}

		dates = append(dates, model.TimeSlot{
			Date:      day.Format("2006-01-02"),
			DayOfWeek: day.Weekday().String(),
			Slots:     slots,
		})
	}

	return dates
}

func (s *Service) slotsFor(ctx context.Context, day time.Time) []string {
	var slots []string

	cursor := time.Date(day.Year(), day.Month(), day.Day(), businessHoursStart, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), businessHoursEnd, 0, 0, 0, day.Location())

	for cursor.Before(end) {
		timeStr := cursor.Format("15:04")
		if s.open(ctx, day.Format("2006-01-02"), timeStr) {
			slots = append(slots, timeStr)
		}
		cursor = cursor.Add(slotDurationMinutes * time.Minute)
	}

	return slots
}

func (s *Service) open(ctx context.Context, date, timeStr string) bool {
	if s.checker == nil {
		return true
	}
	ok, err := s.checker.IsSlotAvailable(ctx, date, timeStr)
	if err != nil {
		// Availability lookups must not block booking; assume open.
		return true
	}
	return ok
}

// Suggest picks a recommended slot from the given dates: the earliest date
// offering the preferred time, otherwise the first slot of the earliest
// date. Returns nil when nothing is open.
func Suggest(dates []model.TimeSlot) *model.Suggestion {
	for _, d := range dates {
		for _, slot := range d.Slots {
			if slot == preferredSlot {
				return &model.Suggestion{Date: d.Date, Time: preferredSlot}
			}
		}
		if len(d.Slots) > 0 {
			return &model.Suggestion{Date: d.Date, Time: d.Slots[0]}
		}
	}
	return nil
}
