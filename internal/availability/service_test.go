package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdental/chat-platform/internal/model"
)

type checkerFunc func(ctx context.Context, date, timeStr string) (bool, error)

func (f checkerFunc) IsSlotAvailable(ctx context.Context, date, timeStr string) (bool, error) {
	return f(ctx, date, timeStr)
}

func serviceAt(t *testing.T, now time.Time, checker SlotChecker) *Service {
	t.Helper()
	s := NewService(checker)
	s.now = func() time.Time { return now }
	return s
}

func TestAvailableDatesSkipsWeekends(t *testing.T) {
	// 2026-01-09 is a Friday; the next 4 days are Sat, Sun, Mon, Tue.
	s := serviceAt(t, time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC), nil)

	dates := s.AvailableDates(context.Background(), 4)
	require.Len(t, dates, 2)
	assert.Equal(t, "2026-01-12", dates[0].Date)
	assert.Equal(t, "Monday", dates[0].DayOfWeek)
	assert.Equal(t, "2026-01-13", dates[1].Date)
}

func TestSlotsCoverBusinessHours(t *testing.T) {
	s := serviceAt(t, time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC), nil)

	dates := s.AvailableDates(context.Background(), 1)
	require.Len(t, dates, 1)

	slots := dates[0].Slots
	require.Len(t, slots, 18, "09:00 through 17:30 at 30-minute steps")
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])
}

func TestBookedSlotsFiltered(t *testing.T) {
	checker := checkerFunc(func(_ context.Context, _, timeStr string) (bool, error) {
		return timeStr != "09:00", nil
	})
	s := serviceAt(t, time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC), checker)

	dates := s.AvailableDates(context.Background(), 1)
	require.Len(t, dates, 1)
	assert.NotContains(t, dates[0].Slots, "09:00")
	assert.Contains(t, dates[0].Slots, "09:30")
}

func TestFullyBookedDateOmitted(t *testing.T) {
	checker := checkerFunc(func(_ context.Context, _, _ string) (bool, error) {
		return false, nil
	})
	s := serviceAt(t, time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC), checker)

	assert.Empty(t, s.AvailableDates(context.Background(), 1))
}

func TestCheckerErrorAssumesOpen(t *testing.T) {
	checker := checkerFunc(func(_ context.Context, _, _ string) (bool, error) {
		return false, errors.New("db down")
	})
	s := serviceAt(t, time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC), checker)

	dates := s.AvailableDates(context.Background(), 1)
	require.Len(t, dates, 1)
	assert.Len(t, dates[0].Slots, 18)
}

func TestSuggestPrefersTenOClock(t *testing.T) {
	sugg := Suggest([]model.TimeSlot{
		{Date: "2026-01-12", Slots: []string{"09:00", "09:30"}},
		{Date: "2026-01-13", Slots: []string{"10:00", "10:30"}},
	})
	require.NotNil(t, sugg)
	assert.Equal(t, "2026-01-12", sugg.Date)
	assert.Equal(t, "09:00", sugg.Time, "first slot of earliest date when 10:00 is taken there")

	sugg = Suggest([]model.TimeSlot{
		{Date: "2026-01-12", Slots: []string{"09:00", "10:00"}},
	})
	require.NotNil(t, sugg)
	assert.Equal(t, "10:00", sugg.Time)
}

func TestSuggestNilWhenNothingOpen(t *testing.T) {
	assert.Nil(t, Suggest(nil))
	assert.Nil(t, Suggest([]model.TimeSlot{{Date: "2026-01-12"}}))
}
