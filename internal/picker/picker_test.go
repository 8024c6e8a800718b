package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abcdental/chat-platform/internal/model"
)

func availability() model.AvailabilityData {
	return model.AvailabilityData{
		AvailableDates: []model.TimeSlot{
			{Date: "2026-01-10", Slots: []string{"09:00", "10:00"}},
			{Date: "2026-01-11", Slots: []string{"14:00"}},
		},
	}
}

func TestNoPreselectionWithoutSuggestion(t *testing.T) {
	p := New("m1", availability())
	assert.Empty(t, p.SelectedDate())
	assert.Empty(t, p.Times())
}

func TestSuggestedDatePreselected(t *testing.T) {
	av := availability()
	av.Suggested = &model.Suggestion{Date: "2026-01-10", Time: "09:00"}
	p := New("m1", av)

	assert.Equal(t, "2026-01-10", p.SelectedDate())

	hint, ok := p.SuggestionHint()
	require.True(t, ok)
	assert.Equal(t, "09:00", hint)
}

func TestSuggestionHintDisappearsOnOtherDate(t *testing.T) {
	av := availability()
	av.Suggested = &model.Suggestion{Date: "2026-01-10", Time: "09:00"}
	p := New("m1", av)

	require.True(t, p.SelectDate("2026-01-11"))
	_, ok := p.SuggestionHint()
	assert.False(t, ok)

	// Returning to the suggested date brings the hint back.
	require.True(t, p.SelectDate("2026-01-10"))
	hint, ok := p.SuggestionHint()
	require.True(t, ok)
	assert.Equal(t, "09:00", hint)
}

func TestMalformedSuggestionIgnored(t *testing.T) {
	av := availability()
	av.Suggested = &model.Suggestion{Date: "2026-02-01", Time: "09:00"}
	p := New("m1", av)

	assert.Empty(t, p.SelectedDate(), "suggestion for an unlisted date must not pre-select")
	_, ok := p.SuggestionHint()
	assert.False(t, ok)
}

func TestSelectDateRecomputesTimes(t *testing.T) {
	p := New("m1", availability())

	require.True(t, p.SelectDate("2026-01-10"))
	assert.Equal(t, []string{"09:00", "10:00"}, p.Times())

	require.True(t, p.SelectDate("2026-01-11"))
	assert.Equal(t, []string{"14:00"}, p.Times())
}

func TestSelectDateRejectsUnlisted(t *testing.T) {
	p := New("m1", availability())
	assert.False(t, p.SelectDate("2026-03-01"))
	assert.Empty(t, p.SelectedDate())
}

func TestSelectTime(t *testing.T) {
	p := New("m1", availability())

	_, _, ok := p.SelectTime("09:00")
	assert.False(t, ok, "no time pick without a selected date")

	require.True(t, p.SelectDate("2026-01-10"))

	date, tm, ok := p.SelectTime("09:00")
	require.True(t, ok)
	assert.Equal(t, "2026-01-10", date)
	assert.Equal(t, "09:00", tm)

	_, _, ok = p.SelectTime("23:00")
	assert.False(t, ok, "time must be one of the date's slots")

	// The picker remains interactive after a completed selection.
	date, tm, ok = p.SelectTime("10:00")
	require.True(t, ok)
	assert.Equal(t, "2026-01-10", date)
	assert.Equal(t, "10:00", tm)
}

func TestEmptySlotListTolerated(t *testing.T) {
	p := New("m1", model.AvailabilityData{
		AvailableDates: []model.TimeSlot{{Date: "2026-01-10", Slots: nil}},
	})

	require.True(t, p.SelectDate("2026-01-10"))
	assert.Empty(t, p.Times())
	_, _, ok := p.SelectTime("09:00")
	assert.False(t, ok)
}
