package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayKey_MondayFirst(t *testing.T) {
	// 2025-06-02 is a Monday.
	d := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	keys := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	for i, want := range keys {
		assert.Equal(t, want, WeekdayKey(d.AddDate(0, 0, i)))
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = ParseClock("19:00:00")
	require.NoError(t, err)
	assert.Equal(t, 19*60, m)

	_, err = ParseClock("nonsense")
	assert.Error(t, err)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestSlots_FullDay(t *testing.T) {
	// 09:00-17:00, 30 min slots, 30 min service: 09:00 .. 16:30, 16 slots.
	slots := Slots("09:00", "17:00", 30, 30, nil)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:00", FormatClock(slots[0]))
	assert.Equal(t, "16:30", FormatClock(slots[len(slots)-1]))
}

func TestSlots_ServiceLongerThanSlot(t *testing.T) {
	// 90 min service must still fit before close.
	slots := Slots("09:00", "12:00", 30, 90, nil)
	require.NotEmpty(t, slots)
	assert.Equal(t, "10:30", FormatClock(slots[len(slots)-1]))
}

func TestSlots_ExcludesBookedOverlap(t *testing.T) {
	booked := []Interval{{Start: 12 * 60, End: 12*60 + 30}}
	slots := Slots("09:00", "17:00", 30, 30, booked)

	formatted := make([]string, 0, len(slots))
	for _, s := range slots {
		formatted = append(formatted, FormatClock(s))
	}
	assert.NotContains(t, formatted, "12:00")
	// Touching boundary is not an overlap.
	assert.Contains(t, formatted, "12:30")
	assert.Contains(t, formatted, "11:30")
}

func TestSlots_LongBookingShadowsSeveralSlots(t *testing.T) {
	// 12:00-14:00 booking blocks 12:00, 12:30, 13:00 and 13:30.
	booked := []Interval{{Start: 12 * 60, End: 14 * 60}}
	slots := Slots("09:00", "17:00", 30, 30, booked)
	for _, s := range slots {
		assert.False(t, s >= 12*60 && s < 14*60, "slot %s should be blocked", FormatClock(s))
	}
}

func TestSlots_InvalidConfig(t *testing.T) {
	assert.Empty(t, Slots("09:00", "17:00", 0, 30, nil))
	assert.Empty(t, Slots("09:00", "17:00", 30, -1, nil))
	assert.Empty(t, Slots("bad", "17:00", 30, 30, nil))
	assert.Empty(t, Slots("09:00", "bad", 30, 30, nil))
}

func TestOverlaps_HalfOpen(t *testing.T) {
	a := Interval{Start: 600, End: 630}
	assert.True(t, Overlaps(a, Interval{Start: 615, End: 645}))
	assert.True(t, Overlaps(a, Interval{Start: 590, End: 610}))
	assert.False(t, Overlaps(a, Interval{Start: 630, End: 660}))
	assert.False(t, Overlaps(a, Interval{Start: 570, End: 600}))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "7:00 PM", Label(19*60))
	assert.Equal(t, "12:00 PM", Label(12*60))
	assert.Equal(t, "12:30 AM", Label(30))
	assert.Equal(t, "9:05 AM", Label(9*60+5))
}
