// Package timeslot computes slot availability from working hours and
// existing bookings. Everything here is pure: no clock, no I/O.
package timeslot

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var weekdayKeys = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// WeekdayKey returns the working-hours key for a date, Monday first.
func WeekdayKey(d time.Time) string {
	// time.Weekday has Sunday=0; shift to Monday=0.
	return weekdayKeys[(int(d.Weekday())+6)%7]
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into minutes since midnight.
// Seconds are truncated; there is no rounding.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Label renders minutes since midnight as a human label like "7:00 PM".
func Label(m int) string {
	h := m / 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m%60, suffix)
}

// Interval is a half-open [Start, End) range in minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports half-open interval intersection. Touching boundaries do
// not overlap: a booking ending 12:30 leaves the 12:30 slot free.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// Slots generates candidate start times (minutes since midnight, ascending)
// by striding from open to close in slotDuration steps. A candidate is
// dropped when [start, start+serviceDuration) would run past close or would
// overlap any booked interval. Non-positive durations or unparseable hours
// yield an empty result; that is invalid configuration, not an error.
func Slots(open, closeAt string, slotDuration, serviceDuration int, booked []Interval) []int {
	if slotDuration <= 0 || serviceDuration <= 0 {
		return nil
	}
	start, err := ParseClock(open)
	if err != nil {
		return nil
	}
	end, err := ParseClock(closeAt)
	if err != nil {
		return nil
	}

	var out []int
	for t := start; t+serviceDuration <= end; t += slotDuration {
		candidate := Interval{Start: t, End: t + serviceDuration}
		free := true
		for _, b := range booked {
			if Overlaps(candidate, b) {
				free = false
				break
			}
		}
		if free {
			out = append(out, t)
		}
	}
	return out
}
