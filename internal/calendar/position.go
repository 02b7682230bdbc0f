package calendar

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// One vertical unit is one minute of wall-clock time; an hour row is 60
// units tall.
const (
	MinutesPerDay = 24 * 60

	snapMinutes    = 30
	minHeightUnits = 30

	// Fallback height when a time string cannot be parsed: one hour.
	defaultHeightUnits = 60
)

// ParseMinutes converts an "HH:MM" wall-clock string to minutes since
// midnight. "24:00" is accepted so ranges clamped to the end of the day
// round-trip.
func ParseMinutes(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("malformed time %q: missing ':'", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: bad hour", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed time %q: bad minute", s)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatMinutes renders minutes since midnight as zero-padded "HH:MM".
// The day boundary (1440) renders as "24:00".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// TimeToPosition converts a start time to its vertical unit offset.
// Malformed input yields position 0 with a logged diagnostic so
// rendering never fails on bad data.
func TimeToPosition(s string) int {
	pos, err := ParseMinutes(s)
	if err != nil {
		log.Printf("calendar: %v", err)
		return 0
	}
	return pos
}

// PositionToTime snaps a vertical unit offset to the half-hour grid and
// formats it as "HH:MM". Ties round away from zero; negative positions
// clamp to midnight.
func PositionToTime(position int) string {
	snapped := snapToHalfHour(position)
	if snapped < 0 {
		snapped = 0
	}
	return FormatMinutes(snapped)
}

func snapToHalfHour(p int) int {
	if p < 0 {
		return -snapToHalfHour(-p)
	}
	return (p + snapMinutes/2) / snapMinutes * snapMinutes
}

// DurationMinutes returns end minus start in minutes. The result is
// negative when end precedes start; inverted ranges are not rejected
// here. Malformed input yields the one-hour default.
func DurationMinutes(start, end string) int {
	s, err := ParseMinutes(start)
	if err != nil {
		log.Printf("calendar: %v", err)
		return defaultHeightUnits
	}
	e, err := ParseMinutes(end)
	if err != nil {
		log.Printf("calendar: %v", err)
		return defaultHeightUnits
	}
	return e - s
}

// HeightUnits returns the rendered block height for a time range,
// never less than half an hour regardless of the actual duration.
func HeightUnits(start, end string) int {
	d := DurationMinutes(start, end)
	if d < minHeightUnits {
		return minHeightUnits
	}
	return d
}
