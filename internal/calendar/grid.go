package calendar

import (
	"fmt"
	"time"
)

type ViewMode int

const (
	ViewMonth ViewMode = iota
	ViewWeek
	ViewDay
)

func (v ViewMode) String() string {
	switch v {
	case ViewMonth:
		return "month"
	case ViewWeek:
		return "week"
	case ViewDay:
		return "day"
	default:
		return "unknown"
	}
}

// ParseViewMode maps a config/flag value to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "month":
		return ViewMonth, nil
	case "week":
		return ViewWeek, nil
	case "day":
		return ViewDay, nil
	default:
		return ViewMonth, fmt.Errorf("unknown view mode: %s", s)
	}
}

// Days returns the ordered list of dates displayed for the given anchor
// and view mode, earliest first. Month and week grids always begin on a
// Sunday. The result depends only on the inputs, never on the clock.
func Days(anchor time.Time, mode ViewMode) []time.Time {
	switch mode {
	case ViewWeek:
		return weekDays(anchor)
	case ViewDay:
		return []time.Time{DateOnly(anchor)}
	default:
		return monthDays(anchor)
	}
}

func monthDays(anchor time.Time) []time.Time {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	// Extend backward to the preceding Sunday and forward to the
	// following Saturday so the grid is always full weeks.
	start := weekStart(firstOfMonth)
	end := lastOfMonth.AddDate(0, 0, 6-int(lastOfMonth.Weekday()))

	var days []time.Time
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

func weekDays(anchor time.Time) []time.Time {
	start := weekStart(anchor)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// weekStart returns the Sunday on or before the given date, at midnight.
func weekStart(t time.Time) time.Time {
	d := DateOnly(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DateOnly truncates a time to its calendar date at local midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// HourSlots returns the 24 gutter labels for the week and day views.
func HourSlots() []string {
	slots := make([]string, 24)
	for i := range slots {
		slots[i] = fmt.Sprintf("%02d:00", i)
	}
	return slots
}
