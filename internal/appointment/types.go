package appointment

import (
	"time"
)

// Appointment is one scheduled event. Date carries the calendar day
// (plus a display-ordering time of day); the wall-clock range lives in
// StartTime/EndTime as 24-hour "HH:MM" strings. The range is not
// validated: an inverted range is stored as-is and only clamped at
// render time.
type Appointment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Color       string    `json:"color,omitempty"`
}

// Palette is the fixed set of display colors an appointment may carry.
// The color has no behavioral effect.
var Palette = []string{
	"#f44336", // red
	"#e91e63", // pink
	"#9c27b0", // purple
	"#673ab7", // deep purple
	"#3f51b5", // indigo
	"#2196f3", // blue
	"#03a9f4", // light blue
	"#00bcd4", // cyan
	"#009688", // teal
	"#4caf50", // green
	"#8bc34a", // light green
	"#cddc39", // lime
	"#ffeb3b", // yellow
	"#ffc107", // amber
	"#ff9800", // orange
	"#ff5722", // deep orange
	"#795548", // brown
	"#9e9e9e", // grey
	"#607d8b", // blue grey
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
