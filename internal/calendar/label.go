package calendar

import (
	"fmt"
	"time"
)

// Label renders the period heading for the given anchor and view mode.
func Label(anchor time.Time, mode ViewMode) string {
	switch mode {
	case ViewWeek:
		days := weekDays(anchor)
		first, last := days[0], days[6]
		if first.Month() == last.Month() {
			return fmt.Sprintf("%s %d - %d, %d",
				first.Format("January"), first.Day(), last.Day(), first.Year())
		}
		// A displayed week may straddle a month end.
		return fmt.Sprintf("%s %d - %s %d, %d",
			first.Format("Jan"), first.Day(),
			last.Format("Jan"), last.Day(), first.Year())
	case ViewDay:
		return anchor.Format("Monday, January 2, 2006")
	default:
		return anchor.Format("January 2006")
	}
}
