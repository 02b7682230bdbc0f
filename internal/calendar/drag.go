package calendar

import (
	"log"
	"math"
	"time"

	"github.com/askeland/termin/internal/appointment"
)

const (
	// Vertical movements smaller than this are treated as noise.
	dragNoiseThresholdPx = 15

	// 30 pixels of vertical travel is one half-hour step.
	pixelsPerHalfHour = 30
)

// DragContext tracks one in-flight gesture. It is created when a drag
// begins and discarded on drop or cancel; nothing here is persisted.
type DragContext struct {
	Appointment appointment.Appointment
	StartUnits  int // vertical position of the appointment at drag start
	OriginX     float64
	OriginY     float64
}

func BeginDrag(a appointment.Appointment, x, y float64) DragContext {
	return DragContext{
		Appointment: a,
		StartUnits:  TimeToPosition(a.StartTime),
		OriginX:     x,
		OriginY:     y,
	}
}

// MoveToDay returns a candidate appointment rescheduled onto the target
// day. The hour and minute carried on the date field are preserved, and
// the start/end times are untouched; only the calendar day changes. The
// caller is responsible for handing the candidate to the store.
func MoveToDay(a appointment.Appointment, target time.Time) appointment.Appointment {
	d := a.Date
	a.Date = time.Date(target.Year(), target.Month(), target.Day(),
		d.Hour(), d.Minute(), 0, 0, d.Location())
	return a
}

// ShiftTime returns a candidate appointment with its start and end
// moved by the vertical drag distance, snapped to half-hour steps and
// clamped to the day. The second result is false when the gesture was
// below the noise threshold or rounded to zero steps; the appointment
// is returned unchanged in that case.
func ShiftTime(a appointment.Appointment, yOffset float64) (appointment.Appointment, bool) {
	if math.Abs(yOffset) < dragNoiseThresholdPx {
		return a, false
	}

	increments := int(math.Round(yOffset / pixelsPerHalfHour))
	if increments == 0 {
		return a, false
	}

	start, err := ParseMinutes(a.StartTime)
	if err != nil {
		log.Printf("calendar: drag on %s: %v", a.ID, err)
		return a, false
	}
	end, err := ParseMinutes(a.EndTime)
	if err != nil {
		log.Printf("calendar: drag on %s: %v", a.ID, err)
		return a, false
	}

	// Both endpoints move together so the duration is preserved.
	start += increments * snapMinutes
	end += increments * snapMinutes

	if start < 0 {
		end -= start
		start = 0
	}
	if end > MinutesPerDay {
		excess := end - MinutesPerDay
		end = MinutesPerDay
		start -= excess
		// The start never crosses midnight, even if that truncates
		// the duration.
		if start < 0 {
			start = 0
		}
	}

	a.StartTime = FormatMinutes(start)
	a.EndTime = FormatMinutes(end)
	return a, true
}
