package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		wantLen   int
		wantFirst time.Time
		wantLast  time.Time
	}{
		{
			name:      "March 2024 spans six weeks",
			anchor:    date(2024, time.March, 10),
			wantLen:   42,
			wantFirst: date(2024, time.February, 25),
			wantLast:  date(2024, time.April, 6),
		},
		{
			name:      "February 2026 fits exactly four weeks",
			anchor:    date(2026, time.February, 14),
			wantLen:   28,
			wantFirst: date(2026, time.February, 1),
			wantLast:  date(2026, time.February, 28),
		},
		{
			name:      "September 2024 starts on a Sunday",
			anchor:    date(2024, time.September, 30),
			wantLen:   35,
			wantFirst: date(2024, time.September, 1),
			wantLast:  date(2024, time.October, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Days(tt.anchor, ViewMonth)

			if len(days) != tt.wantLen {
				t.Errorf("got %d days, want %d", len(days), tt.wantLen)
			}
			if len(days)%7 != 0 {
				t.Errorf("grid length %d is not a multiple of 7", len(days))
			}
			if days[0].Weekday() != time.Sunday {
				t.Errorf("grid starts on %s, want Sunday", days[0].Weekday())
			}
			if !days[0].Equal(tt.wantFirst) {
				t.Errorf("first day = %s, want %s", days[0], tt.wantFirst)
			}
			if !days[len(days)-1].Equal(tt.wantLast) {
				t.Errorf("last day = %s, want %s", days[len(days)-1], tt.wantLast)
			}

			// The 1st and last day of the anchor's month must be present
			firstOfMonth := date(tt.anchor.Year(), tt.anchor.Month(), 1)
			lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
			if !containsDate(days, firstOfMonth) {
				t.Errorf("grid is missing the 1st of the month")
			}
			if !containsDate(days, lastOfMonth) {
				t.Errorf("grid is missing the last day of the month")
			}
		})
	}
}

func TestMonthGridConsecutive(t *testing.T) {
	days := Days(date(2024, time.March, 15), ViewMonth)
	for i := 1; i < len(days); i++ {
		if !days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("days[%d] = %s does not follow %s", i, days[i], days[i-1])
		}
	}
}

func TestWeekGrid(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		wantFirst time.Time
	}{
		{"anchor on Sunday", date(2024, time.March, 10), date(2024, time.March, 10)},
		{"anchor mid-week", date(2024, time.March, 13), date(2024, time.March, 10)},
		{"anchor on Saturday", date(2024, time.March, 16), date(2024, time.March, 10)},
		{"week straddles month end", date(2024, time.April, 2), date(2024, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Days(tt.anchor, ViewWeek)

			if len(days) != 7 {
				t.Fatalf("got %d days, want 7", len(days))
			}
			if days[0].Weekday() != time.Sunday {
				t.Errorf("week starts on %s, want Sunday", days[0].Weekday())
			}
			if !days[0].Equal(tt.wantFirst) {
				t.Errorf("first day = %s, want %s", days[0], tt.wantFirst)
			}
			for i, d := range days {
				if !d.Equal(tt.wantFirst.AddDate(0, 0, i)) {
					t.Errorf("days[%d] = %s, want %s", i, d, tt.wantFirst.AddDate(0, 0, i))
				}
			}
		})
	}
}

func TestDayGrid(t *testing.T) {
	anchor := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.Local)
	days := Days(anchor, ViewDay)

	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	if !days[0].Equal(date(2024, time.March, 10)) {
		t.Errorf("day = %s, want midnight of the anchor date", days[0])
	}
}

func TestDaysIsDeterministic(t *testing.T) {
	anchor := date(2024, time.March, 10)
	for _, mode := range []ViewMode{ViewMonth, ViewWeek, ViewDay} {
		a := Days(anchor, mode)
		b := Days(anchor, mode)
		if len(a) != len(b) {
			t.Fatalf("%s: lengths differ between calls", mode)
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				t.Errorf("%s: days[%d] differs between calls", mode, i)
			}
		}
	}
}

func TestHourSlots(t *testing.T) {
	slots := HourSlots()
	if len(slots) != 24 {
		t.Fatalf("got %d slots, want 24", len(slots))
	}
	if slots[0] != "00:00" || slots[9] != "09:00" || slots[23] != "23:00" {
		t.Errorf("unexpected slot labels: %v", slots)
	}
}

func TestParseViewMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want ViewMode
		ok   bool
	}{
		{"month", ViewMonth, true},
		{"week", ViewWeek, true},
		{"day", ViewDay, true},
		{"year", ViewMonth, false},
	} {
		got, err := ParseViewMode(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseViewMode(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseViewMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func containsDate(days []time.Time, want time.Time) bool {
	for _, d := range days {
		if SameDay(d, want) {
			return true
		}
	}
	return false
}
