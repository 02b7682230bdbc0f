package calendar

import (
	"testing"
	"time"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		mode   ViewMode
		want   string
	}{
		{
			name:   "month",
			anchor: date(2024, time.March, 10),
			mode:   ViewMonth,
			want:   "March 2024",
		},
		{
			name:   "week within one month",
			anchor: date(2024, time.March, 13),
			mode:   ViewWeek,
			want:   "March 10 - 16, 2024",
		},
		{
			name:   "week straddling a month end",
			anchor: date(2024, time.April, 2),
			mode:   ViewWeek,
			want:   "Mar 31 - Apr 6, 2024",
		},
		{
			name:   "week straddling a year end",
			anchor: date(2024, time.December, 31),
			mode:   ViewWeek,
			want:   "Dec 29 - Jan 4, 2024",
		},
		{
			name:   "day",
			anchor: date(2024, time.March, 10),
			mode:   ViewDay,
			want:   "Sunday, March 10, 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.anchor, tt.mode); got != tt.want {
				t.Errorf("Label(%s, %s) = %q, want %q", tt.anchor.Format("2006-01-02"), tt.mode, got, tt.want)
			}
		})
	}
}
