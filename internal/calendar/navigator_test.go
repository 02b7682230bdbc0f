package calendar

import (
	"testing"
	"time"
)

func TestNavigatorNextPreviousInverse(t *testing.T) {
	tests := []struct {
		name   string
		anchor time.Time
		mode   ViewMode
	}{
		{"week mid-month", date(2024, time.March, 13), ViewWeek},
		{"week at year end", date(2024, time.December, 30), ViewWeek},
		{"day at month end", date(2024, time.January, 31), ViewDay},
		{"day leap February", date(2024, time.February, 29), ViewDay},
		{"month on the first", date(2024, time.March, 1), ViewMonth},
		{"month on the 31st", date(2024, time.January, 31), ViewMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNavigator(tt.anchor, tt.mode)
			before := n.Snapshot()

			n.Next()
			n.Previous()
			after := n.Snapshot()

			// The displayed period always returns to where it started.
			if after.Label != before.Label {
				t.Errorf("label after next+previous = %q, want %q", after.Label, before.Label)
			}
			if len(after.Days) != len(before.Days) {
				t.Fatalf("grid length changed: %d -> %d", len(before.Days), len(after.Days))
			}
			for i := range after.Days {
				if !after.Days[i].Equal(before.Days[i]) {
					t.Errorf("days[%d] = %s, want %s", i, after.Days[i], before.Days[i])
				}
			}

			// Week and day steps are exact inverses on the anchor itself
			if tt.mode != ViewMonth && !after.Anchor.Equal(before.Anchor) {
				t.Errorf("anchor after next+previous = %s, want %s", after.Anchor, before.Anchor)
			}
		})
	}
}

func TestNavigatorMonthStepsLandOnFirst(t *testing.T) {
	n := NewNavigator(date(2024, time.January, 31), ViewMonth)

	n.Next()
	if got := n.Anchor(); !got.Equal(date(2024, time.February, 1)) {
		t.Errorf("Next from Jan 31 = %s, want Feb 1", got)
	}

	n.Next()
	if got := n.Anchor(); !got.Equal(date(2024, time.March, 1)) {
		t.Errorf("second Next = %s, want Mar 1", got)
	}

	n.Previous()
	n.Previous()
	if got := n.Anchor(); !got.Equal(date(2024, time.January, 1)) {
		t.Errorf("after stepping back twice = %s, want Jan 1", got)
	}
}

func TestNavigatorYearBoundary(t *testing.T) {
	n := NewNavigator(date(2024, time.December, 15), ViewMonth)
	n.Next()
	if got := n.Anchor(); !got.Equal(date(2025, time.January, 1)) {
		t.Errorf("Next from December = %s, want Jan 1 of next year", got)
	}

	n = NewNavigator(date(2024, time.January, 15), ViewMonth)
	n.Previous()
	if got := n.Anchor(); !got.Equal(date(2023, time.December, 1)) {
		t.Errorf("Previous from January = %s, want Dec 1 of prior year", got)
	}
}

func TestNavigatorToday(t *testing.T) {
	n := NewNavigator(date(2024, time.March, 10), ViewWeek)
	n.SetClock(func() time.Time {
		return time.Date(2025, time.August, 25, 16, 45, 0, 0, time.Local)
	})

	n.Today()

	if got := n.Anchor(); !got.Equal(date(2025, time.August, 25)) {
		t.Errorf("anchor after Today = %s, want 2025-08-25", got)
	}
	if n.Mode() != ViewWeek {
		t.Errorf("Today changed the view mode to %s", n.Mode())
	}
}

func TestNavigatorSetViewMode(t *testing.T) {
	anchor := date(2024, time.March, 10)
	n := NewNavigator(anchor, ViewMonth)

	n.SetViewMode(ViewDay)

	if n.Mode() != ViewDay {
		t.Errorf("mode = %s, want day", n.Mode())
	}
	if !n.Anchor().Equal(anchor) {
		t.Errorf("SetViewMode moved the anchor to %s", n.Anchor())
	}
}

func TestSnapshotIsConsistent(t *testing.T) {
	n := NewNavigator(date(2024, time.March, 10), ViewMonth)

	for _, step := range []func(){n.Next, n.Previous, func() { n.SetViewMode(ViewWeek) }, n.Next} {
		step()
		snap := n.Snapshot()

		wantDays := Days(snap.Anchor, snap.Mode)
		if len(snap.Days) != len(wantDays) {
			t.Fatalf("snapshot days not derived from its own anchor/mode")
		}
		for i := range wantDays {
			if !snap.Days[i].Equal(wantDays[i]) {
				t.Errorf("snapshot days[%d] inconsistent with anchor", i)
			}
		}
		if snap.Label != Label(snap.Anchor, snap.Mode) {
			t.Errorf("snapshot label inconsistent with anchor")
		}
	}
}
