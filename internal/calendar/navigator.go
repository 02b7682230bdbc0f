package calendar

import (
	"time"
)

// Snapshot is one consistent view of the navigation state: the days and
// label always correspond to the anchor and mode they were derived from.
type Snapshot struct {
	Anchor time.Time
	Mode   ViewMode
	Days   []time.Time
	Label  string
}

// Navigator holds the anchor date and view mode and steps them in
// response to navigation commands. It has no other state.
type Navigator struct {
	anchor time.Time
	mode   ViewMode
	now    func() time.Time
}

func NewNavigator(anchor time.Time, mode ViewMode) *Navigator {
	return &Navigator{
		anchor: DateOnly(anchor),
		mode:   mode,
		now:    time.Now,
	}
}

// SetClock replaces the clock used by Today, so tests can pin it.
func (n *Navigator) SetClock(now func() time.Time) {
	n.now = now
}

// Next advances one period: month mode lands on the first of the
// following month, week mode moves 7 days, day mode 1 day.
func (n *Navigator) Next() {
	n.anchor = n.step(1)
}

// Previous is the mirror of Next.
func (n *Navigator) Previous() {
	n.anchor = n.step(-1)
}

func (n *Navigator) step(dir int) time.Time {
	a := n.anchor
	switch n.mode {
	case ViewWeek:
		return a.AddDate(0, 0, 7*dir)
	case ViewDay:
		return a.AddDate(0, 0, dir)
	default:
		return time.Date(a.Year(), a.Month()+time.Month(dir), 1, 0, 0, 0, 0, a.Location())
	}
}

// Today moves the anchor to the current date, leaving the mode alone.
func (n *Navigator) Today() {
	n.anchor = DateOnly(n.now())
}

// SetViewMode switches the view, leaving the anchor alone.
func (n *Navigator) SetViewMode(mode ViewMode) {
	n.mode = mode
}

// SetAnchor jumps straight to a date.
func (n *Navigator) SetAnchor(anchor time.Time) {
	n.anchor = DateOnly(anchor)
}

func (n *Navigator) Anchor() time.Time { return n.anchor }
func (n *Navigator) Mode() ViewMode    { return n.mode }

// Snapshot derives the grid and label for the current state.
func (n *Navigator) Snapshot() Snapshot {
	return Snapshot{
		Anchor: n.anchor,
		Mode:   n.mode,
		Days:   Days(n.anchor, n.mode),
		Label:  Label(n.anchor, n.mode),
	}
}
