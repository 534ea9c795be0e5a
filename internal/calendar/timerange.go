package calendar

import "time"

// Mode selects how many days a visible range spans: a full week on desktop
// or a sliding 3-day window on mobile.
type Mode string

const (
	ModeWeek     Mode = "week"
	ModeThreeDay Mode = "3day"
)

// Days returns the number of calendar days the mode renders.
func (m Mode) Days() int {
	if m == ModeThreeDay {
		return 3
	}
	return 7
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeWeek || m == ModeThreeDay
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday midnight at or before t.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// VisibleRange is the set of days currently rendered: an anchor date plus a
// mode. Week mode snaps to the start of the anchor's week; 3-day mode starts
// at the anchor itself.
type VisibleRange struct {
	Anchor time.Time
	Mode   Mode
}

// Days derives the ordered sequence of day midnights for the range.
func (r VisibleRange) Days() []time.Time {
	first := StartOfDay(r.Anchor)
	if r.Mode != ModeThreeDay {
		first = StartOfWeek(r.Anchor)
	}

	days := make([]time.Time, r.Mode.Days())
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// Next advances the anchor by one whole window (7 or 3 days).
func (r VisibleRange) Next() VisibleRange {
	r.Anchor = r.Anchor.AddDate(0, 0, r.Mode.Days())
	return r
}

// Prev retreats the anchor by one whole window.
func (r VisibleRange) Prev() VisibleRange {
	r.Anchor = r.Anchor.AddDate(0, 0, -r.Mode.Days())
	return r
}
