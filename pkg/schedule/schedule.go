package schedule

import (
	"time"
)

// PlanLength is the number of readings in the plan. Index PlanLength is
// the terminal "plan completed" position, never a valid entry lookup.
const PlanLength = 365

// Window is a contiguous run of plan indexes produced by the clamp
// functions. Start is the first index, Span how many days are covered.
type Window struct {
	Start int
	Span  int

	// AtFirstReading / AtLastReading are set when the requested span had
	// to be truncated at the corresponding plan boundary.
	AtFirstReading bool
	AtLastReading  bool
}

// End returns the last index covered by the window.
func (w Window) End() int {
	return w.Start + w.Span - 1
}

// Midnight normalizes a timestamp to midnight UTC of its calendar day,
// so that differences between two normalized values are exact multiples
// of 24h regardless of DST in the local zone.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IndexFor returns the signed whole-day offset of date from the anchor.
// Index 0 is the anchor day itself.
func IndexFor(date, anchor time.Time) int {
	return int(Midnight(date).Sub(Midnight(anchor)) / (24 * time.Hour))
}

// IsStarted reports whether an anchor has been set. The zero time is the
// "no active plan" sentinel.
func IsStarted(anchor time.Time) bool {
	return !anchor.IsZero()
}

// CompletionDate returns the first day after the last reading.
func CompletionDate(anchor time.Time) time.Time {
	return Midnight(anchor).AddDate(0, 0, PlanLength)
}

// ClampForward resolves a "next span days" window starting at date.
// The window is truncated so it never runs past the last reading; if the
// window would begin at or beyond the end of the plan, a
// *PlanCompletedError is returned instead. A window that begins before
// day 0 but reaches into the plan is truncated at the front.
func ClampForward(date, anchor time.Time, span int) (Window, error) {
	idx := IndexFor(date, anchor)
	if idx >= PlanLength {
		return Window{}, &PlanCompletedError{CompletedOn: CompletionDate(anchor)}
	}

	w := Window{Start: idx, Span: span}
	if idx < 0 {
		if idx+span <= 0 {
			return Window{}, &BeforePlanStartError{DaysBack: idx}
		}
		w.Start = 0
		w.Span = idx + span
		w.AtFirstReading = true
	}
	if w.Start+w.Span > PlanLength {
		w.Span = PlanLength - w.Start
		w.AtLastReading = true
	}
	return w, nil
}

// ClampBackward resolves a "previous span days" window: the span
// readings before (not including) date. A window that reaches before
// day 0 but overlaps the plan is truncated; a window lying entirely
// before the first reading is reported as a *BeforePlanStartError
// carrying how many days back day 0 lies.
func ClampBackward(date, anchor time.Time, span int) (Window, error) {
	idx := IndexFor(date, anchor)
	if idx <= 0 {
		return Window{}, &BeforePlanStartError{DaysBack: idx}
	}
	if idx-span >= PlanLength {
		return Window{}, &PlanCompletedError{CompletedOn: CompletionDate(anchor)}
	}

	w := Window{Start: idx - span, Span: span}
	if w.Start < 0 {
		w.Start = 0
		w.Span = idx
		w.AtFirstReading = true
	}
	if w.Start+w.Span > PlanLength {
		w.Span = PlanLength - w.Start
		w.AtLastReading = true
	}
	return w, nil
}

// ResolvePivot rebases the anchor for "continue from pivot": it returns
// a new anchor under which today maps to the same index the pivot date
// maps to under the old anchor. Relative offsets of all other dates are
// preserved. The pivot must map inside [0, PlanLength].
func ResolvePivot(pivot, anchor, today time.Time) (time.Time, error) {
	idx := IndexFor(pivot, anchor)
	if idx < 0 || idx > PlanLength {
		return time.Time{}, &PivotOutOfRangeError{Index: idx}
	}
	shift := IndexFor(today, anchor) - idx
	return Midnight(anchor).AddDate(0, 0, shift), nil
}

// ResolveExact is the raw offset primitive for exact-date lookups.
// Bounds policy ([0, PlanLength)) is applied by the plan layer.
func ResolveExact(date, anchor time.Time) int {
	return IndexFor(date, anchor)
}
