package schedule

import (
	"fmt"
	"time"
)

// DisplayDate is the layout used for user-facing dates.
const DisplayDate = "Mon 02 Jan 2006"

// PlanCompletedError is returned when a lookup or window lands entirely
// past the last reading.
type PlanCompletedError struct {
	CompletedOn time.Time
}

func (e *PlanCompletedError) Error() string {
	return fmt.Sprintf("the reading plan was completed on %s", e.CompletedOn.Format(DisplayDate))
}

// BeforePlanStartError is returned when a window lies entirely before
// the first reading. DaysBack is the day offset of the queried date from
// the anchor: 0 means the first reading is today, negative means the
// plan has not begun yet.
type BeforePlanStartError struct {
	DaysBack int
}

func (e *BeforePlanStartError) Error() string {
	switch {
	case e.DaysBack == 0:
		return "no earlier readings: the first reading is today's"
	case e.DaysBack < 0:
		return fmt.Sprintf("the plan starts %d day(s) from now", -e.DaysBack)
	default:
		return fmt.Sprintf("no earlier readings: the first reading was %d day(s) ago", e.DaysBack)
	}
}

// PivotOutOfRangeError is returned by ResolvePivot when the requested
// continue-from date maps outside the plan.
type PivotOutOfRangeError struct {
	Index int
}

func (e *PivotOutOfRangeError) Error() string {
	return fmt.Sprintf("date maps to plan day %d, outside the %d-day plan", e.Index, PlanLength)
}

// DateOutOfRangeError is returned for exact-date lookups outside
// [0, PlanLength).
type DateOutOfRangeError struct {
	Index int
}

func (e *DateOutOfRangeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("date is %d day(s) before the plan started", -e.Index)
	}
	return fmt.Sprintf("date maps to plan day %d, past the last reading (day %d)", e.Index, PlanLength-1)
}
