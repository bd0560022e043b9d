package schedule

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIndexForRoundTrip(t *testing.T) {
	anchor := date(2023, time.January, 1)
	for i := 0; i < PlanLength; i++ {
		if got := IndexFor(anchor.AddDate(0, 0, i), anchor); got != i {
			t.Fatalf("IndexFor(anchor+%dd) = %d", i, got)
		}
	}
}

func TestIndexForIgnoresTimeOfDay(t *testing.T) {
	anchor := time.Date(2023, time.January, 1, 23, 59, 0, 0, time.Local)
	noon := time.Date(2023, time.January, 10, 12, 1, 0, 0, time.Local)
	if got := IndexFor(noon, anchor); got != 9 {
		t.Fatalf("expected index 9, got %d", got)
	}
}

func TestIsStarted(t *testing.T) {
	if IsStarted(time.Time{}) {
		t.Fatal("zero anchor must not count as started")
	}
	if !IsStarted(date(2023, time.January, 1)) {
		t.Fatal("set anchor must count as started")
	}
}

func TestClampForward(t *testing.T) {
	anchor := date(2023, time.January, 1)
	tests := []struct {
		name    string
		idx     int
		span    int
		want    Window
		wantErr bool
	}{
		{name: "mid-plan full span", idx: 10, span: 7, want: Window{Start: 10, Span: 7}},
		{name: "truncated at the end", idx: 363, span: 5, want: Window{Start: 363, Span: 2, AtLastReading: true}},
		{name: "last day", idx: 364, span: 7, want: Window{Start: 364, Span: 1, AtLastReading: true}},
		{name: "past the end", idx: 365, span: 1, wantErr: true},
		{name: "before the start overlapping", idx: -2, span: 7, want: Window{Start: 0, Span: 5, AtFirstReading: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ClampForward(anchor.AddDate(0, 0, tc.idx), anchor, tc.span)
			if tc.wantErr {
				var completed *PlanCompletedError
				if !errors.As(err, &completed) {
					t.Fatalf("expected PlanCompletedError, got %v", err)
				}
				if want := anchor.AddDate(0, 0, PlanLength); !completed.CompletedOn.Equal(want) {
					t.Fatalf("completion date %v, want %v", completed.CompletedOn, want)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w != tc.want {
				t.Fatalf("window %+v, want %+v", w, tc.want)
			}
		})
	}
}

func TestClampBackward(t *testing.T) {
	anchor := date(2023, time.January, 1)
	tests := []struct {
		name         string
		idx          int
		span         int
		want         Window
		wantDaysBack int
		wantErr      bool
	}{
		{name: "mid-plan full span", idx: 10, span: 7, want: Window{Start: 3, Span: 7}},
		{name: "truncated at the front", idx: 3, span: 7, want: Window{Start: 0, Span: 3, AtFirstReading: true}},
		{name: "day zero underflows", idx: 0, span: 1, wantErr: true, wantDaysBack: 0},
		{name: "day zero large span underflows", idx: 0, span: 30, wantErr: true, wantDaysBack: 0},
		{name: "before the plan underflows", idx: -3, span: 7, wantErr: true, wantDaysBack: -3},
		{name: "past the end truncates", idx: 370, span: 7, want: Window{Start: 363, Span: 2, AtLastReading: true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := ClampBackward(anchor.AddDate(0, 0, tc.idx), anchor, tc.span)
			if tc.wantErr {
				var underflow *BeforePlanStartError
				if !errors.As(err, &underflow) {
					t.Fatalf("expected BeforePlanStartError, got %v", err)
				}
				if underflow.DaysBack != tc.wantDaysBack {
					t.Fatalf("DaysBack = %d, want %d", underflow.DaysBack, tc.wantDaysBack)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w != tc.want {
				t.Fatalf("window %+v, want %+v", w, tc.want)
			}
		})
	}
}

func TestResolvePivotIdentity(t *testing.T) {
	anchor := date(2023, time.January, 1)
	todayDate := date(2023, time.January, 10)

	got, err := ResolvePivot(todayDate, anchor, todayDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(anchor) {
		t.Fatalf("pivot == today must keep the anchor, got %v", got)
	}
}

func TestResolvePivotRebase(t *testing.T) {
	anchor := date(2023, time.January, 1)
	todayDate := date(2023, time.February, 1)
	pivot := date(2023, time.January, 10) // index 9

	newAnchor, err := ResolvePivot(pivot, anchor, todayDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := IndexFor(todayDate, newAnchor); got != IndexFor(pivot, anchor) {
		t.Fatalf("today maps to %d under the new anchor, want %d", got, IndexFor(pivot, anchor))
	}
}

func TestResolvePivotOutOfRange(t *testing.T) {
	anchor := date(2023, time.January, 1)
	todayDate := date(2023, time.June, 1)

	for _, pivot := range []time.Time{
		anchor.AddDate(0, 0, -1),
		anchor.AddDate(0, 0, PlanLength+1),
	} {
		var oor *PivotOutOfRangeError
		if _, err := ResolvePivot(pivot, anchor, todayDate); !errors.As(err, &oor) {
			t.Fatalf("pivot %v: expected PivotOutOfRangeError, got %v", pivot, err)
		}
	}

	// The terminal index itself is a valid pivot: "I finished yesterday".
	if _, err := ResolvePivot(anchor.AddDate(0, 0, PlanLength), anchor, todayDate); err != nil {
		t.Fatalf("terminal pivot must be accepted: %v", err)
	}
}
