package cmd

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/lectio-cli/lectio/pkg/plan"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

func withFixedEnv(t *testing.T, now time.Time, answer bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	viper.Set("planfile", path)

	prevToday, prevConfirm := today, confirm
	today = func() time.Time { return now }
	confirm = func(string) bool { return answer }
	t.Cleanup(func() {
		today = prevToday
		confirm = prevConfirm
		viper.Set("planfile", "")
	})
	return path
}

func TestStartSetsAnchorToToday(t *testing.T) {
	now := time.Date(2023, time.January, 1, 15, 4, 5, 0, time.UTC)
	path := withFixedEnv(t, now, true)

	if err := startCmd.RunE(startCmd, nil); err != nil {
		t.Fatalf("start: %v", err)
	}

	p, err := plan.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !p.Anchor.Equal(schedule.Midnight(now)) {
		t.Fatalf("anchor %v, want midnight of %v", p.Anchor, now)
	}
}

func TestStartDeclinedWritesNothing(t *testing.T) {
	now := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	path := withFixedEnv(t, now, false)

	if err := startCmd.RunE(startCmd, nil); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	p, err := plan.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Started() {
		t.Fatal("declined start must not set an anchor")
	}
}

func TestResumeRebasesAnchor(t *testing.T) {
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	path := withFixedEnv(t, start, true)

	if err := startCmd.RunE(startCmd, nil); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Three weeks later the user reports they last read day 10's entry.
	today = func() time.Time { return start.AddDate(0, 0, 31) }
	if err := resumeCmd.RunE(resumeCmd, []string{"2023-01-10"}); err != nil {
		t.Fatalf("resume: %v", err)
	}

	p, err := plan.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Today (Feb 1) must now map to index 9, the pivot's old index.
	if got := schedule.IndexFor(today(), p.Anchor); got != 9 {
		t.Fatalf("today maps to %d, want 9", got)
	}
}

func TestResumeRequiresActivePlan(t *testing.T) {
	now := time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)
	withFixedEnv(t, now, true)

	err := resumeCmd.RunE(resumeCmd, []string{"2023-01-05"})
	if !errors.Is(err, plan.ErrNoActivePlan) {
		t.Fatalf("expected ErrNoActivePlan, got %v", err)
	}
}
