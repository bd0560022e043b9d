package plan

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lectio-cli/lectio/pkg/reference"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoadMissingFileFallsBackToDefaultSchedule(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "plan.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Entries) != schedule.PlanLength {
		t.Fatalf("expected %d entries, got %d", schedule.PlanLength, len(p.Entries))
	}
	if p.Started() {
		t.Fatal("fresh plan must not have an anchor")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.Anchor = date(2023, time.January, 1)
	if err := p.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !loaded.Anchor.Equal(p.Anchor) {
		t.Fatalf("anchor %v, want %v", loaded.Anchor, p.Anchor)
	}
	if loaded.Entry(0) != p.Entry(0) || loaded.Entry(schedule.PlanLength-1) != p.Entry(schedule.PlanLength-1) {
		t.Fatal("entries did not survive the round trip")
	}
}

func TestSaveWritesEmptyAnchorSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	p, _ := Load(path)
	if err := p.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(values) != Slots {
		t.Fatalf("expected %d values, got %d", Slots, len(values))
	}
	if values[Slots-1] != "" {
		t.Fatalf("anchor slot = %q, want empty", values[Slots-1])
	}
}

func TestLoadRejectsWrongLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte(`["Genesis 1-3",""]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a truncated state file")
	}
}

func TestLoadRejectsBadAnchor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	values := make([]string, Slots)
	values[Slots-1] = "not-a-date"
	data, _ := json.Marshal(values)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a malformed anchor")
	}
}

func TestEntryOn(t *testing.T) {
	p, _ := Load(filepath.Join(t.TempDir(), "plan.json"))

	if _, _, err := p.EntryOn(date(2023, time.January, 10)); !errors.Is(err, ErrNoActivePlan) {
		t.Fatalf("expected ErrNoActivePlan, got %v", err)
	}

	p.Anchor = date(2023, time.January, 1)

	idx, entry, err := p.EntryOn(date(2023, time.January, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 9 || entry != p.Entry(9) {
		t.Fatalf("got index %d entry %q", idx, entry)
	}

	var oor *schedule.DateOutOfRangeError
	if _, _, err := p.EntryOn(date(2024, time.January, 10)); !errors.As(err, &oor) {
		t.Fatalf("expected DateOutOfRangeError, got %v", err)
	}
	if oor.Index != 374 {
		t.Fatalf("out-of-range index %d, want 374", oor.Index)
	}
	if _, _, err := p.EntryOn(date(2022, time.December, 31)); !errors.As(err, &oor) {
		t.Fatalf("expected DateOutOfRangeError, got %v", err)
	}
}

// Every shipped entry must resolve to at least one study link, and the
// whole plan must cover the canon's 1189 chapters exactly once.
func TestDefaultScheduleIsLinkable(t *testing.T) {
	total := 0
	for i, entry := range defaultSchedule {
		links := reference.Links(entry, reference.DefaultHost)
		if len(links) == 0 {
			t.Fatalf("entry %d (%q) yields no links", i, entry)
		}
		total += len(links)
	}
	if total != 1189 {
		t.Fatalf("default schedule covers %d chapters, want 1189", total)
	}
}
