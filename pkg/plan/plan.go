// Package plan loads and persists the reading-plan state file: a JSON
// array of 366 strings, the 365 reading entries followed by the anchor
// date ("2006-01-02", or "" while no plan is active).
package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/tidwall/gjson"

	"github.com/lectio-cli/lectio/pkg/schedule"
)

// Slots is the number of values in the state file: the entries plus the
// trailing anchor slot.
const Slots = schedule.PlanLength + 1

// AnchorLayout is the wire format of the persisted anchor date.
const AnchorLayout = "2006-01-02"

// ErrNoActivePlan is returned by lookups before `start` has run.
var ErrNoActivePlan = errors.New("no active reading plan (run `lectio start`)")

// Plan is the loaded schedule plus its anchor. Entries are static; the
// anchor is the only mutable field and changes only through start or
// resume.
type Plan struct {
	Entries []string
	Anchor  time.Time
}

// DefaultPath returns the default state-file location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lectio", "plan.json"), nil
}

// Load reads the state file at path. A missing file yields the built-in
// default schedule with no anchor set, so `start` works on first run.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Plan{Entries: defaultSchedule[:]}, nil
		}
		return nil, err
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%s: expected a JSON array of %d strings", path, Slots)
	}
	values := parsed.Array()
	if len(values) != Slots {
		return nil, fmt.Errorf("%s: expected %d values, found %d", path, Slots, len(values))
	}

	p := &Plan{Entries: make([]string, schedule.PlanLength)}
	for i := 0; i < schedule.PlanLength; i++ {
		if values[i].Type != gjson.String {
			return nil, fmt.Errorf("%s: entry %d is not a string", path, i)
		}
		p.Entries[i] = values[i].String()
	}

	if raw := values[schedule.PlanLength].String(); raw != "" {
		anchor, err := time.ParseInLocation(AnchorLayout, raw, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%s: bad anchor date %q: %w", path, raw, err)
		}
		p.Anchor = anchor
	}
	return p, nil
}

// Save writes the state file atomically (temp file + rename). Writes
// are not locked: concurrent instances are last-writer-wins.
func (p *Plan) Save(path string) error {
	values := make([]string, 0, Slots)
	values = append(values, p.Entries...)
	if p.Started() {
		values = append(values, p.Anchor.Format(AnchorLayout))
	} else {
		values = append(values, "")
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Started reports whether the plan has an anchor.
func (p *Plan) Started() bool {
	return schedule.IsStarted(p.Anchor)
}

// Entry returns the reading for a plan index. The index must already be
// range-checked.
func (p *Plan) Entry(i int) string {
	return p.Entries[i]
}

// EntryOn resolves the reading for an exact calendar date, returning
// the plan index alongside the entry. Dates mapping outside [0,364]
// come back as a *schedule.DateOutOfRangeError.
func (p *Plan) EntryOn(date time.Time) (int, string, error) {
	if !p.Started() {
		return 0, "", ErrNoActivePlan
	}
	idx := schedule.ResolveExact(date, p.Anchor)
	if idx < 0 || idx >= schedule.PlanLength {
		return 0, "", &schedule.DateOutOfRangeError{Index: idx}
	}
	return idx, p.Entries[idx], nil
}
