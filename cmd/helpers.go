package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/viper"

	"github.com/lectio-cli/lectio/pkg/history"
	"github.com/lectio-cli/lectio/pkg/plan"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

// ErrAborted is returned when the user declines a confirmation prompt.
// Nothing is persisted in that case.
var ErrAborted = errors.New("aborted, nothing changed")

// today is swappable in tests so schedule output is deterministic.
var today = func() time.Time { return time.Now() }

// confirm gates every state-mutating operation. Swappable in tests.
var confirm = func(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}

func planPath() (string, error) {
	if path := viper.GetString("planfile"); path != "" {
		return path, nil
	}
	return plan.DefaultPath()
}

func loadPlan() (*plan.Plan, string, error) {
	path, err := planPath()
	if err != nil {
		return nil, "", err
	}
	p, err := plan.Load(path)
	return p, path, err
}

func dbPath() (string, error) {
	if path := viper.GetString("dbfile"); path != "" {
		return path, nil
	}
	return history.DefaultPath()
}

func linkHost() string {
	return viper.GetString("linkhost")
}

// parseDateArg accepts the state-file date form ("2023-01-10") and the
// display form ("Tue 10 Jan 2023", day name optional).
func parseDateArg(arg string) (time.Time, error) {
	for _, layout := range []string{plan.AnchorLayout, schedule.DisplayDate, "02 Jan 2006"} {
		if t, err := time.ParseInLocation(layout, arg, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (try e.g. %s)", arg, time.Now().Format(plan.AnchorLayout))
}

// parseSpanArg reads the optional day-count argument of next/prev.
func parseSpanArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("day count must be a positive number, got %q", args[0])
	}
	return n, nil
}

// printWindow renders a window of readings, one dated line per day.
func printWindow(p *plan.Plan, w schedule.Window) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	for i := w.Start; i <= w.End(); i++ {
		date := schedule.Midnight(p.Anchor).AddDate(0, 0, i)
		fmt.Fprintf(tw, "Day %d\t%s\t%s\t\n", i+1, date.Format(schedule.DisplayDate), p.Entry(i))
	}
	tw.Flush()

	if w.AtFirstReading {
		fmt.Println("(reached the first reading of the plan)")
	}
	if w.AtLastReading {
		fmt.Println("(reached the last reading of the plan)")
	}
}
