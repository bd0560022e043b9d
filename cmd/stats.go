package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/history"
	"github.com/lectio-cli/lectio/pkg/plan"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress through the plan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := loadPlan()
		if err != nil {
			return err
		}
		if !p.Started() {
			return plan.ErrNoActivePlan
		}

		path, err := dbPath()
		if err != nil {
			return err
		}
		db, err := history.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		todayIdx := schedule.IndexFor(today(), p.Anchor)
		stats, err := db.GetStats(context.Background(), todayIdx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "Plan started\t%s\t\n", p.Anchor.Format(schedule.DisplayDate))
		switch {
		case todayIdx >= schedule.PlanLength:
			fmt.Fprintf(w, "Plan completed\t%s\t\n", schedule.CompletionDate(p.Anchor).Format(schedule.DisplayDate))
		case todayIdx >= 0:
			fmt.Fprintf(w, "Today is day\t%d of %d\t\n", todayIdx+1, schedule.PlanLength)
		}
		fmt.Fprintf(w, "Days read\t%d (%.1f%%)\t\n", stats.DaysRead,
			float64(stats.DaysRead)*100/float64(schedule.PlanLength))
		fmt.Fprintf(w, "Current streak\t%d day(s)\t\n", stats.Streak)
		if stats.LastIndex >= 0 {
			fmt.Fprintf(w, "Last completed\tday %d: %s\t\n", stats.LastIndex+1, p.Entry(stats.LastIndex))
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
