package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/plan"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

// prevCmd represents the prev command
var prevCmd = &cobra.Command{
	Use:   "prev [days]",
	Short: "Show the readings of the previous days (default: a week)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		span, err := parseSpanArg(args, defaultSpan)
		if err != nil {
			return err
		}

		p, _, err := loadPlan()
		if err != nil {
			return err
		}
		if !p.Started() {
			return plan.ErrNoActivePlan
		}

		w, err := schedule.ClampBackward(today(), p.Anchor, span)
		if err != nil {
			return err
		}
		printWindow(p, w)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prevCmd)
}
