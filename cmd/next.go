package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/plan"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

const defaultSpan = 7

// nextCmd represents the next command
var nextCmd = &cobra.Command{
	Use:   "next [days]",
	Short: "Show the upcoming readings (default: a week)",
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

		w, err := schedule.ClampForward(today(), p.Anchor, span)
		if err != nil {
			return err
		}
		printWindow(p, w)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)
}
