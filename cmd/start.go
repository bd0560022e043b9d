package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/schedule"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin the 365-day reading plan, starting today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, path, err := loadPlan()
		if err != nil {
			return err
		}

		prompt := fmt.Sprintf("Start the %d-day reading plan today?", schedule.PlanLength)
		if p.Started() {
			prompt = fmt.Sprintf("A plan is already running (started %s). Restart from today?",
				p.Anchor.Format(schedule.DisplayDate))
		}
		if !confirm(prompt) {
			return ErrAborted
		}

		p.Anchor = schedule.Midnight(today())
		if err := p.Save(path); err != nil {
			return err
		}

		fmt.Printf("✅ Plan started. Today's reading (day 1): %s\n", p.Entry(0))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
