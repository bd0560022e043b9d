package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/plan"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

// resumeCmd represents the resume command. It rebases the plan so that
// today picks up from wherever the given date's reading was: relative
// offsets stay intact, only the anchor moves.
var resumeCmd = &cobra.Command{
	Use:   "resume <date>",
	Short: "Continue the plan from the reading scheduled for a past date",
	Long: `Continue the plan from the reading scheduled for a past date.

Fell behind? Tell lectio the date of the last reading you actually did
and today becomes that day of the plan, e.g.:

  lectio resume 2023-01-10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pivot, err := parseDateArg(args[0])
		if err != nil {
			return err
		}

		p, path, err := loadPlan()
		if err != nil {
			return err
		}
		if !p.Started() {
			return plan.ErrNoActivePlan
		}

		newAnchor, err := schedule.ResolvePivot(pivot, p.Anchor, today())
		if err != nil {
			return err
		}

		idx := schedule.IndexFor(pivot, p.Anchor)
		prompt := "That date is the day after the last reading. Mark the plan completed as of today?"
		if idx < schedule.PlanLength {
			prompt = fmt.Sprintf("Continue from day %d? Today's reading becomes: %s", idx+1, p.Entry(idx))
		}
		if !confirm(prompt) {
			return ErrAborted
		}

		p.Anchor = newAnchor
		if err := p.Save(path); err != nil {
			return err
		}

		if idx < schedule.PlanLength {
			fmt.Printf("✅ Plan rebased. Today's reading (day %d): %s\n", idx+1, p.Entry(idx))
		} else {
			fmt.Println("✅ Plan rebased: all readings are behind you.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resumeCmd)
}
