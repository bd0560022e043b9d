package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/reference"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

// todayCmd represents the today command
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's reading",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, _, err := loadPlan()
		if err != nil {
			return err
		}

		idx, entry, err := p.EntryOn(today())
		if err != nil {
			return err
		}

		fmt.Printf("Day %d of %d: %s\n", idx+1, schedule.PlanLength, today().Format(schedule.DisplayDate))
		fmt.Println(entry)

		if withLinks, _ := cmd.Flags().GetBool("links"); withLinks {
			for _, link := range reference.Links(entry, linkHost()) {
				fmt.Println(link)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolP("links", "L", false, "Also print study links for each chapter")
}
