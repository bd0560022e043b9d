package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/reference"
	"github.com/lectio-cli/lectio/pkg/schedule"
)

// onCmd represents the on command
var onCmd = &cobra.Command{
	Use:   "on <date>",
	Short: "Show the reading scheduled for a specific date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateArg(args[0])
		if err != nil {
			return err
		}

		p, _, err := loadPlan()
		if err != nil {
			return err
		}

		idx, entry, err := p.EntryOn(date)
		if err != nil {
			return err
		}

		fmt.Printf("Day %d of %d: %s\n", idx+1, schedule.PlanLength, date.Format(schedule.DisplayDate))
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
	rootCmd.AddCommand(onCmd)
	onCmd.Flags().BoolP("links", "L", false, "Also print study links for each chapter")
}
