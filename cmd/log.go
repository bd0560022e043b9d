package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/history"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List the readings you have marked as completed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dbPath()
		if err != nil {
			return err
		}
		db, err := history.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		completions, err := db.List(context.Background())
		if err != nil {
			return err
		}
		if len(completions) == 0 {
			fmt.Println("No completed readings recorded yet. Use `lectio done` after reading.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "DAY\tREAD ON\tREADING\t")
		for _, c := range completions {
			fmt.Fprintf(w, "%d\t%s\t%s\t\n", c.DayIndex+1, c.ReadOn, c.Reference)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
