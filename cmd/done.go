package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/pkg/history"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Mark today's reading as completed",
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

		path, err := dbPath()
		if err != nil {
			return err
		}
		db, err := history.Open(path)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.MarkRead(context.Background(), idx, entry, today()); err != nil {
			return err
		}

		fmt.Printf("✅ Day %d done: %s\n", idx+1, entry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
