package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/internal/utils"
	"github.com/lectio-cli/lectio/pkg/reference"
)

// linksCmd represents the links command
var linksCmd = &cobra.Command{
	Use:   "links [reference]",
	Short: "Print study links for a reference, or for today's reading",
	Long: `Print study links for a reference, or for today's reading.

Examples:
  lectio links                   links for today's reading
  lectio links "Genesis 1-3"     one link per chapter
  lectio links "2 Samuel 5:1-10" verse ranges resolve to their chapter`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := strings.Join(args, " ")
		if entry == "" {
			p, _, err := loadPlan()
			if err != nil {
				return err
			}
			if _, entry, err = p.EntryOn(today()); err != nil {
				return err
			}
		}

		links := reference.Links(entry, linkHost())
		if len(links) == 0 {
			utils.Log.Warnf("no recognizable chapters in %q", entry)
			return nil
		}
		for _, link := range links {
			fmt.Println(link)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
