package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lectio-cli/lectio/internal/utils"
	"github.com/lectio-cli/lectio/pkg/reference"
	"github.com/lectio-cli/lectio/pkg/webfetch"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch [reference]",
	Short: "Fetch the commentary page titles for a reference (or today's reading)",
	Args:  cobra.ArbitraryArgs,
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

		client := webfetch.NewClient()
		for _, link := range links {
			res, err := webfetch.FetchTitle(client, link)
			if err != nil {
				utils.Log.Warnf("fetch failed: %s", err)
				continue
			}
			fmt.Printf("%s\n    %s\n", res.Title, res.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
