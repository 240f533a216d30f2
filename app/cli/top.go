package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cargoline/app/query"
)

var topLane string

var topCmd = &cobra.Command{
	Use:       "top {consignees|lanes|carriers|commodities}",
	Short:     "Print a top-20 aggregate report",
	Args:      cobra.ExactValidArgs(1),
	ValidArgs: []string{"consignees", "lanes", "carriers", "commodities"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		var entries []query.ValueCount
		switch args[0] {
		case "consignees":
			entries, err = a.TopConsignees()
		case "lanes":
			entries, err = a.TopTradeLanes()
		case "carriers":
			entries, err = a.TopCarriers(topLane)
		case "commodities":
			entries, err = a.TopCommodities()
		}
		if err != nil {
			return err
		}

		printLeaderboard(fmt.Sprintf("Top %s", args[0]), entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().StringVar(&topLane, "lane", "", `restrict the carriers report to one lane (e.g. "Shanghai -> Los Angeles")`)
}
