package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cargoline/app/query"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset totals and the commodity/port/carrier leaderboards",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		stats, err := a.ConsigneeStats()
		if err != nil {
			return err
		}

		info, err := a.Info()
		if err != nil {
			return err
		}
		fmt.Printf("Dataset: %s (%d records)\n", info.Source, info.RecordCount)
		fmt.Printf("Consignees: %d\n", stats.TotalConsignees)
		fmt.Printf("Average shipments per consignee: %d\n", stats.AverageShipmentsPerConsignee)
		fmt.Printf("Consignees with multiple shipments: %d\n", stats.MultiShipmentConsignees)

		printLeaderboard("Top commodities", stats.TopCommodities)
		printLeaderboard("Top ports", stats.TopPorts)
		printLeaderboard("Top carriers", stats.TopCarriers)
		return nil
	},
}

func printLeaderboard(title string, entries []query.ValueCount) {
	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, entry := range entries {
		fmt.Fprintf(w, "  %s\t%d\n", entry.Value, entry.Count)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
