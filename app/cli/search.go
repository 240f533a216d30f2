package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cargoline/app/interfaces"
)

var searchField string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search manifest records for a substring",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		result, err := a.SearchRecords(args[0], searchField)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CONSIGNEE\tCARRIER\tCOMMODITY\tARRIVAL")
		for _, record := range result.Records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				record.Trimmed(interfaces.FieldConsignee),
				record.Trimmed(interfaces.FieldCarrierCode),
				record.Trimmed(interfaces.FieldCommodity),
				record.Trimmed(interfaces.FieldArrivalDate))
		}
		w.Flush()
		fmt.Printf("\nShowing %d of %d matching records\n", len(result.Records), result.Total)
		return nil
	},
}

var detailCmd = &cobra.Command{
	Use:   "detail <consignee>",
	Short: "Show the full aggregate for one consignee",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		detail, err := a.ConsigneeDetail(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Consignee: %s\n", detail.Name)
		fmt.Printf("Shipments: %d\n", detail.ShipmentCount)
		fmt.Printf("Total weight (kg): %.0f\n", detail.TotalWeight)
		fmt.Printf("Carriers: %v\n", detail.Carriers)
		fmt.Printf("Commodities: %v\n", detail.Commodities)
		fmt.Printf("Origin ports: %v\n", detail.Ports)
		if !detail.LastActivity.IsZero() {
			fmt.Printf("Activity: %s to %s\n",
				detail.FirstActivity.Format("2006-01-02"),
				detail.LastActivity.Format("2006-01-02"))
		}
		fmt.Printf("Recent shipments: %d\n", len(detail.RecentShipments))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(detailCmd)
	searchCmd.Flags().StringVar(&searchField, "field", "", "restrict the search to one field")
}
