package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cargoline/app/query"
)

var listFlags struct {
	Name         string
	MinShipments int
	Commodity    string
	Port         string
	Carrier      string
	SortBy       string
	Asc          bool
	Page         int
	PageSize     int
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List consignees with filters, sorting and pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		result, err := a.ListConsignees(query.ListOptions{
			Name:         listFlags.Name,
			MinShipments: listFlags.MinShipments,
			Commodity:    listFlags.Commodity,
			Port:         listFlags.Port,
			Carrier:      listFlags.Carrier,
			SortBy:       query.SortKey(listFlags.SortBy),
			Ascending:    listFlags.Asc,
			Page:         listFlags.Page,
			PageSize:     listFlags.PageSize,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSHIPMENTS\tWEIGHT (KG)\tCARRIERS\tCOMMODITIES\tLAST ACTIVITY")
		for _, item := range result.Items {
			last := ""
			if !item.LastActivity.IsZero() {
				last = item.LastActivity.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\n",
				item.Name, item.ShipmentCount, item.TotalWeight,
				item.CarrierCount, item.CommodityCount, last)
		}
		w.Flush()
		fmt.Printf("\nPage %d/%d, %d matching consignees\n", result.Page, result.TotalPages, result.Total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listFlags.Name, "name", "", "filter by name substring")
	listCmd.Flags().IntVar(&listFlags.MinShipments, "min-shipments", 0, "minimum shipment count")
	listCmd.Flags().StringVar(&listFlags.Commodity, "commodity", "", "filter by commodity substring")
	listCmd.Flags().StringVar(&listFlags.Port, "port", "", "filter by origin port substring")
	listCmd.Flags().StringVar(&listFlags.Carrier, "carrier", "", "filter by carrier substring")
	listCmd.Flags().StringVar(&listFlags.SortBy, "sort", string(query.SortByShipments), "sort key: shipments, name, weight, lastActivity")
	listCmd.Flags().BoolVar(&listFlags.Asc, "asc", false, "sort ascending instead of descending")
	listCmd.Flags().IntVar(&listFlags.Page, "page", 1, "1-based page number")
	listCmd.Flags().IntVar(&listFlags.PageSize, "page-size", 0, "page size (0 uses the configured default)")
}
