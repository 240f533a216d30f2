package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var timelineBuckets int

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print shipment counts bucketed by arrival date",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		result, err := a.ArrivalTimeline(timelineBuckets)
		if err != nil {
			return err
		}
		if result.Dated == 0 {
			fmt.Println("No records carry a parseable arrival date.")
			return nil
		}

		fmt.Printf("Bucket width: %d day(s), %d dated / %d undated records\n\n",
			result.BucketDays, result.Dated, result.Undated)

		peak := 0
		for _, b := range result.Buckets {
			if b.Count > peak {
				peak = b.Count
			}
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, b := range result.Buckets {
			bar := ""
			if peak > 0 {
				bar = strings.Repeat("#", b.Count*40/peak)
			}
			fmt.Fprintf(w, "%s\t%d\t%s\n", b.Start.Format("2006-01-02"), b.Count, bar)
		}
		w.Flush()
		return nil
	},
}

func init() {
	timelineCmd.Flags().IntVar(&timelineBuckets, "buckets", 0, "maximum number of buckets (0 = default)")
	rootCmd.AddCommand(timelineCmd)
}
