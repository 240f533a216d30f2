package query

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"sort"
	"strings"

	"cargoline/app/index"
)

// exportHeader is the column layout of the consignee CSV export.
var exportHeader = []string{
	"Name",
	"Total Shipments",
	"Total Weight (kg)",
	"Unique Carriers",
	"Unique Commodities",
	"Origin Ports",
	"Top Commodities",
	"Carriers",
}

// ExportConsignees renders one CSV row per consignee group, sorted by
// shipment count descending (name ascending on ties). Values containing
// the delimiter are quoted and embedded quotes doubled by the csv writer.
// A dataset with zero groups fails with ErrEmptyDataset.
func (e *Engine) ExportConsignees() ([]byte, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	groups := snap.Index.Groups()
	if len(groups) == 0 {
		return nil, ErrEmptyDataset
	}

	// Copy before sorting; the index's own order is first-seen and shared.
	ordered := make([]*index.Group, len(groups))
	copy(ordered, groups)
	sort.SliceStable(ordered, func(i, j int) bool {
		if len(ordered[i].Shipments) != len(ordered[j].Shipments) {
			return len(ordered[i].Shipments) > len(ordered[j].Shipments)
		}
		return ordered[i].Name < ordered[j].Name
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, g := range ordered {
		commodities := g.Commodities.Values()
		if len(commodities) > ExportCommodityLimit {
			commodities = commodities[:ExportCommodityLimit]
		}
		record := []string{
			g.Name,
			fmt.Sprintf("%d", len(g.Shipments)),
			fmt.Sprintf("%d", int64(math.Round(g.TotalWeight))),
			fmt.Sprintf("%d", g.Carriers.Len()),
			fmt.Sprintf("%d", g.Commodities.Len()),
			strings.Join(g.Ports.Values(), ";"),
			strings.Join(commodities, ";"),
			strings.Join(g.Carriers.Values(), ";"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
