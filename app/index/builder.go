package index

import (
	"strconv"
	"strings"

	"cargoline/app/dates"
	"cargoline/app/interfaces"
)

// Package index builds the derived consignee index: records grouped by
// trimmed consignee name with per-group rollups. The index is rebuilt in
// full on every load and never incrementally patched.

// Index maps consignee name to its group. Iteration via Groups is in
// first-seen record order.
type Index struct {
	groups map[string]*Group
	order  []*Group
}

// Build runs a single pass over the records in store order and returns
// the finished index. Records with a blank consignee are skipped; every
// other record lands in exactly one group. Malformed weights and dates
// degrade to zero/absent and never fail the build.
func Build(records []interfaces.Record) *Index {
	ix := &Index{groups: make(map[string]*Group)}

	for _, record := range records {
		name := record.Trimmed(interfaces.FieldConsignee)
		if name == "" {
			continue
		}

		group, ok := ix.groups[name]
		if !ok {
			group = newGroup(name)
			ix.groups[name] = group
			ix.order = append(ix.order, group)
		}

		group.Shipments = append(group.Shipments, record)
		group.TotalWeight += parseWeight(record.Trimmed(interfaces.FieldWeightKG))

		group.Carriers.Add(record.Trimmed(interfaces.FieldCarrierCode))
		group.Commodities.Add(record.Trimmed(interfaces.FieldCommodity))
		group.Ports.Add(record.Trimmed(interfaces.FieldForeignPort))

		if arrival, ok := dates.Parse(record.Trimmed(interfaces.FieldArrivalDate)); ok {
			// Strictly earlier/later dates move the bounds; ties keep the
			// boundary value already recorded.
			if group.FirstActivity.IsZero() || arrival.Before(group.FirstActivity) {
				group.FirstActivity = arrival
			}
			if group.LastActivity.IsZero() || arrival.After(group.LastActivity) {
				group.LastActivity = arrival
			}
		}
	}

	return ix
}

// Group returns the group for an exact consignee name.
func (ix *Index) Group(name string) (*Group, bool) {
	g, ok := ix.groups[name]
	return g, ok
}

// Groups returns all groups in first-seen record order.
func (ix *Index) Groups() []*Group {
	return ix.order
}

// Len returns the number of distinct consignees.
func (ix *Index) Len() int {
	return len(ix.order)
}

// parseWeight parses a manifest weight cell as a float. Thousands
// separators are tolerated; anything unparseable contributes 0.
func parseWeight(s string) float64 {
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return w
}
