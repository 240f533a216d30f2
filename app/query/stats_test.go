package query

import (
	"testing"

	"cargoline/app/interfaces"
)

func TestConsigneeStats(t *testing.T) {
	e := testEngine(t, acmeBetaFixture())

	stats, err := e.ConsigneeStats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalConsignees != 2 {
		t.Errorf("total consignees: got %d, want 2", stats.TotalConsignees)
	}
	if stats.MultiShipmentConsignees != 1 {
		t.Errorf("multi-shipment consignees: got %d, want 1", stats.MultiShipmentConsignees)
	}
	// Three shipments over two consignees rounds to 2.
	if stats.AverageShipmentsPerConsignee != 2 {
		t.Errorf("average shipments: got %d, want 2", stats.AverageShipmentsPerConsignee)
	}
	// Each carrier appears in one group; ties order value ascending.
	if len(stats.TopCarriers) != 2 {
		t.Fatalf("top carriers: got %d entries", len(stats.TopCarriers))
	}
	if stats.TopCarriers[0].Value != "MAEU" || stats.TopCarriers[1].Value != "MSC" {
		t.Errorf("carrier tie order: got %v", stats.TopCarriers)
	}
}

func TestStatsLeaderboardsCountGroupsNotShipments(t *testing.T) {
	// "Widgets" is shipped by two consignees once each, "Gadgets" three
	// times by a single consignee. Group-level counting ranks Widgets first.
	e := testEngine(t, []Record{
		rec(interfaces.FieldConsignee, "Acme", interfaces.FieldCommodity, "Widgets"),
		rec(interfaces.FieldConsignee, "Beta", interfaces.FieldCommodity, "Widgets"),
		rec(interfaces.FieldConsignee, "Gamma", interfaces.FieldCommodity, "Gadgets"),
		rec(interfaces.FieldConsignee, "Gamma", interfaces.FieldCommodity, "Gadgets"),
		rec(interfaces.FieldConsignee, "Gamma", interfaces.FieldCommodity, "Gadgets"),
	})

	stats, err := e.ConsigneeStats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if len(stats.TopCommodities) != 2 {
		t.Fatalf("top commodities: got %d entries", len(stats.TopCommodities))
	}
	if stats.TopCommodities[0].Value != "Widgets" || stats.TopCommodities[0].Count != 2 {
		t.Errorf("leader: got %+v, want Widgets/2", stats.TopCommodities[0])
	}
	if stats.TopCommodities[1].Value != "Gadgets" || stats.TopCommodities[1].Count != 1 {
		t.Errorf("runner-up: got %+v, want Gadgets/1", stats.TopCommodities[1])
	}
}

func TestStatsEmptyDataset(t *testing.T) {
	// A loaded dataset with no usable consignees still answers without
	// dividing by zero.
	e := testEngine(t, []Record{rec(interfaces.FieldCommodity, "Orphan")})

	stats, err := e.ConsigneeStats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalConsignees != 0 || stats.AverageShipmentsPerConsignee != 0 {
		t.Errorf("empty stats: %+v", stats)
	}
}
