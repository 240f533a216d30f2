package query

import (
	"testing"

	"cargoline/app/interfaces"
)

func listFixture() []Record {
	return []Record{
		rec(interfaces.FieldConsignee, "Acme Corp",
			interfaces.FieldWeightKG, "100",
			interfaces.FieldCommodity, "Furniture",
			interfaces.FieldCarrierCode, "MSC",
			interfaces.FieldForeignPort, "Shanghai",
			interfaces.FieldArrivalDate, "2024-01-10"),
		rec(interfaces.FieldConsignee, "Acme Corp",
			interfaces.FieldWeightKG, "150",
			interfaces.FieldCommodity, "Electronics",
			interfaces.FieldCarrierCode, "MAEU",
			interfaces.FieldForeignPort, "Ningbo",
			interfaces.FieldArrivalDate, "2024-03-05"),
		rec(interfaces.FieldConsignee, "Beta LLC",
			interfaces.FieldWeightKG, "300",
			interfaces.FieldCommodity, "Furniture",
			interfaces.FieldCarrierCode, "MSC",
			interfaces.FieldForeignPort, "Rotterdam",
			interfaces.FieldArrivalDate, "2024-02-01"),
		rec(interfaces.FieldConsignee, "Gamma Inc",
			interfaces.FieldWeightKG, "250",
			interfaces.FieldCommodity, "Toys",
			interfaces.FieldCarrierCode, "ONEY",
			interfaces.FieldForeignPort, "Shanghai",
			interfaces.FieldArrivalDate, "2024-04-20"),
	}
}

func names(items []ConsigneeSummary) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}

func equalNames(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestListDefaultOrder(t *testing.T) {
	e := testEngine(t, listFixture())

	result, err := e.ListConsignees(ListOptions{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("expected 3 consignees, got %d", result.Total)
	}
	// Shipment count descending; Beta and Gamma tie on 1 and fall back
	// to name ascending.
	got := names(result.Items)
	if !equalNames(got, "Acme Corp", "Beta LLC", "Gamma Inc") {
		t.Errorf("unexpected default order: %v", got)
	}
}

func TestListSortKeys(t *testing.T) {
	e := testEngine(t, listFixture())

	cases := []struct {
		name string
		opts ListOptions
		want []string
	}{
		{"name asc", ListOptions{SortBy: SortByName, Ascending: true},
			[]string{"Acme Corp", "Beta LLC", "Gamma Inc"}},
		{"name desc", ListOptions{SortBy: SortByName},
			[]string{"Gamma Inc", "Beta LLC", "Acme Corp"}},
		// Acme and Gamma tie at 250 kg and fall back to name ascending.
		{"weight desc", ListOptions{SortBy: SortByWeight},
			[]string{"Beta LLC", "Acme Corp", "Gamma Inc"}},
		{"weight asc", ListOptions{SortBy: SortByWeight, Ascending: true},
			[]string{"Acme Corp", "Gamma Inc", "Beta LLC"}},
		{"last activity desc", ListOptions{SortBy: SortByLastActivity},
			[]string{"Gamma Inc", "Acme Corp", "Beta LLC"}},
		{"shipments asc", ListOptions{SortBy: SortByShipments, Ascending: true},
			[]string{"Beta LLC", "Gamma Inc", "Acme Corp"}},
	}

	for _, tc := range cases {
		result, err := e.ListConsignees(tc.opts)
		if err != nil {
			t.Fatalf("%s: list failed: %v", tc.name, err)
		}
		if got := names(result.Items); !equalNames(got, tc.want...) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestListTieBreakIsNameAscendingBothDirections(t *testing.T) {
	e := testEngine(t, listFixture())

	// Beta and Gamma both have one shipment. The tie-break must stay name
	// ascending whether the primary sort is ascending or descending.
	for _, asc := range []bool{true, false} {
		result, err := e.ListConsignees(ListOptions{SortBy: SortByShipments, Ascending: asc})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		var beta, gamma int
		for i, item := range result.Items {
			switch item.Name {
			case "Beta LLC":
				beta = i
			case "Gamma Inc":
				gamma = i
			}
		}
		if beta > gamma {
			t.Errorf("ascending=%v: Beta LLC at %d after Gamma Inc at %d", asc, beta, gamma)
		}
	}
}

func TestListFilters(t *testing.T) {
	e := testEngine(t, listFixture())

	cases := []struct {
		name string
		opts ListOptions
		want []string
	}{
		{"name substring", ListOptions{Name: "acme"}, []string{"Acme Corp"}},
		{"min shipments", ListOptions{MinShipments: 2}, []string{"Acme Corp"}},
		{"commodity", ListOptions{Commodity: "furniture"}, []string{"Acme Corp", "Beta LLC"}},
		{"port", ListOptions{Port: "shanghai"}, []string{"Acme Corp", "Gamma Inc"}},
		{"carrier", ListOptions{Carrier: "msc"}, []string{"Acme Corp", "Beta LLC"}},
		{"conjunction", ListOptions{Carrier: "msc", MinShipments: 2}, []string{"Acme Corp"}},
		{"no match", ListOptions{Name: "zebra"}, nil},
	}

	for _, tc := range cases {
		result, err := e.ListConsignees(tc.opts)
		if err != nil {
			t.Fatalf("%s: list failed: %v", tc.name, err)
		}
		if got := names(result.Items); !equalNames(got, tc.want...) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestListSummaryFields(t *testing.T) {
	e := testEngine(t, listFixture())

	result, err := e.ListConsignees(ListOptions{Name: "Acme"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected one item, got %d", len(result.Items))
	}
	acme := result.Items[0]
	if acme.ShipmentCount != 2 {
		t.Errorf("shipment count: got %d, want 2", acme.ShipmentCount)
	}
	if acme.TotalWeight != 250 {
		t.Errorf("total weight: got %d, want 250", acme.TotalWeight)
	}
	if acme.CarrierCount != 2 || acme.CommodityCount != 2 || acme.PortCount != 2 {
		t.Errorf("distinct counts: carriers=%d commodities=%d ports=%d, want 2/2/2",
			acme.CarrierCount, acme.CommodityCount, acme.PortCount)
	}
	if acme.LastActivity.Format("2006-01-02") != "2024-03-05" {
		t.Errorf("last activity: got %v", acme.LastActivity)
	}
}

func TestListPagination(t *testing.T) {
	var records []Record
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		records = append(records, rec(interfaces.FieldConsignee, name))
	}
	e := testEngine(t, records)

	// Page through at size 2 and verify the pagination law: pages are
	// disjoint, ordered and cover every group exactly once.
	var seen []string
	page := 1
	for {
		result, err := e.ListConsignees(ListOptions{SortBy: SortByName, Ascending: true, Page: page, PageSize: 2})
		if err != nil {
			t.Fatalf("page %d failed: %v", page, err)
		}
		if result.Total != 5 || result.TotalPages != 3 {
			t.Fatalf("page %d: total=%d totalPages=%d", page, result.Total, result.TotalPages)
		}
		seen = append(seen, names(result.Items)...)
		if !result.HasMore {
			break
		}
		page++
	}
	if !equalNames(seen, "A", "B", "C", "D", "E") {
		t.Errorf("concatenated pages: %v", seen)
	}

	// A page beyond the end is empty, not an error.
	result, err := e.ListConsignees(ListOptions{Page: 99, PageSize: 2})
	if err != nil {
		t.Fatalf("out-of-range page failed: %v", err)
	}
	if len(result.Items) != 0 {
		t.Errorf("out-of-range page returned %d items", len(result.Items))
	}
	if result.HasMore {
		t.Error("out-of-range page reports HasMore")
	}

	// Zero and negative page / page size normalize to defaults.
	result, err = e.ListConsignees(ListOptions{Page: -3, PageSize: 0})
	if err != nil {
		t.Fatalf("normalized page failed: %v", err)
	}
	if result.Page != 1 || result.PageSize != DefaultPageSize {
		t.Errorf("normalization: page=%d pageSize=%d", result.Page, result.PageSize)
	}
}
