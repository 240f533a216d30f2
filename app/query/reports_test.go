package query

import (
	"fmt"
	"testing"

	"cargoline/app/interfaces"
)

func TestTopConsignees(t *testing.T) {
	e := testEngine(t, acmeBetaFixture())

	report, err := e.TopConsignees()
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(report))
	}
	if report[0].Value != "Acme" || report[0].Count != 2 {
		t.Errorf("leader: got %+v, want Acme/2", report[0])
	}
	if report[1].Value != "Beta" || report[1].Count != 1 {
		t.Errorf("runner-up: got %+v, want Beta/1", report[1])
	}
}

func TestTopTradeLanesDestinationFallback(t *testing.T) {
	e := testEngine(t, []Record{
		// Blank destination falls back to the unlading port.
		rec(interfaces.FieldConsignee, "Acme",
			interfaces.FieldForeignPort, "Shanghai",
			interfaces.FieldUSUnlading, "Rotterdam"),
		// An explicit destination wins over unlading.
		rec(interfaces.FieldConsignee, "Acme",
			interfaces.FieldForeignPort, "Shanghai",
			interfaces.FieldUSDestination, "Rotterdam",
			interfaces.FieldUSUnlading, "Hamburg"),
		// Missing origin excludes the record entirely.
		rec(interfaces.FieldConsignee, "Beta",
			interfaces.FieldUSDestination, "Seattle"),
	})

	report, err := e.TopTradeLanes()
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report) != 1 {
		t.Fatalf("expected 1 lane, got %d: %v", len(report), report)
	}
	if report[0].Value != "Shanghai -> Rotterdam" || report[0].Count != 2 {
		t.Errorf("lane: got %+v, want Shanghai -> Rotterdam/2", report[0])
	}
}

func TestTopCarriersLaneFilter(t *testing.T) {
	e := testEngine(t, []Record{
		rec(interfaces.FieldConsignee, "Acme",
			interfaces.FieldCarrierCode, "MSC",
			interfaces.FieldForeignPort, "Shanghai",
			interfaces.FieldUSDestination, "Oakland"),
		rec(interfaces.FieldConsignee, "Acme",
			interfaces.FieldCarrierCode, "MSC",
			interfaces.FieldForeignPort, "Ningbo",
			interfaces.FieldUSDestination, "Oakland"),
		rec(interfaces.FieldConsignee, "Beta",
			interfaces.FieldCarrierCode, "MAEU",
			interfaces.FieldForeignPort, "Shanghai",
			interfaces.FieldUSDestination, "Oakland"),
	})

	report, err := e.TopCarriers("")
	if err != nil {
		t.Fatalf("unfiltered report failed: %v", err)
	}
	if len(report) != 2 || report[0].Value != "MSC" || report[0].Count != 2 {
		t.Errorf("unfiltered: got %v", report)
	}

	report, err = e.TopCarriers("Shanghai -> Oakland")
	if err != nil {
		t.Fatalf("filtered report failed: %v", err)
	}
	if len(report) != 2 {
		t.Fatalf("filtered: expected 2 carriers, got %v", report)
	}
	for _, entry := range report {
		if entry.Count != 1 {
			t.Errorf("filtered count for %s: got %d, want 1", entry.Value, entry.Count)
		}
	}

	// A lane nothing travels yields an empty report, not an error.
	report, err = e.TopCarriers("Nowhere -> Elsewhere")
	if err != nil {
		t.Fatalf("empty-lane report failed: %v", err)
	}
	if len(report) != 0 {
		t.Errorf("empty lane: got %v", report)
	}
}

func TestTopReportsCapAtLimit(t *testing.T) {
	records := make([]Record, 0, TopReportLimit+5)
	for i := 0; i < TopReportLimit+5; i++ {
		records = append(records, rec(
			interfaces.FieldConsignee, "Acme",
			interfaces.FieldCommodity, fmt.Sprintf("Commodity %02d", i)))
	}
	e := testEngine(t, records)

	report, err := e.TopCommodities()
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report) != TopReportLimit {
		t.Errorf("expected %d entries, got %d", TopReportLimit, len(report))
	}
}
