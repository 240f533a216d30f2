package dates

import (
	"strings"
	"time"
)

// Package dates parses the arrival-date column of shipment manifests.
// Manifests come from many upstream systems, so several layouts are tried
// in order of how often they show up in practice.

// arrivalLayouts are tried in order. Date-only layouts come first because
// most manifests carry bare dates.
var arrivalLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"20060102",
}

// Parse tries the known arrival-date layouts and returns the parsed time
// in UTC. Returns false for blank or unrecognized values; callers treat
// those as absent rather than failing the record.
func Parse(s string) (time.Time, bool) {
	ss := strings.TrimSpace(s)
	if ss == "" {
		return time.Time{}, false
	}

	for _, layout := range arrivalLayouts {
		if t, err := time.Parse(layout, ss); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}
