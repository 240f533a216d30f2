package index

import (
	"sort"
	"time"

	"cargoline/app/interfaces"
)

// Group holds all shipments and rolled-up aggregates for one consignee.
// Shipments keep store order; the group references records owned by the
// store and never copies or mutates them.
type Group struct {
	Name        string
	Shipments   []interfaces.Record
	TotalWeight float64
	Carriers    StringSet
	Commodities StringSet
	Ports       StringSet

	// FirstActivity / LastActivity are the earliest and latest parsed
	// arrival dates. Zero when no shipment carried a parseable date.
	FirstActivity time.Time
	LastActivity  time.Time
}

func newGroup(name string) *Group {
	return &Group{
		Name:        name,
		Carriers:    make(StringSet),
		Commodities: make(StringSet),
		Ports:       make(StringSet),
	}
}

// HasActivity reports whether any shipment carried a parseable arrival date.
func (g *Group) HasActivity() bool {
	return !g.LastActivity.IsZero()
}

// StringSet is a distinct-value collection. Only membership and
// cardinality matter; Values sorts for deterministic output.
type StringSet map[string]struct{}

// Add inserts a value, ignoring blanks.
func (s StringSet) Add(value string) {
	if value == "" {
		return
	}
	s[value] = struct{}{}
}

// Has reports membership.
func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of distinct values.
func (s StringSet) Len() int {
	return len(s)
}

// Values returns the distinct values in lexicographic order.
func (s StringSet) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
