package query

import (
	"time"

	"cargoline/app/interfaces"
)

// Record is an alias to the shared type to keep call sites short.
type Record = interfaces.Record

const (
	// DefaultPageSize is used when ListOptions carries no page size.
	DefaultPageSize = 50

	// RecordSearchLimit caps the rows returned by SearchRecords; the true
	// match total is always reported alongside.
	RecordSearchLimit = 100

	// TopReportLimit is the number of entries in the Top* reports.
	TopReportLimit = 20

	// StatsLeaderboardLimit is the number of entries in each stats
	// leaderboard.
	StatsLeaderboardLimit = 10

	// ExportCommodityLimit caps the commodities column in the CSV export.
	ExportCommodityLimit = 5

	// AutocompleteMinChars is the minimum query length before name
	// autocomplete returns anything. Guards against overly broad lookups.
	AutocompleteMinChars = 2

	// RecentShipmentLimit caps ConsigneeDetail.RecentShipments.
	RecentShipmentLimit = 10
)

// SortKey selects the ordering of ListConsignees.
type SortKey string

const (
	SortByShipments    SortKey = "shipments"
	SortByName         SortKey = "name"
	SortByWeight       SortKey = "weight"
	SortByLastActivity SortKey = "lastActivity"
)

// ListOptions carries the filters, sort and page selection for
// ListConsignees. The zero value lists everything, sorted by shipment
// count descending, first page at the default size.
type ListOptions struct {
	// Name filters by case-insensitive substring match on the consignee name.
	Name string
	// MinShipments keeps only groups with at least this many shipments.
	// Zero means no filter.
	MinShipments int
	// Commodity / Port / Carrier match case-insensitively against any
	// element of the group's respective distinct-value set.
	Commodity string
	Port      string
	Carrier   string

	SortBy    SortKey
	Ascending bool

	// Page is 1-based. Values below 1 are treated as 1.
	Page     int
	PageSize int
}

// ConsigneeSummary is the projection of one consignee group returned by
// ListConsignees.
type ConsigneeSummary struct {
	Name          string
	ShipmentCount int
	// TotalWeight is the group's weight sum in kg, rounded to the
	// nearest integer.
	TotalWeight    int64
	CarrierCount   int
	CommodityCount int
	PortCount      int
	Carriers       []string
	Commodities    []string
	Ports          []string
	// LastActivity is zero when no shipment carried a parseable date.
	LastActivity time.Time
}

// ListResult is one page of filtered, sorted consignee summaries.
type ListResult struct {
	Items      []ConsigneeSummary
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	HasMore    bool
}

// NameMatch is one autocomplete hit.
type NameMatch struct {
	Name          string
	ShipmentCount int
}

// ValueCount is a (value, occurrence count) pair used by leaderboards and
// reports.
type ValueCount struct {
	Value string
	Count int
}

// StatsResult holds the cross-cutting consignee statistics.
type StatsResult struct {
	TotalConsignees              int
	AverageShipmentsPerConsignee int
	MultiShipmentConsignees      int
	TopCommodities               []ValueCount
	TopPorts                     []ValueCount
	TopCarriers                  []ValueCount
}

// RecordSearchResult is a bounded record search hit list plus the true
// total match count.
type RecordSearchResult struct {
	Records []Record
	Total   int
}

// ConsigneeDetail is the full aggregate for one consignee plus its most
// recent shipments.
type ConsigneeDetail struct {
	Name          string
	ShipmentCount int
	TotalWeight   float64
	Carriers      []string
	Commodities   []string
	Ports         []string
	FirstActivity time.Time
	LastActivity  time.Time
	// RecentShipments holds the most-recently-appended shipments in
	// reverse insertion order.
	RecentShipments []Record
}
