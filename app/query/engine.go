package query

import (
	"errors"
	"strings"

	"cargoline/app/cache"
	"cargoline/app/interfaces"
	"cargoline/app/store"
)

// Package query implements the read side of the manifest core: filtered,
// sorted, paginated consignee listings, record search, CSV export and the
// aggregate reports. Every operation reads one snapshot and is safe to
// run concurrently with loads and with other queries.

// ErrNoDataLoaded is returned by any query issued before the first
// successful load.
var ErrNoDataLoaded = store.ErrNoDataLoaded

// ErrConsigneeNotFound is returned by ConsigneeDetail for unknown names.
var ErrConsigneeNotFound = errors.New("consignee not found")

// ErrEmptyDataset is returned by ExportConsignees when the index has no
// groups to derive a header from.
var ErrEmptyDataset = errors.New("dataset has no consignee groups")

// Engine answers queries over the dataset handle it is given. The engine
// itself is stateless apart from an optional result cache; all data lives
// in the published snapshot.
type Engine struct {
	dataset *store.Dataset
	cache   *cache.Cache
}

// New creates an engine without result caching.
func New(dataset *store.Dataset) *Engine {
	return &Engine{dataset: dataset}
}

// NewWithCache creates an engine that caches list pages and reports in c.
func NewWithCache(dataset *store.Dataset, c *cache.Cache) *Engine {
	return &Engine{dataset: dataset, cache: c}
}

// snapshot fetches the active snapshot once per operation so a concurrent
// load can never hand a query a store and index from different files.
func (e *Engine) snapshot() (*store.Snapshot, error) {
	return e.dataset.Snapshot()
}

// containsFold reports whether s contains substr case-insensitively.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// anyContainsFold reports whether any element contains substr
// case-insensitively.
func anyContainsFold(values []string, substr string) bool {
	for _, v := range values {
		if containsFold(v, substr) {
			return true
		}
	}
	return false
}

// laneOf resolves a record's trade lane. The destination is the US
// destination port, falling back to the unlading port when blank. Records
// missing either endpoint have no lane.
func laneOf(record Record) (string, bool) {
	origin := record.Trimmed(interfaces.FieldForeignPort)
	if origin == "" {
		return "", false
	}
	dest := record.Trimmed(interfaces.FieldUSDestination)
	if dest == "" {
		dest = record.Trimmed(interfaces.FieldUSUnlading)
	}
	if dest == "" {
		return "", false
	}
	return origin + " -> " + dest, true
}
