package query

import (
	"cargoline/app/interfaces"
)

// The four aggregate reports each run a single pass over the store,
// grouping by the relevant key, and return the top entries by shipment
// count.

// TopConsignees returns the consignees with the most shipments.
func (e *Engine) TopConsignees() ([]ValueCount, error) {
	return e.storeReport("consignees", "", func(record Record) (string, bool) {
		name := record.Trimmed(interfaces.FieldConsignee)
		return name, name != ""
	})
}

// TopTradeLanes returns the busiest (origin port, destination port)
// pairs. The destination resolves to the US destination port, falling
// back to the unlading port when blank; a record missing either endpoint
// is excluded.
func (e *Engine) TopTradeLanes() ([]ValueCount, error) {
	return e.storeReport("lanes", "", laneOf)
}

// TopCarriers returns the carriers with the most shipments. A non-empty
// lane restricts aggregation to records on exactly that lane string, as
// produced by TopTradeLanes.
func (e *Engine) TopCarriers(lane string) ([]ValueCount, error) {
	return e.storeReport("carriers", lane, func(record Record) (string, bool) {
		if lane != "" {
			recordLane, ok := laneOf(record)
			if !ok || recordLane != lane {
				return "", false
			}
		}
		carrier := record.Trimmed(interfaces.FieldCarrierCode)
		return carrier, carrier != ""
	})
}

// TopCommodities returns the most shipped commodities.
func (e *Engine) TopCommodities() ([]ValueCount, error) {
	return e.storeReport("commodities", "", func(record Record) (string, bool) {
		commodity := record.Trimmed(interfaces.FieldCommodity)
		return commodity, commodity != ""
	})
}

// storeReport scans the store once, counting records by the key function,
// and returns the top TopReportLimit keys.
func (e *Engine) storeReport(name, filter string, keyOf func(Record) (string, bool)) ([]ValueCount, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	cacheKey := reportCacheKey(snap.Hash, name, filter)
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			if result, ok := cached.([]ValueCount); ok {
				return result, nil
			}
		}
	}

	counts := make(map[string]int)
	for _, record := range snap.Store.All() {
		if key, ok := keyOf(record); ok {
			counts[key]++
		}
	}
	result := topCounts(counts, TopReportLimit)

	if e.cache != nil {
		size := int64(64)
		for _, entry := range result {
			size += int64(len(entry.Value)) + 24
		}
		e.cache.Store(cacheKey, result, size)
	}
	return result, nil
}
