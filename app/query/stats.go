package query

import (
	"math"
	"sort"
)

// ConsigneeStats computes the cross-cutting statistics: group totals plus
// top-10 leaderboards for commodities, ports and carriers. Leaderboards
// count occurrences across groups, so a commodity shipped by many
// consignees ranks above one shipped often by a single consignee.
func (e *Engine) ConsigneeStats() (*StatsResult, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	cacheKey := statsCacheKey(snap.Hash)
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			if result, ok := cached.(*StatsResult); ok {
				return result, nil
			}
		}
	}

	result := &StatsResult{TotalConsignees: snap.Index.Len()}

	totalShipments := 0
	commodityCounts := make(map[string]int)
	portCounts := make(map[string]int)
	carrierCounts := make(map[string]int)

	for _, group := range snap.Index.Groups() {
		totalShipments += len(group.Shipments)
		if len(group.Shipments) > 1 {
			result.MultiShipmentConsignees++
		}
		for commodity := range group.Commodities {
			commodityCounts[commodity]++
		}
		for port := range group.Ports {
			portCounts[port]++
		}
		for carrier := range group.Carriers {
			carrierCounts[carrier]++
		}
	}

	if result.TotalConsignees > 0 {
		result.AverageShipmentsPerConsignee = int(math.Round(
			float64(totalShipments) / float64(result.TotalConsignees)))
	}

	result.TopCommodities = topCounts(commodityCounts, StatsLeaderboardLimit)
	result.TopPorts = topCounts(portCounts, StatsLeaderboardLimit)
	result.TopCarriers = topCounts(carrierCounts, StatsLeaderboardLimit)

	if e.cache != nil {
		e.cache.Store(cacheKey, result, estimateStatsSize(result))
	}
	return result, nil
}

// topCounts converts a count map to its top-n entries, descending by
// count with value-ascending ties.
func topCounts(counts map[string]int, n int) []ValueCount {
	entries := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		entries = append(entries, ValueCount{Value: value, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func estimateStatsSize(result *StatsResult) int64 {
	size := int64(96)
	for _, lb := range [][]ValueCount{result.TopCommodities, result.TopPorts, result.TopCarriers} {
		for _, entry := range lb {
			size += int64(len(entry.Value)) + 24
		}
	}
	return size
}
