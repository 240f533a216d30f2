package query

import (
	"math"
	"sort"

	"cargoline/app/index"
)

// ListConsignees projects every consignee group into a summary, applies
// the conjunctive filters, sorts with a deterministic name-ascending
// tie-break and returns the requested page.
func (e *Engine) ListConsignees(opts ListOptions) (*ListResult, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	opts = normalizeListOptions(opts)

	cacheKey := listCacheKey(snap.Hash, opts)
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			if result, ok := cached.(*ListResult); ok {
				return result, nil
			}
		}
	}

	summaries := make([]ConsigneeSummary, 0, snap.Index.Len())
	for _, group := range snap.Index.Groups() {
		if !matchesFilters(group, opts) {
			continue
		}
		summaries = append(summaries, summarize(group))
	}

	sortSummaries(summaries, opts.SortBy, opts.Ascending)

	total := len(summaries)
	totalPages := (total + opts.PageSize - 1) / opts.PageSize

	start := (opts.Page - 1) * opts.PageSize
	end := start + opts.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	result := &ListResult{
		Items:      summaries[start:end],
		Total:      total,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: totalPages,
		HasMore:    opts.Page < totalPages,
	}

	if e.cache != nil {
		e.cache.Store(cacheKey, result, estimateListSize(result))
	}
	return result, nil
}

func normalizeListOptions(opts ListOptions) ListOptions {
	if opts.SortBy == "" {
		opts.SortBy = SortByShipments
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	return opts
}

// matchesFilters applies the conjunctive filters in order: name substring,
// minimum shipment count, then commodity / port / carrier substring
// against any element of the respective distinct-value set.
func matchesFilters(group *index.Group, opts ListOptions) bool {
	if opts.Name != "" && !containsFold(group.Name, opts.Name) {
		return false
	}
	if opts.MinShipments > 0 && len(group.Shipments) < opts.MinShipments {
		return false
	}
	if opts.Commodity != "" && !anyContainsFold(group.Commodities.Values(), opts.Commodity) {
		return false
	}
	if opts.Port != "" && !anyContainsFold(group.Ports.Values(), opts.Port) {
		return false
	}
	if opts.Carrier != "" && !anyContainsFold(group.Carriers.Values(), opts.Carrier) {
		return false
	}
	return true
}

func summarize(group *index.Group) ConsigneeSummary {
	return ConsigneeSummary{
		Name:           group.Name,
		ShipmentCount:  len(group.Shipments),
		TotalWeight:    int64(math.Round(group.TotalWeight)),
		CarrierCount:   group.Carriers.Len(),
		CommodityCount: group.Commodities.Len(),
		PortCount:      group.Ports.Len(),
		Carriers:       group.Carriers.Values(),
		Commodities:    group.Commodities.Values(),
		Ports:          group.Ports.Values(),
		LastActivity:   group.LastActivity,
	}
}

// sortSummaries orders summaries by the selected key. Equal keys always
// fall back to name ascending so pagination is reproducible across runs
// regardless of index iteration order.
func sortSummaries(summaries []ConsigneeSummary, key SortKey, ascending bool) {
	less := func(a, b ConsigneeSummary) bool {
		switch key {
		case SortByName:
			return a.Name < b.Name
		case SortByWeight:
			if a.TotalWeight != b.TotalWeight {
				return a.TotalWeight < b.TotalWeight
			}
		case SortByLastActivity:
			if !a.LastActivity.Equal(b.LastActivity) {
				return a.LastActivity.Before(b.LastActivity)
			}
		default: // SortByShipments
			if a.ShipmentCount != b.ShipmentCount {
				return a.ShipmentCount < b.ShipmentCount
			}
		}
		// Tie-break on name ascending, independent of sort direction.
		return false
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		switch {
		case less(a, b):
			return ascending
		case less(b, a):
			return !ascending
		default:
			// Equal primary keys: name ascending.
			return a.Name < b.Name
		}
	})
}

// estimateListSize approximates the cached byte footprint of a page.
func estimateListSize(result *ListResult) int64 {
	size := int64(128)
	for _, item := range result.Items {
		size += int64(len(item.Name)) + 96
		for _, v := range item.Carriers {
			size += int64(len(v)) + 16
		}
		for _, v := range item.Commodities {
			size += int64(len(v)) + 16
		}
		for _, v := range item.Ports {
			size += int64(len(v)) + 16
		}
	}
	return size
}
