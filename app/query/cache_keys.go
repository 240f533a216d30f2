package query

import "fmt"

// Cache keys embed the dataset content hash first so results from a
// replaced dataset can never be served, whatever the eviction state.

func listCacheKey(hash string, opts ListOptions) string {
	return fmt.Sprintf("%s|list|name:%s|min:%d|com:%s|port:%s|car:%s|sort:%s:%t|page:%d:%d",
		hash, opts.Name, opts.MinShipments, opts.Commodity, opts.Port, opts.Carrier,
		opts.SortBy, opts.Ascending, opts.Page, opts.PageSize)
}

func reportCacheKey(hash, report, filter string) string {
	return fmt.Sprintf("%s|report:%s|filter:%s", hash, report, filter)
}

func statsCacheKey(hash string) string {
	return fmt.Sprintf("%s|stats", hash)
}

func timelineCacheKey(hash string, maxBuckets int) string {
	return fmt.Sprintf("%s|timeline|max:%d", hash, maxBuckets)
}
