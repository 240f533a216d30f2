package query

import (
	"time"

	"cargoline/app/dates"
	"cargoline/app/interfaces"
)

// DefaultTimelineBuckets bounds the number of buckets ArrivalTimeline
// returns when the caller passes no limit.
const DefaultTimelineBuckets = 60

// allowedBucketDays are the bucket widths ArrivalTimeline chooses from,
// smallest first so the densest fit wins.
var allowedBucketDays = []int{1, 7, 30, 90, 365}

// TimelineBucket is one interval of the arrival timeline. Start is the
// inclusive lower bound; the bucket spans BucketDays of the result.
type TimelineBucket struct {
	Start time.Time
	Count int
}

// TimelineResult is the shipment count over time, bucketed by arrival
// date. Records without a parseable arrival date are counted in Undated
// and excluded from the buckets.
type TimelineResult struct {
	Buckets    []TimelineBucket
	BucketDays int
	Dated      int
	Undated    int
}

// ArrivalTimeline buckets every shipment by arrival date. The bucket
// width is the smallest of day, week, month, quarter or year that keeps
// the series within maxBuckets; maxBuckets below 1 falls back to
// DefaultTimelineBuckets.
func (e *Engine) ArrivalTimeline(maxBuckets int) (*TimelineResult, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if maxBuckets < 1 {
		maxBuckets = DefaultTimelineBuckets
	}

	cacheKey := timelineCacheKey(snap.Hash, maxBuckets)
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			if result, ok := cached.(*TimelineResult); ok {
				return result, nil
			}
		}
	}

	result := &TimelineResult{Buckets: []TimelineBucket{}}

	// Single parsing pass; bucketing afterwards works on the parsed times.
	var arrivals []time.Time
	var min, max time.Time
	for _, record := range snap.Store.All() {
		raw, ok := record.Get(interfaces.FieldArrivalDate)
		if !ok {
			result.Undated++
			continue
		}
		t, ok := dates.Parse(raw)
		if !ok {
			result.Undated++
			continue
		}
		if result.Dated == 0 || t.Before(min) {
			min = t
		}
		if result.Dated == 0 || t.After(max) {
			max = t
		}
		result.Dated++
		arrivals = append(arrivals, t)
	}

	if result.Dated > 0 {
		result.BucketDays = chooseBucketDays(min, max, maxBuckets)
		result.Buckets = bucketArrivals(arrivals, min, max, result.BucketDays)
	}

	if e.cache != nil {
		size := int64(64 + len(result.Buckets)*32)
		e.cache.Store(cacheKey, result, size)
	}
	return result, nil
}

// chooseBucketDays picks the smallest allowed width that keeps the span
// within maxBuckets, falling back to the widest.
func chooseBucketDays(min, max time.Time, maxBuckets int) int {
	spanDays := int(max.Sub(min).Hours()/24) + 1
	for _, d := range allowedBucketDays {
		if (spanDays+d-1)/d <= maxBuckets {
			return d
		}
	}
	return allowedBucketDays[len(allowedBucketDays)-1]
}

// bucketArrivals counts arrivals into contiguous buckets of bucketDays,
// anchored at min truncated to midnight UTC. Empty buckets are kept so
// the series has no gaps.
func bucketArrivals(arrivals []time.Time, min, max time.Time, bucketDays int) []TimelineBucket {
	anchor := time.Date(min.Year(), min.Month(), min.Day(), 0, 0, 0, 0, time.UTC)
	width := time.Duration(bucketDays) * 24 * time.Hour

	n := int(max.Sub(anchor)/width) + 1
	buckets := make([]TimelineBucket, n)
	for i := range buckets {
		buckets[i].Start = anchor.Add(time.Duration(i) * width)
	}
	for _, t := range arrivals {
		i := int(t.Sub(anchor) / width)
		if i >= 0 && i < n {
			buckets[i].Count++
		}
	}
	return buckets
}
