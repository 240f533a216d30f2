package query

// SearchConsigneeNames returns the consignees whose name contains the
// query substring (case-insensitive), capped at limit. Queries shorter
// than AutocompleteMinChars return an empty result regardless of data;
// that is a guard against overly broad autocomplete, not a data property.
func (e *Engine) SearchConsigneeNames(q string, limit int) ([]NameMatch, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	if len(q) < AutocompleteMinChars {
		return []NameMatch{}, nil
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	matches := []NameMatch{}
	for _, group := range snap.Index.Groups() {
		if !containsFold(group.Name, q) {
			continue
		}
		matches = append(matches, NameMatch{
			Name:          group.Name,
			ShipmentCount: len(group.Shipments),
		})
		if len(matches) >= limit {
			break
		}
	}
	return matches, nil
}

// SearchRecords scans the store linearly. With a field name the query
// matches case-insensitively against that field's value only, and records
// missing the field never match; otherwise a record matches when any
// field's value contains the query. Returns at most RecordSearchLimit
// records plus the true total match count.
func (e *Engine) SearchRecords(q string, field string) (*RecordSearchResult, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	result := &RecordSearchResult{Records: []Record{}}
	for _, record := range snap.Store.All() {
		if !recordMatches(record, q, field) {
			continue
		}
		result.Total++
		if len(result.Records) < RecordSearchLimit {
			result.Records = append(result.Records, record)
		}
	}
	return result, nil
}

func recordMatches(record Record, q string, field string) bool {
	if field != "" {
		value, ok := record.Get(field)
		if !ok {
			return false
		}
		return containsFold(value, q)
	}
	for _, value := range record {
		if containsFold(value, q) {
			return true
		}
	}
	return false
}
