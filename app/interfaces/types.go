package interfaces

import "strings"

// Package interfaces holds the shared leaf types used across the cargoline
// packages. Keeping them here avoids import cycles between the decoder,
// store, index and query packages.

// Well-known manifest column names. Manifests may carry any number of
// additional columns; these are the ones the index and reports understand.
const (
	FieldConsignee     = "Consignee"
	FieldCarrierCode   = "Carrier Code"
	FieldCommodity     = "Commodity"
	FieldForeignPort   = "Foreign Port of Lading"
	FieldUSDestination = "US Port of Destination"
	FieldUSUnlading    = "US Port of Unlading"
	FieldWeightKG      = "Weight (kg)"
	FieldArrivalDate   = "Arrival Date"
)

// Record is a single decoded manifest row keyed by trimmed column name.
// Fields normalized to null during decode (empty string or the literal
// text "null") are absent from the map. Records are immutable after
// decode; the store owns them exclusively.
type Record map[string]string

// Get returns the value for the named field and whether it is present.
func (r Record) Get(name string) (string, bool) {
	v, ok := r[name]
	return v, ok
}

// Has reports whether the named field carries a value.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Trimmed returns the whitespace-trimmed value for the named field.
// Absent fields yield the empty string.
func (r Record) Trimmed(name string) string {
	return strings.TrimSpace(r[name])
}

// ProgressCallback reports progress during long-running loads.
// stage is a short identifier like "decoding" or "indexing".
type ProgressCallback func(stage string, current, total int64, message string)

// ProgressUpdateInterval defines how often row-level progress is reported.
const ProgressUpdateInterval = 10000
