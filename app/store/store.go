package store

import (
	"cargoline/app/interfaces"
)

// Store holds the full ordered record sequence for one loaded dataset.
// Insertion order reflects manifest order. A store is built once and
// never mutated; a reload produces a whole new store.
type Store struct {
	header  []string
	records []interfaces.Record
}

// New creates a store over a decoded manifest.
func New(header []string, records []interfaces.Record) *Store {
	return &Store{header: header, records: records}
}

// All returns the record sequence. Callers must treat it as read-only.
func (s *Store) All() []interfaces.Record {
	return s.records
}

// Header returns the trimmed manifest header.
func (s *Store) Header() []string {
	return s.header
}

// Count returns the number of records.
func (s *Store) Count() int {
	return len(s.records)
}
