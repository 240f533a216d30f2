package decoder

import (
	"errors"
	"fmt"

	"cargoline/app/interfaces"
)

// Record is an alias to the shared type so callers can use the decoder
// without importing interfaces directly.
type Record = interfaces.Record

// Package decoder turns a manifest byte source (plain, gzip, bzip2, xz or
// zip-wrapped delimited text, plus xlsx and json manifests) into a header
// and a sequence of normalized records.

// Format identifies the encoding of a manifest source.
type Format int

const (
	FormatUnknown Format = iota
	FormatPlain
	FormatGzip
	FormatBzip2
	FormatXZ
	FormatZip
	FormatXLSX
	FormatJSON
)

// String returns the string representation of Format
func (f Format) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatGzip:
		return "gzip"
	case FormatBzip2:
		return "bzip2"
	case FormatXZ:
		return "xz"
	case FormatZip:
		return "zip"
	case FormatXLSX:
		return "xlsx"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Options controls manifest parsing behaviour.
type Options struct {
	// JSONPath is an optional jp expression selecting the record array
	// inside a JSON manifest. Empty means the document root.
	JSONPath string
	// Progress, when set, is called every ProgressUpdateInterval rows
	// while decoding delimited text.
	Progress interfaces.ProgressCallback
}

// DefaultOptions returns the default parsing options
func DefaultOptions() Options {
	return Options{}
}

// Result holds a fully decoded manifest.
type Result struct {
	Header  []string
	Records []Record
}

// ErrNoTabularEntry is returned when a zip archive contains no entry with
// the tabular file extension.
var ErrNoTabularEntry = errors.New("zip archive contains no tabular entry")

// DecodeError wraps any failure while reading or parsing a manifest source.
// A DecodeError aborts the entire load; no partial dataset is ever kept.
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s manifest: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(format Format, err error) error {
	return &DecodeError{Format: format, Err: err}
}
