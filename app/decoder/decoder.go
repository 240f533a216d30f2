package decoder

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"cargoline/app/interfaces"
)

// nullLiteral is the raw cell text that marks an explicitly null value.
const nullLiteral = "null"

// Decode reads the full source and decodes it according to format using
// default options. The source is consumed to EOF; each call re-reads from
// the beginning of whatever reader it is handed.
func Decode(r io.Reader, format Format) (*Result, error) {
	return DecodeWithOptions(r, format, DefaultOptions())
}

// DecodeWithOptions reads the full source and decodes it according to
// format. Any read or parse failure aborts the whole decode with a
// DecodeError; there is no partial result.
func DecodeWithOptions(r io.Reader, format Format, options Options) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, decodeErr(format, err)
	}
	return DecodeBytes(data, format, options)
}

// DecodeFile opens path and decodes it according to format.
func DecodeFile(path string, format Format) (*Result, error) {
	return DecodeFileWithOptions(path, format, DefaultOptions())
}

// DecodeFileWithOptions opens path and decodes it according to format.
func DecodeFileWithOptions(path string, format Format, options Options) (*Result, error) {
	if path == "" {
		return nil, decodeErr(format, fmt.Errorf("file path is empty"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, decodeErr(format, err)
	}
	return DecodeBytes(data, format, options)
}

// DecodeBytes decodes in-memory manifest data according to format.
func DecodeBytes(data []byte, format Format, options Options) (*Result, error) {
	switch format {
	case FormatPlain:
		return decodeCSVBytes(data, options.Progress)
	case FormatGzip, FormatBzip2, FormatXZ:
		plain, err := decompress(data, format)
		if err != nil {
			return nil, decodeErr(format, err)
		}
		result, err := decodeCSVBytes(plain, options.Progress)
		if err != nil {
			return nil, decodeErr(format, errUnwrap(err))
		}
		return result, nil
	case FormatZip:
		return decodeZip(data, options.Progress)
	case FormatXLSX:
		return decodeXLSX(data)
	case FormatJSON:
		return decodeJSON(data, options.JSONPath)
	default:
		return nil, decodeErr(format, fmt.Errorf("unsupported format"))
	}
}

// decodeCSVBytes parses delimited text into trimmed headers and normalized
// records. The first line defines the field names.
func decodeCSVBytes(data []byte, progress interfaces.ProgressCallback) (*Result, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	// Allow variable number of fields per record to handle ragged manifests
	reader.FieldsPerRecord = -1

	firstRow, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, decodeErr(FormatPlain, fmt.Errorf("manifest has no header row"))
		}
		return nil, decodeErr(FormatPlain, err)
	}
	header := NormalizeHeader(firstRow)

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, decodeErr(FormatPlain, err)
		}
		records = append(records, rowToRecord(header, row))
		if progress != nil && len(records)%interfaces.ProgressUpdateInterval == 0 {
			progress("decoding", int64(len(records)), -1, "")
		}
	}
	if progress != nil {
		progress("decoding", int64(len(records)), int64(len(records)), "decode complete")
	}

	return &Result{Header: header, Records: records}, nil
}

// rowToRecord maps one raw row onto the header, dropping null-normalized
// cells. Cells beyond the header width are ignored; short rows leave the
// trailing fields null.
func rowToRecord(header []string, row []string) Record {
	record := make(Record, len(header))
	for i, name := range header {
		if i >= len(row) {
			break
		}
		value := row[i]
		if value == "" || value == nullLiteral {
			continue
		}
		record[name] = value
	}
	return record
}

// NormalizeHeader trims surrounding whitespace from each field name and
// replaces empty names with positional placeholders (Unnamed_A, Unnamed_B,
// ...) so every column stays addressable.
func NormalizeHeader(header []string) []string {
	normalized := make([]string, len(header))
	emptyCount := 0
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			normalized[i] = "Unnamed_" + columnName(emptyCount)
			emptyCount++
			continue
		}
		normalized[i] = name
	}
	return normalized
}

// columnName converts a 0-based index to a spreadsheet-style column name.
// Examples: 0 -> A, 25 -> Z, 26 -> AA, 27 -> AB
func columnName(index int) string {
	result := ""
	index++
	for index > 0 {
		index--
		result = string(rune('A'+index%26)) + result
		index /= 26
	}
	return result
}

// errUnwrap strips a nested DecodeError so compressed sources report their
// outer format, not the inner plain-text one.
func errUnwrap(err error) error {
	if de, ok := err.(*DecodeError); ok {
		return de.Err
	}
	return err
}
