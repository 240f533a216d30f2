package decoder

import (
	"io"
	"os"
	"strings"
)

// formatExtensions maps file extensions to their Format
var formatExtensions = map[string]Format{
	".csv":  FormatPlain,
	".txt":  FormatPlain,
	".gz":   FormatGzip,
	".bz2":  FormatBzip2,
	".xz":   FormatXZ,
	".zip":  FormatZip,
	".xlsx": FormatXLSX,
	".json": FormatJSON,
}

// DetectFormat determines the manifest format from the file extension and
// falls back to magic-byte detection when the extension is uninformative.
//
// Supported encodings:
//   - plain delimited text (.csv, .txt)
//   - gzip (.gz), bzip2 (.bz2), xz (.xz) wrapped delimited text
//   - zip archives (.zip)
//   - xlsx workbooks (.xlsx)
//   - json record arrays (.json)
//
// Unrecognized extensions default to plain delimited text.
func DetectFormat(path string) Format {
	if path == "" {
		return FormatUnknown
	}

	lower := strings.ToLower(path)
	for ext, format := range formatExtensions {
		if strings.HasSuffix(lower, ext) {
			return format
		}
	}

	if magic, err := detectFormatByMagic(path); err == nil && magic != FormatUnknown {
		return magic
	}

	return FormatPlain
}

// detectFormatByMagic reads the first few bytes of a file and detects a
// compressed container format.
func detectFormatByMagic(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	// XZ has the longest magic (6 bytes)
	head := make([]byte, 6)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return FormatUnknown, err
	}

	return detectCompressedFormat(head[:n]), nil
}
