package decoder

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

// Magic byte signatures for compression detection
var (
	// Gzip magic bytes: 1f 8b
	gzipMagic = []byte{0x1f, 0x8b}
	// Bzip2 magic bytes: 42 5a 68 ("BZh")
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	// XZ magic bytes: fd 37 7a 58 5a 00
	xzMagic = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
	// Zip magic bytes: 50 4b ("PK")
	zipMagic = []byte{0x50, 0x4b}
)

// detectCompressedFormat inspects leading magic bytes and reports the
// wrapping format, or FormatUnknown when the data is not a recognized
// compressed container.
func detectCompressedFormat(head []byte) Format {
	switch {
	case len(head) >= 2 && bytes.HasPrefix(head, gzipMagic):
		return FormatGzip
	case len(head) >= 3 && bytes.HasPrefix(head, bzip2Magic):
		return FormatBzip2
	case len(head) >= 6 && bytes.HasPrefix(head, xzMagic):
		return FormatXZ
	case len(head) >= 2 && bytes.HasPrefix(head, zipMagic):
		return FormatZip
	default:
		return FormatUnknown
	}
}

// decompress inflates gzip, bzip2 or xz wrapped manifest data. Unlike the
// interactive viewers this feeds an all-or-nothing load, so a truncated
// stream is an error rather than a partial-data warning.
func decompress(data []byte, format Format) ([]byte, error) {
	var reader io.Reader

	switch format {
	case FormatGzip:
		gzReader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		reader = gzReader

	case FormatBzip2:
		reader = bzip2.NewReader(bytes.NewReader(data))

	case FormatXZ:
		xzReader, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		reader = xzReader

	default:
		return nil, fmt.Errorf("unsupported compression type: %v", format)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	return buf.Bytes(), nil
}
