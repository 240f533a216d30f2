package decoder

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"

	"cargoline/app/interfaces"
)

// tabularExtension is the archive entry extension a zip manifest must carry.
const tabularExtension = ".csv"

// decodeZip scans the archive for the first entry whose name ends in the
// tabular extension (case-insensitive) and decodes that entry's content as
// delimited text. Archives without such an entry fail with
// ErrNoTabularEntry.
func decodeZip(data []byte, progress interfaces.ProgressCallback) (*Result, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, decodeErr(FormatZip, err)
	}

	for _, entry := range archive.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(entry.Name), tabularExtension) {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, decodeErr(FormatZip, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, decodeErr(FormatZip, err)
		}

		result, err := decodeCSVBytes(content, progress)
		if err != nil {
			return nil, decodeErr(FormatZip, errUnwrap(err))
		}
		return result, nil
	}

	return nil, ErrNoTabularEntry
}
