package decoder

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// decodeXLSX decodes the first sheet of an xlsx manifest. The first row
// defines the field names; rows are normalized exactly like delimited text.
func decodeXLSX(data []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, decodeErr(FormatXLSX, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, decodeErr(FormatXLSX, fmt.Errorf("no sheets found in XLSX file"))
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, decodeErr(FormatXLSX, err)
	}
	if len(rows) == 0 {
		return nil, decodeErr(FormatXLSX, fmt.Errorf("no rows found in XLSX file"))
	}

	header := NormalizeHeader(rows[0])
	var records []Record
	for _, row := range rows[1:] {
		records = append(records, rowToRecord(header, row))
	}

	return &Result{Header: header, Records: records}, nil
}
