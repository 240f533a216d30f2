package decoder

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// decodeJSON decodes a JSON manifest: a top-level array of flat objects,
// or any array selected by the jp path expression. Object keys become
// field names; scalar values are stringified and normalized like CSV
// cells.
func decodeJSON(data []byte, pathExpr string) (*Result, error) {
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, decodeErr(FormatJSON, err)
	}

	if pathExpr != "" {
		path, err := jp.ParseString(pathExpr)
		if err != nil {
			return nil, decodeErr(FormatJSON, fmt.Errorf("invalid json path %q: %w", pathExpr, err))
		}
		results := path.Get(parsed)
		if len(results) == 1 {
			parsed = results[0]
		} else {
			parsed = results
		}
	}

	items, ok := parsed.([]interface{})
	if !ok {
		return nil, decodeErr(FormatJSON, fmt.Errorf("manifest is not an array of records"))
	}

	// Header is the union of object keys in first-seen order so shards with
	// sparse objects still line up.
	var header []string
	seen := make(map[string]bool)
	var records []Record

	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, decodeErr(FormatJSON, fmt.Errorf("record %d is not an object", i))
		}

		record := make(Record, len(obj))
		for key, value := range obj {
			if !seen[key] {
				seen[key] = true
				header = append(header, key)
			}
			s, present := stringifyJSONValue(value)
			if !present || s == "" || s == nullLiteral {
				continue
			}
			record[key] = s
		}
		records = append(records, record)
	}

	return &Result{Header: NormalizeHeader(header), Records: records}, nil
}

// stringifyJSONValue converts a parsed JSON value to its cell string.
// JSON null reports absent, matching the delimited-text null markers.
func stringifyJSONValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return fmt.Sprintf("%t", v), true
	case int64:
		return fmt.Sprintf("%d", v), true
	case int:
		return fmt.Sprintf("%d", v), true
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v)), true
		}
		return fmt.Sprintf("%v", v), true
	case map[string]interface{}, []interface{}:
		return oj.JSON(v), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
