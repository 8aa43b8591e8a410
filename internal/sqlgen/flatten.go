package sqlgen

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ColumnKind classifies how a column's value is extracted from the decoded
// record. Booleans and integers both map to the INTEGER column type, but
// their access expressions differ (booleans render as 0/1).
type ColumnKind int

const (
	KindFloat ColumnKind = iota
	KindBool
	KindInt
	KindString
)

// Column describes one SQL column derived from a leaf value of the sample
// record.
type Column struct {
	Name    string     // sanitized, underscore-joined path
	SQLType string     // REAL, INTEGER, or TEXT
	Path    []string   // original unsanitized keys, record root to leaf
	Kind    ColumnKind // access-expression kind
}

// Flatten walks the record depth-first in document key order and returns one
// column per reachable leaf value. Nested objects contribute only their
// leaves; empty objects contribute nothing. Two paths that sanitize to the
// same column name are an error, as are array values.
func Flatten(rec Object) ([]Column, error) {
	cols, err := flattenObject(rec, "", nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(cols))
	for i, col := range cols {
		if j, ok := seen[col.Name]; ok {
			return nil, fmt.Errorf("column name %q produced by both %q and %q",
				col.Name, pathString(cols[j].Path), pathString(col.Path))
		}
		seen[col.Name] = i
	}
	return cols, nil
}

// flattenObject returns the columns for one object. Each call builds and
// returns its own slice; the caller concatenates, so no state is shared
// across recursive branches.
func flattenObject(obj Object, prefix string, path []string) ([]Column, error) {
	var cols []Column
	for _, m := range obj {
		name := sanitizeKey(m.Key)
		if prefix != "" {
			name = prefix + "_" + name
		}
		leafPath := append(slices.Clone(path), m.Key)

		switch v := m.Value.(type) {
		case Object:
			sub, err := flattenObject(v, name, leafPath)
			if err != nil {
				return nil, err
			}
			cols = append(cols, sub...)
		case []any:
			return nil, fmt.Errorf("unsupported array value at %q", pathString(leafPath))
		default:
			sqlType, kind := classify(m.Value)
			cols = append(cols, Column{
				Name:    name,
				SQLType: sqlType,
				Path:    leafPath,
				Kind:    kind,
			})
		}
	}
	return cols, nil
}

// classify maps a leaf value to its SQL column type and access kind.
// A json.Number that parses as an exact 64-bit integer is INTEGER, any other
// number is REAL. Booleans are INTEGER columns but keep a distinct kind so
// the access expression renders them as 0/1. Null and anything unclassified
// store as TEXT.
func classify(v any) (string, ColumnKind) {
	switch t := v.(type) {
	case json.Number:
		if _, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return "INTEGER", KindInt
		}
		return "REAL", KindFloat
	case bool:
		return "INTEGER", KindBool
	case string:
		return "TEXT", KindString
	default:
		return "TEXT", KindString
	}
}

// pathString renders an original key path for error messages.
func pathString(path []string) string {
	return strings.Join(path, ".")
}
