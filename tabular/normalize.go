// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package tabular

import (
	"fmt"
	"sort"
)

// Normalize flattens decoded JSON into a table.  A single object
// becomes a one-row table; a list of objects becomes one row per
// object.  Nested object keys are joined into dotted column names
// ("parent.child"); arrays and scalars are stored per cell as-is.
//
// Go maps do not preserve document key order, so columns are ordered
// lexicographically at each nesting level, then by first appearance
// across records for keys introduced by later records.
//
// A nil or empty value yields an empty table with no columns.  Any
// other shape (a bare scalar, or a list containing non-objects) is an
// error.
func Normalize(v interface{}) (*Table, error) {
	var records []map[string]interface{}
	switch data := v.(type) {
	case nil:
		return New(), nil
	case map[string]interface{}:
		if len(data) == 0 {
			return New(), nil
		}
		records = []map[string]interface{}{data}
	case []interface{}:
		if len(data) == 0 {
			return New(), nil
		}
		records = make([]map[string]interface{}, len(data))
		for i, item := range data {
			record, isMap := item.(map[string]interface{})
			if !isMap {
				return nil, fmt.Errorf("tabular: cannot normalize list element %d of type %T", i, item)
			}
			records[i] = record
		}
	default:
		return nil, fmt.Errorf("tabular: cannot normalize value of type %T", v)
	}

	// Flatten every record, collecting the overall column order.
	var columns []string
	seen := make(map[string]struct{})
	flat := make([]map[string]interface{}, len(records))
	for i, record := range records {
		cells := make(map[string]interface{})
		var order []string
		flatten("", record, cells, &order)
		flat[i] = cells
		for _, name := range order {
			if _, present := seen[name]; !present {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}

	t := New(columns...)
	for _, cells := range flat {
		row := make([]interface{}, len(columns))
		for c, name := range columns {
			row[c] = cells[name]
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// flatten walks one record, writing leaf values into cells and
// appending the dotted key of each leaf to order.
func flatten(prefix string, value interface{}, cells map[string]interface{}, order *[]string) {
	record, isMap := value.(map[string]interface{})
	if !isMap || (prefix != "" && len(record) == 0) {
		cells[prefix] = value
		*order = append(*order, prefix)
		return
	}
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if child, isChildMap := record[key].(map[string]interface{}); isChildMap && len(child) > 0 {
			flatten(name, child, cells, order)
		} else {
			cells[name] = record[key]
			*order = append(*order, name)
		}
	}
}
