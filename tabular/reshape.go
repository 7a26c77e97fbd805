// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package tabular

import (
	"fmt"
	"strings"
)

// Concat stacks tables row-wise.  The result's columns are the union
// of the inputs' columns, ordered by first appearance; cells for
// columns a table does not have are nil.
func Concat(tables ...*Table) *Table {
	var columns []string
	seen := make(map[string]struct{})
	for _, t := range tables {
		for _, name := range t.columns {
			if _, present := seen[name]; !present {
				seen[name] = struct{}{}
				columns = append(columns, name)
			}
		}
	}

	out := New(columns...)
	for _, t := range tables {
		for _, row := range t.rows {
			cells := make([]interface{}, len(columns))
			for i, name := range t.columns {
				cells[out.index[name]] = row[i]
			}
			out.rows = append(out.rows, cells)
		}
	}
	return out
}

// Pivot reshapes a long-format table into a wide one.  Each distinct
// value of the index column becomes one output row, sorted ascending.
// Each distinct combination of the key columns becomes one output
// column, labeled with the key values joined by "/", ordered by first
// appearance.  The value column supplies the cells; the last value
// observed for an (index, key) pair wins.
func Pivot(t *Table, index string, keys []string, value string) (*Table, error) {
	for _, name := range append(append([]string{index}, keys...), value) {
		if !t.HasColumn(name) {
			return nil, fmt.Errorf("tabular: pivot: no column %q", name)
		}
	}

	var indexValues []interface{}
	indexSeen := make(map[string]int)
	var keyLabels []string
	keySeen := make(map[string]struct{})
	cells := make(map[string]map[string]interface{})

	for r := range t.rows {
		iv, _ := t.Cell(r, index)
		ik := fmt.Sprintf("%v", iv)
		if _, present := indexSeen[ik]; !present {
			indexSeen[ik] = len(indexValues)
			indexValues = append(indexValues, iv)
		}

		parts := make([]string, len(keys))
		for i, key := range keys {
			kv, _ := t.Cell(r, key)
			parts[i] = fmt.Sprintf("%v", kv)
		}
		label := strings.Join(parts, "/")
		if _, present := keySeen[label]; !present {
			keySeen[label] = struct{}{}
			keyLabels = append(keyLabels, label)
		}

		if cells[ik] == nil {
			cells[ik] = make(map[string]interface{})
		}
		v, _ := t.Cell(r, value)
		cells[ik][label] = v
	}

	sortValues(indexValues)

	out := New(append([]string{index}, keyLabels...)...)
	for _, iv := range indexValues {
		ik := fmt.Sprintf("%v", iv)
		row := make([]interface{}, 1+len(keyLabels))
		row[0] = iv
		for i, label := range keyLabels {
			row[1+i] = cells[ik][label]
		}
		out.rows = append(out.rows, row)
	}
	return out, nil
}
