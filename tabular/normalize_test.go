// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSingleObject(t *testing.T) {
	table, err := Normalize(map[string]interface{}{
		"name":   "KEYS",
		"office": "SWT",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"name", "office"}, table.Columns())
		assert.Equal(t, 1, table.NumRows())
		assert.Equal(t, []interface{}{"KEYS", "SWT"}, table.Row(0))
	}
}

func TestNormalizeNestedObject(t *testing.T) {
	table, err := Normalize(map[string]interface{}{
		"id": map[string]interface{}{
			"office-id": "SWT",
			"name":      "KEYS",
		},
		"value": 1.0,
	})
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"id.name", "id.office-id", "value"}, table.Columns())
		assert.Equal(t, []interface{}{"KEYS", "SWT", 1.0}, table.Row(0))
	}
}

func TestNormalizeListOfObjects(t *testing.T) {
	table, err := Normalize([]interface{}{
		map[string]interface{}{"a": 1.0, "b": 2.0},
		map[string]interface{}{"a": 3.0, "c": 4.0},
	})
	if assert.NoError(t, err) {
		// Columns from later records append after the first record's.
		assert.Equal(t, []string{"a", "b", "c"}, table.Columns())
		assert.Equal(t, []interface{}{1.0, 2.0, nil}, table.Row(0))
		assert.Equal(t, []interface{}{3.0, nil, 4.0}, table.Row(1))
	}
}

func TestNormalizeArraysStayCells(t *testing.T) {
	extents := []interface{}{map[string]interface{}{"earliest-time": "2020"}}
	table, err := Normalize(map[string]interface{}{
		"name":    "KEYS",
		"extents": extents,
	})
	if assert.NoError(t, err) {
		cell, _ := table.Cell(0, "extents")
		assert.Equal(t, extents, cell)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	for _, v := range []interface{}{
		nil,
		map[string]interface{}{},
		[]interface{}{},
	} {
		table, err := Normalize(v)
		if assert.NoError(t, err) {
			assert.Equal(t, 0, table.NumRows())
			assert.Equal(t, 0, table.NumColumns())
		}
	}
}

func TestNormalizeErrors(t *testing.T) {
	_, err := Normalize("scalar")
	assert.Error(t, err)

	_, err = Normalize([]interface{}{map[string]interface{}{"a": 1}, "scalar"})
	assert.Error(t, err)
}
