// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func nestedDoc() Dict {
	return Dict{
		"foo": Dict{
			"bar": []interface{}{
				Dict{"col1": 1.0, "col2": 2.0, "col3": 3.0},
			},
		},
		"baz": []interface{}{
			Dict{"col1": 4.0, "col2": 5.0, "col3": 6.0},
		},
	}
}

func TestProjectNestedSelector(t *testing.T) {
	table, err := Project(nestedDoc(), "foo.bar")
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"col1", "col2", "col3"}, table.Columns())
		assert.Equal(t, [][]interface{}{{1.0, 2.0, 3.0}}, table.Rows())
	}
}

func TestProjectTopLevelSelector(t *testing.T) {
	table, err := Project(nestedDoc(), "baz")
	if assert.NoError(t, err) {
		assert.Equal(t, [][]interface{}{{4.0, 5.0, 6.0}}, table.Rows())
	}
}

func TestProjectNoSelector(t *testing.T) {
	doc := []interface{}{
		Dict{"col1": 1.0, "col2": 2.0, "col3": 3.0},
		Dict{"col1": 4.0, "col2": 5.0, "col3": 6.0},
	}
	table, err := Project(doc, "")
	if assert.NoError(t, err) {
		assert.Equal(t, [][]interface{}{{1.0, 2.0, 3.0}, {4.0, 5.0, 6.0}}, table.Rows())
	}
}

func TestProjectMissingSelectorSegment(t *testing.T) {
	// A selector segment absent from the document stops the descent;
	// the rest of the document projects as-is rather than erroring.
	doc := Dict{"foo": []interface{}{Dict{"a": 1.0}}}
	table, err := Project(doc, "foo.nope")
	if assert.NoError(t, err) {
		assert.Equal(t, [][]interface{}{{1.0}}, table.Rows())
	}
}

func TestTableMemoized(t *testing.T) {
	data := NewData(nestedDoc(), "foo.bar")

	first, err := data.Table()
	assert.NoError(t, err)
	second, err := data.Table()
	assert.NoError(t, err)
	// Identical table, not an equal copy.
	assert.True(t, first == second)
}

func TestNewDataCopiesInput(t *testing.T) {
	doc := nestedDoc()
	data := NewData(doc, "foo.bar")

	// Mutating the caller's document must not affect the wrapper.
	doc["foo"].(Dict)["bar"] = []interface{}{Dict{"col1": 99.0}}

	table, err := data.Table()
	if assert.NoError(t, err) {
		assert.Equal(t, [][]interface{}{{1.0, 2.0, 3.0}}, table.Rows())
	}
}

func timeseriesDoc(values []interface{}) Dict {
	return Dict{
		"name":  "KEYS.Elev.Inst.1Hour.0.Ccp-Rev",
		"units": "ft",
		"value-columns": []interface{}{
			Dict{"name": "date-time", "datatype": "java.sql.Timestamp"},
			Dict{"name": "value", "datatype": "java.lang.Double"},
			Dict{"name": "quality-code", "datatype": "int"},
		},
		"values": values,
	}
}

func TestValuesProjection(t *testing.T) {
	doc := timeseriesDoc([]interface{}{
		[]interface{}{1.7e12, 615.2, 0.0},
		[]interface{}{1.7000036e12, 615.3, 0.0},
	})
	table, err := Project(doc, "values")
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"date-time", "value", "quality-code"}, table.Columns())
		assert.Equal(t, 2, table.NumRows())

		cell, _ := table.Cell(0, "date-time")
		if assert.IsType(t, time.Time{}, cell) {
			stamp := cell.(time.Time)
			assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), stamp)
			assert.Equal(t, time.UTC, stamp.Location())
		}

		cell, _ = table.Cell(1, "value")
		assert.Equal(t, 615.3, cell)
	}
}

func TestValuesProjectionEmpty(t *testing.T) {
	// No values still yields the named columns, so column-based
	// consumers do not break on an empty window.
	table, err := Project(timeseriesDoc([]interface{}{}), "values")
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"date-time", "value", "quality-code"}, table.Columns())
		assert.Equal(t, 0, table.NumRows())
	}
}

func TestValuesProjectionWidthMismatch(t *testing.T) {
	doc := timeseriesDoc([]interface{}{
		[]interface{}{1.7e12, 615.2},
	})
	_, err := Project(doc, "values")
	assert.Error(t, err)
}

func ratingDoc(points []interface{}) Dict {
	return Dict{
		"simple-rating": Dict{
			"rating-points": Dict{"point": points},
		},
	}
}

func TestRatingPointsProjection(t *testing.T) {
	doc := ratingDoc([]interface{}{
		Dict{"ind": "1.0", "dep": "10.0"},
		Dict{"ind": 2.0, "dep": 20.0},
	})
	table, err := Project(doc, "simple-rating.rating-points")
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"ind", "dep"}, table.Columns())
		assert.Equal(t, [][]interface{}{{1.0, 10.0}, {2.0, 20.0}}, table.Rows())
	}
}

func TestRatingPointsNonNumeric(t *testing.T) {
	doc := ratingDoc([]interface{}{
		Dict{"ind": "not a number", "dep": 10.0},
	})
	_, err := Project(doc, "simple-rating.rating-points")
	assert.Error(t, err)
}

func TestProjectEmptySelected(t *testing.T) {
	doc := Dict{"entries": []interface{}{}}
	table, err := Project(doc, "entries")
	if assert.NoError(t, err) {
		assert.Equal(t, 0, table.NumRows())
	}
}

func TestMeasurementColumnOrder(t *testing.T) {
	doc := []interface{}{
		Dict{
			"height-unit": "ft",
			"flow-unit":   "cfs",
			"office-id":   "SWT",
			"location-id": "KEYS",
			"number":      "1001",
			"used":        true,
			"agency":      "USGS",
			"streamflow-measurement": Dict{
				"gage-height": 1.2,
				"flow":        300.0,
			},
		},
	}
	table, err := Project(doc, "")
	if assert.NoError(t, err) {
		columns := table.Columns()
		assert.Equal(t, []string{"office-id", "location-id", "number", "used", "agency"}, columns[:5])
		// Unit-bearing columns come last.
		tail := columns[len(columns)-2:]
		assert.ElementsMatch(t, []string{"height-unit", "flow-unit"}, tail)
	}
}

func TestDeepCopy(t *testing.T) {
	original := Dict{
		"a": []interface{}{Dict{"b": 1.0}},
	}
	copied := DeepCopy(original).(Dict)
	copied["a"].([]interface{})[0].(Dict)["b"] = 2.0
	assert.Equal(t, 1.0, original["a"].([]interface{})[0].(Dict)["b"])
}
