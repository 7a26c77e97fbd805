// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdadata

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/diffeo/go-cda/tabular"
	"github.com/mitchellh/mapstructure"
)

// Data wraps one decoded CDA response.  It exposes the raw JSON
// unchanged and a table projected from it, computed on first access
// and memoized for the lifetime of the instance.  The raw value is
// deep-copied at construction, so instances are immutable from the
// caller's point of view and safe to read concurrently.
type Data struct {
	json     JSON
	selector string

	once  sync.Once
	table *tabular.Table
	err   error
}

// NewData wraps a decoded response.  selector is a dot-separated path
// naming the portion of the document to project; empty means the whole
// document.
func NewData(raw JSON, selector string) *Data {
	return &Data{json: DeepCopy(raw), selector: selector}
}

// JSON returns the decoded response document, untouched.
func (d *Data) JSON() JSON {
	return d.json
}

// Selector returns the projection selector, or "" if none.
func (d *Data) Selector() string {
	return d.selector
}

// Table returns the tabular projection of the response.  The first
// call computes it; every later call returns the identical table (or
// the identical error).
func (d *Data) Table() (*tabular.Table, error) {
	d.once.Do(func() {
		d.table, d.err = Project(d.json, d.selector)
	})
	return d.table, d.err
}

// strategy identifies which of the three projection shapes applies to
// a (selector, selected value) pair.
type strategy int

const (
	genericRecords strategy = iota
	timeseriesValues
	ratingPoints
)

// chooseStrategy inspects the selector and the selected value once;
// Project then dispatches on the result.
func chooseStrategy(selector string, selected JSON) strategy {
	if strings.Contains(selector, "rating-points") {
		if dict, isDict := selected.(Dict); isDict {
			if _, present := dict["point"]; present {
				return ratingPoints
			}
		}
	}
	if selector == "values" {
		return timeseriesValues
	}
	return genericRecords
}

// Project converts raw JSON into a table, directed by the selector.
// It is a pure function of its inputs: deterministic, no external
// state.  Missing selector segments are not an error; the walk simply
// stops descending.
func Project(raw JSON, selector string) (*tabular.Table, error) {
	if selector == "" {
		t, err := tabular.Normalize(raw)
		if err != nil {
			return nil, err
		}
		return reorderMeasurementColumns(t)
	}

	selected := walkSelector(raw, selector)

	switch chooseStrategy(selector, selected) {
	case ratingPoints:
		return ratingPointsTable(selected)
	case timeseriesValues:
		return valuesTable(raw, selected)
	default:
		if isEmpty(selected) {
			return tabular.New(), nil
		}
		return tabular.Normalize(selected)
	}
}

// walkSelector resolves a dot-separated path against the document.  At
// each segment the working value descends only if it is an object
// containing that key; otherwise it is left unchanged.
func walkSelector(raw JSON, selector string) JSON {
	working := raw
	for _, segment := range strings.Split(selector, ".") {
		if dict, isDict := working.(Dict); isDict {
			if sub, present := dict[segment]; present {
				working = sub
			}
		}
	}
	return working
}

func isEmpty(v JSON) bool {
	switch value := v.(type) {
	case nil:
		return true
	case Dict:
		return len(value) == 0
	case []interface{}:
		return len(value) == 0
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0
	case int64:
		return value == 0
	case uint64:
		return value == 0
	default:
		return false
	}
}

// ratingPointsTable builds a table from a rating's {ind, dep} point
// records, coercing both columns to numbers.  A non-numeric value is
// an error that propagates to the caller unmodified.
func ratingPointsTable(selected JSON) (*tabular.Table, error) {
	points := selected.(Dict)["point"]
	t, err := tabular.Normalize(points)
	if err != nil {
		return nil, err
	}
	if t.NumColumns() == 0 {
		return t, nil
	}
	// Independent values lead, matching the stored rating order.
	order := make([]string, 0, t.NumColumns())
	for _, name := range []string{"ind", "dep"} {
		if t.HasColumn(name) {
			order = append(order, name)
		}
	}
	for _, name := range t.Columns() {
		if name != "ind" && name != "dep" {
			order = append(order, name)
		}
	}
	t, err = t.Select(order...)
	if err != nil {
		return nil, err
	}
	for _, name := range t.Columns() {
		if err := t.ToNumeric(name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// valueColumn is one entry of a time-series response's value-columns
// field.
type valueColumn struct {
	Name string `mapstructure:"name"`
}

// valuesTable builds a table from a time-series values array.  The
// rows are positional arrays; the column names come from the
// value-columns field of the unselected top-level document.  An empty
// values array still yields a zero-row table with the derived column
// names so column-based callers do not break on empty results.
func valuesTable(raw, selected JSON) (*tabular.Table, error) {
	top, isDict := raw.(Dict)
	if !isDict {
		return nil, fmt.Errorf("cdadata: values projection requires an object response")
	}
	var columns []valueColumn
	if err := mapstructure.Decode(top["value-columns"], &columns); err != nil {
		return nil, fmt.Errorf("cdadata: cannot read value-columns: %v", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("cdadata: values projection requires a value-columns field")
	}
	names := make([]string, len(columns))
	for i, column := range columns {
		names[i] = column.Name
	}

	t := tabular.New(names...)
	rows, isList := selected.([]interface{})
	if !isList {
		return nil, fmt.Errorf("cdadata: values is %T, expected an array of rows", selected)
	}
	for _, row := range rows {
		cells, isRow := row.([]interface{})
		if !isRow {
			return nil, fmt.Errorf("cdadata: values row is %T, expected an array", row)
		}
		if err := t.AppendRow(cells...); err != nil {
			return nil, err
		}
	}

	if t.HasColumn("date-time") {
		for r := 0; r < t.NumRows(); r++ {
			cell, _ := t.Cell(r, "date-time")
			if cell == nil {
				continue
			}
			stamp, err := epochMillisToTime(cell)
			if err != nil {
				return nil, err
			}
			t.SetCell(r, "date-time", stamp)
		}
	}
	return t, nil
}

// epochMillisToTime converts a millisecond epoch value to a UTC
// time.Time.
func epochMillisToTime(v interface{}) (time.Time, error) {
	millis, err := tabular.ToFloat(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("cdadata: date-time value: %v", err)
	}
	return time.UnixMilli(int64(millis)).UTC(), nil
}

// measurementIdentityColumns lead a streamflow-measurement table, in
// this order, when present.
var measurementIdentityColumns = []string{
	"office-id",
	"location-id",
	"number",
	"date-time",
	"used",
	"agency",
	"party",
	"wm-comments",
	"instrument",
}

// reorderMeasurementColumns applies the streamflow-measurement column
// ordering: identity columns first, unit-bearing columns last,
// everything else in between with its original relative order.  Tables
// without a streamflow-measurement column pass through untouched.
func reorderMeasurementColumns(t *tabular.Table) (*tabular.Table, error) {
	isMeasurement := false
	for _, name := range t.Columns() {
		if strings.HasPrefix(name, "streamflow-measurement.") {
			isMeasurement = true
			break
		}
	}
	if !isMeasurement {
		return t, nil
	}

	front := make([]string, 0, len(measurementIdentityColumns))
	inFront := make(map[string]struct{})
	for _, name := range measurementIdentityColumns {
		if t.HasColumn(name) {
			front = append(front, name)
			inFront[name] = struct{}{}
		}
	}
	var middle, back []string
	for _, name := range t.Columns() {
		if _, present := inFront[name]; present {
			continue
		}
		if strings.Contains(name, "unit") {
			back = append(back, name)
		} else {
			middle = append(middle, name)
		}
	}
	return t.Select(append(append(front, middle...), back...)...)
}
