// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// BinaryTimeseriesQuery selects binary values of one time series
// inside a time window.
type BinaryTimeseriesQuery struct {
	// ID names the time series.  Required.
	ID string

	// Office is the owning office of the time series.  Required.
	Office string

	// Begin and End bound the time window.  Required.
	Begin time.Time
	End   time.Time

	// MinAttribute and MaxAttribute bound the attribute values
	// returned.
	MinAttribute *float64
	MaxAttribute *float64

	// BinaryTypeMask filters values by media type, e.g. "image/*".
	// Defaults to "*".
	BinaryTypeMask string
}

// BinaryTimeseries retrieves binary values stored against one time
// series.
func (c *Client) BinaryTimeseries(q BinaryTimeseriesQuery) (*cdadata.Data, error) {
	if q.ID == "" {
		return nil, ErrNoTimeseriesID
	}
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	if q.Begin.IsZero() || q.End.IsZero() {
		return nil, ErrNoTimeWindow
	}
	mask := q.BinaryTypeMask
	if mask == "" {
		mask = "*"
	}
	params := cdadata.RequestParams{
		"office":           q.Office,
		"name":             q.ID,
		"min-attribute":    floatParam(q.MinAttribute),
		"max-attribute":    floatParam(q.MaxAttribute),
		"begin":            q.Begin,
		"end":              q.End,
		"binary-type-mask": mask,
	}
	doc, err := c.Get("timeseries/binary", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreBinaryTimeseries stores binary time series values.  If
// replaceAll is set, existing values inside the data's time window are
// replaced.
func (c *Client) StoreBinaryTimeseries(data cdadata.Dict, replaceAll bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"replace-all": replaceAll}
	return c.Post("timeseries/binary", nil, data, params, cdadata.V2)
}

// DeleteBinaryTimeseries removes binary values of one time series
// inside a time window.  The window is required.  binaryTypeMask
// filters which values are removed; empty means all ("*").
func (c *Client) DeleteBinaryTimeseries(id, office string, begin, end time.Time, binaryTypeMask string) error {
	if id == "" {
		return ErrNoTimeseriesID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if begin.IsZero() || end.IsZero() {
		return ErrNoTimeWindow
	}
	if binaryTypeMask == "" {
		binaryTypeMask = "*"
	}
	params := cdadata.RequestParams{
		"office":           office,
		"begin":            begin,
		"end":              end,
		"binary-type-mask": binaryTypeMask,
	}
	return c.Delete("timeseries/binary/{timeseries}", map[string]interface{}{"timeseries": id}, params, cdadata.V2)
}
