// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// TextTimeseriesQuery selects text values of one time series inside a
// time window.
type TextTimeseriesQuery struct {
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

	// Mode selects regular text, standard text, or both.  The zero
	// value is RegularText.
	Mode cdadata.TextMode
}

// TextTimeseries retrieves text values stored against one time series.
func (c *Client) TextTimeseries(q TextTimeseriesQuery) (*cdadata.Data, error) {
	if q.ID == "" {
		return nil, ErrNoTimeseriesID
	}
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	if q.Begin.IsZero() || q.End.IsZero() {
		return nil, ErrNoTimeWindow
	}
	if !validTextMode(q.Mode) {
		return nil, ErrInvalidTextMode
	}
	params := cdadata.RequestParams{
		"office":        q.Office,
		"name":          q.ID,
		"min-attribute": floatParam(q.MinAttribute),
		"max-attribute": floatParam(q.MaxAttribute),
		"begin":         q.Begin,
		"end":           q.End,
		"mode":          q.Mode,
	}
	doc, err := c.Get("timeseries/text", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreTextTimeseries stores text time series values.  If replaceAll
// is set, existing values inside the data's time window are replaced.
func (c *Client) StoreTextTimeseries(data cdadata.Dict, replaceAll bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"replace-all": replaceAll}
	return c.Post("timeseries/text", nil, data, params, cdadata.V2)
}

// DeleteTextTimeseries removes text values of one time series inside a
// time window.  The window is required.  textMask filters which values
// are removed; empty means all ("*").
func (c *Client) DeleteTextTimeseries(id, office string, begin, end time.Time, textMask string) error {
	if id == "" {
		return ErrNoTimeseriesID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if begin.IsZero() || end.IsZero() {
		return ErrNoTimeWindow
	}
	if textMask == "" {
		textMask = "*"
	}
	params := cdadata.RequestParams{
		"office":    office,
		"begin":     begin,
		"end":       end,
		"text-mask": textMask,
	}
	return c.Delete("timeseries/text/{timeseries}", map[string]interface{}{"timeseries": id}, params, cdadata.V2)
}
