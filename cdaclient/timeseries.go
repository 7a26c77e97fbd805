// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// DefaultPageSize is the page size requested for time-series values
// when the caller does not specify one.
const DefaultPageSize = 500000

// TimeseriesQuery selects one time series and a time window.  Value
// date-times in the response are always UTC.
type TimeseriesQuery struct {
	// ID names the time series.  Required.
	ID string

	// Office is the owning office of the time series.  Required.
	Office string

	// Unit is the unit or unit system of the response: EN, SI, or a
	// specific unit.  Defaults to EN.
	Unit string

	// Datum is the elevation datum (NAVD88 or NGVD29); it affects only
	// elevation values.
	Datum string

	// Begin and End bound the time window.  If Begin is zero the
	// window starts 24 hours before End; if End is zero the window
	// ends now.  Both choices are made by the server.
	Begin time.Time
	End   time.Time

	// Timezone names the zone of Begin and End; UTC if empty.  Does
	// not affect response values.
	Timezone string

	// PageSize is the number of records fetched per request.
	// Defaults to DefaultPageSize.
	PageSize int

	// VersionDate selects one version of a versioned time series.  If
	// zero, the server returns the max-aggregate view.
	VersionDate time.Time
}

// Timeseries retrieves values for one time series.  Pages are fetched
// until exhausted and merged in arrival order.  The result projects
// with the "values" selector: one row per value, columns named by the
// response's value-columns field.
func (c *Client) Timeseries(q TimeseriesQuery) (*cdadata.Data, error) {
	if q.ID == "" {
		return nil, ErrNoTimeseriesID
	}
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	unit := q.Unit
	if unit == "" {
		unit = "EN"
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}

	params := cdadata.RequestParams{
		"office":       q.Office,
		"name":         q.ID,
		"unit":         unit,
		"datum":        nilIfEmpty(q.Datum),
		"begin":        q.Begin,
		"end":          q.End,
		"timezone":     nilIfEmpty(q.Timezone),
		"page-size":    pageSize,
		"version-date": q.VersionDate,
	}

	doc, err := c.GetWithPaging("values", "timeseries", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "values"), nil
}

// StoreTimeseriesOptions adjust how written values are merged with
// existing data.
type StoreTimeseriesOptions struct {
	// CreateAsLRTS creates the series as a local regular time series.
	CreateAsLRTS bool

	// StoreRule is the merge rule: REPLACE_ALL, DO_NOT_REPLACE,
	// REPLACE_MISSING_VALUES_ONLY, REPLACE_WITH_NON_MISSING, or
	// DELETE_INSERT.  Empty uses the server default.
	StoreRule string

	// OverrideProtection ignores protected quality codes when storing.
	OverrideProtection bool
}

// StoreTimeseries creates the time series named in data if necessary
// and stores the values it carries.
func (c *Client) StoreTimeseries(data cdadata.Dict, opts StoreTimeseriesOptions) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{
		"create-as-lrts":      opts.CreateAsLRTS,
		"store-rule":          nilIfEmpty(opts.StoreRule),
		"override-protection": opts.OverrideProtection,
	}
	return c.Post("timeseries", nil, data, params, cdadata.V2)
}

// DeleteTimeseries removes values of one time series inside a time
// window.  The window is required.
func (c *Client) DeleteTimeseries(id, office string, begin, end time.Time, versionDate time.Time) error {
	if id == "" {
		return ErrNoTimeseriesID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if begin.IsZero() || end.IsZero() {
		return ErrNoTimeWindow
	}
	params := cdadata.RequestParams{
		"office":       office,
		"begin":        begin,
		"end":          end,
		"version-date": versionDate,
	}
	return c.Delete("timeseries/{timeseries}", map[string]interface{}{"timeseries": id}, params, cdadata.V2)
}

// TimeseriesIdentifier retrieves the identifying information for one
// time series, without values.
func (c *Client) TimeseriesIdentifier(id, office string) (*cdadata.Data, error) {
	if id == "" {
		return nil, ErrNoTimeseriesID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	doc, err := c.Get("timeseries/identifier-descriptor/{timeseries}", map[string]interface{}{"timeseries": id}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// TimeseriesIdentifiers lists identifier descriptors for an office,
// optionally filtered by a POSIX regular expression on the series id.
func (c *Client) TimeseriesIdentifiers(office, idRegex string, pageSize int) (*cdadata.Data, error) {
	if office == "" {
		return nil, ErrNoOfficeID
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	params := cdadata.RequestParams{
		"office":              office,
		"timeseries-id-regex": nilIfEmpty(idRegex),
		"page-size":           pageSize,
	}
	doc, err := c.Get("timeseries/identifier-descriptor", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "descriptors"), nil
}

// DeleteTimeseriesIdentifier deletes a time series descriptor.  The
// delete method controls whether the values go with it.
func (c *Client) DeleteTimeseriesIdentifier(id, office string, method cdadata.DeleteMethod) error {
	if id == "" {
		return ErrNoTimeseriesID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if !validDeleteMethod(method) {
		return ErrInvalidDeleteMethod
	}
	params := cdadata.RequestParams{"office": office, "method": method}
	return c.Delete("timeseries/identifier-descriptor/{timeseries}", map[string]interface{}{"timeseries": id}, params, cdadata.V2)
}

// StoreTimeseriesIdentifier creates a new time series descriptor.
func (c *Client) StoreTimeseriesIdentifier(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("timeseries/identifier-descriptor", nil, data, params, cdadata.V2)
}

// nilIfEmpty turns "" into nil so the parameter is omitted from the
// request.
func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
