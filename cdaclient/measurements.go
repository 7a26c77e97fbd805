// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// MeasurementsQuery filters streamflow measurements.
type MeasurementsQuery struct {
	// OfficeMask and LocationIDMask filter by owning office and
	// location id; empty matches everything.
	OfficeMask     string
	LocationIDMask string

	// MinNumberID and MaxNumberID bound the measurement number ids.
	MinNumberID string
	MaxNumberID string

	// Begin and End bound the measurement time window; zero values
	// leave the window unbounded on that side.
	Begin time.Time
	End   time.Time

	// Timezone names the zone of Begin and End; UTC if empty.
	Timezone string

	// MinHeight, MaxHeight, MinFlow, and MaxFlow filter by gage height
	// and flow.  Nil leaves the bound open.
	MinHeight *float64
	MaxHeight *float64
	MinFlow   *float64
	MaxFlow   *float64

	// Agency and Quality filter by collecting agency and measurement
	// quality.
	Agency  string
	Quality string

	// UnitSystem is EN or SI.  Defaults to EN.
	UnitSystem string
}

// Measurements retrieves streamflow measurements.  The projected table
// puts the identity columns first and the unit-qualified value columns
// last.
func (c *Client) Measurements(q MeasurementsQuery) (*cdadata.Data, error) {
	unitSystem := q.UnitSystem
	if unitSystem == "" {
		unitSystem = "EN"
	}
	params := cdadata.RequestParams{
		"office-mask": nilIfEmpty(q.OfficeMask),
		"id-mask":     nilIfEmpty(q.LocationIDMask),
		"min-number":  nilIfEmpty(q.MinNumberID),
		"max-number":  nilIfEmpty(q.MaxNumberID),
		"begin":       q.Begin,
		"end":         q.End,
		"timezone":    nilIfEmpty(q.Timezone),
		"min-height":  floatParam(q.MinHeight),
		"max-height":  floatParam(q.MaxHeight),
		"min-flow":    floatParam(q.MinFlow),
		"max-flow":    floatParam(q.MaxFlow),
		"agency":      nilIfEmpty(q.Agency),
		"quality":     nilIfEmpty(q.Quality),
		"unit-system": unitSystem,
	}
	doc, err := c.Get("measurements", nil, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// MeasurementsExtents retrieves the time extents of recorded
// streamflow measurements per location.
func (c *Client) MeasurementsExtents(officeMask string) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office-mask": nilIfEmpty(officeMask),
	}
	doc, err := c.Get("measurements/time-extents", nil, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreMeasurements creates new measurements.  The body must be a JSON
// array of measurement objects, even for a single measurement.
func (c *Client) StoreMeasurements(data []interface{}, failIfExists bool) error {
	if data == nil {
		return ErrDataNotList
	}
	for _, item := range data {
		if _, isDict := item.(cdadata.Dict); !isDict {
			return ErrDataNotList
		}
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("measurements", nil, data, params, cdadata.V1)
}

// DeleteMeasurements removes the measurements of one location inside a
// required time window.
func (c *Client) DeleteMeasurements(locationID, office string, begin, end time.Time, timezone, minNumberID, maxNumberID string) error {
	if locationID == "" {
		return ErrNoLocationID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if begin.IsZero() || end.IsZero() {
		return ErrNoTimeWindow
	}
	params := cdadata.RequestParams{
		"office":     office,
		"begin":      begin,
		"end":        end,
		"timezone":   nilIfEmpty(timezone),
		"min-number": nilIfEmpty(minNumberID),
		"max-number": nilIfEmpty(maxNumberID),
	}
	return c.Delete("measurements/{location}", map[string]interface{}{"location": locationID}, params, cdadata.V1)
}

// floatParam renders an optional float parameter; nil is omitted.
func floatParam(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
