// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// DefaultProfilePageSize is the page size requested for profile
// listings when the caller does not specify one.
const DefaultProfilePageSize = 1000

// TimeseriesProfile retrieves the profile definition for one location
// and key parameter.
func (c *Client) TimeseriesProfile(office, location, parameter string) (*cdadata.Data, error) {
	if location == "" {
		return nil, ErrNoLocationID
	}
	if parameter == "" {
		return nil, ErrNoParameterID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	vars := map[string]interface{}{"location": location, "parameter": parameter}
	doc, err := c.Get("timeseries/profile/{location}/{parameter}", vars, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// TimeseriesProfiles lists profile definitions matching the masks,
// without values.  Empty masks match everything.
func (c *Client) TimeseriesProfiles(officeMask, locationMask, parameterMask string, pageSize int) (*cdadata.Data, error) {
	if pageSize == 0 {
		pageSize = DefaultProfilePageSize
	}
	params := cdadata.RequestParams{
		"office-mask":       nilIfEmpty(officeMask),
		"location-mask":     nilIfEmpty(locationMask),
		"parameter-id-mask": nilIfEmpty(parameterMask),
		"page-size":         pageSize,
	}
	doc, err := c.Get("timeseries/profile", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreTimeseriesProfile creates a new profile definition.
func (c *Client) StoreTimeseriesProfile(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("timeseries/profile", nil, data, params, cdadata.V2)
}

// DeleteTimeseriesProfile removes one profile definition.
func (c *Client) DeleteTimeseriesProfile(office, location, parameter string) error {
	if location == "" {
		return ErrNoLocationID
	}
	if parameter == "" {
		return ErrNoParameterID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	vars := map[string]interface{}{"location": location, "parameter": parameter}
	return c.Delete("timeseries/profile/{location}/{parameter}", vars, params, cdadata.V2)
}

// TimeseriesProfileInstanceQuery selects one profile instance and its
// values.
type TimeseriesProfileInstanceQuery struct {
	// Office is the owning office of the instance.  Required.
	Office string

	// Location and Parameter identify the profile.  Required.
	Location  string
	Parameter string

	// Version names the instance version.  Required.
	Version string

	// Unit is the unit for the key parameter values.
	Unit string

	// VersionDate selects one version date; zero lets the server
	// choose.
	VersionDate time.Time

	// Begin and End bound the time window.  The server defaults the
	// window to all recorded data when either is zero.
	Begin time.Time
	End   time.Time

	// StartInclusive and EndInclusive control whether values exactly
	// at the window bounds are included.
	StartInclusive bool
	EndInclusive   bool

	// Previous and Next also return the value adjacent to the window
	// on that side.
	Previous bool
	Next     bool

	// MaxVersion treats Version as the maximum version to return.
	MaxVersion bool

	// PageSize is the number of records fetched per request.
	PageSize int
}

// TimeseriesProfileInstance retrieves one profile instance with its
// values.
func (c *Client) TimeseriesProfileInstance(q TimeseriesProfileInstanceQuery) (*cdadata.Data, error) {
	if q.Location == "" {
		return nil, ErrNoLocationID
	}
	if q.Parameter == "" {
		return nil, ErrNoParameterID
	}
	if q.Version == "" {
		return nil, ErrNoProfileVersion
	}
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = 500
	}
	params := cdadata.RequestParams{
		"office":               q.Office,
		"unit":                 nilIfEmpty(q.Unit),
		"version-date":         q.VersionDate,
		"start-time-inclusive": q.StartInclusive,
		"end-time-inclusive":   q.EndInclusive,
		"previous":             q.Previous,
		"next":                 q.Next,
		"max-version":          q.MaxVersion,
		"start":                q.Begin,
		"end":                  q.End,
		"page-size":            pageSize,
	}
	vars := map[string]interface{}{
		"location":  q.Location,
		"parameter": q.Parameter,
		"version":   q.Version,
	}
	doc, err := c.Get("timeseries/profile-instance/{location}/{parameter}/{version}", vars, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// TimeseriesProfileInstances lists profile instances matching the
// masks, without values.  Empty masks match everything.
func (c *Client) TimeseriesProfileInstances(officeMask, locationMask, parameterMask, versionMask string) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office-mask":       nilIfEmpty(officeMask),
		"location-mask":     nilIfEmpty(locationMask),
		"parameter-id-mask": nilIfEmpty(parameterMask),
		"version-mask":      nilIfEmpty(versionMask),
	}
	doc, err := c.Get("timeseries/profile-instance", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreTimeseriesProfileInstance parses profileData with the stored
// profile parser and stores the result as a new instance.  The profile
// and its parser must already exist.  storeRule may be empty for the
// server default (REPLACE_ALL).
func (c *Client) StoreTimeseriesProfileInstance(profileData, version string, versionDate time.Time, storeRule string, overrideProtection bool) error {
	if profileData == "" {
		return ErrNoData
	}
	if version == "" {
		return ErrNoProfileVersion
	}
	if versionDate.IsZero() {
		return ErrNoVersionDate
	}
	params := cdadata.RequestParams{
		"profile-data":        profileData,
		"method":              nilIfEmpty(storeRule),
		"version":             version,
		"version-date":        versionDate,
		"override-protection": overrideProtection,
	}
	return c.Post("timeseries/profile-instance", nil, nil, params, cdadata.V2)
}

// DeleteTimeseriesProfileInstance removes one profile instance.
func (c *Client) DeleteTimeseriesProfileInstance(office, location, parameter, version string, versionDate, firstDate time.Time, overrideProtection bool) error {
	if location == "" {
		return ErrNoLocationID
	}
	if parameter == "" {
		return ErrNoParameterID
	}
	if version == "" {
		return ErrNoProfileVersion
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if versionDate.IsZero() {
		return ErrNoVersionDate
	}
	params := cdadata.RequestParams{
		"office":              office,
		"version-date":        versionDate,
		"date":                firstDate,
		"override-protection": overrideProtection,
	}
	vars := map[string]interface{}{
		"location":  location,
		"parameter": parameter,
		"version":   version,
	}
	return c.Delete("timeseries/profile-instance/{location}/{parameter}/{version}", vars, params, cdadata.V2)
}

// TimeseriesProfileParser retrieves the parser that interprets raw
// profile data for one location and key parameter.
func (c *Client) TimeseriesProfileParser(office, location, parameter string) (*cdadata.Data, error) {
	if location == "" {
		return nil, ErrNoLocationID
	}
	if parameter == "" {
		return nil, ErrNoParameterID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	vars := map[string]interface{}{"location": location, "parameter": parameter}
	doc, err := c.Get("timeseries/profile-parser/{location}/{parameter}", vars, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// TimeseriesProfileParsers lists profile parsers matching the masks.
// Empty masks match everything.
func (c *Client) TimeseriesProfileParsers(officeMask, locationMask, parameterMask string) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office-mask":       nilIfEmpty(officeMask),
		"location-mask":     nilIfEmpty(locationMask),
		"parameter-id-mask": nilIfEmpty(parameterMask),
	}
	doc, err := c.Get("timeseries/profile-parser", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreTimeseriesProfileParser creates a new profile parser.  data is
// either an indexed or a columnar parser document.
func (c *Client) StoreTimeseriesProfileParser(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("timeseries/profile-parser", nil, data, params, cdadata.V2)
}

// DeleteTimeseriesProfileParser removes one profile parser.
func (c *Client) DeleteTimeseriesProfileParser(office, location, parameter string) error {
	if location == "" {
		return ErrNoLocationID
	}
	if parameter == "" {
		return ErrNoParameterID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	vars := map[string]interface{}{"location": location, "parameter": parameter}
	return c.Delete("timeseries/profile-parser/{location}/{parameter}", vars, params, cdadata.V2)
}
