// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// LocationLevelsQuery filters the location level listing.
type LocationLevelsQuery struct {
	// LevelIDMask is a regular expression matched against level ids.
	LevelIDMask string

	// Office limits results to one owning office.
	Office string

	// Unit is the unit or unit system of the response.
	Unit string

	// Datum is the elevation datum; affects only elevation levels.
	Datum string

	// Begin and End bound the effective time window.
	Begin time.Time
	End   time.Time

	// PageSize is the number of records fetched per request.
	PageSize int
}

// LocationLevels lists location levels, paged under the "levels"
// field.
func (c *Client) LocationLevels(q LocationLevelsQuery) (*cdadata.Data, error) {
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	params := cdadata.RequestParams{
		"level-id-mask": nilIfEmpty(q.LevelIDMask),
		"office":        nilIfEmpty(q.Office),
		"unit":          nilIfEmpty(q.Unit),
		"datum":         nilIfEmpty(q.Datum),
		"begin":         q.Begin,
		"end":           q.End,
		"page-size":     pageSize,
	}
	doc, err := c.GetWithPaging("levels", "levels", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "levels"), nil
}

// LocationLevel retrieves one location level at an effective date.
func (c *Client) LocationLevel(levelID, office string, effectiveDate time.Time, unit string) (*cdadata.Data, error) {
	if levelID == "" {
		return nil, ErrNoLevelID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	if effectiveDate.IsZero() {
		return nil, ErrNoTimeWindow
	}
	params := cdadata.RequestParams{
		"office":         office,
		"effective-date": effectiveDate,
		"unit":           nilIfEmpty(unit),
	}
	doc, err := c.Get("levels/{level}", map[string]interface{}{"level": levelID}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreLocationLevel creates a new location level.
func (c *Client) StoreLocationLevel(data cdadata.Dict) error {
	if data == nil {
		return ErrNoData
	}
	return c.Post("levels", nil, data, nil, cdadata.V2)
}

// DeleteLocationLevel removes a location level.  A non-zero
// effectiveDate limits the delete to that one effective date.
func (c *Client) DeleteLocationLevel(levelID, office string, effectiveDate time.Time, cascadeDelete bool) error {
	if levelID == "" {
		return ErrNoLevelID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office":         office,
		"effective-date": effectiveDate,
		"cascade-delete": cascadeDelete,
	}
	return c.Delete("levels/{level}", map[string]interface{}{"level": levelID}, params, cdadata.V2)
}

// LevelAsTimeseries materializes a location level as a regular time
// series over a time window.  The result projects with the "values"
// selector.
func (c *Client) LevelAsTimeseries(levelID, office, unit string, begin, end time.Time, interval string) (*cdadata.Data, error) {
	if levelID == "" {
		return nil, ErrNoLevelID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office":   office,
		"unit":     nilIfEmpty(unit),
		"begin":    begin,
		"end":      end,
		"interval": nilIfEmpty(interval),
	}
	doc, err := c.Get("levels/{level}/timeseries", map[string]interface{}{"level": levelID}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "values"), nil
}

// SpecifiedLevels lists specified levels.
func (c *Client) SpecifiedLevels(office, templateIDMask string) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office":           nilIfEmpty(office),
		"template-id-mask": nilIfEmpty(templateIDMask),
	}
	doc, err := c.Get("specified-levels", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreSpecifiedLevel creates a new specified level.
func (c *Client) StoreSpecifiedLevel(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("specified-levels", nil, data, params, cdadata.V2)
}

// UpdateSpecifiedLevel renames a specified level.  The operation takes
// no body; both ids travel as parameters.
func (c *Client) UpdateSpecifiedLevel(oldID, newID, office string) error {
	if oldID == "" || newID == "" {
		return ErrNoLevelID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"specified-level-id": newID,
		"office":             office,
	}
	return c.Patch("specified-levels/{level}", map[string]interface{}{"level": oldID}, nil, params, cdadata.V2)
}

// DeleteSpecifiedLevel removes a specified level.
func (c *Client) DeleteSpecifiedLevel(levelID, office string) error {
	if levelID == "" {
		return ErrNoLevelID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	return c.Delete("specified-levels/{level}", map[string]interface{}{"level": levelID}, params, cdadata.V2)
}
