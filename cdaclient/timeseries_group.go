// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"github.com/diffeo/go-cda/cdadata"
)

// TimeseriesGroupQuery identifies one time series group.
type TimeseriesGroupQuery struct {
	// GroupID names the group.  Required.
	GroupID string

	// CategoryID names the category containing the group.  Required.
	CategoryID string

	// CategoryOffice is the owning office of the category.  Required.
	CategoryOffice string

	// Office is the owning office of the series assigned to the
	// group.
	Office string

	// GroupOffice is the owning office of the group itself.
	GroupOffice string
}

// TimeseriesGroup retrieves the series assigned to one group.  The
// result projects with the "assigned-time-series" selector.
func (c *Client) TimeseriesGroup(q TimeseriesGroupQuery) (*cdadata.Data, error) {
	if q.GroupID == "" {
		return nil, ErrNoGroupID
	}
	if q.CategoryID == "" {
		return nil, ErrNoCategoryID
	}
	params := cdadata.RequestParams{
		"office":             nilIfEmpty(q.Office),
		"category-id":        q.CategoryID,
		"category-office-id": nilIfEmpty(q.CategoryOffice),
		"group-office-id":    nilIfEmpty(q.GroupOffice),
	}
	doc, err := c.Get("timeseries/group/{group}", map[string]interface{}{"group": q.GroupID}, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "assigned-time-series"), nil
}

// TimeseriesGroupsQuery filters the group listing.
type TimeseriesGroupsQuery struct {
	Office          string
	IncludeAssigned bool
	CategoryLike    string
	GroupLike       string
	CategoryOffice  string
}

// TimeseriesGroups lists time series groups.
func (c *Client) TimeseriesGroups(q TimeseriesGroupsQuery) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office":                   nilIfEmpty(q.Office),
		"include-assigned":         q.IncludeAssigned,
		"timeseries-category-like": nilIfEmpty(q.CategoryLike),
		"timeseries-group-like":    nilIfEmpty(q.GroupLike),
		"category-office-id":       nilIfEmpty(q.CategoryOffice),
	}
	doc, err := c.Get("timeseries/group", nil, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreTimeseriesGroup creates a new time series group.
func (c *Client) StoreTimeseriesGroup(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("timeseries/group", nil, data, params, cdadata.V1)
}

// UpdateTimeseriesGroup updates the assignments of one group.  If
// replaceAssigned is set, existing assignments are cleared before the
// new ones are applied.
func (c *Client) UpdateTimeseriesGroup(data cdadata.Dict, groupID, office string, replaceAssigned bool) error {
	if groupID == "" {
		return ErrNoGroupID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"replace-assigned-ts": replaceAssigned,
		"office":              office,
	}
	return c.Patch("timeseries/group/{group}", map[string]interface{}{"group": groupID}, data, params, cdadata.V1)
}

// DeleteTimeseriesGroup deletes one time series group.
func (c *Client) DeleteTimeseriesGroup(groupID, categoryID, office string) error {
	if groupID == "" {
		return ErrNoGroupID
	}
	if categoryID == "" {
		return ErrNoCategoryID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office":      office,
		"category-id": categoryID,
	}
	return c.Delete("timeseries/group/{group}", map[string]interface{}{"group": groupID}, params, cdadata.V1)
}
