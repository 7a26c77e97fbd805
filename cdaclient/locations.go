// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"github.com/diffeo/go-cda/cdadata"
)

// LocationsQuery filters the location listing.
type LocationsQuery struct {
	// Office limits results to one owning office; empty returns all
	// offices.
	Office string

	// Like is a POSIX regular expression matched against location
	// ids.
	Like string

	// Unit is the unit system of the response (EN or SI).
	Unit string

	// Datum is the elevation datum (NAVD88 or NGVD29).
	Datum string
}

// Locations lists locations.  The result projects with the
// "locations" selector: one row per location with dotted columns for
// the nested identity and geolocation fields.
func (c *Client) Locations(q LocationsQuery) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office": nilIfEmpty(q.Office),
		"like":   nilIfEmpty(q.Like),
		"unit":   nilIfEmpty(q.Unit),
		"datum":  nilIfEmpty(q.Datum),
	}
	doc, err := c.Get("locations", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "locations"), nil
}

// Location retrieves one location.
func (c *Client) Location(id, office, unit string) (*cdadata.Data, error) {
	if id == "" {
		return nil, ErrNoLocationID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office": office,
		"unit":   nilIfEmpty(unit),
	}
	doc, err := c.Get("locations/{location}", map[string]interface{}{"location": id}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreLocation creates a new location.
func (c *Client) StoreLocation(data cdadata.Dict) error {
	if data == nil {
		return ErrNoData
	}
	return c.Post("locations", nil, data, nil, cdadata.V2)
}

// UpdateLocation updates (or renames) an existing location.
func (c *Client) UpdateLocation(id string, data cdadata.Dict) error {
	if id == "" {
		return ErrNoLocationID
	}
	if data == nil {
		return ErrNoData
	}
	return c.Patch("locations/{location}", map[string]interface{}{"location": id}, data, nil, cdadata.V2)
}

// DeleteLocation removes a location.
func (c *Client) DeleteLocation(id, office string) error {
	if id == "" {
		return ErrNoLocationID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	return c.Delete("locations/{location}", map[string]interface{}{"location": id}, params, cdadata.V2)
}

// LocationGroup retrieves one location group and its assigned
// locations.  The result projects with the "assigned-locations"
// selector.
func (c *Client) LocationGroup(groupID, categoryID, office string) (*cdadata.Data, error) {
	if groupID == "" {
		return nil, ErrNoGroupID
	}
	if categoryID == "" {
		return nil, ErrNoCategoryID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office":      office,
		"category-id": categoryID,
	}
	doc, err := c.Get("location/group/{group}", map[string]interface{}{"group": groupID}, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "assigned-locations"), nil
}

// LocationGroups lists location groups, optionally including the
// locations assigned to each.
func (c *Client) LocationGroups(office string, includeAssigned bool) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office":           nilIfEmpty(office),
		"include-assigned": includeAssigned,
	}
	doc, err := c.Get("location/group", nil, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}
