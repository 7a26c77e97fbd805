// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// Project retrieves one reservoir project.
func (c *Client) Project(name, office string) (*cdadata.Data, error) {
	if name == "" {
		return nil, ErrNoProjectName
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	doc, err := c.Get("projects/{project}", map[string]interface{}{"project": name}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// Projects lists reservoir projects for one office.
func (c *Client) Projects(office, idMask string, pageSize int) (*cdadata.Data, error) {
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office":  office,
		"id-mask": nilIfEmpty(idMask),
	}
	if pageSize > 0 {
		params["page-size"] = pageSize
	}
	doc, err := c.Get("projects", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// ProjectLocations lists the locations attached to matching projects.
func (c *Client) ProjectLocations(office, projectLike, locationKindLike string) (*cdadata.Data, error) {
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office":             office,
		"project-like":       nilIfEmpty(projectLike),
		"location-kind-like": nilIfEmpty(locationKindLike),
	}
	doc, err := c.Get("projects/locations", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreProject creates a new reservoir project.
func (c *Client) StoreProject(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("projects", nil, data, params, cdadata.V2)
}

// RenameProject gives an existing project a new name.  The operation
// takes no body; the new name travels as a parameter.
func (c *Client) RenameProject(oldName, newName, office string) error {
	if oldName == "" || newName == "" {
		return ErrNoProjectName
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office": office,
		"name":   newName,
	}
	return c.Patch("projects/{project}", map[string]interface{}{"project": oldName}, nil, params, cdadata.V2)
}

// DeleteProject removes a reservoir project.
func (c *Client) DeleteProject(name, office string, method cdadata.DeleteMethod) error {
	if name == "" {
		return ErrNoProjectName
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if !validDeleteMethod(method) {
		return ErrInvalidDeleteMethod
	}
	params := cdadata.RequestParams{
		"office": office,
		"method": method,
	}
	return c.Delete("projects/{project}", map[string]interface{}{"project": name}, params, cdadata.V2)
}

// ProjectStatusUpdate announces that project data changed, so that
// applications watching the project can refresh.  The update is a POST
// with no body.
type ProjectStatusUpdate struct {
	// ProjectID is the project that changed.  Required.
	ProjectID string

	// Office owns the project and generates the message.  Required.
	Office string

	// ApplicationID names the application the update applies to.
	// Required.
	ApplicationID string

	// SourceID identifies the instance or component that generated the
	// message.
	SourceID string

	// TimeseriesID is the series associated with the update, when the
	// change is time series data.
	TimeseriesID string

	// Begin and End bound the updated range of the series.
	Begin time.Time
	End   time.Time
}

// PostProjectStatusUpdate publishes a project status update.
func (c *Client) PostProjectStatusUpdate(u ProjectStatusUpdate) error {
	if u.ProjectID == "" {
		return ErrNoProjectName
	}
	if u.Office == "" {
		return ErrNoOfficeID
	}
	if u.ApplicationID == "" {
		return ErrNoApplicationID
	}
	params := cdadata.RequestParams{
		"office":         u.Office,
		"application-id": u.ApplicationID,
		"source-id":      nilIfEmpty(u.SourceID),
		"timeseries-id":  nilIfEmpty(u.TimeseriesID),
		"begin":          u.Begin,
		"end":            u.End,
	}
	return c.Post("projects/status-update/{project}", map[string]interface{}{"project": u.ProjectID}, nil, params, cdadata.V2)
}
