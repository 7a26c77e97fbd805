// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// ProjectTurbines lists the turbines of one reservoir project.
func (c *Client) ProjectTurbines(projectID, office string) (*cdadata.Data, error) {
	if projectID == "" {
		return nil, ErrNoProjectName
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office":     office,
		"project-id": projectID,
	}
	doc, err := c.Get("projects/turbines", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// Turbine retrieves turbine data by turbine name.
func (c *Client) Turbine(name, office string) (*cdadata.Data, error) {
	if name == "" {
		return nil, ErrNoTurbineName
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office": office,
		"name":   name,
	}
	doc, err := c.Get("projects/turbines", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// TurbineChangesQuery retrieves turbine setting changes over a time
// window.
type TurbineChangesQuery struct {
	// Name is the turbine name.  Required.
	Name string

	// Office owns the turbine.  Required.
	Office string

	// Begin and End bound the time window.  Required.
	Begin time.Time
	End   time.Time

	// StartInclusive and EndInclusive control whether changes exactly
	// at the window bounds are included.
	StartInclusive bool
	EndInclusive   bool

	// UnitSystem is EN or SI.
	UnitSystem string

	// PageSize is the number of records fetched per request.
	PageSize int
}

// TurbineChanges retrieves turbine setting changes within a time
// window.
func (c *Client) TurbineChanges(q TurbineChangesQuery) (*cdadata.Data, error) {
	if q.Name == "" {
		return nil, ErrNoTurbineName
	}
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	if q.Begin.IsZero() || q.End.IsZero() {
		return nil, ErrNoTimeWindow
	}
	params := cdadata.RequestParams{
		"name":                 q.Name,
		"office":               q.Office,
		"begin":                q.Begin,
		"end":                  q.End,
		"start-time-inclusive": q.StartInclusive,
		"end-time-inclusive":   q.EndInclusive,
		"unit-system":          nilIfEmpty(q.UnitSystem),
	}
	if q.PageSize > 0 {
		params["page-size"] = q.PageSize
	}
	doc, err := c.Get("projects/turbines", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}
