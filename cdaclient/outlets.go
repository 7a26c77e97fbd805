// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"github.com/diffeo/go-cda/cdadata"
)

// Outlet retrieves one project outlet.
func (c *Client) Outlet(name, office string) (*cdadata.Data, error) {
	if name == "" {
		return nil, ErrNoOutletName
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	doc, err := c.Get("projects/outlets/{outlet}", map[string]interface{}{"outlet": name}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// Outlets lists the outlets of one reservoir project.
func (c *Client) Outlets(projectID, office string) (*cdadata.Data, error) {
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
	doc, err := c.Get("projects/outlets", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreOutlet creates a new project outlet.
func (c *Client) StoreOutlet(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("projects/outlets", nil, data, params, cdadata.V2)
}

// RenameOutlet gives an existing outlet a new name.
func (c *Client) RenameOutlet(oldName, newName, office string) error {
	if oldName == "" || newName == "" {
		return ErrNoOutletName
	}
	if office == "" {
		return ErrNoOfficeID
	}
	params := cdadata.RequestParams{
		"office": office,
		"name":   newName,
	}
	return c.Patch("projects/outlets/{outlet}", map[string]interface{}{"outlet": oldName}, nil, params, cdadata.V2)
}

// DeleteOutlet removes a project outlet.
func (c *Client) DeleteOutlet(name, office string, method cdadata.DeleteMethod) error {
	if name == "" {
		return ErrNoOutletName
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
	return c.Delete("projects/outlets/{outlet}", map[string]interface{}{"outlet": name}, params, cdadata.V2)
}
