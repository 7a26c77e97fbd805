// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"strings"

	"github.com/diffeo/go-cda/cdadata"
)

// ignoredID fills the path segment of a clob request when the real id
// contains characters that cannot travel in a URL path.  The server
// reads the "clob-id" parameter instead.
const ignoredID = "ignored"

// clobPathEscape returns the endpoint and extra parameters for one clob
// id.  Ids containing slashes go through the ignored-id escape.
func clobPathEscape(clobID string) (vars map[string]interface{}, params cdadata.RequestParams) {
	if strings.ContainsAny(clobID, "/\\?%") {
		return map[string]interface{}{"clob": ignoredID}, cdadata.RequestParams{"clob-id": clobID}
	}
	return map[string]interface{}{"clob": clobID}, cdadata.RequestParams{}
}

// Clob retrieves one character object.
func (c *Client) Clob(clobID, office string) (*cdadata.Data, error) {
	if clobID == "" {
		return nil, ErrNoClobID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	vars, params := clobPathEscape(clobID)
	params["office"] = office
	doc, err := c.Get("clobs/{clob}", vars, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// Clobs lists character objects.  The result projects with the "clobs"
// selector.  Values are omitted unless includeValues is set.
func (c *Client) Clobs(office, clobIDLike string, includeValues bool, pageSize int) (*cdadata.Data, error) {
	if pageSize == 0 {
		pageSize = DefaultBlobPageSize
	}
	params := cdadata.RequestParams{
		"office":         nilIfEmpty(office),
		"like":           nilIfEmpty(clobIDLike),
		"include-values": includeValues,
		"page-size":      pageSize,
	}
	doc, err := c.Get("clobs", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "clobs"), nil
}

// StoreClob creates a new character object.
func (c *Client) StoreClob(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("clobs", nil, data, params, cdadata.V1)
}

// UpdateClob updates an existing character object.  The id comes from
// the "id" field of the data when present, uppercased, otherwise from
// clobID.  With ignoreNulls, empty fields in the data leave the stored
// values in place.
func (c *Client) UpdateClob(clobID string, data cdadata.Dict, ignoreNulls bool) error {
	if data == nil {
		return ErrNoData
	}
	if id, isString := data["id"].(string); isString && id != "" {
		clobID = strings.ToUpper(id)
	}
	if clobID == "" {
		return ErrNoClobID
	}
	vars, params := clobPathEscape(clobID)
	params["ignore-nulls"] = ignoreNulls
	return c.Patch("clobs/{clob}", vars, data, params, cdadata.V1)
}

// DeleteClob removes a character object.
func (c *Client) DeleteClob(clobID, office string) error {
	if clobID == "" {
		return ErrNoClobID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	vars, params := clobPathEscape(clobID)
	params["office"] = office
	return c.Delete("clobs/{clob}", vars, params, cdadata.V1)
}
