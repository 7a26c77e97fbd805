// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"github.com/diffeo/go-cda/cdadata"
)

// StandardTextToJSON builds the request body for StoreStandardText
// from its parts.
func StandardTextToJSON(textID, standardText, office string) (cdadata.Dict, error) {
	if textID == "" {
		return nil, ErrNoTextID
	}
	if standardText == "" {
		return nil, ErrNoStandardText
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	return cdadata.Dict{
		"id": cdadata.Dict{
			"office-id": office,
			"id":        textID,
		},
		"standard-text": standardText,
	}, nil
}

// StandardTextCatalog lists standard text ids matching the masks.
func (c *Client) StandardTextCatalog(textIDMask, officeIDMask string) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"text-id-mask":   nilIfEmpty(textIDMask),
		"office-id-mask": nilIfEmpty(officeIDMask),
	}
	doc, err := c.Get("timeseries/text/standard-text-id", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StandardText retrieves one standard text value.
func (c *Client) StandardText(textID, office string) (*cdadata.Data, error) {
	if textID == "" {
		return nil, ErrNoTextID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	doc, err := c.Get("timeseries/text/standard-text-id/{text}", map[string]interface{}{"text": textID}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreStandardText stores a standard text value.
func (c *Client) StoreStandardText(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("timeseries/text/standard-text-id", nil, data, params, cdadata.V2)
}

// DeleteStandardText removes a standard text value.  The delete method
// controls whether the id, the value, or both are removed.
func (c *Client) DeleteStandardText(textID, office string, method cdadata.DeleteMethod) error {
	if textID == "" {
		return ErrNoTextID
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
	return c.Delete("timeseries/text/standard-text-id/{text}", map[string]interface{}{"text": textID}, params, cdadata.V2)
}
