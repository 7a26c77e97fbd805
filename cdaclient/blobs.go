// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"encoding/base64"

	"github.com/diffeo/go-cda/cdadata"
)

// DefaultBlobPageSize is the number of blob entries fetched per request
// when the caller does not say otherwise.
const DefaultBlobPageSize = 100

// Blob retrieves one binary object.
func (c *Client) Blob(blobID, office string) (*cdadata.Data, error) {
	if blobID == "" {
		return nil, ErrNoBlobID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	params := cdadata.RequestParams{"office": office}
	doc, err := c.Get("blobs/{blob}", map[string]interface{}{"blob": blobID}, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// Blobs lists binary objects.  The result projects with the "blobs"
// selector.
func (c *Client) Blobs(office, blobIDLike string, pageSize int) (*cdadata.Data, error) {
	if pageSize == 0 {
		pageSize = DefaultBlobPageSize
	}
	params := cdadata.RequestParams{
		"office":    nilIfEmpty(office),
		"like":      nilIfEmpty(blobIDLike),
		"page-size": pageSize,
	}
	doc, err := c.Get("blobs", nil, params, cdadata.V1)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "blobs"), nil
}

// StoreBlob creates a new binary object.  The "value" field must hold
// base64 text; a plain-text value is encoded before sending.
func (c *Client) StoreBlob(data cdadata.Dict, failIfExists bool) error {
	if data == nil {
		return ErrNoData
	}
	if value, isString := data["value"].(string); isString && !isBase64(value) {
		data = cdadata.DeepCopy(data).(cdadata.Dict)
		data["value"] = base64.StdEncoding.EncodeToString([]byte(value))
	}
	params := cdadata.RequestParams{"fail-if-exists": failIfExists}
	return c.Post("blobs", nil, data, params, cdadata.V1)
}

// isBase64 reports whether s already round-trips through standard
// base64.
func isBase64(s string) bool {
	decoded, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return false
	}
	return base64.StdEncoding.EncodeToString(decoded) == s
}
