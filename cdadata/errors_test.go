// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusErrorClassification(t *testing.T) {
	err := NewStatusError("GET", "http://cda/timeseries", 404, "404 Not Found", "")
	assert.IsType(t, &NotFoundError{}, err)
	assert.True(t, IsNotFound(err))

	err = NewStatusError("GET", "http://cda/timeseries", 400, "400 Bad Request", "")
	assert.IsType(t, &ClientError{}, err)
	assert.False(t, IsNotFound(err))

	err = NewStatusError("GET", "http://cda/timeseries", 502, "502 Bad Gateway", "")
	assert.IsType(t, &ServerError{}, err)
}

func TestStatusErrorMessage(t *testing.T) {
	err := NewStatusError("GET", "http://cda/timeseries", 404, "404 Not Found", "no rows")
	message := err.Error()
	assert.Contains(t, message, "http://cda/timeseries")
	assert.Contains(t, message, "404 Not Found")
	assert.Contains(t, message, "empty query")
	assert.Contains(t, message, "no rows")

	err = NewStatusError("POST", "http://cda/locations", 400, "400 Bad Request", "")
	assert.Contains(t, err.Error(), "parameters are correct")
}

func TestAsAPIError(t *testing.T) {
	err := NewStatusError("DELETE", "http://cda/levels/x", 500, "500 Internal Server Error", "oops")
	apiErr, ok := AsAPIError(err)
	if assert.True(t, ok) {
		assert.Equal(t, "DELETE", apiErr.Method)
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.Equal(t, "oops", apiErr.Body)
	}

	_, ok = AsAPIError(assert.AnError)
	assert.False(t, ok)
}

func TestInvalidVersion(t *testing.T) {
	_, err := APIVersion(3).MediaType()
	assert.Error(t, err)
	assert.IsType(t, InvalidVersionError{}, err)

	for version, mediaType := range map[APIVersion]string{
		V1:    "application/json",
		V2:    "application/json;version=2",
		XMLV2: "application/xml;version=2",
	} {
		got, err := version.MediaType()
		if assert.NoError(t, err) {
			assert.Equal(t, mediaType, got)
		}
	}
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "DELETE_ALL", DeleteAll.String())
	assert.Equal(t, "DELETE_KEY", DeleteKey.String())
	assert.Equal(t, "DELETE_DATA", DeleteData.String())
	assert.Equal(t, "EAGER", Eager.String())
	assert.Equal(t, "LAZY", Lazy.String())
	assert.Equal(t, "REFERENCE", Reference.String())
}
