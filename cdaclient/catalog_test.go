// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/diffeo/go-cda/cdaclient"
	"github.com/diffeo/go-cda/cdadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, cdadata.Dict{
		"entries": []interface{}{
			cdadata.Dict{
				"name": "KEYS.Elev.Inst.1Hour.0.Ccp-Rev",
				"extents": []interface{}{
					cdadata.Dict{
						"earliest-time": "2020-01-01T00:00:00Z",
						"latest-time":   "2024-06-01T00:00:00Z",
						"last-update":   "2024-06-01T01:00:00Z",
					},
				},
			},
		},
	})
}

func TestTimeseriesExtentsFor(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/catalog/TIMESERIES", catalogHandler)
	client := m.Client(t, "")

	extents, err := client.TimeseriesExtentsFor("KEYS.Elev.Inst.1Hour.0.Ccp-Rev", "SWT")
	require.NoError(t, err)
	assert.Equal(t, "2020-01-01T00:00:00Z", extents.EarliestTime)
	assert.Equal(t, "2024-06-01T00:00:00Z", extents.LatestTime)
	assert.Equal(t, "2024-06-01T01:00:00Z", extents.LastUpdate)
}

func TestTimeseriesExtentsForMissing(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/catalog/TIMESERIES", catalogHandler)
	client := m.Client(t, "")

	_, err := client.TimeseriesExtentsFor("KEYS.Flow.Inst.1Hour.0.Ccp-Rev", "SWT")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cdaclient.ErrNoCatalogEntry))
	assert.Contains(t, err.Error(), "KEYS.Flow.Inst.1Hour.0.Ccp-Rev")
}
