// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient_test

import (
	"io/ioutil"
	"net/http"
	"testing"
	"time"

	"github.com/diffeo/go-cda/cdaclient"
	"github.com/diffeo/go-cda/cdadata"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeseriesProfile(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/timeseries/profile/{location}/{parameter}", func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		assert.Equal(t, "KEYS", vars["location"])
		assert.Equal(t, "Temp-Water", vars["parameter"])
		assert.Equal(t, "SWT", r.URL.Query().Get("office"))
		writeJSON(w, cdadata.Dict{"key-parameter": "Temp-Water"})
	})
	client := m.Client(t, "")

	data, err := client.TimeseriesProfile("SWT", "KEYS", "Temp-Water")
	require.NoError(t, err)
	doc, ok := data.JSON().(cdadata.Dict)
	require.True(t, ok)
	assert.Equal(t, "Temp-Water", doc["key-parameter"])
}

func TestTimeseriesProfileValidation(t *testing.T) {
	m := newMockCDA(t)
	client := m.Client(t, "")

	_, err := client.TimeseriesProfile("SWT", "", "Temp-Water")
	assert.Equal(t, cdaclient.ErrNoLocationID, err)

	_, err = client.TimeseriesProfile("SWT", "KEYS", "")
	assert.Equal(t, cdaclient.ErrNoParameterID, err)

	_, err = client.TimeseriesProfileInstance(cdaclient.TimeseriesProfileInstanceQuery{
		Office:    "SWT",
		Location:  "KEYS",
		Parameter: "Temp-Water",
	})
	assert.Equal(t, cdaclient.ErrNoProfileVersion, err)

	err = client.DeleteTimeseriesProfileInstance("SWT", "KEYS", "Temp-Water", "RAW", time.Time{}, time.Time{}, false)
	assert.Equal(t, cdaclient.ErrNoVersionDate, err)

	assert.Equal(t, 0, m.Requests())
}

func TestTimeseriesProfileInstance(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/timeseries/profile-instance/{location}/{parameter}/{version}", func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		assert.Equal(t, "KEYS", vars["location"])
		assert.Equal(t, "Temp-Water", vars["parameter"])
		assert.Equal(t, "RAW", vars["version"])
		q := r.URL.Query()
		assert.Equal(t, "SWT", q.Get("office"))
		assert.Equal(t, "F", q.Get("unit"))
		assert.Equal(t, "true", q.Get("start-time-inclusive"))
		assert.Equal(t, "500", q.Get("page-size"))
		writeJSON(w, cdadata.Dict{"version": "RAW"})
	})
	client := m.Client(t, "")

	_, err := client.TimeseriesProfileInstance(cdaclient.TimeseriesProfileInstanceQuery{
		Office:         "SWT",
		Location:       "KEYS",
		Parameter:      "Temp-Water",
		Version:        "RAW",
		Unit:           "F",
		StartInclusive: true,
		EndInclusive:   true,
	})
	assert.NoError(t, err)
}

func TestStoreTimeseriesProfileInstance(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/timeseries/profile-instance", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		q := r.URL.Query()
		assert.Equal(t, "KEYS,Temp-Water\n06/01/2024,00:00:00,54.3", q.Get("profile-data"))
		assert.Equal(t, "RAW", q.Get("version"))
		assert.NotEmpty(t, q.Get("version-date"))
		assert.Equal(t, "", q.Get("method"))
		body, err := ioutil.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Empty(t, body)
		w.WriteHeader(http.StatusOK)
	})
	client := m.Client(t, "")

	versionDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	err := client.StoreTimeseriesProfileInstance("KEYS,Temp-Water\n06/01/2024,00:00:00,54.3", "RAW", versionDate, "", false)
	assert.NoError(t, err)
}

func TestTimeseriesProfileParsers(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/timeseries/profile-parser", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "SWT", q.Get("office-mask"))
		assert.Equal(t, "", q.Get("location-mask"))
		writeJSON(w, cdadata.Dict{"parsers": []interface{}{}})
	})
	client := m.Client(t, "")

	_, err := client.TimeseriesProfileParsers("SWT", "", "")
	assert.NoError(t, err)
}
