// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient_test

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/diffeo/go-cda/cdaclient"
	"github.com/diffeo/go-cda/cdadata"
	"github.com/diffeo/go-cda/tabular"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCDA is an httptest-backed stand-in for a CDA instance.  Handlers
// are attached per test; the struct counts requests and records the
// headers of the last one.
type mockCDA struct {
	Router *mux.Router
	Server *httptest.Server

	mu         sync.Mutex
	requests   int
	lastAccept string
	lastAuth   string
}

func newMockCDA(t *testing.T) *mockCDA {
	m := &mockCDA{Router: mux.NewRouter()}
	counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		m.requests++
		m.lastAccept = r.Header.Get("Accept")
		m.lastAuth = r.Header.Get("Authorization")
		m.mu.Unlock()
		m.Router.ServeHTTP(w, r)
	})
	m.Server = httptest.NewServer(counted)
	t.Cleanup(m.Server.Close)
	return m
}

func (m *mockCDA) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

func (m *mockCDA) LastAccept() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastAccept
}

func (m *mockCDA) LastAuth() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastAuth
}

func (m *mockCDA) Client(t *testing.T, apiKey string) *cdaclient.Client {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	client, err := cdaclient.New(cdaclient.Config{
		APIRoot: m.Server.URL,
		APIKey:  apiKey,
		Logger:  logger,
	})
	require.NoError(t, err)
	return client
}

func writeJSON(w http.ResponseWriter, doc interface{}) {
	body, err := cdadata.EncodeJSON(doc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func timeseriesPage(values []interface{}, nextPage string) cdadata.Dict {
	doc := cdadata.Dict{
		"name":  "KEYS.Elev.Inst.1Hour.0.Ccp-Rev",
		"units": "ft",
		"value-columns": []interface{}{
			cdadata.Dict{"name": "date-time"},
			cdadata.Dict{"name": "value"},
			cdadata.Dict{"name": "quality-code"},
		},
		"values": values,
	}
	if nextPage != "" {
		doc["next-page"] = nextPage
	}
	return doc
}

func TestNewRejectsBadRoot(t *testing.T) {
	_, err := cdaclient.New(cdaclient.Config{APIRoot: "not a url ://"})
	assert.Error(t, err)
}

func TestMediaTypeNegotiation(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/offices", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cdadata.Dict{"ok": true})
	})
	client := m.Client(t, "")

	_, err := client.Get("offices", nil, nil, cdadata.V1)
	assert.NoError(t, err)
	assert.Equal(t, "application/json", m.LastAccept())

	_, err = client.Get("offices", nil, nil, cdadata.V2)
	assert.NoError(t, err)
	assert.Equal(t, "application/json;version=2", m.LastAccept())

	_, err = client.GetXML("offices", nil, nil, cdadata.XMLV2)
	assert.NoError(t, err)
	assert.Equal(t, "application/xml;version=2", m.LastAccept())
}

func TestInvalidVersionSendsNothing(t *testing.T) {
	m := newMockCDA(t)
	client := m.Client(t, "")

	_, err := client.Get("offices", nil, nil, cdadata.APIVersion(7))
	assert.Error(t, err)
	assert.IsType(t, cdadata.InvalidVersionError{}, err)
	assert.Equal(t, 0, m.Requests())
}

func TestAuthorizationHeader(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/offices", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cdadata.Dict{})
	})

	client := m.Client(t, "apikey testkey")
	_, err := client.Get("offices", nil, nil, cdadata.V2)
	assert.NoError(t, err)
	assert.Equal(t, "apikey testkey", m.LastAuth())

	client = m.Client(t, "")
	_, err = client.Get("offices", nil, nil, cdadata.V2)
	assert.NoError(t, err)
	assert.Equal(t, "", m.LastAuth())
}

func TestErrorTaxonomy(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such thing", http.StatusNotFound)
	})
	m.Router.HandleFunc("/bad", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad parameters", http.StatusBadRequest)
	})
	m.Router.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "oops", http.StatusInternalServerError)
	})
	client := m.Client(t, "")

	_, err := client.Get("missing", nil, nil, cdadata.V2)
	assert.True(t, cdadata.IsNotFound(err))
	apiErr, ok := cdadata.AsAPIError(err)
	if assert.True(t, ok) {
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "no such thing")
	}

	_, err = client.Get("bad", nil, nil, cdadata.V2)
	assert.IsType(t, &cdadata.ClientError{}, err)
	assert.False(t, cdadata.IsNotFound(err))

	_, err = client.Get("boom", nil, nil, cdadata.V2)
	assert.IsType(t, &cdadata.ServerError{}, err)
}

func TestEmptyBodyTolerated(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/offices", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	client := m.Client(t, "")

	doc, err := client.Get("offices", nil, nil, cdadata.V2)
	if assert.NoError(t, err) {
		assert.Equal(t, cdadata.Dict{}, doc)
	}
}

func TestUndecodableBodyTolerated(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/offices", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not json")
	})
	client := m.Client(t, "")

	doc, err := client.Get("offices", nil, nil, cdadata.V2)
	if assert.NoError(t, err) {
		assert.Equal(t, cdadata.Dict{}, doc)
	}
}

func TestGetWithPaging(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/timeseries", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "":
			writeJSON(w, timeseriesPage([]interface{}{
				[]interface{}{1.0, 10.0, 0.0},
			}, "PAGE2"))
		case "PAGE2":
			writeJSON(w, timeseriesPage([]interface{}{
				[]interface{}{2.0, 20.0, 0.0},
			}, "PAGE3"))
		case "PAGE3":
			writeJSON(w, timeseriesPage([]interface{}{
				[]interface{}{3.0, 30.0, 0.0},
			}, ""))
		default:
			http.Error(w, "unknown page", http.StatusBadRequest)
		}
	})
	client := m.Client(t, "")

	params := cdadata.RequestParams{"name": "X"}
	doc, err := client.GetWithPaging("values", "timeseries", nil, params, cdadata.V2)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Requests())

	// The caller's map never picks up the page tokens, so it can be
	// reused for an unrelated call.
	assert.NotContains(t, params, "page")

	base, ok := doc.(cdadata.Dict)
	require.True(t, ok)
	// Bookkeeping fields come from the first page.
	assert.Equal(t, "ft", base["units"])

	values, ok := base["values"].([]interface{})
	require.True(t, ok)
	require.Len(t, values, 3)
	// Pages are merged in arrival order.
	for i, want := range []float64{10.0, 20.0, 30.0} {
		row := values[i].([]interface{})
		v, err := tabular.ToFloat(row[1])
		if assert.NoError(t, err) {
			assert.Equal(t, want, v)
		}
	}
}

func TestTimeseriesEndToEnd(t *testing.T) {
	m := newMockCDA(t)
	m.Router.HandleFunc("/timeseries", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "SWT", r.URL.Query().Get("office"))
		assert.Equal(t, "KEYS.Elev.Inst.1Hour.0.Ccp-Rev", r.URL.Query().Get("name"))
		assert.Equal(t, "EN", r.URL.Query().Get("unit"))
		writeJSON(w, timeseriesPage([]interface{}{
			[]interface{}{1.7e12, 615.2, 0.0},
			[]interface{}{1.7000036e12, 615.3, 0.0},
		}, ""))
	})
	client := m.Client(t, "")

	data, err := client.Timeseries(cdaclient.TimeseriesQuery{
		ID:     "KEYS.Elev.Inst.1Hour.0.Ccp-Rev",
		Office: "SWT",
	})
	require.NoError(t, err)

	table, err := data.Table()
	require.NoError(t, err)
	assert.Equal(t, []string{"date-time", "value", "quality-code"}, table.Columns())
	assert.Equal(t, 2, table.NumRows())
}

func TestTimeseriesValidation(t *testing.T) {
	m := newMockCDA(t)
	client := m.Client(t, "")

	_, err := client.Timeseries(cdaclient.TimeseriesQuery{Office: "SWT"})
	assert.Equal(t, cdaclient.ErrNoTimeseriesID, err)

	_, err = client.Timeseries(cdaclient.TimeseriesQuery{ID: "X"})
	assert.Equal(t, cdaclient.ErrNoOfficeID, err)

	assert.Equal(t, 0, m.Requests())
}
