// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package cdaclient provides an HTTP client for the CWMS Data API
// (CDA).  Construct a Client with New() and the base URL of a CDA
// instance; for instance,
//
//	c, err := cdaclient.New(cdaclient.Config{
//	    APIRoot: "https://cwms-data.usace.army.mil/cwms-data/",
//	})
//
// Every resource method issues exactly one HTTP round trip (the paging
// and batch helpers issue one per page or series), with no retries, no
// backoff, and no caching.  Failures surface as typed errors from the
// cdadata package.
package cdaclient

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-cda/cdadata"
	"github.com/jtacoma/uritemplates"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
)

// DefaultAPIRoot is the public CDA instance used when Config.APIRoot
// is empty.
const DefaultAPIRoot = "https://cwms-data.usace.army.mil/cwms-data/"

// DefaultVersion is the content negotiation used by most endpoints.
const DefaultVersion = cdadata.V2

// timeFormat renders query-parameter timestamps as ISO 8601 extended
// with a numeric offset, the form the CDA expects.
const timeFormat = "2006-01-02T15:04:05-07:00"

// Config collects the settings for a Client.  The zero value is
// usable and talks to the public CDA instance anonymously.
type Config struct {
	// APIRoot is the base URL of the CDA instance.
	APIRoot string

	// APIKey, if set, is sent as the Authorization header value on
	// every request.
	APIKey string

	// HTTPClient overrides the HTTP client used for requests.  If
	// unset, http.DefaultClient is used.
	HTTPClient *http.Client

	// Logger receives request and error logs.  If unset, the logrus
	// standard logger is used.
	Logger *logrus.Logger

	// Clock defines the time source used to measure request
	// durations.  Only test code should need to set this.
	Clock clock.Clock
}

// Client talks to one CDA instance.  It is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
	clock      clock.Clock
}

// New creates a Client from a Config.
func New(config Config) (*Client, error) {
	root := config.APIRoot
	if root == "" {
		root = DefaultAPIRoot
	}
	if !strings.HasSuffix(root, "/") {
		root += "/"
	}
	baseURL, err := url.Parse(root)
	if err != nil {
		return nil, err
	}
	if baseURL.Host == "" {
		return nil, fmt.Errorf("cdaclient: API root %q has no host", config.APIRoot)
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     config.APIKey,
		httpClient: config.HTTPClient,
		logger:     config.Logger,
		clock:      config.Clock,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	return c, nil
}

// APIRoot returns the base URL of the CDA instance this client talks
// to.
func (c *Client) APIRoot() string {
	return c.baseURL.String()
}

// endpointURL expands an endpoint URI template, resolves it against
// the base URL, and attaches the encoded query parameters.
func (c *Client) endpointURL(endpoint string, vars map[string]interface{}, params cdadata.RequestParams) (*url.URL, error) {
	expanded := endpoint
	if vars != nil {
		tmpl, err := uritemplates.Parse(endpoint)
		if err != nil {
			return nil, err
		}
		expanded, err = tmpl.Expand(vars)
		if err != nil {
			return nil, err
		}
	}
	u, err := c.baseURL.Parse(expanded)
	if err != nil {
		return nil, err
	}
	u.RawQuery = encodeParams(params)
	return u, nil
}

// encodeParams renders query parameters.  Nil values are omitted from
// the request entirely, as are zero time.Time values.
func encodeParams(params cdadata.RequestParams) string {
	values := url.Values{}
	for name, value := range params {
		s, present := paramString(value)
		if present {
			values.Set(name, s)
		}
	}
	return values.Encode()
}

func paramString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case time.Time:
		if v.IsZero() {
			return "", false
		}
		return v.Format(timeFormat), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprintf("%v", value), true
	}
}

// roundTrip performs exactly one HTTP round trip and returns the
// response body.  A non-2xx status becomes a typed error carrying the
// URL, status, and body.
func (c *Client) roundTrip(method, endpoint string, vars map[string]interface{}, params cdadata.RequestParams, headers map[string]string, body []byte) ([]byte, error) {
	u, err := c.endpointURL(endpoint, vars, params)
	if err != nil {
		return nil, err
	}

	var reader *bytes.Reader
	var req *http.Request
	if body != nil {
		reader = bytes.NewReader(body)
		req, err = http.NewRequest(method, u.String(), reader)
	} else {
		req, err = http.NewRequest(method, u.String(), nil)
	}
	if err != nil {
		return nil, err
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	requestID := uuid.NewV4().String()
	log := c.logger.WithFields(logrus.Fields{
		"request": requestID,
		"method":  method,
		"url":     u.String(),
	})

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := c.clock.Now().Sub(start)
	if err != nil {
		observeRequest(method, "error", elapsed)
		log.WithField("err", err).Error("CDA request failed")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		observeRequest(method, "error", elapsed)
		return nil, err
	}
	observeRequest(method, strconv.Itoa(resp.StatusCode), elapsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithFields(logrus.Fields{
			"status":  resp.Status,
			"elapsed": elapsed,
		}).Error("CDA error response")
		return nil, cdadata.NewStatusError(method, u.String(), resp.StatusCode, resp.Status, string(respBody))
	}

	log.WithField("elapsed", elapsed).Debug("CDA request")
	return respBody, nil
}

// Get issues a GET and decodes the JSON response.  An empty or
// undecodable body yields an empty object rather than an error.
func (c *Client) Get(endpoint string, vars map[string]interface{}, params cdadata.RequestParams, version cdadata.APIVersion) (cdadata.JSON, error) {
	mediaType, err := version.MediaType()
	if err != nil {
		return nil, err
	}
	body, err := c.roundTrip("GET", endpoint, vars, params, map[string]string{"Accept": mediaType}, nil)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return cdadata.Dict{}, nil
	}
	var out cdadata.JSON
	if err := cdadata.DecodeJSONBytes(body, &out); err != nil {
		c.logger.WithField("err", err).Error("Error decoding CDA response as json")
		return cdadata.Dict{}, nil
	}
	return out, nil
}

// GetXML issues a GET and returns the raw response body as text.  Used
// by the endpoints that speak versioned XML.
func (c *Client) GetXML(endpoint string, vars map[string]interface{}, params cdadata.RequestParams, version cdadata.APIVersion) (string, error) {
	mediaType, err := version.MediaType()
	if err != nil {
		return "", err
	}
	body, err := c.roundTrip("GET", endpoint, vars, params, map[string]string{"Accept": mediaType}, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetWithPaging issues GETs until the response no longer carries a
// "next-page" token, concatenating the array under selectorField from
// each page onto the first response in arrival order.  All other
// fields of the first response are returned untouched.  Page count is
// unbounded; the server contract guarantees eventual termination.
func (c *Client) GetWithPaging(selectorField, endpoint string, vars map[string]interface{}, params cdadata.RequestParams, version cdadata.APIVersion) (cdadata.JSON, error) {
	// Copied so the caller's map never picks up page tokens.
	pageParams := make(cdadata.RequestParams, len(params)+1)
	for name, value := range params {
		pageParams[name] = value
	}
	doc, err := c.Get(endpoint, vars, pageParams, version)
	if err != nil {
		return nil, err
	}
	base, isDict := doc.(cdadata.Dict)
	if !isDict {
		return doc, nil
	}

	page := base
	for {
		token, present := page["next-page"]
		if !present {
			break
		}
		pageParams["page"] = token
		nextDoc, err := c.Get(endpoint, vars, pageParams, version)
		if err != nil {
			return nil, err
		}
		next, isNextDict := nextDoc.(cdadata.Dict)
		if !isNextDict {
			return nil, fmt.Errorf("cdaclient: paged response for %s is not an object", endpoint)
		}
		baseItems, _ := base[selectorField].([]interface{})
		nextItems, _ := next[selectorField].([]interface{})
		base[selectorField] = append(baseItems, nextItems...)
		page = next
	}
	return base, nil
}

// Post issues a POST with a JSON-serialized body.  The CDA returns no
// useful body for writes, so none is decoded.
func (c *Client) Post(endpoint string, vars map[string]interface{}, data interface{}, params cdadata.RequestParams, version cdadata.APIVersion) error {
	mediaType, err := version.MediaType()
	if err != nil {
		return err
	}
	body, err := encodeBody(data)
	if err != nil {
		return err
	}
	headers := map[string]string{"Accept": "*/*", "Content-Type": mediaType}
	_, err = c.roundTrip("POST", endpoint, vars, params, headers, body)
	return err
}

// Patch issues a PATCH.  data may be nil for endpoints that take all
// of their input as query parameters.
func (c *Client) Patch(endpoint string, vars map[string]interface{}, data interface{}, params cdadata.RequestParams, version cdadata.APIVersion) error {
	mediaType, err := version.MediaType()
	if err != nil {
		return err
	}
	var body []byte
	if data != nil {
		body, err = encodeBody(data)
		if err != nil {
			return err
		}
	}
	headers := map[string]string{"Accept": "*/*", "Content-Type": mediaType}
	_, err = c.roundTrip("PATCH", endpoint, vars, params, headers, body)
	return err
}

// Delete issues a DELETE.
func (c *Client) Delete(endpoint string, vars map[string]interface{}, params cdadata.RequestParams, version cdadata.APIVersion) error {
	mediaType, err := version.MediaType()
	if err != nil {
		return err
	}
	_, err = c.roundTrip("DELETE", endpoint, vars, params, map[string]string{"Accept": mediaType}, nil)
	return err
}

// encodeBody serializes request data.  Strings (pre-rendered XML, for
// the ratings endpoints) pass through unencoded.
func encodeBody(data interface{}) ([]byte, error) {
	switch d := data.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(d), nil
	case []byte:
		return d, nil
	default:
		return cdadata.EncodeJSON(data)
	}
}
