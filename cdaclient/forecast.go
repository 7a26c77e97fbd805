// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// ForecastSpecs lists forecast specifications matching the masks.
func (c *Client) ForecastSpecs(office, idMask, designatorMask, sourceEntity string) (*cdadata.Data, error) {
	params := cdadata.RequestParams{
		"office":          nilIfEmpty(office),
		"id-mask":         nilIfEmpty(idMask),
		"designator-mask": nilIfEmpty(designatorMask),
		"source-entity":   nilIfEmpty(sourceEntity),
	}
	doc, err := c.Get("forecast-spec", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// ForecastSpec retrieves one forecast specification.
func (c *Client) ForecastSpec(specID, office, designator string) (*cdadata.Data, error) {
	if specID == "" {
		return nil, ErrNoForecastSpecID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	if designator == "" {
		return nil, ErrNoDesignator
	}
	params := cdadata.RequestParams{
		"office":     office,
		"designator": designator,
	}
	doc, err := c.Get("forecast-spec/{spec}", map[string]interface{}{"spec": specID}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreForecastSpec creates a new forecast specification.
func (c *Client) StoreForecastSpec(data cdadata.Dict) error {
	if data == nil {
		return ErrNoData
	}
	return c.Post("forecast-spec", nil, data, nil, cdadata.V2)
}

// DeleteForecastSpec removes a forecast specification.
func (c *Client) DeleteForecastSpec(specID, office, designator string, method cdadata.DeleteMethod) error {
	if specID == "" {
		return ErrNoForecastSpecID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if designator == "" {
		return ErrNoDesignator
	}
	if !validDeleteMethod(method) {
		return ErrInvalidDeleteMethod
	}
	params := cdadata.RequestParams{
		"office":     office,
		"designator": designator,
		"method":     method,
	}
	return c.Delete("forecast-spec/{spec}", map[string]interface{}{"spec": specID}, params, cdadata.V2)
}

// ForecastInstances lists the instances of one forecast specification.
func (c *Client) ForecastInstances(specID, office, designator string) (*cdadata.Data, error) {
	if specID == "" {
		return nil, ErrNoForecastSpecID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	if designator == "" {
		return nil, ErrNoDesignator
	}
	params := cdadata.RequestParams{
		"office":     office,
		"name":       specID,
		"designator": designator,
	}
	doc, err := c.Get("forecast-instance", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// ForecastInstance retrieves one forecast instance, identified by the
// spec plus the forecast and issue dates.
func (c *Client) ForecastInstance(specID, office, designator string, forecastDate, issueDate time.Time) (*cdadata.Data, error) {
	if specID == "" {
		return nil, ErrNoForecastSpecID
	}
	if office == "" {
		return nil, ErrNoOfficeID
	}
	if designator == "" {
		return nil, ErrNoDesignator
	}
	if forecastDate.IsZero() {
		return nil, ErrNoForecastDate
	}
	if issueDate.IsZero() {
		return nil, ErrNoIssueDate
	}
	params := cdadata.RequestParams{
		"office":        office,
		"designator":    designator,
		"forecast-date": forecastDate,
		"issue-date":    issueDate,
	}
	doc, err := c.Get("forecast-instance/{spec}", map[string]interface{}{"spec": specID}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// StoreForecastInstance creates a new forecast instance.
func (c *Client) StoreForecastInstance(data cdadata.Dict) error {
	if data == nil {
		return ErrNoData
	}
	return c.Post("forecast-instance", nil, data, nil, cdadata.V2)
}

// DeleteForecastInstance removes one forecast instance.
func (c *Client) DeleteForecastInstance(specID, office, designator string, forecastDate, issueDate time.Time) error {
	if specID == "" {
		return ErrNoForecastSpecID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if designator == "" {
		return ErrNoDesignator
	}
	if forecastDate.IsZero() {
		return ErrNoForecastDate
	}
	if issueDate.IsZero() {
		return ErrNoIssueDate
	}
	params := cdadata.RequestParams{
		"office":        office,
		"designator":    designator,
		"forecast-date": forecastDate,
		"issue-date":    issueDate,
	}
	return c.Delete("forecast-instance/{spec}", map[string]interface{}{"spec": specID}, params, cdadata.V2)
}
