// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdadata

import (
	"errors"
	"fmt"
)

// InvalidVersionError is returned when an unsupported APIVersion is
// requested.  It is a configuration error raised before any network
// call.
type InvalidVersionError struct {
	Version APIVersion
}

func (e InvalidVersionError) Error() string {
	return fmt.Sprintf("API version %d is not supported", e.Version)
}

// APIError is a catch-all error for non-2xx responses from the CDA.
// It carries the failing URL, status, and body so the caller can
// diagnose a bad request or empty-result condition.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	message := fmt.Sprintf("CWMS API error (%s)", e.URL)
	if e.Status != "" {
		message += " " + e.Status
	}
	message += "."
	if hint := e.hint(); hint != "" {
		message += " " + hint
	}
	if e.Body != "" {
		message += " " + e.Body
	}
	return message
}

// hint adds context a human can use to resolve the error.
func (e *APIError) hint() string {
	switch e.StatusCode {
	case 400:
		return "Check that your parameters are correct."
	case 404:
		return "May be the result of an empty query."
	default:
		return ""
	}
}

// NotFoundError is an APIError for a 404 response.
type NotFoundError struct {
	*APIError
}

// ClientError is an APIError for any other 4xx response.
type ClientError struct {
	*APIError
}

// ServerError is an APIError for a 5xx response.
type ServerError struct {
	*APIError
}

// NewStatusError builds the typed error for a non-2xx response,
// classifying it as not-found, client, or server.
func NewStatusError(method, url string, statusCode int, status, body string) error {
	apiErr := &APIError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Status:     status,
		Body:       body,
	}
	switch {
	case statusCode == 404:
		return &NotFoundError{APIError: apiErr}
	case statusCode >= 500:
		return &ServerError{APIError: apiErr}
	default:
		return &ClientError{APIError: apiErr}
	}
}

// IsNotFound reports whether err is (or wraps) a 404 from the CDA.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// AsAPIError extracts the underlying APIError from a transport error,
// if there is one.
func AsAPIError(err error) (*APIError, bool) {
	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return notFound.APIError, true
	}
	var client *ClientError
	if errors.As(err, &client) {
		return client.APIError, true
	}
	var server *ServerError
	if errors.As(err, &server) {
		return server.APIError, true
	}
	return nil, false
}
