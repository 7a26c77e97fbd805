// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package cdadata holds the data-level types shared by the CWMS Data
// API client: JSON aliases, API version negotiation, typed errors, and
// the Data wrapper that projects a JSON response into a table.
package cdadata

// JSON is any value decoded from a CDA response body.
type JSON = interface{}

// Dict is a decoded JSON object.
type Dict = map[string]interface{}

// RequestParams maps query-parameter names to values.  Nil values are
// omitted from the request entirely.
type RequestParams = map[string]interface{}

// Media types the CDA negotiates.  Version 1 is plain JSON; version 2
// exists in JSON and XML flavors.
const (
	JSONMediaType   = "application/json"
	V2JSONMediaType = "application/json;version=2"
	V2XMLMediaType  = "application/xml;version=2"
)

// APIVersion selects the CDA content negotiation for one request.
type APIVersion int

// The versions the CDA supports.  XMLV2 is used only by the ratings
// XML endpoints.
const (
	V1    APIVersion = 1
	V2    APIVersion = 2
	XMLV2 APIVersion = 102
)

// MediaType returns the media-type string for the version, or an
// InvalidVersionError for anything unsupported.  Callers check this
// before issuing any request.
func (v APIVersion) MediaType() (string, error) {
	switch v {
	case V1:
		return JSONMediaType, nil
	case V2:
		return V2JSONMediaType, nil
	case XMLV2:
		return V2XMLMediaType, nil
	default:
		return "", InvalidVersionError{Version: v}
	}
}

// DeleteMethod selects how much of a record a delete removes.
type DeleteMethod int

// Delete methods accepted by the CDA.
const (
	DeleteAll DeleteMethod = iota
	DeleteKey
	DeleteData
)

func (m DeleteMethod) String() string {
	switch m {
	case DeleteAll:
		return "DELETE_ALL"
	case DeleteKey:
		return "DELETE_KEY"
	case DeleteData:
		return "DELETE_DATA"
	default:
		return "UNKNOWN"
	}
}

// RatingMethod selects how much of a rating the server includes in a
// response.
type RatingMethod int

// Rating retrieval methods.
const (
	Eager RatingMethod = iota
	Lazy
	Reference
)

func (m RatingMethod) String() string {
	switch m {
	case Eager:
		return "EAGER"
	case Lazy:
		return "LAZY"
	case Reference:
		return "REFERENCE"
	default:
		return "UNKNOWN"
	}
}

// TextMode selects which kinds of text time series values a query
// returns.
type TextMode int

// Text time series retrieval modes.  The zero value, RegularText, is
// the server default.
const (
	RegularText TextMode = iota
	StandardText
	AllText
)

func (m TextMode) String() string {
	switch m {
	case RegularText:
		return "REGULAR"
	case StandardText:
		return "STANDARD"
	case AllText:
		return "ALL"
	default:
		return "UNKNOWN"
	}
}
