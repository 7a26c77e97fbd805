// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"errors"

	"github.com/diffeo/go-cda/cdadata"
)

// Validation errors returned by the resource wrappers before any
// request is constructed.
var (
	// ErrNoOfficeID is returned when an operation requires an owning
	// office id and none was given.
	ErrNoOfficeID = errors.New("operation requires an office id")

	// ErrNoTimeseriesID is returned when a time-series operation is
	// missing its series id.
	ErrNoTimeseriesID = errors.New("operation requires a time series id")

	// ErrNoLocationID is returned when a location operation is missing
	// its location id.
	ErrNoLocationID = errors.New("operation requires a location id")

	// ErrNoRatingID is returned when a rating operation is missing its
	// rating id.
	ErrNoRatingID = errors.New("operation requires a rating id")

	// ErrNoLevelID is returned when a level operation is missing its
	// level id.
	ErrNoLevelID = errors.New("operation requires a level id")

	// ErrNoProjectName is returned when a project operation is missing
	// its project name.
	ErrNoProjectName = errors.New("operation requires a project name")

	// ErrNoOutletName is returned when an outlet operation is missing
	// its outlet name.
	ErrNoOutletName = errors.New("operation requires an outlet name")

	// ErrNoTurbineName is returned when a turbine operation is missing
	// its turbine name.
	ErrNoTurbineName = errors.New("operation requires a turbine name")

	// ErrNoGroupID is returned when a group operation is missing its
	// group id.
	ErrNoGroupID = errors.New("operation requires a group id")

	// ErrNoCategoryID is returned when a group operation is missing
	// its category id.
	ErrNoCategoryID = errors.New("operation requires a category id")

	// ErrNoBlobID is returned when a blob operation is missing its blob
	// id.
	ErrNoBlobID = errors.New("operation requires a blob id")

	// ErrNoClobID is returned when a clob operation is missing its clob
	// id.
	ErrNoClobID = errors.New("operation requires a clob id")

	// ErrNoTextID is returned when a standard-text operation is
	// missing its text id.
	ErrNoTextID = errors.New("operation requires a text id")

	// ErrNoParameterID is returned when a profile operation is missing
	// its key parameter id.
	ErrNoParameterID = errors.New("operation requires a parameter id")

	// ErrNoProfileVersion is returned when a profile instance operation
	// is missing its version.
	ErrNoProfileVersion = errors.New("operation requires a profile version")

	// ErrNoVersionDate is returned when a profile instance operation
	// requires an explicit version date and none was given.
	ErrNoVersionDate = errors.New("operation requires a version date")

	// ErrNoCatalogEntry is returned when a catalog lookup matches no
	// time series.
	ErrNoCatalogEntry = errors.New("no catalog entry for the time series")

	// ErrNoStandardText is returned when storing standard text without
	// a message body.
	ErrNoStandardText = errors.New("operation requires a standard text message")

	// ErrNoForecastSpecID is returned when a forecast operation is
	// missing its spec id.
	ErrNoForecastSpecID = errors.New("operation requires a forecast spec id")

	// ErrNoDesignator is returned when a forecast operation is missing
	// its designator.
	ErrNoDesignator = errors.New("operation requires a forecast designator")

	// ErrNoForecastDate is returned when a forecast instance operation
	// is missing its forecast date.
	ErrNoForecastDate = errors.New("operation requires a forecast date")

	// ErrNoIssueDate is returned when a forecast instance operation is
	// missing its issue date.
	ErrNoIssueDate = errors.New("operation requires an issue date")

	// ErrNoApplicationID is returned when a project status update is
	// missing its application id.
	ErrNoApplicationID = errors.New("operation requires an application id")

	// ErrNoData is returned when a write operation is called with no
	// data.
	ErrNoData = errors.New("operation requires a JSON data dictionary")

	// ErrDataNotList is returned when a write operation requires a
	// JSON array and was given something else.
	ErrDataNotList = errors.New("operation requires a JSON list of objects")

	// ErrNoTimeWindow is returned when an operation requires an
	// explicit begin and end time and one is missing.
	ErrNoTimeWindow = errors.New("operation requires a begin and end time")

	// ErrInvalidRatingMethod is returned for a rating method outside
	// EAGER, LAZY, REFERENCE.
	ErrInvalidRatingMethod = errors.New("rating method must be one of EAGER, LAZY, or REFERENCE")

	// ErrInvalidDeleteMethod is returned for a delete method outside
	// DELETE_ALL, DELETE_KEY, DELETE_DATA.
	ErrInvalidDeleteMethod = errors.New("delete method must be one of DELETE_ALL, DELETE_KEY, or DELETE_DATA")

	// ErrInvalidTextMode is returned for a text mode outside REGULAR,
	// STANDARD, ALL.
	ErrInvalidTextMode = errors.New("text mode must be one of REGULAR, STANDARD, or ALL")
)

func validDeleteMethod(m cdadata.DeleteMethod) bool {
	switch m {
	case cdadata.DeleteAll, cdadata.DeleteKey, cdadata.DeleteData:
		return true
	default:
		return false
	}
}

func validRatingMethod(m cdadata.RatingMethod) bool {
	switch m {
	case cdadata.Eager, cdadata.Lazy, cdadata.Reference:
		return true
	default:
		return false
	}
}

func validTextMode(m cdadata.TextMode) bool {
	switch m {
	case cdadata.RegularText, cdadata.StandardText, cdadata.AllText:
		return true
	default:
		return false
	}
}
