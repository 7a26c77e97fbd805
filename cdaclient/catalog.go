// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"fmt"

	"github.com/diffeo/go-cda/cdadata"
)

// DefaultCatalogPageSize is the number of catalog entries fetched per
// request when the query does not say otherwise.
const DefaultCatalogPageSize = 5000

// TimeseriesCatalogQuery filters the time series catalog.
type TimeseriesCatalogQuery struct {
	// Office is the owning office.  Required.
	Office string

	// Like is a POSIX regular expression matched against series ids.
	Like string

	// CategoryLike and GroupLike match against the category and group
	// ids of each series.
	CategoryLike string
	GroupLike    string

	// BoundingOfficeLike matches against the bounding office of the
	// series location.
	BoundingOfficeLike string

	// UnitSystem is EN or SI.
	UnitSystem string

	// IncludeExtents adds the recorded data extents of each series to
	// the catalog entries.
	IncludeExtents bool

	// PageSize is the number of entries fetched per request.
	PageSize int
}

// TimeseriesCatalog retrieves the time series catalog, paged under the
// "entries" field.
func (c *Client) TimeseriesCatalog(q TimeseriesCatalogQuery) (*cdadata.Data, error) {
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultCatalogPageSize
	}
	params := cdadata.RequestParams{
		"office":                   q.Office,
		"like":                     nilIfEmpty(q.Like),
		"timeseries-category-like": nilIfEmpty(q.CategoryLike),
		"timeseries-group-like":    nilIfEmpty(q.GroupLike),
		"bounding-office-like":     nilIfEmpty(q.BoundingOfficeLike),
		"unit-system":              nilIfEmpty(q.UnitSystem),
		"include-extents":          q.IncludeExtents,
		"page-size":                pageSize,
	}
	doc, err := c.GetWithPaging("entries", "catalog/{dataset}", map[string]interface{}{"dataset": "TIMESERIES"}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "entries"), nil
}

// LocationsCatalogQuery filters the locations catalog.
type LocationsCatalogQuery struct {
	// Office is the owning office.  Required.
	Office string

	// Like is a POSIX regular expression matched against location ids.
	Like string

	// CategoryLike and GroupLike match against the location category
	// and group ids.
	CategoryLike string
	GroupLike    string

	// BoundingOfficeLike matches against the bounding office of each
	// location.
	BoundingOfficeLike string

	// KindLike matches against the location kind, e.g. "(SITE|STREAM)".
	KindLike string

	// UnitSystem is EN or SI.
	UnitSystem string

	// PageSize is the number of entries fetched per request.
	PageSize int
}

// LocationsCatalog retrieves the locations catalog, paged under the
// "entries" field.
func (c *Client) LocationsCatalog(q LocationsCatalogQuery) (*cdadata.Data, error) {
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = DefaultCatalogPageSize
	}
	params := cdadata.RequestParams{
		"office":                 q.Office,
		"like":                   nilIfEmpty(q.Like),
		"location-category-like": nilIfEmpty(q.CategoryLike),
		"location-group-like":    nilIfEmpty(q.GroupLike),
		"bounding-office-like":   nilIfEmpty(q.BoundingOfficeLike),
		"location-kind-like":     nilIfEmpty(q.KindLike),
		"units":                  nilIfEmpty(q.UnitSystem),
		"page-size":              pageSize,
	}
	doc, err := c.GetWithPaging("entries", "catalog/{dataset}", map[string]interface{}{"dataset": "LOCATIONS"}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "entries"), nil
}

// TimeseriesExtents holds the recorded data extents of one series as
// reported by the catalog.
type TimeseriesExtents struct {
	EarliestTime string
	LatestTime   string
	LastUpdate   string
}

// TimeseriesExtentsFor looks up the extents of one series through the
// catalog.  A series with no catalog entry returns an error wrapping
// ErrNoCatalogEntry.
func (c *Client) TimeseriesExtentsFor(tsID, office string) (*TimeseriesExtents, error) {
	if tsID == "" {
		return nil, ErrNoTimeseriesID
	}
	data, err := c.TimeseriesCatalog(TimeseriesCatalogQuery{
		Office:         office,
		Like:           tsID,
		IncludeExtents: true,
		PageSize:       500,
	})
	if err != nil {
		return nil, err
	}
	doc, isDict := data.JSON().(cdadata.Dict)
	if !isDict {
		return nil, fmt.Errorf("%q: %w", tsID, ErrNoCatalogEntry)
	}
	entries, _ := doc["entries"].([]interface{})
	for _, raw := range entries {
		entry, isDict := raw.(cdadata.Dict)
		if !isDict {
			continue
		}
		if name, _ := entry["name"].(string); name != tsID {
			continue
		}
		extents, _ := entry["extents"].([]interface{})
		if len(extents) == 0 {
			break
		}
		first, isDict := extents[0].(cdadata.Dict)
		if !isDict {
			break
		}
		out := &TimeseriesExtents{}
		out.EarliestTime, _ = first["earliest-time"].(string)
		out.LatestTime, _ = first["latest-time"].(string)
		out.LastUpdate, _ = first["last-update"].(string)
		return out, nil
	}
	return nil, fmt.Errorf("%q: %w", tsID, ErrNoCatalogEntry)
}
