// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/diffeo/go-cda/cdadata"
	"github.com/diffeo/go-cda/tabular"
)

// versionDateFormats are the layouts accepted for the version marker
// of a qualified series id.
var versionDateFormats = []string{
	"2006-01-02 15:04:05-07:00",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// MultiTimeseriesQuery retrieves several series over one time window
// and combines them into a single table.
type MultiTimeseriesQuery struct {
	// IDs are the series to retrieve.  An id may carry a version
	// marker after a colon ("Some.Series.Id:2021-06-20 08:00:00-00:00")
	// to select one version of a versioned series.
	IDs []string

	// Office is the owning office of every series.  Required.
	Office string

	// Unit is the unit or unit system of the response.  Defaults to
	// EN.
	Unit string

	// Begin and End bound the time window, as in TimeseriesQuery.
	Begin time.Time
	End   time.Time

	// Melted leaves the combined table in long format, one row per
	// (series, timestamp) with ts-id and units columns, instead of
	// pivoting to one column per series.
	Melted bool

	// Concurrency caps the number of series fetched at once.
	// Defaults to the number of CPUs.
	Concurrency int
}

// MultiTimeseriesTable retrieves every series in the query and joins
// the results.  Retrievals run on a bounded pool of goroutines, all
// joined before combination.  The first retrieval error aborts the
// whole batch; there is no partial result.
//
// Unless Melted is set, the result is pivoted: date-time is the first
// column and each series contributes one column labeled with its id,
// unit, and version marker (joined by "/").
func (c *Client) MultiTimeseriesTable(q MultiTimeseriesQuery) (*tabular.Table, error) {
	if q.Office == "" {
		return nil, ErrNoOfficeID
	}
	if len(q.IDs) == 0 {
		return tabular.New(), nil
	}

	concurrency := q.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	if concurrency > len(q.IDs) {
		concurrency = len(q.IDs)
	}

	tables := make([]*tabular.Table, len(q.IDs))
	errors := make([]error, len(q.IDs))

	indices := make(chan int)
	go func() {
		for i := range q.IDs {
			indices <- i
		}
		close(indices)
	}()

	wg := sync.WaitGroup{}
	wg.Add(concurrency)
	for worker := 0; worker < concurrency; worker++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				tables[i], errors[i] = c.fetchTaggedSeries(q, q.IDs[i])
			}
		}()
	}
	wg.Wait()

	for _, err := range errors {
		if err != nil {
			return nil, err
		}
	}

	combined := tabular.Concat(tables...)
	if q.Melted {
		return combined, nil
	}

	keys := []string{"ts-id", "units"}
	if combined.HasColumn("version-date") {
		keys = append(keys, "version-date")
	}
	return tabular.Pivot(combined, "date-time", keys, "value")
}

// fetchTaggedSeries retrieves one series and tags its values table
// with the series id, unit, and version marker.
func (c *Client) fetchTaggedSeries(q MultiTimeseriesQuery, qualifiedID string) (*tabular.Table, error) {
	id, version := splitVersionMarker(qualifiedID)

	tsq := TimeseriesQuery{
		ID:     id,
		Office: q.Office,
		Unit:   q.Unit,
		Begin:  q.Begin,
		End:    q.End,
	}
	if version != "" {
		versionDate, err := parseVersionMarker(version)
		if err != nil {
			return nil, err
		}
		tsq.VersionDate = versionDate
	}

	data, err := c.Timeseries(tsq)
	if err != nil {
		return nil, err
	}
	t, err := data.Table()
	if err != nil {
		return nil, err
	}

	units := q.Unit
	if doc, isDict := data.JSON().(cdadata.Dict); isDict {
		if u, isString := doc["units"].(string); isString {
			units = u
		}
	}

	t = t.WithColumn("ts-id", id).WithColumn("units", units)
	if version != "" {
		t = t.WithColumn("version-date", version)
	}
	return t, nil
}

// splitVersionMarker splits "id:version" on the first colon.  Series
// ids never contain colons; version markers may.
func splitVersionMarker(qualifiedID string) (id, version string) {
	parts := strings.SplitN(qualifiedID, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return qualifiedID, ""
}

func parseVersionMarker(version string) (time.Time, error) {
	for _, layout := range versionDateFormats {
		if stamp, err := time.Parse(layout, version); err == nil {
			return stamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("cdaclient: cannot parse version date %q", version)
}
