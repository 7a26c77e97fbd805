// Copyright 2025 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cdaclient

import (
	"time"

	"github.com/diffeo/go-cda/cdadata"
)

// RatingsQuery retrieves ratings for one rating id.  Begin and End
// bound the effective dates of the ratings, not the values.
type RatingsQuery struct {
	// RatingID names the rating specification.  Required.
	RatingID string

	// Office is the owning office; empty returns all offices.
	Office string

	// Begin and End bound the effective-date window.
	Begin time.Time
	End   time.Time

	// Timezone names the zone of Begin and End; UTC if empty.
	Timezone string

	// Method selects how much of each rating is returned: Eager
	// includes the point table, Lazy omits it, Reference returns only
	// spec metadata.
	Method cdadata.RatingMethod

	// SingleRating, with Eager, projects the single returned rating's
	// point table (selector "simple-rating.rating-points"): one row
	// per point with numeric ind and dep columns.
	SingleRating bool
}

// Ratings retrieves ratings for a rating id.  The projection selector
// depends on the method: Eager+SingleRating yields the point table,
// Reference the raw spec, anything else the simple-rating records.
func (c *Client) Ratings(q RatingsQuery) (*cdadata.Data, error) {
	if q.RatingID == "" {
		return nil, ErrNoRatingID
	}
	if !validRatingMethod(q.Method) {
		return nil, ErrInvalidRatingMethod
	}
	params := cdadata.RequestParams{
		"office":   nilIfEmpty(q.Office),
		"begin":    q.Begin,
		"end":      q.End,
		"timezone": nilIfEmpty(q.Timezone),
		"method":   q.Method,
	}
	doc, err := c.Get("ratings/{rating}", map[string]interface{}{"rating": q.RatingID}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	switch {
	case q.Method == cdadata.Eager && q.SingleRating:
		return cdadata.NewData(doc, "simple-rating.rating-points"), nil
	case q.Method == cdadata.Reference:
		return cdadata.NewData(doc, ""), nil
	default:
		return cdadata.NewData(doc, "simple-rating"), nil
	}
}

// RatingsXML retrieves ratings for a rating id as raw XML text, using
// the versioned XML content negotiation.
func (c *Client) RatingsXML(q RatingsQuery) (string, error) {
	if q.RatingID == "" {
		return "", ErrNoRatingID
	}
	if !validRatingMethod(q.Method) {
		return "", ErrInvalidRatingMethod
	}
	params := cdadata.RequestParams{
		"office":   nilIfEmpty(q.Office),
		"begin":    q.Begin,
		"end":      q.End,
		"timezone": nilIfEmpty(q.Timezone),
		"method":   q.Method,
	}
	return c.GetXML("ratings/{rating}", map[string]interface{}{"rating": q.RatingID}, params, cdadata.XMLV2)
}

// CurrentRatingEffectiveDate returns the most recent effective date
// recorded for a rating id, or the zero time when the spec carries no
// effective dates.
func (c *Client) CurrentRatingEffectiveDate(ratingID, office string) (time.Time, error) {
	if ratingID == "" {
		return time.Time{}, ErrNoRatingID
	}
	spec, err := c.RatingSpec(ratingID, office)
	if err != nil {
		return time.Time{}, err
	}
	doc, isDict := spec.JSON().(cdadata.Dict)
	if !isDict {
		return time.Time{}, nil
	}
	dates, _ := doc["effective-dates"].([]interface{})
	var max time.Time
	for _, raw := range dates {
		text, isString := raw.(string)
		if !isString {
			continue
		}
		stamp, err := parseVersionMarker(text)
		if err != nil {
			continue
		}
		if stamp.After(max) {
			max = stamp
		}
	}
	return max, nil
}

// CurrentRating retrieves the point table of the currently effective
// rating: the rating whose effective date is the most recent.
func (c *Client) CurrentRating(ratingID, office string) (*cdadata.Data, error) {
	effective, err := c.CurrentRatingEffectiveDate(ratingID, office)
	if err != nil {
		return nil, err
	}
	return c.Ratings(RatingsQuery{
		RatingID:     ratingID,
		Office:       office,
		Begin:        effective,
		End:          effective,
		Method:       cdadata.Eager,
		SingleRating: true,
	})
}

// RatingSpec retrieves the rating specification for one rating id.
func (c *Client) RatingSpec(ratingID, office string) (*cdadata.Data, error) {
	if ratingID == "" {
		return nil, ErrNoRatingID
	}
	params := cdadata.RequestParams{
		"office":         nilIfEmpty(office),
		"rating-id-mask": ratingID,
	}
	doc, err := c.Get("ratings/spec/{rating}", map[string]interface{}{"rating": ratingID}, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, ""), nil
}

// RatingSpecs lists rating specifications, paged under the "specs"
// field.
func (c *Client) RatingSpecs(office, ratingIDMask string, pageSize int) (*cdadata.Data, error) {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	params := cdadata.RequestParams{
		"office":         nilIfEmpty(office),
		"rating-id-mask": nilIfEmpty(ratingIDMask),
		"page-size":      pageSize,
	}
	doc, err := c.GetWithPaging("specs", "ratings/spec", nil, params, cdadata.V2)
	if err != nil {
		return nil, err
	}
	return cdadata.NewData(doc, "specs"), nil
}

// StoreRatings stores a rating set from pre-rendered XML, the format
// the ratings endpoints accept for writes.
func (c *Client) StoreRatings(xml string, storeTemplate bool) error {
	if xml == "" {
		return ErrNoData
	}
	params := cdadata.RequestParams{"store-template": storeTemplate}
	return c.Post("ratings", nil, xml, params, cdadata.XMLV2)
}

// UpdateRatings replaces an existing rating set from pre-rendered
// XML.
func (c *Client) UpdateRatings(ratingID, xml string, storeTemplate bool) error {
	if ratingID == "" {
		return ErrNoRatingID
	}
	if xml == "" {
		return ErrNoData
	}
	params := cdadata.RequestParams{"store-template": storeTemplate}
	return c.Patch("ratings/{rating}", map[string]interface{}{"rating": ratingID}, xml, params, cdadata.XMLV2)
}

// DeleteRatings removes ratings whose effective dates fall inside the
// required time window.
func (c *Client) DeleteRatings(ratingID, office string, begin, end time.Time, timezone string) error {
	if ratingID == "" {
		return ErrNoRatingID
	}
	if office == "" {
		return ErrNoOfficeID
	}
	if begin.IsZero() || end.IsZero() {
		return ErrNoTimeWindow
	}
	params := cdadata.RequestParams{
		"office":   office,
		"begin":    begin,
		"end":      end,
		"timezone": nilIfEmpty(timezone),
	}
	return c.Delete("ratings/{rating}", map[string]interface{}{"rating": ratingID}, params, cdadata.V2)
}
