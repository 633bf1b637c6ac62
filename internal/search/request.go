// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Limits on the number of results a single request may ask for.
const (
	DefaultLimit = 6
	MinLimit     = 1
	MaxLimit     = 10
)

// ErrEmptyQuery is returned when the query is missing or blank after trimming.
var ErrEmptyQuery = errors.New("missing query parameter q")

// Request is a validated search request. Query is trimmed and non-empty;
// Limit lies in [MinLimit, MaxLimit].
type Request struct {
	Query string
	Limit int
}

// NewRequest trims query, clamps limit and rejects an empty query.
func NewRequest(query string, limit int) (Request, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return Request{}, ErrEmptyQuery
	}
	return Request{Query: q, Limit: ClampLimit(limit)}, nil
}

// ParseRequest builds a Request from the q and limit query parameters.
func ParseRequest(values url.Values) (Request, error) {
	return NewRequest(values.Get("q"), ParseLimit(values.Get("limit")))
}

// ParseLimit converts the raw limit parameter to a clamped integer. An empty
// or non-numeric value yields DefaultLimit; fractions are truncated.
func ParseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLimit
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) {
		return DefaultLimit
	}
	if f >= MaxLimit {
		return MaxLimit
	}
	if f <= MinLimit {
		return MinLimit
	}
	return int(f)
}

// ClampLimit bounds n to [MinLimit, MaxLimit].
func ClampLimit(n int) int {
	return max(MinLimit, min(MaxLimit, n))
}
