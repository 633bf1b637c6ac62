// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the search aggregator:
// the normalized result record, the response envelope, and configuration.
package types

// Source tags attached to results.
const (
	SourceDuckDuckGo = "duckduckgo"
	SourceWikipedia  = "wikipedia"
	SourceWeb        = "web"
)

// SearchResult is a single normalized hit returned by one of the upstream
// backends. URL is the uniqueness key within a response.
type SearchResult struct {
	// Title is the cleaned result title.
	Title string `json:"title" yaml:"title"`

	// URL is the target address, already unwrapped from redirect links.
	URL string `json:"url" yaml:"url"`

	// Snippet is a short plain-text description, possibly empty.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Source identifies which backend produced the result (e.g. "duckduckgo", "wikipedia").
	Source string `json:"source" yaml:"source"`
}

// SearchResponse is the body returned by GET /search.
type SearchResponse struct {
	Query   string         `json:"query" yaml:"query"`
	Count   int            `json:"count" yaml:"count"`
	Results []SearchResult `json:"results" yaml:"results"`
}

// ErrorResponse is the body returned for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
