// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pdiddy/search-aggregator/internal/httputil"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

// DefaultDuckDuckGoURL is the instant-answer API endpoint.
const DefaultDuckDuckGoURL = "https://api.duckduckgo.com/"

// duckDuckGoLabel titles results whose text is empty.
const duckDuckGoLabel = "DuckDuckGo"

// DuckDuckGoBackend queries the DuckDuckGo instant-answer API.
type DuckDuckGoBackend struct {
	Client *http.Client
	// BaseURL overrides DefaultDuckDuckGoURL.
	BaseURL   string
	UserAgent string
}

// Name returns the backend identifier.
func (b *DuckDuckGoBackend) Name() string { return types.SourceDuckDuckGo }

// Search returns the abstract answer (if any), then the direct results, then
// the flattened related topics.
func (b *DuckDuckGoBackend) Search(ctx context.Context, req Request) ([]types.SearchResult, error) {
	base := b.BaseURL
	if base == "" {
		base = DefaultDuckDuckGoURL
	}
	params := url.Values{
		"q":             {req.Query},
		"format":        {"json"},
		"no_html":       {"1"},
		"skip_disambig": {"1"},
		"no_redirect":   {"1"},
	}

	var data ddgResponse
	if err := httputil.GetJSON(ctx, b.Client, base+"?"+params.Encode(), b.UserAgent, &data); err != nil {
		return nil, err
	}

	var results []types.SearchResult
	if data.AbstractURL != "" && data.AbstractText != "" {
		title := data.Heading
		if title == "" {
			title = duckDuckGoLabel
		}
		results = append(results, types.SearchResult{
			Title:   title,
			URL:     data.AbstractURL,
			Snippet: StripHTML(data.AbstractText),
			Source:  types.SourceDuckDuckGo,
		})
	}
	for _, item := range data.Results {
		results = append(results, topicResult(item))
	}
	for _, item := range flattenTopics(data.RelatedTopics) {
		results = append(results, topicResult(item))
	}
	return results, nil
}

func topicResult(t ddgTopic) types.SearchResult {
	text := StripHTML(t.Text)
	title := text
	if title == "" {
		title = duckDuckGoLabel
	}
	return types.SearchResult{
		Title:   title,
		URL:     DecodeRedirectURL(t.FirstURL),
		Snippet: text,
		Source:  types.SourceDuckDuckGo,
	}
}

// flattenTopics walks nested topic groups depth-first and returns the leaf
// topics in encounter order. A topic is a group when it carries a Topics
// array, even an empty one. The payload is tree-shaped JSON, so there are
// no cycles to guard against.
func flattenTopics(topics []ddgTopic) []ddgTopic {
	var flat []ddgTopic
	for _, t := range topics {
		if t.Topics != nil {
			flat = append(flat, flattenTopics(t.Topics)...)
			continue
		}
		flat = append(flat, t)
	}
	return flat
}

// DuckDuckGo instant-answer JSON structures.
type ddgResponse struct {
	Heading       string     `json:"Heading"`
	AbstractText  string     `json:"AbstractText"`
	AbstractURL   string     `json:"AbstractURL"`
	Results       []ddgTopic `json:"Results"`
	RelatedTopics []ddgTopic `json:"RelatedTopics"`
}

type ddgTopic struct {
	Text     string     `json:"Text"`
	FirstURL string     `json:"FirstURL"`
	Name     string     `json:"Name,omitempty"`
	Topics   []ddgTopic `json:"Topics,omitempty"`
}
