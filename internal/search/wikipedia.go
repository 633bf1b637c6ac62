// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pdiddy/search-aggregator/internal/httputil"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

// DefaultWikipediaURL is the origin of the default (Russian) wiki edition.
const DefaultWikipediaURL = "https://ru.wikipedia.org"

// WikipediaBackend queries the MediaWiki full-text search API.
type WikipediaBackend struct {
	Client *http.Client
	// BaseURL is the wiki origin; the API lives under /w/api.php and
	// articles under /wiki/.
	BaseURL   string
	UserAgent string
}

// Name returns the backend identifier.
func (b *WikipediaBackend) Name() string { return types.SourceWikipedia }

// Search requests up to req.Limit hits and maps each titled hit to its
// canonical article URL.
func (b *WikipediaBackend) Search(ctx context.Context, req Request) ([]types.SearchResult, error) {
	base := strings.TrimRight(b.BaseURL, "/")
	if base == "" {
		base = DefaultWikipediaURL
	}
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"format":   {"json"},
		"utf8":     {"1"},
		"srlimit":  {strconv.Itoa(req.Limit)},
		"srsearch": {req.Query},
	}

	var data wikiResponse
	if err := httputil.GetJSON(ctx, b.Client, base+"/w/api.php?"+params.Encode(), b.UserAgent, &data); err != nil {
		return nil, err
	}

	var results []types.SearchResult
	for _, hit := range data.Query.Search {
		title := strings.TrimSpace(hit.Title)
		if title == "" {
			continue
		}
		results = append(results, types.SearchResult{
			Title:   title,
			URL:     base + "/wiki/" + articlePath(title),
			Snippet: StripHTML(hit.Snippet),
			Source:  types.SourceWikipedia,
		})
	}
	return results, nil
}

// articlePath turns a page title into its /wiki/ path segment: whitespace
// runs become underscores and the result is component-encoded.
func articlePath(title string) string {
	return encodeURIComponent(strings.Join(strings.Fields(title), "_"))
}

// MediaWiki search JSON structures.
type wikiResponse struct {
	Query wikiQuery `json:"query"`
}

type wikiQuery struct {
	Search []wikiHit `json:"search"`
}

type wikiHit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	PageID  int    `json:"pageid"`
}
