// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/search-aggregator/pkg/types"
)

const sampleWikiJSON = `{
  "batchcomplete": "",
  "query": {
    "searchinfo": {"totalhits": 3},
    "search": [
      {"ns": 0, "title": "Москва", "pageid": 202, "snippet": "<span class=\"searchmatch\">Москва</span> — столица России"},
      {"ns": 0, "title": "   ", "pageid": 1, "snippet": "untitled"},
      {"ns": 0, "title": "New York City", "pageid": 645042, "snippet": "the most populous city"}
    ]
  }
}`

func wikiTestServer(statusCode int, body string, gotPath *string, gotQuery *url.Values, gotUA *string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.Path
		}
		if gotQuery != nil {
			*gotQuery = r.URL.Query()
		}
		if gotUA != nil {
			*gotUA = r.Header.Get("User-Agent")
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

func TestWikipediaBackendSearch(t *testing.T) {
	var path, ua string
	var q url.Values
	ts := wikiTestServer(http.StatusOK, sampleWikiJSON, &path, &q, &ua)
	defer ts.Close()

	b := &WikipediaBackend{Client: ts.Client(), BaseURL: ts.URL + "/", UserAgent: "QuizTrainer/1.0 (+vercel)"}
	results, err := b.Search(context.Background(), Request{Query: "москва", Limit: 3})
	require.NoError(t, err)

	assert.Equal(t, "/w/api.php", path)
	assert.Equal(t, "query", q.Get("action"))
	assert.Equal(t, "search", q.Get("list"))
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "1", q.Get("utf8"))
	assert.Equal(t, "3", q.Get("srlimit"))
	assert.Equal(t, "москва", q.Get("srsearch"))
	assert.Equal(t, "QuizTrainer/1.0 (+vercel)", ua)

	want := []types.SearchResult{
		{
			Title:   "Москва",
			URL:     ts.URL + "/wiki/%D0%9C%D0%BE%D1%81%D0%BA%D0%B2%D0%B0",
			Snippet: "Москва — столица России",
			Source:  "wikipedia",
		},
		{
			Title:   "New York City",
			URL:     ts.URL + "/wiki/New_York_City",
			Snippet: "the most populous city",
			Source:  "wikipedia",
		},
	}
	assert.Equal(t, want, results)
}

func TestWikipediaBackendMissingQueryBlock(t *testing.T) {
	ts := wikiTestServer(http.StatusOK, `{"batchcomplete": ""}`, nil, nil, nil)
	defer ts.Close()

	b := &WikipediaBackend{Client: ts.Client(), BaseURL: ts.URL}
	results, err := b.Search(context.Background(), Request{Query: "q", Limit: 6})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestWikipediaBackendHTTPError(t *testing.T) {
	ts := wikiTestServer(http.StatusTooManyRequests, "slow down", nil, nil, nil)
	defer ts.Close()

	b := &WikipediaBackend{Client: ts.Client(), BaseURL: ts.URL}
	_, err := b.Search(context.Background(), Request{Query: "q", Limit: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestWikipediaBackendName(t *testing.T) {
	assert.Equal(t, "wikipedia", (&WikipediaBackend{}).Name())
}
