// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search aggregates results from the DuckDuckGo instant-answer API
// and the Wikipedia search API into one deduplicated, normalized list.
//
// Backends are queried one after another. A later backend is only asked
// when the earlier ones left the result set short of the requested limit.
// Backend failures never fail a search: the failing backend simply
// contributes nothing.
package search

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/search-aggregator/pkg/types"
)

// DefaultTitle is used for results that arrive without a title.
const DefaultTitle = "Источник"

// Backend queries a single upstream API and returns its candidates in
// upstream order. Candidates need not be unique; the Aggregator dedups them.
type Backend interface {
	Name() string
	Search(ctx context.Context, req Request) ([]types.SearchResult, error)
}

// BackendError wraps an upstream failure with the name of the backend that
// produced it.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// ResultSet accumulates results in insertion order and rejects any result
// whose trimmed URL is empty or already present.
type ResultSet struct {
	defaultTitle string
	results      []types.SearchResult
	seen         map[string]struct{}
}

// NewResultSet returns an empty set. Results pushed without a title get
// defaultTitle, or DefaultTitle when defaultTitle is empty.
func NewResultSet(defaultTitle string) *ResultSet {
	if defaultTitle == "" {
		defaultTitle = DefaultTitle
	}
	return &ResultSet{
		defaultTitle: defaultTitle,
		seen:         make(map[string]struct{}),
	}
}

// Push normalizes r and appends it unless its URL is empty or a duplicate.
// It reports whether r was added.
func (s *ResultSet) Push(r types.SearchResult) bool {
	u := strings.TrimSpace(r.URL)
	if u == "" {
		return false
	}
	if _, ok := s.seen[u]; ok {
		return false
	}
	s.seen[u] = struct{}{}

	title := r.Title
	if title == "" {
		title = s.defaultTitle
	}
	source := r.Source
	if source == "" {
		source = types.SourceWeb
	}
	s.results = append(s.results, types.SearchResult{
		Title:   strings.TrimSpace(title),
		URL:     u,
		Snippet: strings.TrimSpace(r.Snippet),
		Source:  source,
	})
	return true
}

// Len returns the number of accepted results.
func (s *ResultSet) Len() int { return len(s.results) }

// Results returns at most limit results. The slice is never nil.
func (s *ResultSet) Results(limit int) []types.SearchResult {
	n := min(len(s.results), max(limit, 0))
	out := make([]types.SearchResult, n)
	copy(out, s.results[:n])
	return out
}

// Aggregator runs a query through its backends in order.
type Aggregator struct {
	Backends     []Backend
	DefaultTitle string
}

// NewFromConfig builds an Aggregator with the backends enabled in cfg, the
// DuckDuckGo backend first. A nil client gets one with cfg.HTTP.Timeout.
func NewFromConfig(cfg types.Config, client *http.Client) *Aggregator {
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTP.Timeout}
	}
	a := &Aggregator{DefaultTitle: cfg.Results.DefaultTitle}
	if cfg.DuckDuckGo.Enabled {
		a.Backends = append(a.Backends, &DuckDuckGoBackend{
			Client:    client,
			BaseURL:   cfg.DuckDuckGo.BaseURL,
			UserAgent: cfg.HTTP.UserAgent,
		})
	}
	if cfg.Wikipedia.Enabled {
		a.Backends = append(a.Backends, &WikipediaBackend{
			Client:    client,
			BaseURL:   cfg.Wikipedia.BaseURL,
			UserAgent: cfg.HTTP.UserAgent,
		})
	}
	return a
}

// Search collects up to req.Limit unique results. It always returns a
// response; backend errors are logged through the context logger and
// otherwise ignored.
func (a *Aggregator) Search(ctx context.Context, req Request) types.SearchResponse {
	log := zerolog.Ctx(ctx)
	set := NewResultSet(a.DefaultTitle)

	for _, b := range a.Backends {
		if set.Len() >= req.Limit {
			break
		}
		candidates, err := b.Search(ctx, req)
		if err != nil {
			berr := &BackendError{Backend: b.Name(), Err: err}
			log.Warn().Err(berr).Str("backend", b.Name()).Msg("backend failed, continuing without it")
			continue
		}
		added := 0
		for _, c := range candidates {
			if set.Push(c) {
				added++
			}
			if set.Len() >= req.Limit {
				break
			}
		}
		log.Debug().Str("backend", b.Name()).Int("candidates", len(candidates)).Int("added", added).Msg("backend contributed")
	}

	results := set.Results(req.Limit)
	return types.SearchResponse{
		Query:   req.Query,
		Count:   len(results),
		Results: results,
	}
}
