// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the search aggregator over HTTP.
//
//	GET /search?q=<query>&limit=<1..10>  -> 200 {query, count, results}
//	GET /healthz                         -> 200 {"status":"ok"}
//
// Only a missing query (400) or a non-GET method (405) produce an error
// response. Upstream outages degrade to an empty result list.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/pdiddy/search-aggregator/internal/search"
	"github.com/pdiddy/search-aggregator/pkg/types"
)

// Response bodies for rejected requests.
const (
	msgMissingQuery     = "Missing query parameter q"
	msgMethodNotAllowed = "Method Not Allowed"
)

// Searcher runs one aggregated search. *search.Aggregator implements it.
type Searcher interface {
	Search(ctx context.Context, req search.Request) types.SearchResponse
}

// Server routes requests to the search handler.
type Server struct {
	searcher Searcher
	log      zerolog.Logger
	handler  http.Handler
}

// New returns a Server answering with searcher and logging to log.
func New(searcher Searcher, log zerolog.Logger) *Server {
	s := &Server{searcher: searcher, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/healthz", s.handleHealth)
	s.handler = s.withRequestLog(mux)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	setJSONHeaders(w)
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, types.ErrorResponse{Error: msgMethodNotAllowed})
		return
	}

	// ErrEmptyQuery is the only way ParseRequest fails.
	req, err := search.ParseRequest(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Error: msgMissingQuery})
		return
	}

	resp := s.searcher.Search(r.Context(), req)
	zerolog.Ctx(r.Context()).Debug().
		Str("query", req.Query).
		Int("limit", req.Limit).
		Int("count", resp.Count).
		Msg("search complete")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	setJSONHeaders(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func setJSONHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
