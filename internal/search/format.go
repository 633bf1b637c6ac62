// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/search-aggregator/pkg/types"
)

var (
	colorHeader = color.New(color.Bold)
	colorSource = color.New(color.FgCyan)
)

// FormatTable writes the response as a human-readable table to w.
func FormatTable(resp types.SearchResponse, w io.Writer) {
	if len(resp.Results) == 0 {
		fmt.Fprintf(w, "No results found for %q.\n", resp.Query)
		return
	}

	colorHeader.Fprintf(w, "%-4s  %-50s  %-10s  %s\n", "Rank", "Title", "Source", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range resp.Results {
		fmt.Fprintf(w, "%-4d  %-50s  ", i+1, truncate(r.Title, 50))
		colorSource.Fprintf(w, "%-10s", r.Source)
		fmt.Fprintf(w, "  %s\n", r.URL)
	}

	fmt.Fprintf(w, "\n%d results for %q\n", resp.Count, resp.Query)
}

// FormatJSON writes the response as indented JSON to w.
func FormatJSON(resp types.SearchResponse, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

// FormatYAML writes the response as YAML to w.
func FormatYAML(resp types.SearchResponse, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// truncate shortens s to at most max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
