package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/search-aggregator/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run one aggregated search and print the results",
	Long: `Search runs the same DuckDuckGo-then-Wikipedia aggregation as the HTTP
endpoint and prints the results as a table, JSON, or YAML.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", search.DefaultLimit, "maximum number of results (1-10)")
	searchCmd.Flags().String("format", "table", "output format: table, json, or yaml")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	req, err := search.NewRequest(strings.Join(args, " "), limit)
	if err != nil {
		return fmt.Errorf("provide a search query: %w", err)
	}

	ctx := logger.WithContext(cmd.Context())
	resp := search.NewFromConfig(cfg, nil).Search(ctx, req)

	switch format {
	case "table":
		search.FormatTable(resp, os.Stdout)
		return nil
	case "json":
		return search.FormatJSON(resp, os.Stdout)
	case "yaml":
		return search.FormatYAML(resp, os.Stdout)
	default:
		return fmt.Errorf("unknown format %q (want table, json, or yaml)", format)
	}
}
