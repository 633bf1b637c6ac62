package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/search-aggregator/internal/search"
	"github.com/pdiddy/search-aggregator/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve GET /search over HTTP",
	Long: `Serve starts an HTTP server answering GET /search?q=<query>&limit=<1..10>
with a JSON list of deduplicated results. Upstream failures never fail a
request; they only shrink the result list.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().Duration("http-timeout", 0, "outbound request timeout (default 10s)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("http.timeout", serveCmd.Flags().Lookup("http-timeout"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	agg := search.NewFromConfig(cfg, nil)
	logger.Info().
		Int("backends", len(agg.Backends)).
		Str("wikipedia", cfg.Wikipedia.BaseURL).
		Dur("http_timeout", cfg.HTTP.Timeout).
		Msg("starting search aggregator")

	return server.New(agg, logger).Run(ctx, cfg.Server)
}
