package cmd

import (
	"fmt"

	"github.com/nikogura/brand-weaver/pkg/config"
	"github.com/nikogura/brand-weaver/pkg/fallback"
	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/nikogura/brand-weaver/pkg/metrics"
	"github.com/nikogura/brand-weaver/pkg/server"
	"github.com/nikogura/brand-weaver/pkg/session"
	"github.com/nikogura/brand-weaver/pkg/site"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var listenAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API used by the website builder UI.

Routes:
  POST /api/extract         extract a LinkedIn profile
  POST /api/generate        generate a website for a session
  GET  /api/preview         preview the generated index.html
  POST /api/deploy          simulate a deployment
  GET  /api/dns-guidance    DNS records for a custom domain
  GET  /api/download/site   website ZIP
  GET  /api/download/data   profile data JSON
  GET  /api/download/zip    profile data plus website ZIP
  GET  /api/presets         color schemes, typography and aesthetic levels
  GET  /health              liveness
  GET  /metrics             Prometheus metrics

Example:
  brand-weaver serve
  brand-weaver serve --listen 127.0.0.1:8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var logger logging.Logger
	logger, err = newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewPrometheusRecorder(reg)

	if cfg.RapidAPIKey == "" {
		logger.Warn("no RAPIDAPI_KEY configured", logging.Bool("sample_fallback", cfg.SampleFallback))
	}

	srv := server.New(
		server.Config{
			ListenAddr:         fallback.FirstString(listenAddr, cfg.Server.ListenAddr),
			RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
			Debug:              getVerbose(),
		},
		server.WithLogger(logger),
		server.WithRecorder(recorder),
		server.WithRegistry(reg),
		server.WithStore(session.NewMemoryStore()),
		server.WithExtractor(newExtractor(cfg, logger, recorder)),
		server.WithGenerator(site.New(site.WithBaseURL(cfg.Site.BaseURL))),
	)

	fmt.Printf("Serving on %s\n", fallback.FirstString(listenAddr, cfg.Server.ListenAddr))

	err = srv.Run(cmd.Context())
	return err
}
