package cmd

import (
	"os"

	"github.com/nikogura/brand-weaver/pkg/config"
	"github.com/nikogura/brand-weaver/pkg/linkedin"
	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/nikogura/brand-weaver/pkg/metrics"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "brand-weaver",
	Short: "Turn a LinkedIn profile into a personal website",
	Long: `brand-weaver extracts a LinkedIn profile and generates a static personal
website from it: index.html, styles.css, sitemap.xml and robots.txt.

Sites can be rendered in English, Arabic (right-to-left) or both, at three
aesthetic levels, previewed through the built-in HTTP server, downloaded as
a ZIP archive, or deployed (simulated) to GitHub Pages, Netlify or Vercel.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.brand-weaver/config.json)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// loadConfig reads .env and the config file. A missing config file yields
// defaults.
func loadConfig() (cfg config.Config, err error) {
	err = config.LoadEnv()
	if err != nil {
		return cfg, err
	}

	cfg, err = config.LoadOrDefault(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}

	return cfg, err
}

// newLogger builds the structured logger. Verbose mode lowers the level to
// debug.
func newLogger(cfg config.Config) (logger logging.Logger, err error) {
	level := cfg.Logging.Level
	if getVerbose() {
		level = "debug"
	}

	logger, err = logging.New(logging.Config{
		Level:       level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create logger")
		return logger, err
	}

	return logger, err
}

// newExtractor wires the profile data client when an API key is configured.
func newExtractor(cfg config.Config, logger logging.Logger, recorder metrics.Recorder) (extractor *linkedin.Extractor) {
	var fetcher linkedin.Fetcher

	if cfg.RapidAPIKey != "" {
		opts := []linkedin.ClientOption{
			linkedin.WithRetryObserver(func(attempt int, err error) {
				recorder.IncUpstreamRetry()
				logger.Warn("retrying profile fetch", logging.Int("attempt", attempt), logging.Err(err))
			}),
		}
		if cfg.RapidAPIHost != "" {
			opts = append(opts, linkedin.WithHost(cfg.RapidAPIHost))
		}
		if cfg.APIEndpoint != "" {
			opts = append(opts, linkedin.WithEndpoint(cfg.APIEndpoint))
		}
		fetcher = linkedin.NewClient(cfg.RapidAPIKey, opts...)
	}

	extractor = linkedin.NewExtractor(fetcher,
		linkedin.WithSampleFallback(cfg.SampleFallback),
		linkedin.WithLogger(logger),
		linkedin.WithRecorder(recorder),
	)

	return extractor
}
