package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nikogura/brand-weaver/pkg/config"
	"github.com/nikogura/brand-weaver/pkg/linkedin"
	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/nikogura/brand-weaver/pkg/metrics"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var extractOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var extractCmd = &cobra.Command{
	Use:   "extract <linkedin-url-or-username>",
	Short: "Extract LinkedIn profile data as JSON",
	Long: `Extract a LinkedIn profile through the profile data service and write the
normalized profile data as JSON.

The profile can be given as a full URL or a bare username. Without a
RAPIDAPI_KEY, sample data is produced when sample_fallback is enabled.

Example:
  brand-weaver extract https://www.linkedin.com/in/jane-doe/ -o jane.json
  brand-weaver extract jane-doe > jane.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file (default stdout)")
}

func runExtract(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

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

	if cfg.RapidAPIKey == "" && getVerbose() {
		fmt.Fprintln(os.Stderr, "No RAPIDAPI_KEY configured")
	}

	var data profile.Data
	data, err = extractProfile(ctx, newExtractor(cfg, logger, metrics.NoopRecorder{}), args[0])
	if err != nil {
		return err
	}

	var out []byte
	out, err = json.MarshalIndent(data, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal profile data")
		return err
	}

	if extractOutput == "" {
		fmt.Println(string(out))
		return err
	}

	err = os.WriteFile(extractOutput, out, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write profile data: %s", extractOutput)
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Profile data for %s written to %s\n", data.Profile.FullName, extractOutput)
	return err
}

// extractProfile runs the extractor behind a spinner and folds the failure
// hint into the returned error.
func extractProfile(ctx context.Context, extractor *linkedin.Extractor, identifier string) (data profile.Data, err error) {
	err = withSpinner(os.Stderr, "Extracting LinkedIn profile...", func() (fnErr error) {
		data, fnErr = extractor.Extract(ctx, identifier)
		return fnErr
	})
	if err != nil {
		err = errors.Wrapf(err, "extraction failed (%s): %s", linkedin.KindOf(err), linkedin.HintOf(err))
		return data, err
	}

	if getVerbose() {
		fmt.Fprintf(os.Stderr, "Extracted %d experience entries, %d skills, %d featured posts\n",
			len(data.Experience), len(data.Skills), len(data.FeaturedPosts))
	}

	return data, err
}
