package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikogura/brand-weaver/pkg/config"
	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/nikogura/brand-weaver/pkg/export"
	"github.com/nikogura/brand-weaver/pkg/fallback"
	"github.com/nikogura/brand-weaver/pkg/logging"
	"github.com/nikogura/brand-weaver/pkg/metrics"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/nikogura/brand-weaver/pkg/site"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var designFile string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var siteLanguage string

//nolint:gochecknoglobals // Cobra boilerplate
var aestheticLevel string

//nolint:gochecknoglobals // Cobra boilerplate
var colorScheme string

//nolint:gochecknoglobals // Cobra boilerplate
var typography string

//nolint:gochecknoglobals // Cobra boilerplate
var whatsAppNumber string

//nolint:gochecknoglobals // Cobra boilerplate
var phoneNumber string

//nolint:gochecknoglobals // Cobra boilerplate
var analyticsID string

//nolint:gochecknoglobals // Cobra boilerplate
var baseURL string

//nolint:gochecknoglobals // Cobra boilerplate
var sampleUsername string

//nolint:gochecknoglobals // Cobra boilerplate
var fromLinkedIn string

//nolint:gochecknoglobals // Cobra boilerplate
var writeZip bool

//nolint:gochecknoglobals // Cobra boilerplate
var withData bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate [profile.json]",
	Short: "Generate a personal website from profile data",
	Long: `Generate a static personal website (index.html, styles.css, sitemap.xml,
robots.txt) from profile data.

Profile data can come from:
- A JSON file written by 'brand-weaver extract'
- A LinkedIn profile, extracted on the fly with --from-linkedin
- Built-in sample data with --sample <username>

Design choices come from a design JSON file (--design) and/or flags. Flags
override the file.

Example:
  brand-weaver generate jane.json --language both --level premium
  brand-weaver generate --from-linkedin jane-doe --color-scheme elegant-purple --zip
  brand-weaver generate --sample jane-doe --design design.json --output-dir ./public`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&designFile, "design", "", "Design config JSON file")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	generateCmd.Flags().StringVar(&siteLanguage, "language", "", "Site language: english, arabic or both")
	generateCmd.Flags().StringVar(&aestheticLevel, "level", "", "Aesthetic level: standard, enhanced or premium")
	generateCmd.Flags().StringVar(&colorScheme, "color-scheme", "", "Color scheme preset ID (e.g. modern-blue)")
	generateCmd.Flags().StringVar(&typography, "typography", "", "Typography preset ID (e.g. tech-minimalist)")
	generateCmd.Flags().StringVar(&whatsAppNumber, "whatsapp", "", "WhatsApp number for the floating contact button")
	generateCmd.Flags().StringVar(&phoneNumber, "phone", "", "Phone number for the floating contact button")
	generateCmd.Flags().StringVar(&analyticsID, "ga-id", "", "Google Analytics measurement ID")
	generateCmd.Flags().StringVar(&baseURL, "base-url", "", "Public site URL for sitemap.xml and robots.txt (default from config)")
	generateCmd.Flags().StringVar(&sampleUsername, "sample", "", "Use sample profile data for this username")
	generateCmd.Flags().StringVar(&fromLinkedIn, "from-linkedin", "", "Extract this LinkedIn URL or username first")
	generateCmd.Flags().BoolVar(&writeZip, "zip", false, "Also write a ZIP archive next to the output directory")
	generateCmd.Flags().BoolVar(&withData, "with-data", false, "Include profile-data.json in the ZIP archive")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var data profile.Data
	data, err = loadProfileData(ctx, cfg, args)
	if err != nil {
		return err
	}

	var designCfg design.Config
	designCfg, err = buildDesign(designFile, designOverrides{
		Language:       siteLanguage,
		AestheticLevel: aestheticLevel,
		ColorScheme:    colorScheme,
		Typography:     typography,
		WhatsAppNumber: whatsAppNumber,
		PhoneNumber:    phoneNumber,
		AnalyticsID:    analyticsID,
	})
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("Generating %s site (%s) for %s\n", designCfg.Language, designCfg.AestheticLevel, data.Profile.FullName)
	}

	generator := site.New(site.WithBaseURL(fallback.FirstString(baseURL, cfg.Site.BaseURL)))

	var bundle site.Bundle
	bundle, err = generator.Generate(data, designCfg)
	if err != nil {
		err = errors.Wrap(err, "failed to generate website")
		return err
	}

	outDir := getOutputDir(outputDir, cfg.Defaults.OutputDir)
	err = export.WriteBundle(bundle, outDir)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Website written to %s\n", outDir)
	for _, name := range bundle.Names() {
		fmt.Printf("  %-12s %7d bytes\n", name, len(bundle[name]))
	}

	if !writeZip && !withData {
		return err
	}

	archive := archivePath(outDir, data.Profile.FullName)
	err = writeArchive(archive, func(w io.Writer) (zipErr error) {
		if withData {
			zipErr = export.WriteDataZip(w, data, bundle, time.Now())
			return zipErr
		}
		zipErr = export.WriteZip(w, bundle)
		return zipErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Archive written to %s\n", archive)
	return err
}

// loadProfileData picks the profile source: sample data, live extraction or
// a JSON file.
func loadProfileData(ctx context.Context, cfg config.Config, args []string) (data profile.Data, err error) {
	switch {
	case sampleUsername != "":
		data = profile.Sample(sampleUsername, time.Now())
		return data, err

	case fromLinkedIn != "":
		var logger logging.Logger
		logger, err = newLogger(cfg)
		if err != nil {
			return data, err
		}
		defer func() { _ = logger.Sync() }()

		data, err = extractProfile(ctx, newExtractor(cfg, logger, metrics.NoopRecorder{}), fromLinkedIn)
		return data, err

	case len(args) == 1:
		if getVerbose() {
			fmt.Printf("Loading profile data from: %s\n", args[0])
		}
		data, err = profile.Load(args[0])
		if err != nil {
			err = errors.Wrap(err, "failed to load profile data")
			return data, err
		}
		return data, err
	}

	err = errors.New("profile data required: pass a JSON file, --from-linkedin or --sample")
	return data, err
}

type designOverrides struct {
	Language       string
	AestheticLevel string
	ColorScheme    string
	Typography     string
	WhatsAppNumber string
	PhoneNumber    string
	AnalyticsID    string
}

// buildDesign loads the design file (or the default design) and applies flag
// overrides.
func buildDesign(path string, overrides designOverrides) (cfg design.Config, err error) {
	cfg = design.Default()
	if path != "" {
		cfg, err = design.Load(path)
		if err != nil {
			return cfg, err
		}
	}

	if overrides.Language != "" {
		cfg.Language = design.Language(strings.ToLower(overrides.Language))
	}
	if overrides.AestheticLevel != "" {
		cfg.AestheticLevel = design.AestheticLevel(strings.ToLower(overrides.AestheticLevel))
	}
	if overrides.ColorScheme != "" {
		scheme, ok := design.ColorSchemeByID(overrides.ColorScheme)
		if !ok {
			err = errors.Errorf("unknown color scheme: %s", overrides.ColorScheme)
			return cfg, err
		}
		cfg.ColorScheme = scheme
	}
	if overrides.Typography != "" {
		font, ok := design.TypographyByID(overrides.Typography)
		if !ok {
			err = errors.Errorf("unknown typography: %s", overrides.Typography)
			return cfg, err
		}
		cfg.Typography = font
	}
	if overrides.WhatsAppNumber != "" {
		cfg.WhatsAppNumber = overrides.WhatsAppNumber
	}
	if overrides.PhoneNumber != "" {
		cfg.PhoneNumber = overrides.PhoneNumber
	}
	if overrides.AnalyticsID != "" {
		if cfg.Analytics == nil {
			cfg.Analytics = &design.Analytics{}
		}
		cfg.Analytics.GoogleAnalyticsID = overrides.AnalyticsID
	}

	cfg.ApplyDefaults()
	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid design")
		return cfg, err
	}

	return cfg, err
}

// getOutputDir returns the flag value, or the configured default.
func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = fallback.FirstString(flagValue, configValue, "./site")
	return outDir
}

// archivePath places "<name>-website.zip" beside outDir.
func archivePath(outDir, name string) (path string) {
	slug := sanitizeFilename(name)
	if slug == "" {
		slug = "personal"
	}
	path = filepath.Join(filepath.Dir(filepath.Clean(outDir)), slug+"-website.zip")
	return path
}

func writeArchive(path string, write func(w io.Writer) error) (err error) {
	var file *os.File
	file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to create archive: %s", path)
		return err
	}

	err = write(file)
	closeErr := file.Close()
	if err == nil && closeErr != nil {
		err = errors.Wrapf(closeErr, "failed to close archive: %s", path)
	}

	return err
}

// sanitizeFilename lowercases name and replaces runs of anything other than
// ASCII letters and digits with single hyphens.
func sanitizeFilename(name string) (sanitized string) {
	sanitized = strings.ToLower(name)

	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	sanitized = strings.Trim(sanitized, "-")

	return sanitized
}
