package design

import (
	"encoding/json"
	"io"
	"os"
	"regexp"

	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // compiled once
var (
	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	fontNamePattern   = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
	trackingIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

// Load reads a design configuration from a JSON file.
func Load(path string) (cfg Config, err error) {
	var file *os.File
	file, err = os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open design file: %s", path)
		return cfg, err
	}
	defer file.Close()

	cfg, err = Decode(file)
	if err != nil {
		err = errors.Wrapf(err, "failed to load design: %s", path)
		return cfg, err
	}

	return cfg, err
}

// Decode parses design JSON, fills defaults and validates the result.
func Decode(r io.Reader) (cfg Config, err error) {
	err = json.NewDecoder(r).Decode(&cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to parse design JSON")
		return cfg, err
	}

	cfg.ApplyDefaults()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "design validation failed")
		return cfg, err
	}

	return cfg, err
}

// ApplyDefaults fills empty fields from the presets. A color scheme or
// typography that names a known preset ID but leaves values empty picks up
// the preset's values.
func (c *Config) ApplyDefaults() {
	if c.Language == "" {
		c.Language = English
	}

	if c.AestheticLevel == "" {
		c.AestheticLevel = Standard
	}

	if c.ColorScheme.Primary == "" || c.ColorScheme.Secondary == "" || c.ColorScheme.Accent == "" {
		preset, ok := ColorSchemeByID(c.ColorScheme.ID)
		if !ok {
			preset, _ = ColorSchemeByID("modern-blue")
		}
		if c.ColorScheme.Primary == "" {
			c.ColorScheme.Primary = preset.Primary
		}
		if c.ColorScheme.Secondary == "" {
			c.ColorScheme.Secondary = preset.Secondary
		}
		if c.ColorScheme.Accent == "" {
			c.ColorScheme.Accent = preset.Accent
		}
		if c.ColorScheme.ID == "" {
			c.ColorScheme.ID = preset.ID
			c.ColorScheme.Name = preset.Name
		}
	}

	if c.Typography.HeadingFont == "" || c.Typography.BodyFont == "" {
		preset, ok := TypographyByID(c.Typography.ID)
		if !ok {
			preset, _ = TypographyByID("modern-professional")
		}
		if c.Typography.HeadingFont == "" {
			c.Typography.HeadingFont = preset.HeadingFont
		}
		if c.Typography.BodyFont == "" {
			c.Typography.BodyFont = preset.BodyFont
		}
		if c.Typography.ID == "" {
			c.Typography.ID = preset.ID
			c.Typography.Name = preset.Name
		}
	}

	if c.PortfolioProjects == nil {
		c.PortfolioProjects = []PortfolioProject{}
	}

	for i := range c.PortfolioProjects {
		if c.PortfolioProjects[i].Technologies == nil {
			c.PortfolioProjects[i].Technologies = []string{}
		}
	}
}

// Validate checks enum values and the formats of every value that ends up
// inside a stylesheet or script.
func (c *Config) Validate() (err error) {
	switch c.Language {
	case English, Arabic, Both:
	default:
		err = errors.Errorf("unsupported language: %q (expected english, arabic or both)", c.Language)
		return err
	}

	switch c.AestheticLevel {
	case Standard, Enhanced, Premium:
	default:
		err = errors.Errorf("unsupported aesthetic level: %q (expected standard, enhanced or premium)", c.AestheticLevel)
		return err
	}

	colors := map[string]string{
		"primary":   c.ColorScheme.Primary,
		"secondary": c.ColorScheme.Secondary,
		"accent":    c.ColorScheme.Accent,
	}
	for _, name := range []string{"primary", "secondary", "accent"} {
		if !hexColorPattern.MatchString(colors[name]) {
			err = errors.Errorf("colorScheme.%s must be a hex color like #2563eb, got %q", name, colors[name])
			return err
		}
	}

	if !fontNamePattern.MatchString(c.Typography.HeadingFont) {
		err = errors.Errorf("invalid heading font name: %q", c.Typography.HeadingFont)
		return err
	}

	if !fontNamePattern.MatchString(c.Typography.BodyFont) {
		err = errors.Errorf("invalid body font name: %q", c.Typography.BodyFont)
		return err
	}

	if id := c.TrackingID(); id != "" && !trackingIDPattern.MatchString(id) {
		err = errors.Errorf("invalid Google Analytics ID: %q", id)
		return err
	}

	for i, project := range c.PortfolioProjects {
		if project.Title == "" {
			err = errors.Errorf("portfolio project at index %d missing title", i)
			return err
		}
	}

	return err
}
