package site

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	texttemplate "text/template"

	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // compiled once
var (
	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	fontNamePattern   = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
	trackingIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)
)

// theme is the data the stylesheet template is rendered with. Every value
// has already been checked against a strict pattern.
type theme struct {
	SchemeName     string
	TypographyName string
	Level          string

	Primary     string
	Secondary   string
	Accent      string
	HeadingFont string
	BodyFont    string

	RTL            bool
	Bilingual      bool
	ArabicFallback bool
	Timeline       bool
}

func buildTheme(c design.Config) (th theme) {
	defaults := design.Default()

	th = theme{
		SchemeName:     safeLabel(c.ColorScheme.Name, c.ColorScheme.ID),
		TypographyName: safeLabel(c.Typography.Name, c.Typography.ID),
		Level:          safeLabel(string(c.AestheticLevel), string(design.Standard)),
		Primary:        safeColor(c.ColorScheme.Primary, defaults.ColorScheme.Primary),
		Secondary:      safeColor(c.ColorScheme.Secondary, defaults.ColorScheme.Secondary),
		Accent:         safeColor(c.ColorScheme.Accent, defaults.ColorScheme.Accent),
		HeadingFont:    safeFont(c.Typography.HeadingFont, defaults.Typography.HeadingFont),
		BodyFont:       safeFont(c.Typography.BodyFont, defaults.Typography.BodyFont),
		RTL:            c.IsRTL(),
		Bilingual:      c.IsBilingual(),
		ArabicFallback: c.IsRTL() || c.IsBilingual(),
		Timeline:       c.AestheticLevel.TimelineEnabled(),
	}

	return th
}

func safeColor(value, fallbackValue string) (out string) {
	out = fallbackValue
	if hexColorPattern.MatchString(value) {
		out = value
	}
	return out
}

func safeFont(value, fallbackValue string) (out string) {
	out = fallbackValue
	if fontNamePattern.MatchString(value) {
		out = value
	}
	return out
}

// safeLabel keeps only characters that cannot end a CSS comment.
func safeLabel(values ...string) (out string) {
	for _, value := range values {
		if fontNamePattern.MatchString(value) || trackingIDPattern.MatchString(value) {
			out = value
			return out
		}
	}
	out = "custom"
	return out
}

// fontsURL builds the web-font stylesheet URL for the heading/body pair plus
// the Arabic faces.
func fontsURL(th theme) (out string) {
	family := func(name, weights string) (param string) {
		param = "family=" + strings.ReplaceAll(name, " ", "+") + ":wght@" + weights
		return param
	}

	params := []string{
		family(th.HeadingFont, "400;600;700"),
		family(th.BodyFont, "400;500"),
		family("Cairo", "400;600;700"),
		family("Tajawal", "400;500;700"),
		"display=swap",
	}

	u := url.URL{
		Scheme:   "https",
		Host:     "fonts.googleapis.com",
		Path:     "/css2",
		RawQuery: strings.Join(params, "&"),
	}

	out = u.String()
	return out
}

func renderStyles(tmpl *texttemplate.Template, th theme) (css string, err error) {
	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "styles.css.tmpl", th)
	if err != nil {
		err = errors.Wrap(err, "failed to render stylesheet")
		return css, err
	}

	css = buf.String()
	return css, err
}
