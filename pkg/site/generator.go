// Package site renders a profile and a design configuration into a static
// personal website.
package site

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/nikogura/brand-weaver/pkg/fallback"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/pkg/errors"
)

// DefaultBaseURL is used for sitemap and robots entries when no base URL is set.
const DefaultBaseURL = "https://example.com"

//go:embed templates/*.tmpl
var templateFS embed.FS

//nolint:gochecknoglobals // parsed once, read-only afterwards
var (
	pageTemplates  = template.Must(template.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.html.tmpl"))
	styleTemplates = texttemplate.Must(texttemplate.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*.css.tmpl"))
)

// Generator renders bundles. The zero value is not usable; construct with New.
type Generator struct {
	baseURL string
	year    int
	clock   func() time.Time
}

// Option configures a Generator.
type Option func(g *Generator)

// WithBaseURL sets the absolute URL the site will be served from.
func WithBaseURL(baseURL string) (opt Option) {
	opt = func(g *Generator) {
		trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if trimmed != "" {
			g.baseURL = trimmed
		}
	}
	return opt
}

// WithYear pins the footer copyright year.
func WithYear(year int) (opt Option) {
	opt = func(g *Generator) {
		g.year = year
	}
	return opt
}

// WithClock sets the clock the copyright year is read from when no year is pinned.
func WithClock(clock func() time.Time) (opt Option) {
	opt = func(g *Generator) {
		if clock != nil {
			g.clock = clock
		}
	}
	return opt
}

// New creates a Generator.
func New(opts ...Option) (g *Generator) {
	g = &Generator{
		baseURL: DefaultBaseURL,
		clock:   time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// BaseURL returns the absolute URL the generated site is served from.
func (g *Generator) BaseURL() (baseURL string) {
	baseURL = g.baseURL
	return baseURL
}

// Generate renders the bundle for one profile and design. It does not touch
// the network or disk and does not modify its inputs. An error means a
// template failed to execute, which well-formed input never triggers.
func (g *Generator) Generate(data profile.Data, cfg design.Config) (bundle Bundle, err error) {
	th := buildTheme(cfg)

	var css string
	css, err = renderStyles(styleTemplates, th)
	if err != nil {
		return bundle, err
	}

	view := g.buildPage(data, cfg, th, css)

	var buf bytes.Buffer
	err = pageTemplates.ExecuteTemplate(&buf, "index.html.tmpl", view)
	if err != nil {
		err = errors.Wrap(err, "failed to render index.html")
		return bundle, err
	}

	var sitemap string
	sitemap, err = renderSitemap(g.baseURL)
	if err != nil {
		return bundle, err
	}

	bundle = Bundle{
		IndexFile:   buf.String(),
		StylesFile:  css,
		SitemapFile: sitemap,
		RobotsFile:  renderRobots(g.baseURL),
	}

	return bundle, err
}

// Generate renders a bundle with the default generator. It panics only if the
// embedded templates are broken.
func Generate(data profile.Data, cfg design.Config) (bundle Bundle) {
	var err error
	bundle, err = New().Generate(data, cfg)
	if err != nil {
		panic(err)
	}
	return bundle
}

func (g *Generator) copyrightYear() (year int) {
	year = g.year
	if year == 0 {
		year = g.clock().Year()
	}
	return year
}

func (g *Generator) buildPage(data profile.Data, cfg design.Config, th theme, css string) (view page) {
	l := newLocalizer(cfg.Language)
	p := data.Profile
	name := fullName(p)

	siteName, _ := l.Attr("personalPortfolio")
	title := name + " - " + fallback.FirstString(p.Headline, siteName)

	keywords := make([]string, 0, len(data.Skills))
	for _, skill := range data.Skills {
		keywords = append(keywords, skill.Name)
	}

	analytics := buildAnalytics(cfg)
	reveal := cfg.AestheticLevel.RevealEnabled()
	timeline := cfg.AestheticLevel.TimelineEnabled()

	view = page{
		L:         l,
		Bilingual: cfg.IsBilingual(),
		RTL:       cfg.IsRTL(),

		Title:       title,
		Description: truncate(p.Summary, descriptionLimit),
		Keywords:    strings.Join(keywords, ", "),
		SiteName:    name + " | " + siteName,
		Image:       webURL(p.ProfilePicture),
		FontsURL:    fontsURL(th),
		CSS:         template.CSS(css), //nolint:gosec // rendered from validated theme values
		JSONLD:      buildPerson(data, name),

		Reveal:        reveal,
		HeroReveal:    reveal && !timeline,
		Timeline:      timeline,
		Carousel:      len(data.FeaturedPosts) > 0,
		ConsentBanner: analytics != nil && analytics.Consent,

		Hero:            buildHero(p, name),
		About:           buildAbout(p),
		Experience:      buildExperience(data.Experience),
		Education:       buildEducation(data.Education),
		Skills:          buildSkills(data.Skills, data.Languages),
		Certifications:  buildCertifications(data.Certifications),
		Posts:           buildPosts(data.FeaturedPosts),
		Recommendations: buildRecommendations(data.Recommendations),
		Portfolio:       buildPortfolio(cfg.PortfolioProjects),
		Footer: footerView{
			Year:        g.copyrightYear(),
			FullName:    name,
			LinkedInURL: p.LinkedInURL,
		},
		Contacts:  buildContacts(cfg),
		Analytics: analytics,
	}

	return view
}
