package design

// Language selects which locale(s) the generated site is rendered in.
type Language string

const (
	// English renders a left-to-right English site.
	English Language = "english"
	// Arabic renders a right-to-left Arabic site.
	Arabic Language = "arabic"
	// Both renders every phrase in both languages with a client-side switch.
	Both Language = "both"
)

// AestheticLevel controls which animation libraries are wired into the site.
type AestheticLevel string

const (
	// Standard uses no animation libraries.
	Standard AestheticLevel = "standard"
	// Enhanced adds on-scroll reveal animations.
	Enhanced AestheticLevel = "enhanced"
	// Premium adds timeline-driven hero tweens and parallax on top of Enhanced.
	Premium AestheticLevel = "premium"
)

// Config represents the user's design choices for a generated site.
type Config struct {
	Language          Language           `json:"language"`
	ColorScheme       ColorScheme        `json:"colorScheme"`
	Typography        Typography         `json:"typography"`
	AestheticLevel    AestheticLevel     `json:"aestheticLevel"`
	WhatsAppNumber    string             `json:"whatsappNumber,omitempty"`
	PhoneNumber       string             `json:"phoneNumber,omitempty"`
	Analytics         *Analytics         `json:"analytics,omitempty"`
	PortfolioProjects []PortfolioProject `json:"portfolioProjects"`
}

// ColorScheme is the primary/secondary/accent color triple.
type ColorScheme struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Typography is the heading/body font pair.
type Typography struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
}

// Analytics holds optional Google Analytics settings.
type Analytics struct {
	GoogleAnalyticsID   string `json:"googleAnalyticsId,omitempty"`
	EnableConsentBanner *bool  `json:"enableConsentBanner,omitempty"`
}

// PortfolioProject is a user-supplied project card.
type PortfolioProject struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	SourceURL    string   `json:"sourceUrl,omitempty"`
	Featured     bool     `json:"featured"`
}

// TrackingID returns the analytics tracking ID, or empty when analytics is off.
func (c *Config) TrackingID() (id string) {
	if c.Analytics == nil {
		return id
	}
	id = c.Analytics.GoogleAnalyticsID
	return id
}

// ConsentBannerEnabled reports whether analytics must wait for cookie consent.
// The banner defaults to on whenever a tracking ID is configured.
func (c *Config) ConsentBannerEnabled() (enabled bool) {
	if c.TrackingID() == "" {
		return enabled
	}
	enabled = c.Analytics.EnableConsentBanner == nil || *c.Analytics.EnableConsentBanner
	return enabled
}

// IsRTL reports whether the site is rendered right-to-left.
func (c *Config) IsRTL() (rtl bool) {
	rtl = c.Language == Arabic
	return rtl
}

// IsBilingual reports whether both languages are emitted.
func (c *Config) IsBilingual() (bilingual bool) {
	bilingual = c.Language == Both
	return bilingual
}

// RevealEnabled reports whether on-scroll reveal animations are wired in.
func (l AestheticLevel) RevealEnabled() (enabled bool) {
	enabled = l == Enhanced || l == Premium
	return enabled
}

// TimelineEnabled reports whether the animation-timeline library is wired in.
func (l AestheticLevel) TimelineEnabled() (enabled bool) {
	enabled = l == Premium
	return enabled
}
