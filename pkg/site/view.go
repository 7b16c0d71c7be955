package site

import (
	"html/template"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/nikogura/brand-weaver/pkg/fallback"
	"github.com/nikogura/brand-weaver/pkg/profile"
)

const descriptionLimit = 160

// page is everything index.html needs. Each optional section is nil when
// its backing data is empty, so the template omits it entirely.
type page struct {
	L         *localizer
	Bilingual bool
	RTL       bool

	Title       string
	Description string
	Keywords    string
	SiteName    string
	Image       string
	FontsURL    string
	CSS         template.CSS
	JSONLD      person

	Reveal        bool
	HeroReveal    bool
	Timeline      bool
	Carousel      bool
	ConsentBanner bool

	Hero            heroView
	About           *aboutView
	Experience      *experienceView
	Education       *educationView
	Skills          *skillsView
	Certifications  *certificationsView
	Posts           *postsView
	Recommendations *recommendationsView
	Portfolio       *portfolioView
	Footer          footerView
	Contacts        *contactsView
	Analytics       *analyticsView
}

type heroView struct {
	FullName    string
	Headline    string
	Location    string
	Picture     string
	Initials    string
	Backdrop    string
	Connections string
}

type aboutView struct {
	Summary string
}

type experienceView struct {
	Items []experienceItem
}

type experienceItem struct {
	Title       string
	Company     string
	Location    string
	StartDate   string
	EndDate     string
	IsCurrent   bool
	Description string
	Delay       int
}

type educationView struct {
	Items []educationItem
}

type educationItem struct {
	School       string
	Degree       string
	FieldOfStudy string
	StartDate    string
	EndDate      string
	Description  string
	Delay        int
}

type skillsView struct {
	Items     []skillItem
	Languages []profile.Language
}

type skillItem struct {
	Name         string
	Endorsements int
	Delay        int
}

type certificationsView struct {
	Items []certificationItem
}

type certificationItem struct {
	Name          string
	Issuer        string
	IssuerLogo    string
	IssueDate     string
	CredentialURL string
	Delay         int
}

type postsView struct {
	Items []profile.FeaturedPost
}

type recommendationsView struct {
	Items []recommendationItem
}

type recommendationItem struct {
	Name        string
	Headline    string
	Picture     string
	Initials    string
	LinkedInURL string
	Text        string
	Delay       int
}

type portfolioView struct {
	Items []portfolioItem
}

type portfolioItem struct {
	design.PortfolioProject
	Delay int
}

type footerView struct {
	Year        int
	FullName    string
	LinkedInURL string
}

type contactsView struct {
	WhatsAppURL string
	PhoneURL    template.URL
}

type analyticsView struct {
	TrackingID string
	Consent    bool
}

// stagger returns the reveal delay in milliseconds for the idx-th element of
// a list, growing by step and capped at limit.
func stagger(idx, step, limit int) (delay int) {
	delay = min(idx*step, limit)
	return delay
}

// Reveal delay steps and caps, in milliseconds.
const (
	timelineStep = 100
	timelineCap  = 600
	skillStep    = 50
	skillCap     = 400
	certStep     = 50
	certCap      = 300
)

func fullName(p profile.Profile) (name string) {
	name = fallback.FirstString(
		p.FullName,
		strings.TrimSpace(p.FirstName+" "+p.LastName),
		profile.DisplayName(p.Username),
	)
	return name
}

// initials returns the uppercase first letters of the first and last words
// of name.
func initials(name string) (out string) {
	words := strings.Fields(name)
	if len(words) == 0 {
		return out
	}

	picks := []string{words[0]}
	if len(words) > 1 {
		picks = append(picks, words[len(words)-1])
	}

	var b strings.Builder
	for _, word := range picks {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}

	out = b.String()
	return out
}

// truncate shortens s to at most limit runes.
func truncate(s string, limit int) (out string) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > limit {
		runes = runes[:limit]
	}
	out = strings.TrimSpace(string(runes))
	return out
}

// webURL returns raw when it is an absolute http or https URL, else "".
// Meta content and JSON-LD are not URL contexts for html/template, so
// profile URLs placed there are filtered here.
func webURL(raw string) (out string) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return out
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		out = raw
	}
	return out
}

// digitsOnly strips everything but ASCII digits.
func digitsOnly(s string) (out string) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out = b.String()
	return out
}

func buildHero(p profile.Profile, name string) (hero heroView) {
	hero = heroView{
		FullName: name,
		Headline: p.Headline,
		Location: p.Location,
		Picture:  p.ProfilePicture,
		Backdrop: p.HeaderImage,
	}

	if hero.Picture == "" {
		hero.Initials = initials(name)
	}

	if p.Connections > 0 {
		hero.Connections = strconv.Itoa(p.Connections)
		if p.Connections >= 500 {
			hero.Connections = "500+"
		}
	}

	return hero
}

func buildAbout(p profile.Profile) (about *aboutView) {
	summary := strings.TrimSpace(p.Summary)
	if summary == "" {
		return about
	}
	about = &aboutView{Summary: summary}
	return about
}

func buildExperience(items []profile.Experience) (view *experienceView) {
	if len(items) == 0 {
		return view
	}

	view = &experienceView{Items: make([]experienceItem, 0, len(items))}
	for i, exp := range items {
		view.Items = append(view.Items, experienceItem{
			Title:       exp.Title,
			Company:     exp.Company,
			Location:    exp.Location,
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
			IsCurrent:   exp.IsCurrent || (exp.EndDate == "" && exp.StartDate != "" && i == 0),
			Description: exp.Description,
			Delay:       stagger(i, timelineStep, timelineCap),
		})
	}

	return view
}

func buildEducation(items []profile.Education) (view *educationView) {
	if len(items) == 0 {
		return view
	}

	view = &educationView{Items: make([]educationItem, 0, len(items))}
	for i, edu := range items {
		view.Items = append(view.Items, educationItem{
			School:       edu.School,
			Degree:       edu.Degree,
			FieldOfStudy: edu.FieldOfStudy,
			StartDate:    edu.StartDate,
			EndDate:      edu.EndDate,
			Description:  edu.Description,
			Delay:        stagger(i, timelineStep, timelineCap),
		})
	}

	return view
}

func buildSkills(skills []profile.Skill, languages []profile.Language) (view *skillsView) {
	if len(skills) == 0 {
		return view
	}

	view = &skillsView{
		Items:     make([]skillItem, 0, len(skills)),
		Languages: languages,
	}
	for i, skill := range skills {
		view.Items = append(view.Items, skillItem{
			Name:         skill.Name,
			Endorsements: skill.Endorsements,
			Delay:        stagger(i, skillStep, skillCap),
		})
	}

	return view
}

func buildCertifications(items []profile.Certification) (view *certificationsView) {
	if len(items) == 0 {
		return view
	}

	view = &certificationsView{Items: make([]certificationItem, 0, len(items))}
	for i, cert := range items {
		view.Items = append(view.Items, certificationItem{
			Name:          cert.Name,
			Issuer:        cert.Issuer,
			IssuerLogo:    cert.IssuerLogo,
			IssueDate:     cert.IssueDate,
			CredentialURL: cert.CredentialURL,
			Delay:         stagger(i, certStep, certCap),
		})
	}

	return view
}

func buildPosts(items []profile.FeaturedPost) (view *postsView) {
	if len(items) == 0 {
		return view
	}
	view = &postsView{Items: items}
	return view
}

func buildRecommendations(items []profile.Recommendation) (view *recommendationsView) {
	if len(items) == 0 {
		return view
	}

	view = &recommendationsView{Items: make([]recommendationItem, 0, len(items))}
	for i, rec := range items {
		item := recommendationItem{
			Name:        rec.RecommenderName,
			Headline:    rec.RecommenderHeadline,
			Picture:     rec.RecommenderProfilePicture,
			LinkedInURL: rec.RecommenderLinkedInURL,
			Text:        rec.Text,
			Delay:       stagger(i, timelineStep, timelineCap),
		}
		if item.Picture == "" {
			item.Initials = initials(rec.RecommenderName)
		}
		view.Items = append(view.Items, item)
	}

	return view
}

// buildPortfolio lists featured projects first, keeping the configured order
// within each group.
func buildPortfolio(projects []design.PortfolioProject) (view *portfolioView) {
	if len(projects) == 0 {
		return view
	}

	ordered := make([]design.PortfolioProject, len(projects))
	copy(ordered, projects)
	sort.SliceStable(ordered, func(i, j int) (less bool) {
		less = ordered[i].Featured && !ordered[j].Featured
		return less
	})

	view = &portfolioView{Items: make([]portfolioItem, 0, len(ordered))}
	for i, project := range ordered {
		view.Items = append(view.Items, portfolioItem{
			PortfolioProject: project,
			Delay:            stagger(i, timelineStep, timelineCap),
		})
	}

	return view
}

func buildContacts(c design.Config) (view *contactsView) {
	whatsApp := digitsOnly(c.WhatsAppNumber)
	phone := telNumber(strings.TrimSpace(c.PhoneNumber))
	if whatsApp == "" && phone == "" {
		return view
	}

	view = &contactsView{}
	if whatsApp != "" {
		view.WhatsAppURL = "https://wa.me/" + whatsApp
	}
	if phone != "" {
		view.PhoneURL = template.URL("tel:" + phone) //nolint:gosec // digits and an optional leading plus
	}

	return view
}

// telNumber keeps a leading plus and the digits of a phone number.
func telNumber(phone string) (out string) {
	out = digitsOnly(phone)
	if out != "" && strings.HasPrefix(phone, "+") {
		out = "+" + out
	}
	return out
}

func buildAnalytics(c design.Config) (view *analyticsView) {
	id := c.TrackingID()
	if id == "" || !trackingIDPattern.MatchString(id) {
		return view
	}
	view = &analyticsView{TrackingID: id, Consent: c.ConsentBannerEnabled()}
	return view
}
