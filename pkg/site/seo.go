package site

import (
	"encoding/xml"
	"fmt"

	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/pkg/errors"
)

// SitemapSlugs are the logical sections listed in sitemap.xml, root first.
//
//nolint:gochecknoglobals // fixed list
var SitemapSlugs = []string{"", "about", "experience", "education", "certifications", "recommendations", "posts", "contact"}

// person is the schema.org Person emitted as JSON-LD. The html/template JS
// context serializes it, so profile text never breaks out of the script.
type person struct {
	Context  string         `json:"@context"`
	Type     string         `json:"@type"`
	Name     string         `json:"name"`
	JobTitle string         `json:"jobTitle,omitempty"`
	URL      string         `json:"url,omitempty"`
	Image    string         `json:"image,omitempty"`
	SameAs   []string       `json:"sameAs,omitempty"`
	WorksFor *organization  `json:"worksFor,omitempty"`
	AlumniOf []organization `json:"alumniOf"`
}

type organization struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

func buildPerson(data profile.Data, name string) (p person) {
	p = person{
		Context:  "https://schema.org",
		Type:     "Person",
		Name:     name,
		URL:      webURL(data.Profile.LinkedInURL),
		Image:    webURL(data.Profile.ProfilePicture),
		AlumniOf: make([]organization, 0, len(data.Education)),
	}

	if p.URL != "" {
		p.SameAs = []string{p.URL}
	}

	if current, ok := data.CurrentPosition(); ok {
		p.JobTitle = current.Title
		p.WorksFor = &organization{Type: "Organization", Name: current.Company}
	}

	for _, edu := range data.Education {
		p.AlumniOf = append(p.AlumniOf, organization{Type: "EducationalOrganization", Name: edu.School})
	}

	return p
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// renderSitemap lists every section slug under baseURL.
func renderSitemap(baseURL string) (out string, err error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, slug := range SitemapSlugs {
		priority := "0.8"
		if slug == "" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        baseURL + "/" + slug,
			ChangeFreq: "monthly",
			Priority:   priority,
		})
	}

	var body []byte
	body, err = xml.MarshalIndent(set, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal sitemap")
		return out, err
	}

	out = xml.Header + string(body) + "\n"
	return out, err
}

func renderRobots(baseURL string) (out string) {
	out = fmt.Sprintf("User-agent: *\nAllow: /\nSitemap: %s/sitemap.xml\n", baseURL)
	return out
}
