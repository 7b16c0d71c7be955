// Package deploy simulates publishing a generated site to a static hosting
// platform and produces DNS guidance for custom domains. Nothing is uploaded.
package deploy

import (
	"regexp"
	"strings"

	"github.com/nikogura/brand-weaver/pkg/fallback"
	"github.com/pkg/errors"
)

// Platform is a static hosting provider.
type Platform string

const (
	GitHubPages Platform = "github_pages"
	Netlify     Platform = "netlify"
	Vercel      Platform = "vercel"
)

const (
	defaultSiteName = "my-site"
	defaultRepoName = "user"
	recordTTL       = "3600"
)

//nolint:gochecknoglobals // compiled once
var (
	labelPattern  = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?$`)
	githubPagesIP = []string{"185.199.108.153", "185.199.109.153", "185.199.110.153", "185.199.111.153"}
)

// Options describes a deployment request.
type Options struct {
	Platform       Platform `json:"platform"`
	RepositoryName string   `json:"repositoryName,omitempty"`
	SiteName       string   `json:"siteName,omitempty"`
	CustomDomain   string   `json:"customDomain,omitempty"`
}

// Result is the outcome of a simulated deployment.
type Result struct {
	Success    bool      `json:"success"`
	Simulated  bool      `json:"simulated"`
	URL        string    `json:"url"`
	Platform   Platform  `json:"platform"`
	DNSRecords *Guidance `json:"dnsRecords,omitempty"`
	Message    string    `json:"message"`
}

// Record is one DNS record to create at the domain provider.
type Record struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
	TTL   string `json:"ttl"`
}

// Guidance lists the DNS records and steps for a custom domain.
type Guidance struct {
	Platform     string   `json:"platform"`
	Records      []Record `json:"records"`
	Instructions []string `json:"instructions"`
}

// ParsePlatform maps a platform name to a Platform. Empty and unknown names
// map to Netlify.
func ParsePlatform(name string) (p Platform) {
	switch Platform(strings.ToLower(strings.TrimSpace(name))) {
	case GitHubPages:
		p = GitHubPages
	case Vercel:
		p = Vercel
	default:
		p = Netlify
	}
	return p
}

// Deploy returns the URL the site would be served from and, with a custom
// domain, the DNS records to create.
func Deploy(opts Options) (result Result, err error) {
	platform := ParsePlatform(string(opts.Platform))

	repo := strings.ToLower(strings.TrimSpace(opts.RepositoryName))
	siteName := strings.ToLower(strings.TrimSpace(opts.SiteName))

	for _, name := range []string{repo, siteName} {
		if name != "" && !labelPattern.MatchString(name) {
			err = errors.Errorf("invalid site name: %q", name)
			return result, err
		}
	}

	var url string
	switch platform {
	case GitHubPages:
		url = "https://" + fallback.FirstString(repo, defaultRepoName) + ".github.io"
	case Vercel:
		url = "https://" + fallback.FirstString(siteName, defaultSiteName) + ".vercel.app"
	default:
		url = "https://" + fallback.FirstString(siteName, defaultSiteName) + ".netlify.app"
	}

	result = Result{
		Success:   true,
		Simulated: true,
		URL:       url,
		Platform:  platform,
		Message:   "Website deployed successfully (simulated)",
	}

	if strings.TrimSpace(opts.CustomDomain) != "" {
		var guidance Guidance
		guidance, err = DNSGuidance(platform, opts.CustomDomain, fallback.FirstString(siteName, repo, defaultSiteName))
		if err != nil {
			return result, err
		}
		result.URL = "https://" + normalizeDomain(opts.CustomDomain)
		result.DNSRecords = &guidance
	}

	return result, err
}

// DNSGuidance returns the records pointing domain at siteName on platform.
// Apex domains (two labels) get A records plus a www CNAME; subdomains get a
// single CNAME named after their first label.
func DNSGuidance(platform Platform, domain, siteName string) (guidance Guidance, err error) {
	domain = normalizeDomain(domain)
	if !validDomain(domain) {
		err = errors.Errorf("invalid domain: %q", domain)
		return guidance, err
	}

	siteName = fallback.FirstString(strings.ToLower(strings.TrimSpace(siteName)), defaultSiteName)
	if !labelPattern.MatchString(siteName) {
		err = errors.Errorf("invalid site name: %q", siteName)
		return guidance, err
	}

	labels := strings.Split(domain, ".")
	apex := len(labels) <= 2

	var aRecords []string
	var target string

	switch ParsePlatform(string(platform)) {
	case GitHubPages:
		guidance.Platform = "GitHub Pages"
		aRecords = githubPagesIP
		target = siteName + ".github.io"
		guidance.Instructions = []string{
			"Add the DNS records to your domain provider",
			"Wait for DNS propagation (can take up to 48 hours)",
			"Enable HTTPS in your GitHub repository settings",
		}
	case Vercel:
		guidance.Platform = "Vercel"
		aRecords = []string{"76.76.21.21"}
		target = "cname.vercel-dns.com"
		guidance.Instructions = []string{
			"Add the DNS records to your domain provider",
			"Add the domain in your Vercel project settings",
			"Vercel will automatically provision SSL certificate",
		}
	default:
		guidance.Platform = "Netlify"
		aRecords = []string{"75.2.60.5"}
		target = siteName + ".netlify.app"
		guidance.Instructions = []string{
			"Add the DNS records to your domain provider",
			"Add the domain in your Netlify site settings",
			"Netlify will automatically provision SSL certificate",
		}
	}

	if !apex {
		guidance.Records = []Record{{Type: "CNAME", Name: labels[0], Value: target, TTL: recordTTL}}
		return guidance, err
	}

	for _, ip := range aRecords {
		guidance.Records = append(guidance.Records, Record{Type: "A", Name: "@", Value: ip, TTL: recordTTL})
	}
	guidance.Records = append(guidance.Records, Record{Type: "CNAME", Name: "www", Value: target, TTL: recordTTL})

	return guidance, err
}

func normalizeDomain(domain string) (out string) {
	out = strings.ToLower(strings.TrimSpace(domain))
	out = strings.TrimPrefix(out, "https://")
	out = strings.TrimPrefix(out, "http://")
	out = strings.TrimSuffix(out, "/")
	out = strings.TrimSuffix(out, ".")
	return out
}

func validDomain(domain string) (ok bool) {
	if domain == "" || len(domain) > 253 {
		return ok
	}
	for _, label := range strings.Split(domain, ".") {
		if !labelPattern.MatchString(label) {
			return ok
		}
	}
	ok = true
	return ok
}
