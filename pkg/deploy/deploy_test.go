package deploy

import (
	"testing"
)

func TestDeployURLs(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected string
	}{
		{"github pages", Options{Platform: GitHubPages, RepositoryName: "jane"}, "https://jane.github.io"},
		{"github pages default", Options{Platform: GitHubPages}, "https://user.github.io"},
		{"vercel", Options{Platform: Vercel, SiteName: "Jane-Site"}, "https://jane-site.vercel.app"},
		{"netlify", Options{Platform: Netlify, SiteName: "jane"}, "https://jane.netlify.app"},
		{"unknown platform", Options{Platform: "heroku"}, "https://my-site.netlify.app"},
		{"custom domain", Options{Platform: Vercel, SiteName: "jane", CustomDomain: "https://Jane.dev/"}, "https://jane.dev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Deploy(tt.opts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if result.URL != tt.expected {
				t.Errorf("Expected URL %s, got %s", tt.expected, result.URL)
			}
			if !result.Success || !result.Simulated {
				t.Error("Expected a successful simulated deployment")
			}
			if (tt.opts.CustomDomain != "") != (result.DNSRecords != nil) {
				t.Error("Expected DNS records exactly when a custom domain is set")
			}
		})
	}
}

func TestDeployRejectsInvalidNames(t *testing.T) {
	for _, opts := range []Options{
		{SiteName: "bad name"},
		{RepositoryName: "<script>"},
		{SiteName: "ok", CustomDomain: "exa mple.com"},
	} {
		if _, err := Deploy(opts); err == nil {
			t.Errorf("Expected error for %+v", opts)
		}
	}
}

func TestDNSGuidanceApex(t *testing.T) {
	tests := []struct {
		platform   Platform
		name       string
		aRecords   int
		cnameValue string
	}{
		{GitHubPages, "GitHub Pages", 4, "jane.github.io"},
		{Vercel, "Vercel", 1, "cname.vercel-dns.com"},
		{Netlify, "Netlify", 1, "jane.netlify.app"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			guidance, err := DNSGuidance(tt.platform, "jane.dev", "jane")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if guidance.Platform != tt.name {
				t.Errorf("Expected platform %s, got %s", tt.name, guidance.Platform)
			}
			if len(guidance.Records) != tt.aRecords+1 {
				t.Fatalf("Expected %d records, got %d", tt.aRecords+1, len(guidance.Records))
			}

			for _, rec := range guidance.Records[:tt.aRecords] {
				if rec.Type != "A" || rec.Name != "@" || rec.TTL != "3600" {
					t.Errorf("Unexpected apex record: %+v", rec)
				}
			}

			www := guidance.Records[tt.aRecords]
			if www.Type != "CNAME" || www.Name != "www" || www.Value != tt.cnameValue {
				t.Errorf("Unexpected www record: %+v", www)
			}

			if len(guidance.Instructions) == 0 {
				t.Error("Expected setup instructions")
			}
		})
	}

	guidance, _ := DNSGuidance(GitHubPages, "jane.dev", "jane")
	if guidance.Records[0].Value != "185.199.108.153" || guidance.Records[3].Value != "185.199.111.153" {
		t.Errorf("Unexpected GitHub Pages addresses: %+v", guidance.Records)
	}
}

func TestDNSGuidanceSubdomain(t *testing.T) {
	guidance, err := DNSGuidance(Netlify, "blog.jane.dev", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(guidance.Records) != 1 {
		t.Fatalf("Expected a single record, got %d", len(guidance.Records))
	}

	rec := guidance.Records[0]
	if rec.Type != "CNAME" || rec.Name != "blog" || rec.Value != "my-site.netlify.app" {
		t.Errorf("Unexpected subdomain record: %+v", rec)
	}
}

func TestDNSGuidanceInvalidDomain(t *testing.T) {
	for _, domain := range []string{"", "-bad.com", "a..b", "evil.com/<x>"} {
		if _, err := DNSGuidance(Netlify, domain, "jane"); err == nil {
			t.Errorf("Expected error for domain %q", domain)
		}
	}
}

func TestParsePlatform(t *testing.T) {
	tests := map[string]Platform{
		"github_pages": GitHubPages,
		" Vercel ":     Vercel,
		"netlify":      Netlify,
		"":             Netlify,
		"other":        Netlify,
	}

	for input, expected := range tests {
		if got := ParsePlatform(input); got != expected {
			t.Errorf("Expected %s for %q, got %s", expected, input, got)
		}
	}
}
