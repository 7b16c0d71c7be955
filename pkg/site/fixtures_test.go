package site

import (
	"testing"

	"github.com/nikogura/brand-weaver/pkg/design"
	"github.com/nikogura/brand-weaver/pkg/profile"
)

const testYear = 2025

func fullProfile() (data profile.Data) {
	data = profile.Data{
		Profile: profile.Profile{
			Username:       "jane-doe",
			FirstName:      "Jane",
			LastName:       "Doe",
			FullName:       "Jane Doe",
			Headline:       "Staff Engineer",
			Summary:        "I build reliable distributed systems.",
			Location:       "Lisbon, Portugal",
			ProfilePicture: "https://cdn.example.com/jane.jpg",
			HeaderImage:    "https://cdn.example.com/header.jpg",
			LinkedInURL:    "https://linkedin.com/in/jane-doe",
			Connections:    812,
		},
		Experience: []profile.Experience{
			{ID: "exp-1", Title: "Senior Engineer", Company: "Acme Corp", StartDate: "2021-03", IsCurrent: true, Description: "Leads the platform team."},
			{ID: "exp-2", Title: "Engineer", Company: "Globex", StartDate: "2017-01", EndDate: "2021-02"},
		},
		Education: []profile.Education{
			{ID: "edu-1", School: "University of Lisbon", Degree: "MSc", FieldOfStudy: "Computer Science", StartDate: "2012", EndDate: "2014"},
		},
		Certifications: []profile.Certification{
			{ID: "cert-1", Name: "CKA", Issuer: "CNCF", IssueDate: "2022-03", CredentialURL: "https://cncf.io/cka"},
		},
		Skills: []profile.Skill{
			{Name: "Go", Endorsements: 12},
			{Name: "Kubernetes"},
		},
		Languages: []profile.Language{
			{Name: "Portuguese", Proficiency: "Native"},
		},
		FeaturedPosts: []profile.FeaturedPost{
			{ID: "post-1", PostURL: "https://linkedin.com/posts/1", ContentPreview: "Shipping a new scheduler.", Date: "2024-01-15", Engagement: profile.Engagement{Likes: 10, Comments: 2}},
			{ID: "post-2", PostURL: "https://linkedin.com/posts/2", ContentPreview: "Notes from a conference.", Date: "2023-11-20"},
		},
		Recommendations: []profile.Recommendation{
			{ID: "rec-1", RecommenderName: "Sam Lee", RecommenderHeadline: "CTO", RecommenderLinkedInURL: "https://linkedin.com/in/sam", Text: "Jane is excellent."},
		},
		ExtractedAt: "2024-05-01T12:00:00Z",
	}
	return data
}

func fullDesign(lang design.Language, level design.AestheticLevel) (cfg design.Config) {
	cfg = design.Default()
	cfg.Language = lang
	cfg.AestheticLevel = level
	cfg.WhatsAppNumber = "+1 (555) 123-4567"
	cfg.PhoneNumber = "+1 555 123 4567"
	cfg.Analytics = &design.Analytics{GoogleAnalyticsID: "G-TEST123"}
	cfg.PortfolioProjects = []design.PortfolioProject{
		{ID: "p-1", Title: "Scheduler", Description: "A job scheduler.", Technologies: []string{"Go"}, LiveURL: "https://scheduler.example.com", SourceURL: "https://github.com/jane/scheduler"},
		{ID: "p-2", Title: "Tracer", Description: "A tracing tool.", Technologies: []string{}, Featured: true},
	}
	return cfg
}

func render(t *testing.T, data profile.Data, cfg design.Config) (bundle Bundle) {
	t.Helper()

	var err error
	bundle, err = New(WithYear(testYear)).Generate(data, cfg)
	if err != nil {
		t.Fatalf("Failed to generate site: %v", err)
	}

	return bundle
}

func renderIndex(t *testing.T, data profile.Data, cfg design.Config) (html string) {
	t.Helper()
	html = render(t, data, cfg)[IndexFile]
	return html
}
