package linkedin

import (
	"testing"
	"time"
)

//nolint:gochecknoglobals // test fixture
var testNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

const classicPayload = `{
  "public_identifier": "jane-doe",
  "first_name": "Jane",
  "last_name": "Doe",
  "headline": "Staff Engineer",
  "summary": "Builds systems.",
  "city": "Lisbon",
  "country": "Portugal",
  "profile_pic_url": "https://cdn.example.com/jane.jpg",
  "background_cover_image_url": "https://cdn.example.com/cover.jpg",
  "connections": 812,
  "experiences": [
    {"title": "Senior Engineer", "company": "Acme", "starts_at": {"year": 2021, "month": 3}, "ends_at": null, "description": "Platform."},
    {"title": "Engineer", "company": "Globex", "starts_at": {"year": 2017}, "ends_at": {"year": 2021, "month": 2}},
    {"title": "", "company": "Nameless"}
  ],
  "education": [
    {"school": "University of Lisbon", "degree_name": "MSc", "field_of_study": "CS", "starts_at": {"year": 2012}, "ends_at": {"year": 2014}}
  ],
  "certifications": [
    {"name": "CKA", "authority": "CNCF", "starts_at": {"year": 2022, "month": 3}, "url": "https://cncf.io/cka"}
  ],
  "skills": ["Go", "Kubernetes", ""],
  "languages": ["Portuguese", {"name": "English", "proficiency": "Professional"}],
  "articles": [],
  "posts": [
    {"link": "https://linkedin.com/posts/1", "text": "Shipping.", "date": "2024-01-15", "num_likes": 10, "comments": 2},
    {"description": "Untitled"}
  ],
  "recommendations": [
    {"name": "Sam Lee", "headline": "CTO", "text": "Excellent."},
    {"text": "Anonymous praise."},
    {"name": "Empty"}
  ]
}`

func TestNormalizeClassicPayload(t *testing.T) {
	data, err := Normalize([]byte(classicPayload), testNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := data.Profile
	if p.FullName != "Jane Doe" {
		t.Errorf("Expected derived full name 'Jane Doe', got %q", p.FullName)
	}
	if p.Location != "Lisbon" {
		t.Errorf("Expected city to win over country, got %q", p.Location)
	}
	if p.LinkedInURL != "https://linkedin.com/in/jane-doe" {
		t.Errorf("Expected canonical URL, got %q", p.LinkedInURL)
	}
	if p.Connections != 812 {
		t.Errorf("Expected 812 connections, got %d", p.Connections)
	}

	if len(data.Experience) != 2 {
		t.Fatalf("Expected 2 experience entries, got %d", len(data.Experience))
	}
	first := data.Experience[0]
	if first.ID != "exp-1" || first.StartDate != "2021-03" || !first.IsCurrent || first.EndDate != "" {
		t.Errorf("Unexpected current position: %+v", first)
	}
	second := data.Experience[1]
	if second.StartDate != "2017-01" || second.EndDate != "2021-02" || second.IsCurrent {
		t.Errorf("Unexpected past position: %+v", second)
	}

	if len(data.Education) != 1 || data.Education[0].Degree != "MSc" || data.Education[0].StartDate != "2012-01" {
		t.Errorf("Unexpected education: %+v", data.Education)
	}

	if len(data.Certifications) != 1 || data.Certifications[0].Issuer != "CNCF" || data.Certifications[0].IssueDate != "2022-03" {
		t.Errorf("Unexpected certifications: %+v", data.Certifications)
	}

	if len(data.Skills) != 2 || data.Skills[1].Name != "Kubernetes" {
		t.Errorf("Unexpected skills: %+v", data.Skills)
	}

	if len(data.Languages) != 2 || data.Languages[1].Proficiency != "Professional" {
		t.Errorf("Unexpected languages: %+v", data.Languages)
	}

	if len(data.FeaturedPosts) != 2 {
		t.Fatalf("Expected posts from the first non-empty source, got %d", len(data.FeaturedPosts))
	}
	post := data.FeaturedPosts[0]
	if post.PostURL != "https://linkedin.com/posts/1" || post.Engagement.Likes != 10 || post.Engagement.Comments != 2 {
		t.Errorf("Unexpected post: %+v", post)
	}
	undated := data.FeaturedPosts[1]
	if undated.Date != "2025-03-04" || undated.PostURL != "https://linkedin.com/posts/2" || undated.ID != "post-2" {
		t.Errorf("Expected undated post to get today's date and a placeholder URL, got %+v", undated)
	}
	if undated.ContentPreview != "Untitled" {
		t.Errorf("Expected description as preview, got %q", undated.ContentPreview)
	}

	if len(data.Recommendations) != 2 || data.Recommendations[1].RecommenderName != "Anonymous" {
		t.Errorf("Unexpected recommendations: %+v", data.Recommendations)
	}

	if data.ExtractedAt != "2025-03-04T05:06:07Z" {
		t.Errorf("Expected extractedAt from clock, got %q", data.ExtractedAt)
	}

	err = data.Validate()
	if err != nil {
		t.Errorf("Expected normalized data to validate, got %v", err)
	}
}

func TestNormalizeWrappedPayload(t *testing.T) {
	raw := `{"data": {
      "public_id": "omar-k",
      "full_name": "Omar Khalil",
      "about": "Designer.",
      "location": "Dubai, UAE",
      "profile_image_url": "https://cdn.example.com/omar.jpg",
      "experiences": [
        {"title": "Lead Designer", "company_name": "Studio", "start_year": 2020, "start_month": 6, "is_current": true}
      ],
      "educations": [{"school_name": "AUS", "degree": "BA"}],
      "skills": "Figma|Illustration",
      "languages": "Arabic, English"
    }}`

	data, err := Normalize([]byte(raw), testNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if data.Profile.Username != "omar-k" || data.Profile.FullName != "Omar Khalil" {
		t.Errorf("Unexpected profile: %+v", data.Profile)
	}
	if data.Profile.Summary != "Designer." || data.Profile.Location != "Dubai, UAE" {
		t.Errorf("Expected alternate field names to be read, got %+v", data.Profile)
	}
	if len(data.Experience) != 1 || data.Experience[0].StartDate != "2020-06" || !data.Experience[0].IsCurrent {
		t.Errorf("Unexpected experience: %+v", data.Experience)
	}
	if len(data.Education) != 1 || data.Education[0].School != "AUS" {
		t.Errorf("Unexpected education: %+v", data.Education)
	}
	if len(data.Skills) != 2 || data.Skills[0].Name != "Figma" {
		t.Errorf("Expected pipe-delimited skills, got %+v", data.Skills)
	}
	if len(data.Languages) != 2 || data.Languages[1].Name != "English" {
		t.Errorf("Expected comma-delimited languages, got %+v", data.Languages)
	}
	if data.FeaturedPosts == nil || len(data.FeaturedPosts) != 0 {
		t.Errorf("Expected empty non-nil posts, got %+v", data.FeaturedPosts)
	}
}

func TestNormalizeFallbackPrecedence(t *testing.T) {
	raw := `{"first_name": "A", "last_name": "B", "headline": "", "sub_title": "From sub_title", "occupation": "From occupation",
	  "featured": [{"title": "From featured"}], "activities": [{"title": "From activities"}]}`

	data, err := Normalize([]byte(raw), testNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if data.Profile.Headline != "From sub_title" {
		t.Errorf("Expected blank headline to fall through to sub_title, got %q", data.Profile.Headline)
	}
	if len(data.FeaturedPosts) != 1 || data.FeaturedPosts[0].ContentPreview != "From featured" {
		t.Errorf("Expected posts from 'featured', got %+v", data.FeaturedPosts)
	}
	if data.FeaturedPosts[0].ID != "post-1" || data.FeaturedPosts[0].PostURL != "https://linkedin.com/posts/1" {
		t.Errorf("Expected placeholder post URL to match the post ID, got %+v", data.FeaturedPosts[0])
	}
}

func TestNormalizeRejectsInvalidPayload(t *testing.T) {
	for _, raw := range []string{"not json", `["array"]`, `"string"`} {
		_, err := Normalize([]byte(raw), testNow)
		if err == nil {
			t.Errorf("Expected error for %q", raw)
			continue
		}
		if KindOf(err) != KindUpstream {
			t.Errorf("Expected kind %s for %q, got %s", KindUpstream, raw, KindOf(err))
		}
	}
}

func TestFormatDate(t *testing.T) {
	data, err := Normalize([]byte(`{"full_name": "X", "experiences": [
	  {"title": "T", "company": "C", "starts_at": "2019", "ends_at": {"year": 2020, "month": 13}}
	]}`), testNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	exp := data.Experience[0]
	if exp.StartDate != "2019" {
		t.Errorf("Expected string date to pass through, got %q", exp.StartDate)
	}
	if exp.EndDate != "2020-01" {
		t.Errorf("Expected invalid month to default to 01, got %q", exp.EndDate)
	}
}
