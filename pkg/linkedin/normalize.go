package linkedin

import (
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/brand-weaver/pkg/fallback"
	"github.com/nikogura/brand-weaver/pkg/profile"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// fallbackPreview is shown for featured content that carries no text.
const fallbackPreview = "Featured content"

// Normalize maps an upstream profile payload onto profile.Data. Upstream
// providers name the same field differently, so each field is read through
// an ordered list of candidate paths. Entries missing their required fields
// are dropped. now stamps ExtractedAt and dates undated posts.
func Normalize(raw []byte, now time.Time) (data profile.Data, err error) {
	if !gjson.ValidBytes(raw) {
		err = newError(KindUpstream, errors.New("profile payload is not valid JSON"))
		return data, err
	}

	root := gjson.ParseBytes(raw)
	if nested := root.Get("data"); nested.IsObject() {
		root = nested
	}

	if !root.IsObject() {
		err = newError(KindUpstream, errors.New("profile payload is not an object"))
		return data, err
	}

	data = profile.Data{
		Profile:         normalizeProfile(root),
		Experience:      normalizeExperience(root),
		Education:       normalizeEducation(root),
		Certifications:  normalizeCertifications(root),
		Skills:          normalizeSkills(root),
		Languages:       normalizeLanguages(root),
		FeaturedPosts:   normalizePosts(root, now),
		Recommendations: normalizeRecommendations(root),
		ExtractedAt:     now.UTC().Format(time.RFC3339),
	}

	data.Normalize()

	if data.Profile.FullName == "" {
		data.Profile.FullName = profile.DisplayName(data.Profile.Username)
	}

	return data, err
}

func normalizeProfile(root gjson.Result) (p profile.Profile) {
	p = profile.Profile{
		Username:       fallback.String(root, "public_identifier", "public_id", "username"),
		FirstName:      fallback.String(root, "first_name", "firstName"),
		LastName:       fallback.String(root, "last_name", "lastName"),
		FullName:       fallback.String(root, "full_name", "fullName", "name"),
		Headline:       fallback.String(root, "headline", "sub_title", "occupation", "job_title"),
		Summary:        fallback.String(root, "summary", "about"),
		Location:       fallback.String(root, "location", "city", "country_full_name", "country"),
		ProfilePicture: fallback.String(root, "profile_pic_url", "profile_image_url", "profile_picture"),
		HeaderImage:    fallback.String(root, "background_cover_image_url", "background_image_url", "cover_image_url"),
		Email:          fallback.String(root, "email"),
		Phone:          fallback.String(root, "phone"),
		Connections:    fallback.Int(root, "connections", "connection_count", "connections_count"),
	}

	p.LinkedInURL = fallback.String(root, "linkedin_url", "profile_url")
	if p.Username != "" {
		p.LinkedInURL = ProfileURL(p.Username)
	}

	return p
}

func normalizeExperience(root gjson.Result) (items []profile.Experience) {
	items = []profile.Experience{}

	for _, exp := range fallback.Array(root, "experiences", "experience", "positions") {
		entry := profile.Experience{
			Title:       fallback.String(exp, "title", "position"),
			Company:     fallback.String(exp, "company", "company_name"),
			CompanyLogo: fallback.String(exp, "company_logo_url", "logo_url"),
			Location:    fallback.String(exp, "location"),
			StartDate:   dateOf(exp, "starts_at", "start_date", "start_year", "start_month"),
			EndDate:     dateOf(exp, "ends_at", "end_date", "end_year", "end_month"),
			Description: fallback.String(exp, "description"),
		}

		entry.IsCurrent = entry.EndDate == ""
		if current := exp.Get("is_current"); current.IsBool() {
			entry.IsCurrent = current.Bool()
		}

		if entry.Title == "" || entry.Company == "" {
			continue
		}

		entry.ID = fmt.Sprintf("exp-%d", len(items)+1)
		items = append(items, entry)
	}

	return items
}

func normalizeEducation(root gjson.Result) (items []profile.Education) {
	items = []profile.Education{}

	for _, edu := range fallback.Array(root, "education", "educations") {
		entry := profile.Education{
			School:       fallback.String(edu, "school", "school_name", "university"),
			Degree:       fallback.String(edu, "degree_name", "degree"),
			FieldOfStudy: fallback.String(edu, "field_of_study", "field"),
			SchoolLogo:   fallback.String(edu, "school_logo_url", "logo_url"),
			StartDate:    dateOf(edu, "starts_at", "start_date", "start_year", "start_month"),
			EndDate:      dateOf(edu, "ends_at", "end_date", "end_year", "end_month"),
			Description:  fallback.String(edu, "description"),
		}

		if entry.School == "" {
			continue
		}

		entry.ID = fmt.Sprintf("edu-%d", len(items)+1)
		items = append(items, entry)
	}

	return items
}

func normalizeCertifications(root gjson.Result) (items []profile.Certification) {
	items = []profile.Certification{}

	for _, cert := range fallback.Array(root, "certifications", "licenses_and_certifications") {
		entry := profile.Certification{
			Name:           fallback.String(cert, "name", "title"),
			Issuer:         fallback.String(cert, "authority", "issuer", "organization"),
			IssueDate:      dateOf(cert, "starts_at", "issued_date", "issue_year", "issue_month"),
			ExpirationDate: dateOf(cert, "ends_at", "expiration_date", "expiration_year", "expiration_month"),
			CredentialID:   fallback.String(cert, "license_number", "credential_id"),
			CredentialURL:  fallback.String(cert, "url", "credential_url"),
		}

		if entry.Name == "" {
			continue
		}

		entry.ID = fmt.Sprintf("cert-%d", len(items)+1)
		items = append(items, entry)
	}

	return items
}

func normalizeSkills(root gjson.Result) (items []profile.Skill) {
	items = []profile.Skill{}

	for _, skill := range listOf(root, "skills") {
		entry := profile.Skill{
			Name:         textOf(skill, "name", "skill"),
			Endorsements: fallback.Int(skill, "endorsement_count", "endorsements"),
		}
		if entry.Name == "" {
			continue
		}
		items = append(items, entry)
	}

	return items
}

func normalizeLanguages(root gjson.Result) (items []profile.Language) {
	items = []profile.Language{}

	for _, lang := range listOf(root, "languages") {
		entry := profile.Language{
			Name:        textOf(lang, "name", "language"),
			Proficiency: fallback.String(lang, "proficiency"),
		}
		if entry.Name == "" {
			continue
		}
		items = append(items, entry)
	}

	return items
}

func normalizePosts(root gjson.Result, now time.Time) (items []profile.FeaturedPost) {
	items = []profile.FeaturedPost{}

	for i, post := range fallback.Array(root, "articles", "posts", "featured", "activities", "publications") {
		n := i + 1
		entry := profile.FeaturedPost{
			ID:             fmt.Sprintf("post-%d", n),
			PostURL:        fallback.String(post, "url", "link", "article_link", "post_url"),
			ContentPreview: fallback.FirstString(fallback.String(post, "title", "description", "text", "content"), fallbackPreview),
			Date: fallback.FirstString(
				formatDate(post.Get("published_on")),
				formatDate(post.Get("date")),
				now.UTC().Format(time.DateOnly),
			),
			ImageURL: fallback.String(post, "image_url", "cover_image", "thumbnail"),
			Engagement: profile.Engagement{
				Likes:    fallback.Int(post, "likes", "num_likes"),
				Comments: fallback.Int(post, "comments", "num_comments"),
				Shares:   fallback.Int(post, "shares", "num_shares", "reposts"),
			},
		}

		if entry.PostURL == "" {
			entry.PostURL = fmt.Sprintf("https://linkedin.com/posts/%d", n)
		}

		items = append(items, entry)
	}

	return items
}

func normalizeRecommendations(root gjson.Result) (items []profile.Recommendation) {
	items = []profile.Recommendation{}

	for _, rec := range fallback.Array(root, "recommendations", "recommendations_received") {
		entry := profile.Recommendation{
			RecommenderName:           fallback.FirstString(fallback.String(rec, "name", "recommender_name", "author"), "Anonymous"),
			RecommenderHeadline:       fallback.String(rec, "headline", "recommender_headline"),
			RecommenderProfilePicture: fallback.String(rec, "profile_pic_url", "recommender_profile_picture"),
			RecommenderLinkedInURL:    fallback.String(rec, "linkedin_url", "profile_url"),
			Text:                      textOf(rec, "text", "recommendation"),
			Relationship:              fallback.String(rec, "relationship"),
			Date:                      formatDate(rec.Get("date")),
		}

		if entry.Text == "" {
			continue
		}

		entry.ID = fmt.Sprintf("rec-%d", len(items)+1)
		items = append(items, entry)
	}

	return items
}

// listOf returns the elements at key, splitting a delimited string such as
// "Go|Kubernetes" into one element per entry.
func listOf(root gjson.Result, key string) (items []gjson.Result) {
	value := root.Get(key)
	if value.Type != gjson.String {
		items = fallback.Array(root, key)
		return items
	}

	items = []gjson.Result{}
	separator := ","
	if strings.Contains(value.Str, "|") {
		separator = "|"
	}

	for _, part := range strings.Split(value.Str, separator) {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, gjson.Result{Type: gjson.String, Str: part})
		}
	}

	return items
}

// textOf reads a scalar string element directly, or the first present key
// of an object element.
func textOf(item gjson.Result, keys ...string) (s string) {
	if item.Type == gjson.String {
		s = strings.TrimSpace(item.Str)
		return s
	}
	s = fallback.String(item, keys...)
	return s
}

// dateOf reads a date stored either as an object or string under one of
// objectKey and stringKey, or as separate year and month fields.
func dateOf(item gjson.Result, objectKey, stringKey, yearKey, monthKey string) (date string) {
	date = fallback.FirstString(
		formatDate(item.Get(objectKey)),
		formatDate(item.Get(stringKey)),
	)
	if date != "" {
		return date
	}

	year := item.Get(yearKey).Int()
	if year == 0 {
		return date
	}

	month := item.Get(monthKey).Int()
	if month < 1 || month > 12 {
		month = 1
	}

	date = fmt.Sprintf("%d-%02d", year, month)
	return date
}

// formatDate turns {year, month} into YYYY-MM and passes strings through.
func formatDate(r gjson.Result) (date string) {
	switch {
	case r.Type == gjson.String:
		date = strings.TrimSpace(r.Str)
	case r.IsObject():
		year := r.Get("year").Int()
		if year == 0 {
			return date
		}
		month := r.Get("month").Int()
		if month < 1 || month > 12 {
			month = 1
		}
		date = fmt.Sprintf("%d-%02d", year, month)
	}
	return date
}
