package profile

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a LinkedIn username such as "jane-doe_42" into "Jane Doe 42".
func DisplayName(username string) (name string) {
	words := strings.FieldsFunc(username, func(r rune) (split bool) {
		split = r == '-' || r == '_'
		return split
	})

	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}

	name = strings.Join(words, " ")
	return name
}

// Sample builds demo profile data for the given username. It is served when
// no upstream API key is configured so the rest of the flow can be exercised.
func Sample(username string, now time.Time) (data Data) {
	name := DisplayName(username)
	if name == "" {
		name = "John Doe"
	}

	first, last, _ := strings.Cut(name, " ")
	if last == "" {
		last = "Doe"
	}

	data = Data{
		Profile: Profile{
			Username:       username,
			FirstName:      first,
			LastName:       last,
			FullName:       name,
			Headline:       "Senior Software Engineer | Cloud Architecture | Full-Stack Development",
			Summary:        "Passionate software engineer with 8+ years of experience building scalable web applications and cloud-native solutions. I specialize in React, Node.js, and AWS, with a focus on clean code and developer experience.\n\nCurrently leading development teams and architecting solutions that serve millions of users. I believe in continuous learning and sharing knowledge with the community.\n\nOpen to discussing new opportunities and collaborations.",
			Location:       "San Francisco Bay Area",
			ProfilePicture: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			HeaderImage:    "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=1920&h=600&fit=crop",
			LinkedInURL:    "https://linkedin.com/in/" + username,
			Connections:    500,
		},
		Experience: []Experience{
			{
				ID:          "exp-1",
				Title:       "Senior Software Engineer",
				Company:     "Tech Innovations Inc.",
				Location:    "San Francisco, CA",
				StartDate:   "2021-03",
				IsCurrent:   true,
				Description: "Leading development of cloud-native applications and mentoring junior developers. Architecting scalable solutions using modern technologies.",
			},
			{
				ID:          "exp-2",
				Title:       "Software Engineer",
				Company:     "Digital Solutions Corp",
				Location:    "New York, NY",
				StartDate:   "2018-06",
				EndDate:     "2021-02",
				Description: "Developed full-stack web applications using React and Node.js. Implemented CI/CD pipelines and improved code quality standards.",
			},
			{
				ID:          "exp-3",
				Title:       "Junior Developer",
				Company:     "StartUp Labs",
				Location:    "Boston, MA",
				StartDate:   "2016-09",
				EndDate:     "2018-05",
				Description: "Built responsive web interfaces and contributed to backend API development. Collaborated with design team on UX improvements.",
			},
		},
		Education: []Education{
			{
				ID:           "edu-1",
				School:       "Massachusetts Institute of Technology",
				Degree:       "Master of Science",
				FieldOfStudy: "Computer Science",
				StartDate:    "2014",
				EndDate:      "2016",
			},
			{
				ID:           "edu-2",
				School:       "University of California, Berkeley",
				Degree:       "Bachelor of Science",
				FieldOfStudy: "Computer Engineering",
				StartDate:    "2010",
				EndDate:      "2014",
			},
		},
		Certifications: []Certification{
			{
				ID:            "cert-1",
				Name:          "AWS Solutions Architect Professional",
				Issuer:        "Amazon Web Services",
				IssueDate:     "2023-01",
				CredentialURL: "https://aws.amazon.com/certification/",
			},
			{
				ID:            "cert-2",
				Name:          "Google Cloud Professional Developer",
				Issuer:        "Google Cloud",
				IssueDate:     "2022-06",
				CredentialURL: "https://cloud.google.com/certification/",
			},
			{
				ID:        "cert-3",
				Name:      "Certified Kubernetes Administrator",
				Issuer:    "Cloud Native Computing Foundation",
				IssueDate: "2022-03",
			},
		},
		Skills: []Skill{
			{Name: "JavaScript", Endorsements: 42},
			{Name: "TypeScript", Endorsements: 38},
			{Name: "React", Endorsements: 35},
			{Name: "Node.js", Endorsements: 33},
			{Name: "Python", Endorsements: 28},
			{Name: "AWS", Endorsements: 25},
			{Name: "Docker", Endorsements: 22},
			{Name: "Kubernetes", Endorsements: 18},
			{Name: "PostgreSQL", Endorsements: 15},
			{Name: "GraphQL", Endorsements: 12},
		},
		Languages: []Language{
			{Name: "English", Proficiency: "Native"},
			{Name: "Spanish", Proficiency: "Professional"},
			{Name: "French", Proficiency: "Conversational"},
		},
		FeaturedPosts: []FeaturedPost{
			{
				ID:             "post-1",
				PostURL:        "https://linkedin.com/posts/example-1",
				ContentPreview: "Excited to share our team's latest achievement in cloud architecture optimization...",
				Date:           "2024-01-15",
				Engagement:     Engagement{Likes: 234, Comments: 45, Shares: 12},
			},
			{
				ID:             "post-2",
				PostURL:        "https://linkedin.com/posts/example-2",
				ContentPreview: "Key takeaways from the tech conference on AI and machine learning trends...",
				Date:           "2023-11-20",
				Engagement:     Engagement{Likes: 189, Comments: 32, Shares: 8},
			},
		},
		Recommendations: []Recommendation{
			{
				ID:                     "rec-1",
				RecommenderName:        "Sarah Johnson",
				RecommenderHeadline:    "VP of Engineering at Tech Corp",
				RecommenderLinkedInURL: "https://linkedin.com/in/sarahjohnson",
				Text:                   fmt.Sprintf("%s is an exceptional engineer with a rare combination of technical expertise and leadership skills. Their ability to tackle complex problems while mentoring others makes them an invaluable team member.", name),
				Relationship:           "Managed directly",
				Date:                   "2023-08",
			},
			{
				ID:                     "rec-2",
				RecommenderName:        "Michael Chen",
				RecommenderHeadline:    "Senior Software Architect",
				RecommenderLinkedInURL: "https://linkedin.com/in/michaelchen",
				Text:                   "Working with this professional has been a pleasure. Their code quality and attention to detail set a high standard for the entire team. Highly recommended for any technical leadership role.",
				Relationship:           "Worked together",
				Date:                   "2023-05",
			},
			{
				ID:                     "rec-3",
				RecommenderName:        "Emily Rodriguez",
				RecommenderHeadline:    "Product Manager at Innovation Labs",
				RecommenderLinkedInURL: "https://linkedin.com/in/emilyrodriguez",
				Text:                   "A true professional who consistently delivers high-quality work. Their communication skills and ability to translate technical concepts for non-technical stakeholders is remarkable.",
				Relationship:           "Cross-functional collaboration",
				Date:                   "2022-12",
			},
		},
		ExtractedAt: now.UTC().Format(time.RFC3339),
	}

	return data
}
