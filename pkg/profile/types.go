package profile

// Data is the normalized profile extracted for a single person.
type Data struct {
	Profile         Profile          `json:"profile"`
	Experience      []Experience     `json:"experience"`
	Education       []Education      `json:"education"`
	Certifications  []Certification  `json:"certifications"`
	Skills          []Skill          `json:"skills"`
	Languages       []Language       `json:"languages"`
	FeaturedPosts   []FeaturedPost   `json:"featuredPosts"`
	Recommendations []Recommendation `json:"recommendations"`
	ExtractedAt     string           `json:"extractedAt"`
}

// Profile represents the person's top-level information.
type Profile struct {
	Username       string `json:"username"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	FullName       string `json:"fullName"`
	Headline       string `json:"headline,omitempty"`
	Summary        string `json:"summary,omitempty"`
	Location       string `json:"location,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	HeaderImage    string `json:"headerImage,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	LinkedInURL    string `json:"linkedinUrl"`
	Connections    int    `json:"connections,omitempty"`
}

// Experience represents a single position.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	CompanyLogo string `json:"companyLogo,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	IsCurrent   bool   `json:"isCurrent"`
	Description string `json:"description,omitempty"`
}

// Education represents a school entry.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	SchoolLogo   string `json:"schoolLogo,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Certification represents a license or certification.
type Certification struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	IssuerLogo     string `json:"issuerLogo,omitempty"`
	IssueDate      string `json:"issueDate,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CredentialID   string `json:"credentialId,omitempty"`
	CredentialURL  string `json:"credentialUrl,omitempty"`
}

// Skill represents a named skill.
type Skill struct {
	Name         string `json:"name"`
	Endorsements int    `json:"endorsements,omitempty"`
}

// Language represents a spoken language.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// FeaturedPost represents a post or article pinned on the profile.
type FeaturedPost struct {
	ID             string     `json:"id"`
	EmbedCode      string     `json:"embedCode,omitempty"`
	PostURL        string     `json:"postUrl"`
	ContentPreview string     `json:"contentPreview,omitempty"`
	Date           string     `json:"date,omitempty"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Engagement     Engagement `json:"engagement"`
}

// Engagement holds post interaction counters.
type Engagement struct {
	Likes    int `json:"likes,omitempty"`
	Comments int `json:"comments,omitempty"`
	Shares   int `json:"shares,omitempty"`
}

// Recommendation represents a written recommendation from another member.
type Recommendation struct {
	ID                        string `json:"id"`
	RecommenderName           string `json:"recommenderName"`
	RecommenderHeadline       string `json:"recommenderHeadline,omitempty"`
	RecommenderProfilePicture string `json:"recommenderProfilePicture,omitempty"`
	RecommenderLinkedInURL    string `json:"recommenderLinkedInUrl,omitempty"`
	Text                      string `json:"text"`
	Relationship              string `json:"relationship,omitempty"`
	Date                      string `json:"date,omitempty"`
}
