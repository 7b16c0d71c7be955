package design

// LevelInfo describes an aesthetic level for the wizard.
type LevelInfo struct {
	ID          AestheticLevel `json:"id"`
	Name        string         `json:"name"`
	NameAr      string         `json:"nameAr"`
	Description string         `json:"description"`
	Features    []string       `json:"features"`
}

// CustomColorSchemeID marks a user-defined color triple.
const CustomColorSchemeID = "custom"

// ColorSchemes returns the predefined color schemes.
func ColorSchemes() (schemes []ColorScheme) {
	schemes = []ColorScheme{
		{ID: "modern-blue", Name: "Modern Blue", Primary: "#2563eb", Secondary: "#1e40af", Accent: "#60a5fa"},
		{ID: "professional-gray", Name: "Professional Gray", Primary: "#374151", Secondary: "#1f2937", Accent: "#9ca3af"},
		{ID: "vibrant-orange", Name: "Vibrant Orange", Primary: "#ea580c", Secondary: "#c2410c", Accent: "#fb923c"},
		{ID: "elegant-purple", Name: "Elegant Purple", Primary: "#7c3aed", Secondary: "#5b21b6", Accent: "#a78bfa"},
		{ID: "fresh-green", Name: "Fresh Green", Primary: "#059669", Secondary: "#047857", Accent: "#34d399"},
		{ID: CustomColorSchemeID, Name: "Custom Colors", Primary: "#2563eb", Secondary: "#1e40af", Accent: "#60a5fa"},
	}
	return schemes
}

// Typographies returns the predefined font pairs.
func Typographies() (options []Typography) {
	options = []Typography{
		{ID: "modern-professional", Name: "Modern Professional", HeadingFont: "Inter", BodyFont: "Roboto"},
		{ID: "classic-elegant", Name: "Classic Elegant", HeadingFont: "Playfair Display", BodyFont: "Merriweather"},
		{ID: "tech-minimalist", Name: "Tech Minimalist", HeadingFont: "Space Grotesk", BodyFont: "IBM Plex Sans"},
		{ID: "creative-bold", Name: "Creative Bold", HeadingFont: "Montserrat", BodyFont: "Open Sans"},
	}
	return options
}

// AestheticLevels returns the level descriptions shown by the wizard.
func AestheticLevels() (levels []LevelInfo) {
	levels = []LevelInfo{
		{
			ID:          Standard,
			Name:        "Standard",
			NameAr:      "عادي",
			Description: "Simple, clean, fast loading with basic animations",
			Features:    []string{"Clean design", "Basic hover effects", "Fast loading", "Minimal animations"},
		},
		{
			ID:          Enhanced,
			Name:        "Enhanced",
			NameAr:      "جمال متوسط",
			Description: "Professional polish with smooth transitions",
			Features:    []string{"Smooth transitions", "Parallax scrolling", "Hover effects", "Staggered reveals"},
		},
		{
			ID:          Premium,
			Name:        "Premium",
			NameAr:      "جمال عالي",
			Description: "Stunning design with advanced animations",
			Features:    []string{"GSAP animations", "Particle effects", "Micro-interactions", "Gradient animations"},
		},
	}
	return levels
}

// ColorSchemeByID looks up a predefined color scheme.
func ColorSchemeByID(id string) (scheme ColorScheme, ok bool) {
	for _, s := range ColorSchemes() {
		if s.ID == id {
			scheme = s
			ok = true
			return scheme, ok
		}
	}
	return scheme, ok
}

// TypographyByID looks up a predefined font pair.
func TypographyByID(id string) (typography Typography, ok bool) {
	for _, t := range Typographies() {
		if t.ID == id {
			typography = t
			ok = true
			return typography, ok
		}
	}
	return typography, ok
}

// Default returns the configuration the wizard starts from.
func Default() (cfg Config) {
	scheme, _ := ColorSchemeByID("modern-blue")
	typography, _ := TypographyByID("modern-professional")

	cfg = Config{
		Language:          English,
		ColorScheme:       scheme,
		Typography:        typography,
		AestheticLevel:    Enhanced,
		PortfolioProjects: []PortfolioProject{},
	}
	return cfg
}
