package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikogura/brand-weaver/pkg/design"
)

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"Jane Doe":          "jane-doe",
		"  José  García ":   "jos-garc-a",
		"Dr. A.B. Smith-II": "dr-a-b-smith-ii",
		"---":               "",
		"":                  "",
	}

	for input, expected := range tests {
		if got := sanitizeFilename(input); got != expected {
			t.Errorf("Expected '%s' for %q, got '%s'", expected, input, got)
		}
	}
}

func TestArchivePath(t *testing.T) {
	got := archivePath(filepath.Join("out", "site"), "Jane Doe")
	expected := filepath.Join("out", "jane-doe-website.zip")
	if got != expected {
		t.Errorf("Expected '%s', got '%s'", expected, got)
	}

	got = archivePath("site/", "")
	if got != "personal-website.zip" {
		t.Errorf("Expected fallback archive name, got '%s'", got)
	}
}

func TestGetOutputDir(t *testing.T) {
	if got := getOutputDir("/tmp/flag", "/tmp/config"); got != "/tmp/flag" {
		t.Errorf("Expected flag value, got '%s'", got)
	}
	if got := getOutputDir("", "/tmp/config"); got != "/tmp/config" {
		t.Errorf("Expected config value, got '%s'", got)
	}
	if got := getOutputDir("", ""); got != "./site" {
		t.Errorf("Expected default, got '%s'", got)
	}
}

func TestBuildDesignDefaults(t *testing.T) {
	cfg, err := buildDesign("", designOverrides{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Language != design.English {
		t.Errorf("Expected english, got %s", cfg.Language)
	}
	if cfg.ColorScheme.ID != "modern-blue" {
		t.Errorf("Expected modern-blue, got %s", cfg.ColorScheme.ID)
	}
}

func TestBuildDesignOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.json")
	err := os.WriteFile(path, []byte(`{"language":"arabic","aestheticLevel":"standard","phoneNumber":"+1 555"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write design file: %v", err)
	}

	cfg, err := buildDesign(path, designOverrides{
		Language:       "Both",
		AestheticLevel: "premium",
		ColorScheme:    "elegant-purple",
		Typography:     "tech-minimalist",
		AnalyticsID:    "G-ABC123",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Language != design.Both {
		t.Errorf("Expected both, got %s", cfg.Language)
	}
	if cfg.AestheticLevel != design.Premium {
		t.Errorf("Expected premium, got %s", cfg.AestheticLevel)
	}
	if cfg.ColorScheme.Primary != "#7c3aed" {
		t.Errorf("Expected elegant-purple primary, got %s", cfg.ColorScheme.Primary)
	}
	if cfg.Typography.HeadingFont != "Space Grotesk" {
		t.Errorf("Expected Space Grotesk, got %s", cfg.Typography.HeadingFont)
	}
	if cfg.PhoneNumber != "+1 555" {
		t.Errorf("Expected phone from file, got %s", cfg.PhoneNumber)
	}
	if cfg.Analytics == nil || cfg.Analytics.GoogleAnalyticsID != "G-ABC123" {
		t.Error("Expected analytics ID from flag")
	}
}

func TestBuildDesignRejectsUnknownPresets(t *testing.T) {
	for _, overrides := range []designOverrides{
		{ColorScheme: "neon"},
		{Typography: "comic"},
		{Language: "klingon"},
		{AestheticLevel: "ultra"},
	} {
		if _, err := buildDesign("", overrides); err == nil {
			t.Errorf("Expected error for %+v", overrides)
		}
	}
}
