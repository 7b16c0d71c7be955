package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RAPIDAPI_KEY",
		"RAPIDAPI_HOST",
		"BRAND_WEAVER_LISTEN_ADDR",
		"BRAND_WEAVER_BASE_URL",
		"LOG_LEVEL",
		"BRAND_WEAVER_SAMPLE_FALLBACK",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	testConfig := Config{
		RapidAPIKey: "test-key",
		Server: ServerConfig{
			ListenAddr:         ":8080",
			RateLimitPerMinute: 5,
		},
		Site: SiteConfig{
			BaseURL: "https://jane.dev",
		},
		Logging: LoggingConfig{
			Level: "debug",
		},
		Defaults: DefaultConfig{
			OutputDir: "./out",
		},
	}

	data, err := json.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.RapidAPIKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.RapidAPIKey)
	}

	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("Expected listen addr ':8080', got '%s'", cfg.Server.ListenAddr)
	}

	if cfg.Server.RateLimitPerMinute != 5 {
		t.Errorf("Expected rate limit 5, got %d", cfg.Server.RateLimitPerMinute)
	}

	if cfg.Site.BaseURL != "https://jane.dev" {
		t.Errorf("Expected base URL 'https://jane.dev', got '%s'", cfg.Site.BaseURL)
	}

	if cfg.Defaults.OutputDir != "./out" {
		t.Errorf("Expected output dir './out', got '%s'", cfg.Defaults.OutputDir)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(configPath, []byte(`{"rapidapi_key": "k"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.ListenAddr != ":5000" {
		t.Errorf("Expected default listen addr ':5000', got '%s'", cfg.Server.ListenAddr)
	}

	if !cfg.SampleFallback {
		t.Error("Expected sample fallback to default to true")
	}

	if cfg.Server.RateLimitPerMinute != 10 {
		t.Errorf("Expected default rate limit 10, got %d", cfg.Server.RateLimitPerMinute)
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(configPath, []byte(`{"rapidapi_key": "file-key"}`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("RAPIDAPI_KEY", "env-key")
	t.Setenv("BRAND_WEAVER_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("BRAND_WEAVER_SAMPLE_FALLBACK", "false")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.RapidAPIKey != "env-key" {
		t.Errorf("Expected API key from env 'env-key', got '%s'", cfg.RapidAPIKey)
	}

	if cfg.Server.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("Expected listen addr from env, got '%s'", cfg.Server.ListenAddr)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level 'warn', got '%s'", cfg.Logging.Level)
	}

	if cfg.SampleFallback {
		t.Error("Expected sample fallback disabled by env")
	}
}

func TestLoadInvalidEnvBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("BRAND_WEAVER_SAMPLE_FALLBACK", "sometimes")

	_, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("Expected error for unparseable boolean")
	}
}

func TestLoadNonexistent(t *testing.T) {
	clearEnv(t)

	_, err := Load("/nonexistent/config.json")
	if err == nil {
		t.Error("Expected error for nonexistent config file")
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAPIDAPI_KEY", "env-key")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}

	if cfg.RapidAPIKey != "env-key" {
		t.Errorf("Expected env key on defaults, got '%s'", cfg.RapidAPIKey)
	}

	if cfg.Server.ListenAddr != ":5000" {
		t.Errorf("Expected default listen addr, got '%s'", cfg.Server.ListenAddr)
	}
}

func TestLoadMalformed(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(configPath, []byte(`{not json`), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = LoadOrDefault(configPath)
	if err == nil {
		t.Error("Expected error for malformed config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "empty listen addr", mutate: func(c *Config) { c.Server.ListenAddr = " " }, wantErr: true},
		{name: "negative rate limit", mutate: func(c *Config) { c.Server.RateLimitPerMinute = -1 }, wantErr: true},
		{name: "relative base url", mutate: func(c *Config) { c.Site.BaseURL = "jane.dev" }, wantErr: true},
		{name: "ftp base url", mutate: func(c *Config) { c.Site.BaseURL = "ftp://jane.dev" }, wantErr: true},
		{name: "empty base url", mutate: func(c *Config) { c.Site.BaseURL = "" }, wantErr: false},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: true},
		{name: "bad endpoint", mutate: func(c *Config) { c.APIEndpoint = "/relative" }, wantErr: true},
		{name: "good endpoint", mutate: func(c *Config) { c.APIEndpoint = "http://127.0.0.1:8080" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateFillsOutputDir(t *testing.T) {
	cfg := Default()
	cfg.Defaults.OutputDir = ""

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Defaults.OutputDir != "./site" {
		t.Errorf("Expected default output dir './site', got '%s'", cfg.Defaults.OutputDir)
	}
}

func TestInitConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.json")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	info, err := os.Stat(configPath)
	if err != nil {
		t.Fatalf("Config file not created: %v", err)
	}

	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %o", info.Mode().Perm())
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		t.Fatalf("Failed to parse written config: %v", err)
	}

	if cfg.Server.ListenAddr != ":5000" {
		t.Errorf("Expected default listen addr, got '%s'", cfg.Server.ListenAddr)
	}

	err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error when config already exists")
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	_ = os.Unsetenv("RAPIDAPI_KEY")

	envPath := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(envPath, []byte("RAPIDAPI_KEY=dotenv-key\n"), 0600)
	if err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}

	err = LoadEnv(envPath, filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Failed to load env: %v", err)
	}

	if got := os.Getenv("RAPIDAPI_KEY"); got != "dotenv-key" {
		t.Errorf("Expected RAPIDAPI_KEY from .env, got '%s'", got)
	}
}
