package config

import (
	"encoding/json"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	RapidAPIKey    string        `json:"rapidapi_key"`
	RapidAPIHost   string        `json:"rapidapi_host,omitempty"`
	APIEndpoint    string        `json:"api_endpoint,omitempty"`
	SampleFallback bool          `json:"sample_fallback"`
	Server         ServerConfig  `json:"server"`
	Site           SiteConfig    `json:"site"`
	Logging        LoggingConfig `json:"logging"`
	Defaults       DefaultConfig `json:"defaults"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	ListenAddr         string `json:"listen_addr"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute"`
}

// SiteConfig holds generated-site settings.
type SiteConfig struct {
	BaseURL string `json:"base_url"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level       string `json:"level"`
	Development bool   `json:"development,omitempty"`
}

// DefaultConfig holds default values for commands.
type DefaultConfig struct {
	OutputDir string `json:"output_dir"`
}

// Default returns the configuration used when no file is present.
func Default() (cfg Config) {
	cfg = Config{
		SampleFallback: true,
		Server: ServerConfig{
			ListenAddr:         ":5000",
			RateLimitPerMinute: 10,
		},
		Site: SiteConfig{
			BaseURL: "https://example.com",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Defaults: DefaultConfig{
			OutputDir: "./site",
		},
	}
	return cfg
}

// DefaultPath returns $HOME/.brand-weaver/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".brand-weaver", "config.json")
	return path, err
}

// LoadEnv loads variables from .env files into the process environment.
// Missing files are skipped; variables already set are kept.
func LoadEnv(paths ...string) (err error) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		err = godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			err = errors.Wrapf(err, "failed to load env file: %s", path)
			return err
		}
		err = nil
	}

	return err
}

// Load reads configuration from file with environment variable overrides.
// The file must exist.
func Load(configPath string) (cfg Config, err error) {
	cfg, err = load(configPath, false)
	return cfg, err
}

// LoadOrDefault is Load, except a missing file yields the defaults plus
// environment overrides.
func LoadOrDefault(configPath string) (cfg Config, err error) {
	cfg, err = load(configPath, true)
	return cfg, err
}

func load(configPath string, allowMissing bool) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	cfg = Default()

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && allowMissing:
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'brand-weaver init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = cfg.applyEnv()
	if err != nil {
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() (err error) {
	if v := os.Getenv("RAPIDAPI_KEY"); v != "" {
		c.RapidAPIKey = v
	}
	if v := os.Getenv("RAPIDAPI_HOST"); v != "" {
		c.RapidAPIHost = v
	}
	if v := os.Getenv("BRAND_WEAVER_LISTEN_ADDR"); v != "" {
		c.Server.ListenAddr = v
	}
	if v := os.Getenv("BRAND_WEAVER_BASE_URL"); v != "" {
		c.Site.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BRAND_WEAVER_SAMPLE_FALLBACK"); v != "" {
		c.SampleFallback, err = strconv.ParseBool(v)
		if err != nil {
			err = errors.Wrapf(err, "invalid BRAND_WEAVER_SAMPLE_FALLBACK: %s", v)
			return err
		}
	}
	return err
}

// Validate checks the configuration and fills defaults for optional values.
func (c *Config) Validate() (err error) {
	if strings.TrimSpace(c.Server.ListenAddr) == "" {
		err = errors.New("server.listen_addr is required in config")
		return err
	}

	if c.Server.RateLimitPerMinute < 0 {
		err = errors.New("server.rate_limit_per_minute must not be negative")
		return err
	}

	if c.Site.BaseURL != "" {
		var u *url.URL
		u, err = url.Parse(c.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			err = errors.Errorf("site.base_url must be an absolute http(s) URL: %s", c.Site.BaseURL)
			return err
		}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		err = errors.Errorf("logging.level must be one of debug, info, warn, error: %s", c.Logging.Level)
		return err
	}

	if c.APIEndpoint != "" {
		var u *url.URL
		u, err = url.Parse(c.APIEndpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			err = errors.Errorf("api_endpoint must be an absolute URL: %s", c.APIEndpoint)
			return err
		}
	}

	if c.Defaults.OutputDir == "" {
		c.Defaults.OutputDir = "./site"
	}

	err = nil
	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return err
	}

	defaultConfig := Default()
	defaultConfig.RapidAPIKey = ""

	var data []byte
	data, err = json.MarshalIndent(defaultConfig, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
