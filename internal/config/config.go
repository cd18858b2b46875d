// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment
// variables, or must be provided via CLI flags.
type Config struct {
	// Paths
	Persona string `json:"persona,omitempty"` // Path to persona JSON file

	// API keys and credentials
	GeminiAPIKey       string `json:"gemini_api_key,omitempty"`       // Gemini API key
	SerpAPIKey         string `json:"serpapi_key,omitempty"`          // SerpAPI key for web search
	ScrapingDogAPIKey  string `json:"scrapingdog_api_key,omitempty"`  // ScrapingDog key for profile images
	GitHubToken        string `json:"github_token,omitempty"`         // GitHub API token
	TwitterBearerToken string `json:"twitter_bearer_token,omitempty"` // Twitter API bearer token
	DatabaseURL        string `json:"database_url,omitempty"`         // PostgreSQL connection URL

	// Limits
	MaxCandidates     int     `json:"max_candidates,omitempty"`      // Maximum candidate links to collect
	RequestsPerMinute int     `json:"requests_per_minute,omitempty"` // Scraping rate limit
	ImageThreshold    float64 `json:"image_threshold,omitempty"`     // Image similarity match threshold (0.0-1.0)

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA profile pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
	SkipCache  bool `json:"skip_cache,omitempty"`  // Bypass the page cache
}

// Environment variable names recognized by MergeWithEnv.
const (
	EnvGeminiAPIKey       = "GEMINI_API_KEY"
	EnvSerpAPIKey         = "SERPAPI_API_KEY"
	EnvScrapingDogAPIKey  = "SCRAPINGDOG_API_KEY"
	EnvGitHubToken        = "GITHUB_TOKEN"
	EnvTwitterBearerToken = "TWITTER_BEARER_TOKEN"
	EnvDatabaseURL        = "DATABASE_URL"
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxCandidates < 0 {
		return fmt.Errorf("config error: 'max_candidates' must be non-negative")
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("config error: 'requests_per_minute' must be non-negative")
	}
	if c.ImageThreshold < 0 || c.ImageThreshold > 1 {
		return fmt.Errorf("config error: 'image_threshold' must be between 0.0 and 1.0")
	}

	// Validate file paths exist (if specified)
	if c.Persona != "" {
		if _, err := os.Stat(c.Persona); os.IsNotExist(err) {
			return fmt.Errorf("config error: persona file not found: %s", c.Persona)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Persona == "" {
		result.Persona = defaults.Persona
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.SerpAPIKey == "" {
		result.SerpAPIKey = defaults.SerpAPIKey
	}
	if result.ScrapingDogAPIKey == "" {
		result.ScrapingDogAPIKey = defaults.ScrapingDogAPIKey
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.TwitterBearerToken == "" {
		result.TwitterBearerToken = defaults.TwitterBearerToken
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.MaxCandidates == 0 {
		result.MaxCandidates = defaults.MaxCandidates
	}
	if result.RequestsPerMinute == 0 {
		result.RequestsPerMinute = defaults.RequestsPerMinute
	}

	// Float fields
	if result.ImageThreshold == 0 {
		result.ImageThreshold = defaults.ImageThreshold
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// MergeWithEnv fills empty credential fields from environment variables.
// Explicit config values always win over the environment.
func (c *Config) MergeWithEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)
	}
	if c.SerpAPIKey == "" {
		c.SerpAPIKey = os.Getenv(EnvSerpAPIKey)
	}
	if c.ScrapingDogAPIKey == "" {
		c.ScrapingDogAPIKey = os.Getenv(EnvScrapingDogAPIKey)
	}
	if c.GitHubToken == "" {
		c.GitHubToken = os.Getenv(EnvGitHubToken)
	}
	if c.TwitterBearerToken == "" {
		c.TwitterBearerToken = os.Getenv(EnvTwitterBearerToken)
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv(EnvDatabaseURL)
	}
}
