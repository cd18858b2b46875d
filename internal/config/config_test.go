package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"persona": "persona.json",
		"serpapi_key": "serp-key",
		"max_candidates": 20,
		"image_threshold": 0.85,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "persona.json", cfg.Persona)
	assert.Equal(t, "serp-key", cfg.SerpAPIKey)
	assert.Equal(t, 20, cfg.MaxCandidates)
	assert.InDelta(t, 0.85, cfg.ImageThreshold, 0.001)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{MaxCandidates: -1}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_candidates")

	cfg = &Config{RequestsPerMinute: -5}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requests_per_minute")
}

func TestValidate_ImageThresholdRange(t *testing.T) {
	cfg := &Config{ImageThreshold: 1.5}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "image_threshold")

	cfg = &Config{ImageThreshold: 0.9}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PersonaFileMissing(t *testing.T) {
	cfg := &Config{Persona: "/nonexistent/persona.json"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "persona file not found")
}

func TestValidate_PersonaFileExists(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "persona.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"name":"Jane"}`), 0644))

	cfg := &Config{Persona: tmpFile}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{
		SerpAPIKey:    "explicit-key",
		MaxCandidates: 5,
	}
	defaults := Config{
		SerpAPIKey:     "default-key",
		GeminiAPIKey:   "default-gemini",
		MaxCandidates:  10,
		ImageThreshold: 0.9,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit-key", merged.SerpAPIKey)
	assert.Equal(t, "default-gemini", merged.GeminiAPIKey)
	assert.Equal(t, 5, merged.MaxCandidates)
	assert.InDelta(t, 0.9, merged.ImageThreshold, 0.001)
}

func TestMergeWithEnv(t *testing.T) {
	t.Setenv(EnvSerpAPIKey, "env-serp")
	t.Setenv(EnvGeminiAPIKey, "env-gemini")

	cfg := Config{GeminiAPIKey: "explicit-gemini"}
	cfg.MergeWithEnv()

	assert.Equal(t, "explicit-gemini", cfg.GeminiAPIKey)
	assert.Equal(t, "env-serp", cfg.SerpAPIKey)
}

func TestMergeWithEnv_EmptyEnv(t *testing.T) {
	t.Setenv(EnvDatabaseURL, "")

	cfg := Config{}
	cfg.MergeWithEnv()
	assert.Empty(t, cfg.DatabaseURL)
}
