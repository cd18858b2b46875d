package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	os.Exit(m.Run())
}

func writePersonaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "persona.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPersona_Valid(t *testing.T) {
	path := writePersonaFile(t, `{
		"name": "John Smith",
		"location": "San Francisco, CA",
		"social_profile": ["https://github.com/johnsmith"]
	}`)

	persona, err := loadPersona(path)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", persona.Name)
	assert.Equal(t, "San Francisco, CA", persona.Location)
	assert.Len(t, persona.SocialProfile, 1)
}

func TestLoadPersona_MissingName(t *testing.T) {
	path := writePersonaFile(t, `{"location": "Berlin"}`)

	persona, err := loadPersona(path)
	assert.Error(t, err)
	assert.Nil(t, persona)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoadPersona_MalformedJSON(t *testing.T) {
	path := writePersonaFile(t, `{ not json }`)

	_, err := loadPersona(path)
	assert.Error(t, err)
}

func TestLoadPersona_EmptyPath(t *testing.T) {
	_, err := loadPersona("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "persona file path is required")
}

func TestLoadPersona_FileNotFound(t *testing.T) {
	_, err := loadPersona("/nonexistent/persona.json")
	assert.Error(t, err)
}

func TestWriteJSON_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeJSON(path, map[string]string{"name": "Jane"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Jane"`)
}

func TestFindConfig_Defaults(t *testing.T) {
	findPersonaFile = ""
	findConfigFile = ""
	findAPIKey = ""
	findSerpKey = "test-key"
	findMaxCandidates = 0
	findImageThreshold = 0
	findDatabaseURL = ""
	findVerbose = false

	cfg, err := findConfig()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxCandidates)
	assert.InDelta(t, 0.9, cfg.ImageThreshold, 0.001)
	assert.Equal(t, "test-key", cfg.SerpAPIKey)
}

func TestFindConfig_FlagsWinOverFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{
		"serpapi_key": "file-key",
		"max_candidates": 25
	}`), 0644))

	findPersonaFile = ""
	findConfigFile = configPath
	findAPIKey = ""
	findSerpKey = "flag-key"
	findMaxCandidates = 0
	findImageThreshold = 0
	findDatabaseURL = ""
	findVerbose = false

	cfg, err := findConfig()
	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.SerpAPIKey)
	assert.Equal(t, 25, cfg.MaxCandidates)
}
