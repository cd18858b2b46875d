package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePersona_Valid(t *testing.T) {
	personaJSON := `{
		"name": "John Smith",
		"intro": "Senior software engineer",
		"company_industry": "Technology",
		"location": "San Francisco, CA",
		"timezone": "America/Los_Angeles",
		"social_profile": ["https://github.com/johnsmith"],
		"keywords": ["golang", "distributed systems"]
	}`

	assert.NoError(t, ValidatePersona(personaJSON))
}

func TestValidatePersona_MinimalValid(t *testing.T) {
	assert.NoError(t, ValidatePersona(`{"name": "Jane Doe"}`))
}

func TestValidatePersona_MissingName(t *testing.T) {
	err := ValidatePersona(`{"location": "Berlin"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidatePersona_EmptyName(t *testing.T) {
	err := ValidatePersona(`{"name": ""}`)
	require.Error(t, err)
}

func TestValidatePersona_WrongType(t *testing.T) {
	err := ValidatePersona(`{"name": "Jane", "keywords": "golang"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidatePersona_StructuredSocialProfiles(t *testing.T) {
	assert.NoError(t, ValidatePersona(`{
		"name": "Jane Doe",
		"social_profiles": [
			{"platform": "github", "username": "janedoe"},
			{"platform": "twitter", "url": "https://twitter.com/janedoe"}
		]
	}`))

	err := ValidatePersona(`{
		"name": "Jane Doe",
		"social_profiles": [{"username": "janedoe"}]
	}`)
	require.Error(t, err, "platform is required on structured profiles")
}

func TestValidatePersona_ExtraFieldsAllowed(t *testing.T) {
	// AI enrichment may return fields the persona type does not carry.
	assert.NoError(t, ValidatePersona(`{"name": "Jane", "education": "MIT"}`))
}

func TestValidatePersona_MalformedJSON(t *testing.T) {
	err := ValidatePersona(`{ invalid json }`)
	require.Error(t, err)
}

func TestValidatePersonaFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "persona.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "Jane Doe"}`), 0644))

	assert.NoError(t, ValidatePersonaFile(path))
}

func TestValidatePersonaFile_Missing(t *testing.T) {
	err := ValidatePersonaFile("testdata/nonexistent.json")
	require.Error(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "timezone", Message: "must be a string"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "timezone")
}
