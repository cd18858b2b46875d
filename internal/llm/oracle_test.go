package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"bare decimal", "0.85", 0.85},
		{"whitespace padded", "  0.5\n", 0.5},
		{"backtick wrapped", "`0.7`", 0.7},
		{"score with trailing text", "0.9 (very likely)", 0.9},
		{"integer one", "1", 1.0},
		{"integer zero", "0", 0.0},
		{"above range clamped", "1.5", 1.0},
		{"below range clamped", "-0.2", 0.0},
		{"no number", "very likely the same person", 0.0},
		{"empty", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, parseScore(tt.input), 1e-9)
		})
	}
}

func TestBuildExtractionPrompt_PersonaProfile(t *testing.T) {
	prompt := BuildExtractionPrompt(PersonaProfileSchema(), "bio: Software engineer in Berlin")

	assert.Contains(t, prompt, "merging scraped social-media profile data")
	assert.Contains(t, prompt, `"name"`)
	assert.Contains(t, prompt, `"keywords"`)
	assert.Contains(t, prompt, "bio: Software engineer in Berlin")
}
