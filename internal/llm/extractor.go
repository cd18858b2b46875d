// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "PersonaProfile")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "map[string]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// PersonaProfileSchema returns the extraction schema for persona enrichment.
// Merges scraped social-media profile data into the persona's identity fields.
func PersonaProfileSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "PersonaProfile",
		Description: `You are merging scraped social-media profile data into an incomplete persona record. COPY VALUES VERBATIM - do not paraphrase or invent.
Your task is to fill the persona's missing fields from the scraped data.
IMPORTANT: Prefer values already present in the persona; fill only what is missing.
Goal: Produce a complete persona with identity fields plus derived keyword lists.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Full display name of the person",
				Required:    true,
			},
			{
				Name:        "location",
				Type:        "\"string\"",
				Description: "Human-readable location, exactly as written in a profile",
				Required:    false,
			},
			{
				Name:        "intro",
				Type:        "\"string\"",
				Description: "Short professional headline or bio",
				Required:    false,
			},
			{
				Name:        "company",
				Type:        "\"string\"",
				Description: "Current company or organization",
				Required:    false,
			},
			{
				Name:        "company_industry",
				Type:        "\"string\"",
				Description: "Industry the company operates in",
				Required:    false,
			},
			{
				Name:        "keywords",
				Type:        "[\"string\"]",
				Description: "Distinctive keywords from bios and posts - copy verbatim",
				Required:    true,
			},
			{
				Name:        "interests",
				Type:        "[\"string\"]",
				Description: "Topics the person repeatedly engages with",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Professional skills mentioned or clearly implied",
				Required:    false,
			},
		},
	}
}
