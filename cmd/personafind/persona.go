package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/personakit/personafind/internal/schemas"
	"github.com/personakit/personafind/internal/types"
)

// loadPersona reads, schema-validates, and decodes a persona JSON file.
func loadPersona(path string) (*types.Persona, error) {
	if path == "" {
		return nil, fmt.Errorf("persona file path is required")
	}

	if err := schemas.ValidatePersonaFile(path); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("persona file %s is invalid: %w", path, err)
		}
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read persona file: %w", err)
	}

	var persona types.Persona
	if err := json.Unmarshal(data, &persona); err != nil {
		return nil, fmt.Errorf("failed to parse persona JSON: %w", err)
	}
	if err := persona.Validate(); err != nil {
		return nil, fmt.Errorf("persona is incomplete: %w", err)
	}

	return &persona, nil
}

// writeJSON writes v as indented JSON to a file, or to stdout when path is
// empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
