package llm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/personakit/personafind/internal/prompts"
)

// SimilarityOracle scores the semantic closeness of a persona description and
// a candidate profile using an LLM. Malformed model output scores 0 rather
// than failing the whole ranking pass.
type SimilarityOracle struct {
	client Client
	tier   ModelTier
}

// NewSimilarityOracle wraps an LLM client as a similarity oracle.
// The lite tier is the default: the judgment is a single scalar and does not
// need a reasoning model.
func NewSimilarityOracle(client Client) *SimilarityOracle {
	return &SimilarityOracle{client: client, tier: TierLite}
}

// WithTier overrides the model tier used for similarity calls.
func (o *SimilarityOracle) WithTier(tier ModelTier) *SimilarityOracle {
	return &SimilarityOracle{client: o.client, tier: tier}
}

// SemanticSimilarity returns a 0..1 score for how likely the candidate text
// describes the same person as the persona text. The model is asked for a
// bare decimal; anything unparseable maps to 0.
func (o *SimilarityOracle) SemanticSimilarity(ctx context.Context, personaText, candidateText string) (float64, error) {
	if strings.TrimSpace(personaText) == "" || strings.TrimSpace(candidateText) == "" {
		return 0, nil
	}

	template, err := prompts.Get("matching.json", "semantic-similarity")
	if err != nil {
		return 0, fmt.Errorf("failed to load similarity prompt: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{
		"Persona":   personaText,
		"Candidate": candidateText,
	})

	raw, err := o.client.GenerateContent(ctx, prompt, o.tier)
	if err != nil {
		return 0, fmt.Errorf("similarity call failed: %w", err)
	}

	return parseScore(raw), nil
}

// parseScore extracts a 0..1 decimal from model output. The first
// number-looking token wins; out-of-range values are clamped.
func parseScore(raw string) float64 {
	for _, field := range strings.Fields(strings.TrimSpace(raw)) {
		field = strings.Trim(field, "`*\"',;:")
		score, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}
		if score < 0 {
			return 0
		}
		if score > 1 {
			return 1
		}
		return score
	}
	return 0
}
