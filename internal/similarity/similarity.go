// Package similarity provides the string-similarity primitives used by the
// candidate scorer: Levenshtein-based fuzzy ratios and weighted blends of
// them, all normalized to [0, 1].
package similarity

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Ratio returns the plain edit-distance similarity of two strings in [0, 1].
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return float64(fuzzy.Ratio(a, b)) / 100
}

// PartialRatio returns the best-matching-substring similarity in [0, 1].
func PartialRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return float64(fuzzy.PartialRatio(a, b)) / 100
}

// TokenSortRatio returns the similarity of the two strings with their tokens
// sorted, in [0, 1]. Word order does not affect the result.
func TokenSortRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return float64(fuzzy.TokenSortRatio(a, b)) / 100
}

// Blend combines the three ratios with the given weights. Inputs are
// lower-cased and trimmed first so the blend is case-insensitive.
func Blend(a, b string, ratioW, partialW, tokenSortW float64) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	return Ratio(a, b)*ratioW + PartialRatio(a, b)*partialW + TokenSortRatio(a, b)*tokenSortW
}

// Clamp01 bounds v to the [0, 1] interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
