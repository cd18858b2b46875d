package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio_IdenticalStrings(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("john smith", "john smith"))
}

func TestRatio_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, Ratio("", "john smith"))
	assert.Equal(t, 0.0, Ratio("john smith", ""))
}

func TestTokenSortRatio_ReorderedTokens(t *testing.T) {
	assert.Equal(t, 1.0, TokenSortRatio("smith john", "john smith"))
}

func TestPartialRatio_Substring(t *testing.T) {
	assert.Equal(t, 1.0, PartialRatio("john smith", "john smith - software engineer"))
}

func TestBlend_CaseInsensitive(t *testing.T) {
	upper := Blend("John Smith", "JOHN SMITH", 0.3, 0.4, 0.3)
	lower := Blend("john smith", "john smith", 0.3, 0.4, 0.3)
	assert.Equal(t, lower, upper)
}

func TestBlend_IdenticalIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, Blend("technology", "technology", 0.2, 0.3, 0.5), 1e-9)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.2))
	assert.Equal(t, 1.0, Clamp01(1.7))
	assert.Equal(t, 0.5, Clamp01(0.5))
}
