package types

// Signal names used as keys in ScoreResult.Scores and ScoreResult.Explanation.
const (
	SignalName     = "name_score"
	SignalSemantic = "semantic_score"
	SignalIndustry = "industry_score"
	SignalLocation = "location_score"
	SignalSocial   = "social_score"
	SignalImage    = "image_score"
)

// ExplanationKeys maps a signal score key to its explanation key.
var ExplanationKeys = map[string]string{
	SignalName:     "name",
	SignalSemantic: "semantic",
	SignalIndustry: "industry",
	SignalLocation: "location",
	SignalSocial:   "social",
	SignalImage:    "image",
}

// ScoreResult is the terminal artifact of scoring one candidate against a
// persona: a weighted confidence percentage, the six sub-scores that produced
// it, and one human-readable sentence per signal. Created fresh per scoring
// call; only the aggregator's image-merge step mutates it afterwards.
type ScoreResult struct {
	Candidate   Candidate          `json:"profile"`
	Confidence  float64            `json:"confidence"` // 0-100, one decimal
	Scores      map[string]float64 `json:"scores"`     // six sub-scores, 0-100
	Explanation map[string]string  `json:"explanation"`

	// Attached by the aggregator during the optional image-merge pass.
	ImageSimilarity float64 `json:"image_similarity,omitempty"`
	ImageMatch      bool    `json:"image_match,omitempty"`
}
