package types

// Query is one synthesized search string paired with the signal weights that
// produced it. Text is unique within one ranked result set.
type Query struct {
	Text      string             `json:"text"`
	Signals   map[string]float64 `json:"signals"`
	RankScore float64            `json:"rank_score"`
}
