package types

// Candidate is one discovered profile record to be evaluated against a
// persona. The Link is the canonical identity key; records are immutable as
// received from the search collaborator. The scorer derives industry and
// location guesses from Snippet via pattern heuristics without mutating the
// original fields.
type Candidate struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	ImageURL string `json:"image_url,omitempty"`
}

// ImageValidation carries the image-similarity verdict produced by the
// optional secondary pass over a candidate pool.
type ImageValidation struct {
	Candidate       Candidate `json:"candidate"`
	ImageSimilarity float64   `json:"image_similarity"`
	ProfileImage    string    `json:"profile_image,omitempty"`
	ImageMatch      bool      `json:"image_match"`
}
