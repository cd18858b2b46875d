package scoring

import (
	"context"
	"image"
	"sort"

	"github.com/personakit/personafind/internal/fetch"
	"github.com/personakit/personafind/internal/images"
	"github.com/personakit/personafind/internal/types"
)

// Rank returns the results sorted by confidence, highest first. The sort is
// stable so that equal-confidence results keep their input order. The input
// slice is not modified.
func Rank(results []*types.ScoreResult) []*types.ScoreResult {
	ranked := make([]*types.ScoreResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})
	return ranked
}

// ImageValidator runs the optional secondary pass that compares candidate
// profile portraits against the persona's portrait.
type ImageValidator struct {
	source  images.ProfileImageSource
	load    func(ctx context.Context, url string) (image.Image, error)
	compare func(a, b image.Image) (float64, error)
}

// NewImageValidator builds a validator around a profile-image source. Fetch
// options apply to image downloads.
func NewImageValidator(source images.ProfileImageSource, opts *fetch.Options) *ImageValidator {
	return &ImageValidator{
		source: source,
		load: func(ctx context.Context, url string) (image.Image, error) {
			return images.Load(ctx, url, opts)
		},
		compare: images.Similarity,
	}
}

// Validate compares each candidate's profile portrait against the persona's
// and returns the verdicts sorted by similarity, highest first. When the
// persona has no portrait the candidates pass through unannotated in their
// original order. Per-candidate failures degrade to a zero similarity.
func (v *ImageValidator) Validate(ctx context.Context, candidates []types.Candidate, persona *types.Persona, threshold float64) []types.ImageValidation {
	validations := make([]types.ImageValidation, 0, len(candidates))

	if persona.Image == "" {
		for _, c := range candidates {
			validations = append(validations, types.ImageValidation{Candidate: c})
		}
		return validations
	}

	personaImage, err := v.load(ctx, persona.Image)
	if err != nil {
		for _, c := range candidates {
			validations = append(validations, types.ImageValidation{Candidate: c})
		}
		return validations
	}

	for _, c := range candidates {
		validations = append(validations, v.validateOne(ctx, c, personaImage, threshold))
	}

	sort.SliceStable(validations, func(i, j int) bool {
		return validations[i].ImageSimilarity > validations[j].ImageSimilarity
	})
	return validations
}

func (v *ImageValidator) validateOne(ctx context.Context, candidate types.Candidate, personaImage image.Image, threshold float64) types.ImageValidation {
	result := types.ImageValidation{Candidate: candidate}

	imageURL := candidate.ImageURL
	if imageURL == "" && v.source != nil {
		url, err := v.source.ProfileImageURL(ctx, candidate.Link)
		if err != nil {
			return result
		}
		imageURL = url
	}
	if imageURL == "" {
		return result
	}
	result.ProfileImage = imageURL

	candidateImage, err := v.load(ctx, imageURL)
	if err != nil {
		return result
	}
	sim, err := v.compare(personaImage, candidateImage)
	if err != nil {
		return result
	}
	result.ImageSimilarity = sim
	result.ImageMatch = sim >= threshold
	return result
}

// MergeHybrid joins ranked score results with an image-validation pass by
// candidate link, attaching the image similarity and match verdict to each
// result. Results with no matching validation keep zero similarity and no
// match. The input results are annotated in place and returned.
func MergeHybrid(results []*types.ScoreResult, validations []types.ImageValidation) []*types.ScoreResult {
	byLink := make(map[string]types.ImageValidation, len(validations))
	for _, val := range validations {
		byLink[val.Candidate.Link] = val
	}
	for _, res := range results {
		if val, ok := byLink[res.Candidate.Link]; ok {
			res.ImageSimilarity = val.ImageSimilarity
			res.ImageMatch = val.ImageMatch
		} else {
			res.ImageSimilarity = 0
			res.ImageMatch = false
		}
	}
	return results
}
