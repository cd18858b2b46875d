// Package images compares profile photos by perceptual hash and fetches
// candidate images for validation.
package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	"github.com/corona10/goimagehash"

	"github.com/personakit/personafind/internal/fetch"
)

// maxHashDistance is the worst possible Hamming distance between two 64-bit
// perceptual hashes.
const maxHashDistance = 64

// DefaultMatchThreshold is the similarity above which two photos are
// considered the same person.
const DefaultMatchThreshold = 0.9

// Similarity computes perceptual-hash similarity between two images as a
// 0..1 score: 1 means identical hashes, 0 means maximally distant.
func Similarity(a, b image.Image) (float64, error) {
	hashA, err := goimagehash.PerceptionHash(a)
	if err != nil {
		return 0, fmt.Errorf("failed to hash first image: %w", err)
	}
	hashB, err := goimagehash.PerceptionHash(b)
	if err != nil {
		return 0, fmt.Errorf("failed to hash second image: %w", err)
	}

	distance, err := hashA.Distance(hashB)
	if err != nil {
		return 0, fmt.Errorf("failed to compare hashes: %w", err)
	}

	return 1 - float64(distance)/maxHashDistance, nil
}

// Load fetches and decodes an image from a URL.
func Load(ctx context.Context, imageURL string, opts *fetch.Options) (image.Image, error) {
	result, err := fetch.URL(ctx, imageURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader([]byte(result.HTML)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image from %s: %w", imageURL, err)
	}
	return img, nil
}

// ProfileImageSource resolves a candidate profile link to its photo URL.
type ProfileImageSource interface {
	ProfileImageURL(ctx context.Context, profileLink string) (string, error)
}

// ScrapingDogSource resolves LinkedIn profile photos through the ScrapingDog
// profile API.
type ScrapingDogSource struct {
	apiKey string
	opts   *fetch.Options
}

// NewScrapingDogSource builds a ScrapingDog-backed image source.
func NewScrapingDogSource(apiKey string, opts *fetch.Options) *ScrapingDogSource {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &ScrapingDogSource{apiKey: apiKey, opts: opts}
}

// ProfileImageURL fetches the profile photo URL for a LinkedIn profile link.
func (s *ScrapingDogSource) ProfileImageURL(ctx context.Context, profileLink string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("image API key is not configured")
	}

	linkID, err := linkedinID(profileLink)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("https://api.scrapingdog.com/linkedin?api_key=%s&type=profile&linkId=%s&private=false",
		url.QueryEscape(s.apiKey), url.QueryEscape(linkID))

	result, err := fetch.URL(ctx, endpoint, s.opts)
	if err != nil {
		return "", fmt.Errorf("profile image lookup failed: %w", err)
	}

	var payload []struct {
		ProfilePhoto string `json:"profile_photo"`
	}
	if err := json.Unmarshal([]byte(result.HTML), &payload); err != nil {
		return "", fmt.Errorf("failed to parse profile image response: %w", err)
	}
	if len(payload) == 0 || payload[0].ProfilePhoto == "" {
		return "", fmt.Errorf("no profile photo for %s", profileLink)
	}
	return payload[0].ProfilePhoto, nil
}

// linkedinID extracts the public profile identifier from a linkedin.com/in
// URL.
func linkedinID(profileLink string) (string, error) {
	idx := strings.Index(profileLink, "linkedin.com/in/")
	if idx < 0 {
		return "", fmt.Errorf("not a linkedin profile link: %s", profileLink)
	}
	id := profileLink[idx+len("linkedin.com/in/"):]
	if cut := strings.IndexAny(id, "/?#"); cut >= 0 {
		id = id[:cut]
	}
	if id == "" {
		return "", fmt.Errorf("empty profile id in link: %s", profileLink)
	}
	return id, nil
}
