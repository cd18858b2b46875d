package scoring

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/personakit/personafind/internal/geo"
	"github.com/personakit/personafind/internal/similarity"
	"github.com/personakit/personafind/internal/types"
)

// Confidence weights per signal. Name dominates because the candidate title
// is the most reliable field in a search result.
const (
	confidenceNameW     = 0.35
	confidenceSemanticW = 0.25
	confidenceIndustryW = 0.10
	confidenceLocationW = 0.15
	confidenceSocialW   = 0.10
	confidenceImageW    = 0.05
)

// Blend weights for the location signal. Geo proximity outranks the text
// comparison when both locations geocode.
const (
	locationTextW = 0.3
	locationGeoW  = 0.7
	geoDistanceW  = 0.7
	geoTimezoneW  = 0.3
)

// Oracle judges the contextual similarity of two free-text descriptions.
// The Gemini-backed llm.SimilarityOracle satisfies it.
type Oracle interface {
	SemanticSimilarity(ctx context.Context, personaText, candidateText string) (float64, error)
}

// SocialSource resolves profile URLs into scraped account records.
// scrape.Scraper satisfies it.
type SocialSource interface {
	Scrape(ctx context.Context, urls []string) ([]types.ScrapedProfile, error)
}

// Config carries the external collaborators a Scorer may call. Every field
// is optional; a missing collaborator zeroes the signal it serves rather
// than failing the score.
type Config struct {
	Oracle    Oracle
	Geocoder  geo.Resolver
	Timezones geo.TimezoneResolver
	Social    SocialSource
}

// Scorer evaluates one candidate against one persona. Collaborator calls
// are best-effort; Score never returns an error.
type Scorer struct {
	oracle    Oracle
	geocoder  geo.Resolver
	timezones geo.TimezoneResolver
	social    SocialSource
}

// New builds a Scorer from the given collaborators.
func New(cfg Config) *Scorer {
	return &Scorer{
		oracle:    cfg.Oracle,
		geocoder:  cfg.Geocoder,
		timezones: cfg.Timezones,
		social:    cfg.Social,
	}
}

// Score computes the six similarity signals for a candidate, renders each as
// a percentage with a one-line explanation, and folds them into a weighted
// confidence percentage. Collaborator failures degrade the affected signal
// to zero.
func (s *Scorer) Score(ctx context.Context, persona *types.Persona, candidate types.Candidate) *types.ScoreResult {
	name := NameScore(persona.Name, candidate.Title)
	semantic := s.semanticScore(ctx, persona.Intro, candidate.Snippet)

	candidateIndustry := ExtractIndustry(candidate.Snippet)
	industry := IndustryScore(persona.CompanyIndustry, candidateIndustry)

	candidateLocation := ExtractLocation(candidate.Snippet)
	location := s.locationScore(ctx, persona.Location, persona.Timezone, candidateLocation)

	social := s.socialScore(ctx, persona, candidate)

	// Image similarity is produced by the separate validation pass and
	// merged in by the aggregator; at this layer it contributes nothing.
	image := 0.0

	confidence := confidenceNameW*name +
		confidenceSemanticW*semantic +
		confidenceIndustryW*industry +
		confidenceLocationW*location +
		confidenceSocialW*social +
		confidenceImageW*image

	return &types.ScoreResult{
		Candidate:  candidate,
		Confidence: percent(confidence),
		Scores: map[string]float64{
			types.SignalName:     percent(name),
			types.SignalSemantic: percent(semantic),
			types.SignalIndustry: percent(industry),
			types.SignalLocation: percent(location),
			types.SignalSocial:   percent(social),
			types.SignalImage:    percent(image),
		},
		Explanation: map[string]string{
			types.ExplanationKeys[types.SignalName]: fmt.Sprintf(
				"Name match: %.1f%% similarity between '%s' and '%s'",
				percent(name), persona.Name, candidate.Title),
			types.ExplanationKeys[types.SignalSemantic]: fmt.Sprintf(
				"Semantic match: %.1f%% contextual similarity in descriptions",
				percent(semantic)),
			types.ExplanationKeys[types.SignalIndustry]: fmt.Sprintf(
				"Industry match: %.1f%% similarity between '%s' and '%s'",
				percent(industry), persona.CompanyIndustry, candidateIndustry),
			types.ExplanationKeys[types.SignalLocation]: fmt.Sprintf(
				"Location match: %.1f%% proximity between '%s' and '%s'",
				percent(location), persona.Location, candidateLocation),
			types.ExplanationKeys[types.SignalSocial]: fmt.Sprintf(
				"Social match: %.1f%% matching social profiles",
				percent(social)),
			types.ExplanationKeys[types.SignalImage]: fmt.Sprintf(
				"Image match: %.1f%% visual similarity between profile images",
				percent(image)),
		},
	}
}

func (s *Scorer) semanticScore(ctx context.Context, personaText, candidateText string) float64 {
	if s.oracle == nil || strings.TrimSpace(personaText) == "" || strings.TrimSpace(candidateText) == "" {
		return 0
	}
	score, err := s.oracle.SemanticSimilarity(ctx, personaText, candidateText)
	if err != nil {
		return 0
	}
	return similarity.Clamp01(score)
}

// locationScore blends token-sort text similarity with a geocoded proximity
// score. Geocoding failures fall back to the text comparison alone.
func (s *Scorer) locationScore(ctx context.Context, personaLocation, personaTimezone, candidateLocation string) float64 {
	personaLocation = strings.TrimSpace(personaLocation)
	candidateLocation = strings.TrimSpace(candidateLocation)
	if personaLocation == "" || candidateLocation == "" {
		return 0
	}

	text := similarity.TokenSortRatio(strings.ToLower(personaLocation), strings.ToLower(candidateLocation))

	geoScore := 0.0
	if s.geocoder != nil {
		personaPoint, err1 := s.geocoder.Resolve(ctx, personaLocation)
		candidatePoint, err2 := s.geocoder.Resolve(ctx, candidateLocation)
		if err1 == nil && err2 == nil && personaPoint != nil && candidatePoint != nil {
			geoScore = distanceScore(geo.DistanceKm(*personaPoint, *candidatePoint))
			if personaTimezone != "" && s.timezones != nil {
				if tzScore, ok := s.timezoneScore(personaTimezone, *candidatePoint); ok {
					geoScore = geoScore*geoDistanceW + tzScore*geoTimezoneW
				}
			}
		}
	}

	if geoScore > 0 {
		return similarity.Clamp01(text*locationTextW + geoScore*locationGeoW)
	}
	return text
}

func (s *Scorer) timezoneScore(personaTimezone string, candidatePoint geo.Point) (float64, bool) {
	candidateTZ, err := s.timezones.TimezoneAt(candidatePoint)
	if err != nil || candidateTZ == "" {
		return 0, false
	}
	diff, err := geo.OffsetHours(personaTimezone, candidateTZ)
	if err != nil {
		return 0, false
	}
	return timezoneScore(diff), true
}

// socialScore resolves both sides to scraped account records and delegates
// to the weighted field comparison. The persona side prefers profiles
// already scraped during enrichment; the candidate side is discovered from
// profile URLs embedded in the snippet.
func (s *Scorer) socialScore(ctx context.Context, persona *types.Persona, candidate types.Candidate) float64 {
	personaProfiles := persona.ScrapedSocialData
	if len(personaProfiles) == 0 && s.social != nil {
		if urls := personaProfileURLs(persona); len(urls) > 0 {
			scraped, err := s.social.Scrape(ctx, urls)
			if err == nil {
				personaProfiles = scraped
			}
		}
	}
	if len(personaProfiles) == 0 {
		return 0
	}

	candidateURLs := extractProfileURLs(candidate.Snippet)
	if len(candidateURLs) == 0 || s.social == nil {
		return 0
	}
	candidateProfiles, err := s.social.Scrape(ctx, candidateURLs)
	if err != nil {
		return 0
	}

	return SocialScore(personaProfiles, candidateProfiles)
}

// personaProfileURLs collects the persona's social profile URLs, building a
// canonical URL from platform and username when no explicit URL is given.
func personaProfileURLs(persona *types.Persona) []string {
	var urls []string
	for _, profile := range persona.EffectiveSocialProfiles() {
		switch {
		case profile.URL != "":
			urls = append(urls, profile.URL)
		case profile.Platform != "" && profile.Username != "":
			if url := canonicalProfileURL(profile.Platform, profile.Username); url != "" {
				urls = append(urls, url)
			}
		}
	}
	return urls
}

func canonicalProfileURL(platform, username string) string {
	switch strings.ToLower(platform) {
	case "twitter", "x":
		return "https://twitter.com/" + username
	case "github":
		return "https://github.com/" + username
	case "bluesky":
		return "https://bsky.app/profile/" + username
	case "linkedin":
		return "https://linkedin.com/in/" + username
	default:
		return ""
	}
}

var urlPattern = regexp.MustCompile(`https?://[^\s<>"')]+`)

// extractProfileURLs finds embedded URLs in free text, trimming trailing
// punctuation that search snippets often append.
func extractProfileURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	urls := make([]string, 0, len(matches))
	for _, m := range matches {
		urls = append(urls, strings.TrimRight(m, ".,;:"))
	}
	return urls
}

// percent renders a [0,1] score as a percentage rounded to one decimal.
func percent(score float64) float64 {
	return math.Round(score*1000) / 10
}
