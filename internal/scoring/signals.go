// Package scoring evaluates discovered profile candidates against a persona
// across six similarity signals and aggregates them into a ranked,
// explainable confidence estimate.
package scoring

import (
	"regexp"
	"strings"

	"github.com/personakit/personafind/internal/similarity"
	"github.com/personakit/personafind/internal/types"
)

// Signal blend weights. The name blend leans on partial-ratio because the
// candidate title usually embeds the name in a longer string; the industry
// blend leans on token-sort because industry phrases reorder freely.
const (
	nameRatioW     = 0.3
	namePartialW   = 0.4
	nameTokenW     = 0.3
	nameTokensBonus = 0.2

	industryRatioW   = 0.2
	industryPartialW = 0.3
	industryTokenW   = 0.5
)

// NameScore blends three string-similarity measures of the persona name
// against the candidate title, with a bonus when every persona-name token
// appears among the title tokens. Result is in [0, 1].
func NameScore(personaName, candidateTitle string) float64 {
	personaName = strings.ToLower(strings.TrimSpace(personaName))
	candidateTitle = strings.ToLower(strings.TrimSpace(candidateTitle))
	if personaName == "" || candidateTitle == "" {
		return 0
	}

	score := similarity.Blend(personaName, candidateTitle, nameRatioW, namePartialW, nameTokenW)

	titleTokens := make(map[string]bool)
	for _, tok := range strings.Fields(candidateTitle) {
		titleTokens[tok] = true
	}
	allPresent := true
	for _, tok := range strings.Fields(personaName) {
		if !titleTokens[tok] {
			allPresent = false
			break
		}
	}
	if allPresent {
		score += nameTokensBonus
	}

	return similarity.Clamp01(score)
}

// IndustryScore blends the persona industry against an industry phrase, with
// token order weighted most heavily. Zero when either side is empty.
func IndustryScore(personaIndustry, candidateIndustry string) float64 {
	if strings.TrimSpace(personaIndustry) == "" || strings.TrimSpace(candidateIndustry) == "" {
		return 0
	}
	return similarity.Clamp01(similarity.Blend(personaIndustry, candidateIndustry,
		industryRatioW, industryPartialW, industryTokenW))
}

// Industry extraction patterns, tried in order; the first match wins.
var industryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:in|at) the ([\w\s&]+) industry`),
	regexp.MustCompile(`(?i)(?:in|at) ([\w\s&]+) industry`),
	regexp.MustCompile(`(?i)working in ([\w\s&]+)`),
}

// ExtractIndustry pulls an industry phrase out of a candidate snippet.
// Returns "" when no pattern matches.
func ExtractIndustry(snippet string) string {
	for _, pattern := range industryPatterns {
		if m := pattern.FindStringSubmatch(snippet); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// locationPattern extracts a place phrase from a snippet: the text between
// an "in/from/at" and the next period.
var locationPattern = regexp.MustCompile(`(?i)(?:in|from|at) ([^.]+?)(?:\.|$)`)

// ExtractLocation pulls a location phrase out of a candidate snippet.
// Returns "" when nothing matches.
func ExtractLocation(snippet string) string {
	if m := locationPattern.FindStringSubmatch(snippet); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// distanceScore maps a geodesic distance in km to a similarity bucket.
func distanceScore(km float64) float64 {
	switch {
	case km <= 0:
		return 1.0
	case km < 100:
		return 0.9 - km/1000
	case km < 500:
		return 0.7 - km/1250
	case km < 1000:
		return 0.5 - km/2000
	default:
		return 0
	}
}

// timezoneScore maps an absolute UTC-offset difference in hours to a
// similarity bucket.
func timezoneScore(hourDiff float64) float64 {
	switch {
	case hourDiff == 0:
		return 1.0
	case hourDiff <= 1:
		return 0.8
	case hourDiff <= 3:
		return 0.6
	case hourDiff <= 6:
		return 0.3
	default:
		return 0
	}
}

// Social sub-score field weights: usernames are the most distinctive field.
const (
	socialUsernameW = 0.4
	socialDisplayW  = 0.2
	socialBioW      = 0.2
	socialLocationW = 0.1
	socialCompanyW  = 0.1
)

// SocialScore compares the persona's scraped social profiles against the
// candidate's, matching by platform and weighting the per-field exact-ratio
// similarities. The result is averaged over the persona's profiles and
// capped at 1.0; zero when either side is empty.
func SocialScore(personaProfiles, candidateProfiles []types.ScrapedProfile) float64 {
	if len(personaProfiles) == 0 || len(candidateProfiles) == 0 {
		return 0
	}

	byPlatform := make(map[string]types.ScrapedProfile, len(candidateProfiles))
	for _, cp := range candidateProfiles {
		platform := strings.ToLower(cp.Platform)
		if _, exists := byPlatform[platform]; !exists {
			byPlatform[platform] = cp
		}
	}

	total := 0.0
	for _, pp := range personaProfiles {
		cp, ok := byPlatform[strings.ToLower(pp.Platform)]
		if !ok {
			continue
		}
		total += profileFieldScore(pp, cp)
	}

	return similarity.Clamp01(total / float64(len(personaProfiles)))
}

// profileFieldScore sums the weighted per-field similarities of two
// same-platform profiles. Fields missing on either side contribute nothing.
func profileFieldScore(a, b types.ScrapedProfile) float64 {
	score := 0.0
	if a.Username != "" && b.Username != "" {
		score += similarity.Ratio(strings.ToLower(a.Username), strings.ToLower(b.Username)) * socialUsernameW
	}
	if a.DisplayName != "" && b.DisplayName != "" {
		score += similarity.Ratio(strings.ToLower(a.DisplayName), strings.ToLower(b.DisplayName)) * socialDisplayW
	}
	if a.Bio != "" && b.Bio != "" {
		score += similarity.Ratio(strings.ToLower(a.Bio), strings.ToLower(b.Bio)) * socialBioW
	}
	if a.Location != "" && b.Location != "" {
		score += similarity.Ratio(strings.ToLower(a.Location), strings.ToLower(b.Location)) * socialLocationW
	}
	if a.Company != "" && b.Company != "" {
		score += similarity.Ratio(strings.ToLower(a.Company), strings.ToLower(b.Company)) * socialCompanyW
	}
	return score
}
