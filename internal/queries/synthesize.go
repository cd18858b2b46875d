package queries

import (
	"fmt"
	"sort"
	"strings"

	"github.com/personakit/personafind/internal/types"
)

// siteScope restricts every synthesized query to the target profile site.
const siteScope = "site:linkedin.com/in"

// Rank-score shaping: queries combining several distinct signals are boosted,
// very wordy queries are dampened.
const (
	multiSignalBoost     = 1.2
	multiSignalThreshold = 3
	longQueryPenalty     = 0.9
	longQueryWords       = 10
)

// RankScore computes the heuristic ordering score for a query: the sum of
// its signal weights, boosted for 3+ distinct signals and penalized when the
// query text runs past ten words.
func RankScore(text string, signals map[string]float64) float64 {
	score := 0.0
	for _, w := range signals {
		score += w
	}
	if len(signals) >= multiSignalThreshold {
		score *= multiSignalBoost
	}
	if len(strings.Fields(text)) > longQueryWords {
		score *= longQueryPenalty
	}
	return score
}

// Synthesize generates ranked search-query strings for a persona, most
// relevant first. A persona without a name yields nil. Missing optional
// fields simply suppress the corresponding query branch; Synthesize never
// fails.
func Synthesize(persona *types.Persona) []string {
	ranked := SynthesizeRanked(persona)
	out := make([]string, 0, len(ranked))
	for _, q := range ranked {
		out = append(out, q.Text)
	}
	return out
}

// SynthesizeRanked is Synthesize with the signal weights and rank scores
// retained on each query.
func SynthesizeRanked(persona *types.Persona) []types.Query {
	if persona == nil || persona.Name == "" {
		return nil
	}

	variants := NameVariants(persona.Name)
	handles := ExtractHandles(persona.SocialProfile)
	inferredRole := InferRole(persona.CompanySize, persona.Intro)

	intro := persona.Intro
	company := persona.CompanyIndustry
	location := persona.Location

	type candidate struct {
		text    string
		signals map[string]float64
	}
	var candidates []candidate
	emit := func(text string, signals map[string]float64) {
		candidates = append(candidates, candidate{text, signals})
	}

	for _, variant := range variants {
		emit(fmt.Sprintf("%q %s", variant, siteScope),
			map[string]float64{"name": 1.0})

		if intro != "" {
			emit(fmt.Sprintf("%q %q %s", variant, intro, siteScope),
				map[string]float64{"name": 1.0, "intro": 0.8})
		}

		if company != "" {
			emit(fmt.Sprintf("%q %q %s", variant, company, siteScope),
				map[string]float64{"name": 1.0, "company": 0.7})
			if intro != "" {
				emit(fmt.Sprintf("%q %q %q %s", variant, company, intro, siteScope),
					map[string]float64{"name": 1.0, "company": 0.7, "intro": 0.8})
			}
		}

		if inferredRole != "" {
			emit(fmt.Sprintf("%q %q %s", variant, inferredRole, siteScope),
				map[string]float64{"name": 1.0, "role": 0.6})
			if company != "" {
				emit(fmt.Sprintf("%q %q %q %s", variant, inferredRole, company, siteScope),
					map[string]float64{"name": 1.0, "role": 0.6, "company": 0.7})
			}
		}

		if location != "" {
			emit(fmt.Sprintf("%q %q %s", variant, location, siteScope),
				map[string]float64{"name": 1.0, "location": 0.5})
		}

		if intro == "" && inferredRole == "" {
			for _, role := range GenericRoles {
				emit(fmt.Sprintf("%q %q %s", variant, role, siteScope),
					map[string]float64{"name": 1.0, "fallback": 0.4})
			}
		}
	}

	primary := primaryVariant(variants)
	for _, handle := range handles {
		emit(fmt.Sprintf("%q %s", handle.Username, siteScope),
			map[string]float64{"social": 0.9})
		if primary != "" {
			emit(fmt.Sprintf("%q %q %s", handle.Username, primary, siteScope),
				map[string]float64{"social": 0.9, "name": 1.0})
		}
	}

	// Ordered dedup by exact text, then score and stable-sort so ties keep
	// generation order.
	seen := make(map[string]bool)
	var ranked []types.Query
	for _, c := range candidates {
		if seen[c.text] {
			continue
		}
		seen[c.text] = true
		ranked = append(ranked, types.Query{
			Text:      c.text,
			Signals:   c.signals,
			RankScore: RankScore(c.text, c.signals),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RankScore > ranked[j].RankScore
	})

	return ranked
}
