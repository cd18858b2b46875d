package names

import (
	"regexp"
	"sort"
	"strings"
)

// initialPair is one (first name, initial) extraction. The initial may carry
// an attached surname token ("T Sharma") when the shape embeds one.
type initialPair struct {
	first   string
	initial string
}

// Initial-bearing name shapes, anchored at the start of the string.
var initialShapes = []*regexp.Regexp{
	regexp.MustCompile(`^(\w+)\s+([A-Z])\.?$`),                    // "Darshan T" or "Darshan T."
	regexp.MustCompile(`^(\w+)\s+([A-Z])\.?\s+(\w+)$`),            // "Darshan T Sharma" or "D T Sharma"
	regexp.MustCompile(`^([A-Z])\.?\s+([A-Z])\.?\s+(\w+)$`),       // "D T Sharma"
	regexp.MustCompile(`^([A-Z])\.?\s+([A-Z])\.?$`),               // "D T" or "D. T."
	regexp.MustCompile(`^(\w+)\s+([A-Z])\.?\s+([A-Z])\.?\s+(\w+)`), // "Darshan T S Sharma"
}

// extractInitials pattern-matches name against the initial-bearing shapes and
// returns all (first name, initial) pairs. Multiple shapes may match; all
// hits are kept in shape order.
func extractInitials(name string) []initialPair {
	var pairs []initialPair
	for _, shape := range initialShapes {
		m := shape.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		groups := m[1:]
		switch len(groups) {
		case 2: // trailing initial, or leading double-initial
			pairs = append(pairs, initialPair{groups[0], groups[1]})
		case 3: // embedded middle initial with surname attached
			pairs = append(pairs, initialPair{groups[0], groups[1]})
			pairs = append(pairs, initialPair{groups[0], groups[1] + " " + groups[2]})
		case 4: // double middle initials with surname attached
			pairs = append(pairs, initialPair{groups[0], groups[1]})
			pairs = append(pairs, initialPair{groups[0], groups[2]})
			pairs = append(pairs, initialPair{groups[0], groups[1] + " " + groups[3]})
			pairs = append(pairs, initialPair{groups[0], groups[2] + " " + groups[3]})
		}
	}
	return pairs
}

// scoreExpansion scores how plausible expanded is as the full form of
// original. Higher is more plausible.
func scoreExpansion(original, expanded string) float64 {
	score := 1.0

	// Favor expansions that preserve the original name components.
	for _, part := range strings.Fields(original) {
		if strings.HasSuffix(part, ".") {
			initial := strings.TrimSuffix(part, ".")
			matched := false
			for _, word := range strings.Fields(expanded) {
				if strings.HasPrefix(word, initial) {
					matched = true
					break
				}
			}
			if !matched {
				score -= 0.3
			}
		} else if !strings.Contains(expanded, part) {
			score -= 0.2
		}
	}

	// Most names have 1-4 parts; penalize very long expansions.
	words := strings.Fields(expanded)
	if len(words) <= 4 {
		score += 0.1
	} else {
		score -= 0.2 * float64(len(words)-4)
	}

	if len(words) > 0 && isKnownSurname(words[len(words)-1]) {
		score += 0.2
	}

	return score
}

// Expand turns a name string, potentially containing initials, into possible
// full names ranked most-plausible first. The untouched original is always a
// candidate, so already-complete names survive unchanged. An empty name
// yields an empty list; Expand never fails.
func Expand(name string) []string {
	if name == "" {
		return nil
	}

	// Insertion-ordered unique sequence: ranking tie-breaks follow the order
	// candidates were first produced.
	seen := make(map[string]bool)
	var candidates []string
	add := func(candidate string) {
		if !seen[candidate] {
			seen[candidate] = true
			candidates = append(candidates, candidate)
		}
	}

	for _, pair := range extractInitials(name) {
		// An initial with a space already carries a surname token.
		if strings.Contains(pair.initial, " ") {
			parts := strings.Fields(pair.initial)
			if len(parts) == 2 {
				add(pair.first + " " + parts[1])
				// Expand a single-letter middle initial against the lexicons.
				if len(parts[0]) == 1 {
					for _, middle := range surnamesForInitial(parts[0], "") {
						add(pair.first + " " + middle + " " + parts[1])
					}
				}
			}
			continue
		}

		for _, surname := range surnamesForInitial(pair.initial, "") {
			add(pair.first + " " + surname)
		}
	}

	add(name)

	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		ranked = append(ranked, scored{candidate, scoreExpansion(name, candidate)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]string, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.name)
	}
	return result
}
