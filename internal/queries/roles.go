package queries

import "strings"

// Keyword buckets for inferring a professional role from an intro headline.
var (
	founderWords = []string{"founder", "co-founder", "ceo", "started", "my company", "built", "entrepreneur"}
	managerWords = []string{"manager", "director", "vp", "team lead"}
)

// GenericRoles is the fallback role ladder used when neither an intro nor an
// inferred role is available.
var GenericRoles = []string{"Founder", "CEO", "CTO", "Director", "Manager", "Lead"}

// InferRole guesses a probable professional role from the intro keyword
// buckets, falling back to company-size heuristics only when the intro gave
// no signal. Returns "" when nothing can be inferred.
func InferRole(companySize, intro string) string {
	if intro != "" {
		introLower := strings.ToLower(intro)
		switch {
		case containsAny(introLower, founderWords):
			return "Founder"
		case containsAny(introLower, managerWords):
			return "Manager"
		case strings.Contains(introLower, "consultant"):
			return "Consultant"
		case strings.Contains(introLower, "engineer"):
			return "Engineer"
		}
	}

	if companySize == "" {
		return ""
	}

	size := strings.ToLower(companySize)
	switch {
	case strings.Contains(size, "1") || strings.Contains(size, "0"):
		return "Founder"
	case strings.Contains(size, "11"):
		return "Co-founder"
	case strings.Contains(size, "50"):
		return "Team Lead"
	case strings.Contains(size, "200") || strings.Contains(size, "500"):
		return "Manager"
	case strings.Contains(size, "1000") || strings.Contains(size, "+"):
		return "Staff"
	}
	return ""
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
