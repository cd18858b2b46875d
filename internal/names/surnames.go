// Package names expands partially-specified person names into ranked
// full-name guesses. An "initial-bearing" name abbreviates part of the name
// to a single letter ("Darshan T.", "D. T. Sharma"); expansion fills the
// abbreviated part from surname lexicons and scores each guess for
// plausibility.
package names

import "strings"

// Common Indian surnames grouped by region. Lookups with no region union
// across all groups plus the western list.
var regionalSurnames = map[string][]string{
	"Maharashtra": {"Thakare", "Thakur", "Thakre", "Patil", "Deshmukh", "Kulkarni", "Deshpande", "Joshi"},
	"South":       {"Iyer", "Iyengar", "Nair", "Menon", "Reddy", "Pillai", "Naidu", "Acharya"},
	"North":       {"Sharma", "Singh", "Yadav", "Gupta", "Verma", "Kumar", "Shukla", "Tiwari"},
	"Bengal":      {"Banerjee", "Chatterjee", "Mukherjee", "Sen", "Das", "Bose", "Ghosh", "Roy"},
	"Gujarat":     {"Patel", "Shah", "Modi", "Desai", "Mehta", "Gandhi", "Joshi", "Trivedi"},
}

// regionOrder fixes the iteration order over regionalSurnames so that
// candidate generation, and therefore ranking tie-breaks, are deterministic.
var regionOrder = []string{"Maharashtra", "South", "North", "Bengal", "Gujarat"}

var westernSurnames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis",
	"Garcia", "Rodriguez", "Wilson", "Martinez", "Anderson", "Taylor",
	"Thomas", "Hernandez", "Moore", "Martin", "Jackson", "Thompson", "White",
}

// surnamesForInitial returns lexicon surnames starting with initial. A known
// region restricts the lookup to that group; otherwise all regions plus the
// western list are searched.
func surnamesForInitial(initial, region string) []string {
	var variants []string
	if region != "" {
		if group, ok := regionalSurnames[region]; ok {
			for _, s := range group {
				if strings.HasPrefix(s, initial) {
					variants = append(variants, s)
				}
			}
			return variants
		}
	}
	for _, region := range regionOrder {
		for _, s := range regionalSurnames[region] {
			if strings.HasPrefix(s, initial) {
				variants = append(variants, s)
			}
		}
	}
	for _, s := range westernSurnames {
		if strings.HasPrefix(s, initial) {
			variants = append(variants, s)
		}
	}
	return variants
}

// isKnownSurname reports whether s appears in either lexicon.
func isKnownSurname(s string) bool {
	for _, group := range regionalSurnames {
		for _, surname := range group {
			if s == surname {
				return true
			}
		}
	}
	for _, surname := range westernSurnames {
		if s == surname {
			return true
		}
	}
	return false
}
