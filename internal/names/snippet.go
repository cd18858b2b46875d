package names

import (
	"regexp"
)

var firstWordPattern = regexp.MustCompile(`^(\w+)`)

// FromSnippet extracts potential full names from a search-result snippet,
// using a partial name as the hint for which first name to look for. Matches
// are returned in pattern order; the same span may surface under more than
// one shape.
func FromSnippet(snippet, nameHint string) []string {
	if snippet == "" || nameHint == "" {
		return nil
	}

	m := firstWordPattern.FindStringSubmatch(nameHint)
	if m == nil {
		return nil
	}
	first := regexp.QuoteMeta(m[1])

	shapes := []string{
		first + `\s+\w+\s+\w+`,      // First Middle Last
		first + `\s+\w+`,            // First Last
		first + `\s+[A-Z]\.\s+\w+`,  // First I. Last
		first + `\s+[A-Z]\s+\w+`,    // First I Last
	}

	var found []string
	for _, shape := range shapes {
		re, err := regexp.Compile(`(?i)` + shape)
		if err != nil {
			continue
		}
		found = append(found, re.FindAllString(snippet, -1)...)
	}
	return found
}

// HasInitial reports whether a name contains an abbreviated component worth
// expanding: a dotted initial followed by a space, or a trailing bare capital.
func HasInitial(name string) bool {
	if dottedInitial.MatchString(name) {
		return true
	}
	return trailingInitial.MatchString(name)
}

var (
	dottedInitial   = regexp.MustCompile(`\b[A-Z]\.\s`)
	trailingInitial = regexp.MustCompile(`\s[A-Z]\b`)
)
