// Package queries synthesizes ranked search-query strings from a persona:
// name variants crossed with identity attributes, each query tagged with the
// signal weights that produced it and ordered by a heuristic rank score.
package queries

import (
	"github.com/amonsat/fullname_parser"

	"github.com/personakit/personafind/internal/names"
)

// orderedSet is an insertion-ordered unique string sequence. Dedup must not
// disturb first-seen order, or ranking tie-breaks stop being deterministic.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(item string) {
	if item == "" || s.seen[item] {
		return
	}
	s.seen[item] = true
	s.items = append(s.items, item)
}

// NameVariants generates name format variants from a full name: first-only,
// "first last", "F. last", middle-initial forms, the full name itself, and
// nickname combinations. Variants that still carry an initial are expanded
// through the surname lexicons and the results unioned in, first-seen order
// preserved.
func NameVariants(name string) []string {
	if name == "" {
		return nil
	}

	variants := newOrderedSet()
	parsed := fullname_parser.ParseFullname(name)

	if parsed.First != "" {
		variants.add(parsed.First)

		if parsed.Last != "" {
			variants.add(parsed.First + " " + parsed.Last)
			variants.add(parsed.First[:1] + ". " + parsed.Last)

			if parsed.Middle != "" {
				variants.add(parsed.First + " " + parsed.Middle[:1] + ". " + parsed.Last)
				variants.add(parsed.First + " " + parsed.Middle + " " + parsed.Last)
			}
		}
	}

	variants.add(name)
	if parsed.Nick != "" {
		variants.add(parsed.Nick)
		if parsed.Last != "" {
			variants.add(parsed.Nick + " " + parsed.Last)
		}
	}

	// Union in lexicon expansions for any variant that still carries an
	// initial.
	base := make([]string, len(variants.items))
	copy(base, variants.items)
	for _, variant := range base {
		if names.HasInitial(variant) {
			for _, expanded := range names.Expand(variant) {
				variants.add(expanded)
			}
		}
	}

	return variants.items
}

// primaryVariant returns the variant used to anchor handle+name queries.
func primaryVariant(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	return variants[0]
}
