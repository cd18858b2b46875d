// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/personakit/personafind/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPersona outputs a human-readable summary of the search persona.
func (p *Printer) PrintPersona(persona *types.Persona) {
	if persona == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", persona.Name))
	if persona.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:  %s\n", persona.Location))
	}
	if persona.CompanyIndustry != "" {
		sb.WriteString(fmt.Sprintf("Industry:  %s\n", persona.CompanyIndustry))
	}
	if persona.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:   %s\n", persona.Company))
	}
	if persona.Intro != "" {
		intro := persona.Intro
		if len(intro) > 50 {
			intro = intro[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Intro:     %s\n", intro))
	}

	if profiles := persona.EffectiveSocialProfiles(); len(profiles) > 0 {
		sb.WriteString("\nSocial Profiles:\n")
		count := min(len(profiles), maxItemsToShow)
		for i := 0; i < count; i++ {
			profile := profiles[i]
			switch {
			case profile.Platform != "" && profile.Username != "":
				sb.WriteString(fmt.Sprintf("  • %s: @%s\n", profile.Platform, profile.Username))
			case profile.URL != "":
				sb.WriteString(fmt.Sprintf("  • %s\n", profile.URL))
			}
		}
		if len(profiles) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profiles)-maxItemsToShow))
		}
	}

	p.printBox("SEARCH PERSONA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQueries outputs the synthesized search queries with their scores.
func (p *Printer) PrintQueries(queries []types.Query) {
	if len(queries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d queries:\n\n", len(queries)))

	count := min(len(queries), maxItemsToShow)
	for i := 0; i < count; i++ {
		q := queries[i]
		text := q.Text
		if len(text) > 45 {
			text = text[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, text))
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", q.RankScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(queries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more queries", len(queries)-maxItemsToShow))
	}

	p.printBox("SEARCH QUERIES", sb.String())
}

// PrintScrapedProfiles outputs the social accounts resolved during enrichment.
func (p *Printer) PrintScrapedProfiles(profiles []types.ScrapedProfile) {
	if len(profiles) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scraped %d profiles:\n\n", len(profiles)))

	count := min(len(profiles), maxItemsToShow)
	for i := 0; i < count; i++ {
		profile := profiles[i]
		sb.WriteString(fmt.Sprintf("• %s: @%s\n", profile.Platform, profile.Username))
		if profile.DisplayName != "" {
			sb.WriteString(fmt.Sprintf("  Name: %s\n", profile.DisplayName))
		}
		if profile.Location != "" {
			sb.WriteString(fmt.Sprintf("  Location: %s\n", profile.Location))
		}
		if profile.FollowersCount != nil {
			sb.WriteString(fmt.Sprintf("  Followers: %d\n", *profile.FollowersCount))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(profiles) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more profiles", len(profiles)-maxItemsToShow))
	}

	p.printBox("SCRAPED SOCIAL PROFILES", sb.String())
}

// PrintRankedResults outputs the top scored candidates with their signal
// breakdowns.
func (p *Printer) PrintRankedResults(results []*types.ScoreResult) {
	if len(results) == 0 {
		p.printBox("RANKED CANDIDATES", "No candidates found.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scored %d candidates:\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		title := result.Candidate.Title
		if len(title) > 45 {
			title = title[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Confidence: %.1f%%\n", result.Confidence))
		sb.WriteString(fmt.Sprintf("    Name: %.0f  Semantic: %.0f  Location: %.0f\n",
			result.Scores[types.SignalName],
			result.Scores[types.SignalSemantic],
			result.Scores[types.SignalLocation]))
		if result.ImageMatch {
			sb.WriteString(fmt.Sprintf("    Image match (%.0f%%)\n", result.ImageSimilarity*100))
		}
		link := result.Candidate.Link
		if len(link) > 50 {
			link = link[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", link))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintImageValidations outputs the image-similarity pass results.
func (p *Printer) PrintImageValidations(validations []types.ImageValidation) {
	if len(validations) == 0 {
		return
	}

	var sb strings.Builder
	matched := 0
	for _, v := range validations {
		if v.ImageMatch {
			matched++
		}
	}
	sb.WriteString(fmt.Sprintf("Validated %d candidates, %d matched:\n\n", len(validations), matched))

	count := min(len(validations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := validations[i]
		marker := " "
		if v.ImageMatch {
			marker = "✓"
		}
		title := v.Candidate.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %.0f%%  %s\n", marker, v.ImageSimilarity*100, title))
	}

	if len(validations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(validations)-maxItemsToShow))
	}

	p.printBox("IMAGE VALIDATION", sb.String())
}
