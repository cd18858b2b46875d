// Package enrich fills in missing persona fields, first from scraped social
// profiles and then through AI enrichment validated against the persona
// schema.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/personakit/personafind/internal/llm"
	"github.com/personakit/personafind/internal/prompts"
	"github.com/personakit/personafind/internal/schemas"
	"github.com/personakit/personafind/internal/types"
)

// namePriority orders platforms by how reliable their display name is as a
// real name.
var namePriority = []string{"github", "twitter", "bluesky"}

// Scraper resolves profile URLs into scraped account records.
type Scraper interface {
	Scrape(ctx context.Context, urls []string) ([]types.ScrapedProfile, error)
}

// Enricher augments personas in place. Both collaborators are optional: a
// nil scraper skips social enrichment and a nil client skips AI enrichment.
type Enricher struct {
	scraper Scraper
	client  llm.Client
	tier    llm.ModelTier
}

// New builds an Enricher. AI enrichment uses the standard model tier.
func New(scraper Scraper, client llm.Client) *Enricher {
	return &Enricher{scraper: scraper, client: client, tier: llm.TierStandard}
}

// WithTier overrides the model tier used for AI enrichment.
func (e *Enricher) WithTier(tier llm.ModelTier) *Enricher {
	e.tier = tier
	return e
}

// WithSocialData scrapes the persona's social profile URLs, stores the
// records on the persona, and fills empty fields from them. A persona
// without profile URLs is returned unchanged.
func (e *Enricher) WithSocialData(ctx context.Context, persona *types.Persona) error {
	if e.scraper == nil {
		return nil
	}
	urls := profileURLs(persona)
	if len(urls) == 0 {
		return nil
	}

	profiles, err := e.scraper.Scrape(ctx, urls)
	if err != nil {
		return fmt.Errorf("scraping social profiles: %w", err)
	}
	persona.ScrapedSocialData = profiles
	FillFromProfiles(persona, profiles)
	return nil
}

// WithAI asks the model to complete the persona from its scraped social
// data. The response is schema-validated before any field is merged; only
// empty persona fields are filled, existing values always win.
func (e *Enricher) WithAI(ctx context.Context, persona *types.Persona) error {
	if e.client == nil || len(persona.ScrapedSocialData) == 0 {
		return nil
	}

	personaJSON, err := json.Marshal(persona)
	if err != nil {
		return fmt.Errorf("encoding persona: %w", err)
	}
	template, err := prompts.Get("matching.json", "enrich-persona")
	if err != nil {
		return fmt.Errorf("loading enrichment prompt: %w", err)
	}
	prompt := prompts.Format(template, map[string]string{
		"Persona":  string(personaJSON),
		"Profiles": ProfileDescription(persona.ScrapedSocialData),
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return fmt.Errorf("generating enriched persona: %w", err)
	}
	cleaned := llm.CleanJSONBlock(raw)
	if err := schemas.ValidatePersona(cleaned); err != nil {
		return fmt.Errorf("enriched persona failed validation: %w", err)
	}

	var enriched types.Persona
	if err := json.Unmarshal([]byte(cleaned), &enriched); err != nil {
		return fmt.Errorf("decoding enriched persona: %w", err)
	}
	MergeMissing(persona, &enriched)
	return nil
}

// GeneratePersona builds a persona from scraped profiles alone, falling
// back to a plain field-copy persona when the model is unavailable or
// returns something unusable. The source profile URLs are always preserved.
func (e *Enricher) GeneratePersona(ctx context.Context, profiles []types.ScrapedProfile) *types.Persona {
	persona := BasicPersona(profiles)
	persona.ScrapedSocialData = profiles
	if e.client == nil {
		return persona
	}

	// Best effort: the field-copy persona stands on any failure below.
	prompt := llm.BuildExtractionPrompt(llm.PersonaProfileSchema(), ProfileDescription(profiles))
	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return persona
	}
	cleaned := llm.CleanJSONBlock(raw)
	if schemas.ValidatePersona(cleaned) != nil {
		return persona
	}
	var extracted types.Persona
	if json.Unmarshal([]byte(cleaned), &extracted) != nil {
		return persona
	}
	MergeMissing(persona, &extracted)
	return persona
}

// FillFromProfiles copies scraped fields into empty persona fields. Display
// names are taken in platform-priority order; location and intro from the
// first profile that has them; company from GitHub only, where it denotes
// an organization rather than free text.
func FillFromProfiles(persona *types.Persona, profiles []types.ScrapedProfile) {
	if persona.Name == "" {
		for _, platform := range namePriority {
			for _, p := range profiles {
				if strings.EqualFold(p.Platform, platform) && p.DisplayName != "" {
					persona.Name = p.DisplayName
					break
				}
			}
			if persona.Name != "" {
				break
			}
		}
	}
	if persona.Location == "" {
		for _, p := range profiles {
			if p.Location != "" {
				persona.Location = p.Location
				break
			}
		}
	}
	if persona.Intro == "" {
		for _, p := range profiles {
			if p.Bio != "" {
				persona.Intro = strings.TrimSpace(strings.ReplaceAll(p.Bio, "\n", " "))
				break
			}
		}
	}
	if persona.Company == "" {
		for _, p := range profiles {
			if strings.EqualFold(p.Platform, "github") && p.Company != "" {
				persona.Company = p.Company
				break
			}
		}
	}
}

// MergeMissing copies fields from src into empty fields of dst. List fields
// are taken wholesale when dst has none. Profile URLs are unioned so that
// AI output can never drop a known profile.
func MergeMissing(dst, src *types.Persona) {
	if dst.Name == "" {
		dst.Name = src.Name
	}
	if dst.Intro == "" {
		dst.Intro = src.Intro
	}
	if dst.CompanyIndustry == "" {
		dst.CompanyIndustry = src.CompanyIndustry
	}
	if dst.CompanySize == "" {
		dst.CompanySize = src.CompanySize
	}
	if dst.Location == "" {
		dst.Location = src.Location
	}
	if dst.Timezone == "" {
		dst.Timezone = src.Timezone
	}
	if dst.Company == "" {
		dst.Company = src.Company
	}
	if len(dst.Keywords) == 0 {
		dst.Keywords = src.Keywords
	}
	if len(dst.Interests) == 0 {
		dst.Interests = src.Interests
	}
	if len(dst.Skills) == 0 {
		dst.Skills = src.Skills
	}
	dst.SocialProfile = unionStrings(dst.SocialProfile, src.SocialProfile)
}

// BasicPersona builds a minimal persona from scraped profiles without any
// model involvement.
func BasicPersona(profiles []types.ScrapedProfile) *types.Persona {
	persona := &types.Persona{}
	for _, p := range profiles {
		if p.URL != "" {
			persona.SocialProfile = append(persona.SocialProfile, p.URL)
		}
	}
	FillFromProfiles(persona, profiles)
	return persona
}

// ProfileDescription renders scraped profiles as a markdown document for
// prompt context.
func ProfileDescription(profiles []types.ScrapedProfile) string {
	if len(profiles) == 0 {
		return "No profile data available."
	}

	var sb strings.Builder
	sb.WriteString("# Social Profile Information\n")
	for _, p := range profiles {
		sb.WriteString(fmt.Sprintf("\n## %s Profile (@%s)\n", titleCase(p.Platform), p.Username))
		if p.DisplayName != "" {
			sb.WriteString("Name: " + p.DisplayName + "\n")
		}
		if p.Bio != "" {
			sb.WriteString("Bio: " + strings.TrimSpace(strings.ReplaceAll(p.Bio, "\n", " ")) + "\n")
		}
		if p.Location != "" {
			sb.WriteString("Location: " + p.Location + "\n")
		}
		if p.Company != "" {
			sb.WriteString("Company/Organization: " + p.Company + "\n")
		}
		if metrics := profileMetrics(p); metrics != "" {
			sb.WriteString("Metrics: " + metrics + "\n")
		}
		if p.URL != "" {
			sb.WriteString("URL: " + p.URL + "\n")
		}
	}
	return sb.String()
}

func profileMetrics(p types.ScrapedProfile) string {
	var metrics []string
	if p.FollowersCount != nil {
		metrics = append(metrics, "Followers: "+strconv.Itoa(*p.FollowersCount))
	}
	if p.FollowingCount != nil {
		metrics = append(metrics, "Following: "+strconv.Itoa(*p.FollowingCount))
	}
	if p.RepoCount != nil {
		metrics = append(metrics, "Repositories: "+strconv.Itoa(*p.RepoCount))
	}
	if p.TweetCount != nil {
		metrics = append(metrics, "Tweets: "+strconv.Itoa(*p.TweetCount))
	}
	if p.PostCount != nil {
		metrics = append(metrics, "Posts: "+strconv.Itoa(*p.PostCount))
	}
	return strings.Join(metrics, ", ")
}

func profileURLs(persona *types.Persona) []string {
	var urls []string
	for _, profile := range persona.EffectiveSocialProfiles() {
		if profile.URL != "" {
			urls = append(urls, profile.URL)
		}
	}
	return urls
}

func unionStrings(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, s := range append(a, b...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
