// Package types provides type definitions for structured data used throughout the personafind system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Persona is the partial identity description used as the search seed.
// It is constructed once per search session and enriched in place by
// collaborators (social scraping, AI enrichment); it is never scored itself.
type Persona struct {
	Name            string   `json:"name" validate:"required,min=1"`
	Intro           string   `json:"intro,omitempty"`
	CompanyIndustry string   `json:"company_industry,omitempty"`
	CompanySize     string   `json:"company_size,omitempty"`
	Location        string   `json:"location,omitempty"`
	Timezone        string   `json:"timezone,omitempty"` // IANA identifier, e.g. "America/New_York"

	// SocialProfile is a plain list of profile URLs, as supplied by the user.
	// SocialProfiles carries structured records and takes precedence for the
	// social-signal scorer; when empty, records are derived from SocialProfile.
	// The two fields are intentionally distinct and must not be conflated.
	SocialProfile  []string        `json:"social_profile,omitempty"`
	SocialProfiles []SocialProfile `json:"social_profiles,omitempty"`

	Image string `json:"image,omitempty"` // URL or local reference to a portrait

	// Enrichment output, filled in place by collaborators.
	Company           string           `json:"company,omitempty"`
	ScrapedSocialData []ScrapedProfile `json:"scraped_social_data,omitempty"`
	Keywords          []string         `json:"keywords,omitempty"`
	Interests         []string         `json:"interests,omitempty"`
	Skills            []string         `json:"skills,omitempty"`
}

// SocialProfile is a structured reference to one social account.
type SocialProfile struct {
	Platform string `json:"platform"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Validate validates the Persona using the validator.
func (p *Persona) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// EffectiveSocialProfiles returns the structured social records to score
// against: the explicit SocialProfiles list when present, otherwise records
// derived from the SocialProfile URL list with platform/username left for
// the scraper to resolve.
func (p *Persona) EffectiveSocialProfiles() []SocialProfile {
	if len(p.SocialProfiles) > 0 {
		return p.SocialProfiles
	}
	profiles := make([]SocialProfile, 0, len(p.SocialProfile))
	for _, url := range p.SocialProfile {
		if url == "" {
			continue
		}
		profiles = append(profiles, SocialProfile{URL: url})
	}
	return profiles
}
