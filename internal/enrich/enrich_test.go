package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personakit/personafind/internal/llm"
	"github.com/personakit/personafind/internal/types"
)

type stubScraper struct {
	profiles []types.ScrapedProfile
	err      error
	urls     []string
}

func (s *stubScraper) Scrape(_ context.Context, urls []string) ([]types.ScrapedProfile, error) {
	s.urls = append(s.urls, urls...)
	return s.profiles, s.err
}

type stubClient struct {
	response string
	err      error
	prompts  []string
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, c.err
}

func (c *stubClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return c.GenerateContent(ctx, prompt, tier)
}

func (c *stubClient) GetModel(_ llm.ModelTier) string { return "stub" }
func (c *stubClient) Close() error                    { return nil }

func intPtr(v int) *int { return &v }

func scrapedProfiles() []types.ScrapedProfile {
	return []types.ScrapedProfile{
		{
			Platform:       "twitter",
			Username:       "janedoe",
			DisplayName:    "Jane from Twitter",
			Bio:            "Tweets about Go.",
			FollowersCount: intPtr(1200),
			URL:            "https://twitter.com/janedoe",
		},
		{
			Platform:    "github",
			Username:    "janedoe",
			DisplayName: "Jane Doe",
			Bio:         "Backend engineer.\nOpen source maintainer.",
			Location:    "Berlin, Germany",
			Company:     "Acme",
			RepoCount:   intPtr(42),
			URL:         "https://github.com/janedoe",
		},
	}
}

func TestWithSocialData_FillsMissingFields(t *testing.T) {
	scraper := &stubScraper{profiles: scrapedProfiles()}
	enricher := New(scraper, nil)

	persona := &types.Persona{
		Name:          "",
		SocialProfile: []string{"https://github.com/janedoe", "https://twitter.com/janedoe"},
	}
	require.NoError(t, enricher.WithSocialData(context.Background(), persona))

	// GitHub display name wins over the Twitter one.
	assert.Equal(t, "Jane Doe", persona.Name)
	assert.Equal(t, "Berlin, Germany", persona.Location)
	assert.Equal(t, "Tweets about Go.", persona.Intro)
	assert.Equal(t, "Acme", persona.Company)
	assert.Len(t, persona.ScrapedSocialData, 2)
	assert.Equal(t, []string{"https://github.com/janedoe", "https://twitter.com/janedoe"}, scraper.urls)
}

func TestWithSocialData_ExistingFieldsWin(t *testing.T) {
	enricher := New(&stubScraper{profiles: scrapedProfiles()}, nil)

	persona := &types.Persona{
		Name:          "Johanna Doe",
		Location:      "Munich",
		SocialProfile: []string{"https://github.com/janedoe"},
	}
	require.NoError(t, enricher.WithSocialData(context.Background(), persona))

	assert.Equal(t, "Johanna Doe", persona.Name)
	assert.Equal(t, "Munich", persona.Location)
}

func TestWithSocialData_NoProfileURLs(t *testing.T) {
	scraper := &stubScraper{}
	enricher := New(scraper, nil)

	persona := &types.Persona{Name: "Jane"}
	require.NoError(t, enricher.WithSocialData(context.Background(), persona))
	assert.Empty(t, scraper.urls)
}

func TestWithSocialData_ScrapeError(t *testing.T) {
	enricher := New(&stubScraper{err: errors.New("rate limited")}, nil)

	persona := &types.Persona{SocialProfile: []string{"https://github.com/janedoe"}}
	err := enricher.WithSocialData(context.Background(), persona)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scraping social profiles")
}

func TestWithAI_MergesValidatedResponse(t *testing.T) {
	client := &stubClient{response: `{
		"name": "Jane Doe",
		"intro": "Backend engineer in Berlin",
		"company_industry": "Technology",
		"location": "Berlin, Germany",
		"timezone": "Europe/Berlin",
		"keywords": ["golang", "backend"],
		"social_profile": ["https://gitlab.com/janedoe"]
	}`}
	enricher := New(nil, client)

	persona := &types.Persona{
		Name:              "Jane Doe",
		SocialProfile:     []string{"https://github.com/janedoe"},
		ScrapedSocialData: scrapedProfiles(),
	}
	require.NoError(t, enricher.WithAI(context.Background(), persona))

	assert.Equal(t, "Technology", persona.CompanyIndustry)
	assert.Equal(t, "Europe/Berlin", persona.Timezone)
	assert.Equal(t, []string{"golang", "backend"}, persona.Keywords)
	// Known URLs survive and AI additions are appended.
	assert.Equal(t, []string{"https://github.com/janedoe", "https://gitlab.com/janedoe"}, persona.SocialProfile)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Github Profile (@janedoe)")
	assert.Contains(t, client.prompts[0], "Jane Doe")
}

func TestWithAI_StripsMarkdownFences(t *testing.T) {
	client := &stubClient{response: "```json\n{\"name\": \"Jane Doe\", \"location\": \"Berlin\"}\n```"}
	enricher := New(nil, client)

	persona := &types.Persona{Name: "Jane Doe", ScrapedSocialData: scrapedProfiles()}
	require.NoError(t, enricher.WithAI(context.Background(), persona))
	assert.Equal(t, "Berlin", persona.Location)
}

func TestWithAI_RejectsInvalidResponse(t *testing.T) {
	// Missing required name field.
	client := &stubClient{response: `{"location": "Berlin"}`}
	enricher := New(nil, client)

	persona := &types.Persona{Name: "Jane Doe", ScrapedSocialData: scrapedProfiles()}
	err := enricher.WithAI(context.Background(), persona)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
	assert.Empty(t, persona.Location)
}

func TestWithAI_SkipsWithoutScrapedData(t *testing.T) {
	client := &stubClient{response: `{"name": "Jane"}`}
	enricher := New(nil, client)

	persona := &types.Persona{Name: "Jane Doe"}
	require.NoError(t, enricher.WithAI(context.Background(), persona))
	assert.Empty(t, client.prompts)
}

func TestGeneratePersona_FallsBackWithoutClient(t *testing.T) {
	enricher := New(nil, nil)
	persona := enricher.GeneratePersona(context.Background(), scrapedProfiles())

	require.NotNil(t, persona)
	assert.Equal(t, "Jane Doe", persona.Name)
	assert.Equal(t, "Berlin, Germany", persona.Location)
	assert.Contains(t, persona.SocialProfile, "https://twitter.com/janedoe")
	assert.Contains(t, persona.SocialProfile, "https://github.com/janedoe")
}

func TestGeneratePersona_MergesModelOutput(t *testing.T) {
	client := &stubClient{response: `{
		"name": "Jane Doe",
		"company_industry": "Technology",
		"keywords": ["golang"]
	}`}
	enricher := New(nil, client)

	persona := enricher.GeneratePersona(context.Background(), scrapedProfiles())

	require.NotNil(t, persona)
	assert.Equal(t, "Technology", persona.CompanyIndustry)
	assert.Equal(t, []string{"golang"}, persona.Keywords)
	// Scraped values still win over model output.
	assert.Equal(t, "Berlin, Germany", persona.Location)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Return ONLY valid JSON")
	assert.Contains(t, client.prompts[0], "company_industry")
}

func TestGeneratePersona_SurvivesModelFailure(t *testing.T) {
	enricher := New(nil, &stubClient{err: errors.New("model unavailable")})
	persona := enricher.GeneratePersona(context.Background(), scrapedProfiles())

	require.NotNil(t, persona)
	assert.Equal(t, "Jane Doe", persona.Name)
}

func TestBasicPersona_Empty(t *testing.T) {
	persona := BasicPersona(nil)
	require.NotNil(t, persona)
	assert.Empty(t, persona.Name)
	assert.Empty(t, persona.SocialProfile)
}

func TestProfileDescription(t *testing.T) {
	desc := ProfileDescription(scrapedProfiles())

	assert.Contains(t, desc, "# Social Profile Information")
	assert.Contains(t, desc, "## Twitter Profile (@janedoe)")
	assert.Contains(t, desc, "## Github Profile (@janedoe)")
	assert.Contains(t, desc, "Bio: Backend engineer. Open source maintainer.")
	assert.Contains(t, desc, "Followers: 1200")
	assert.Contains(t, desc, "Repositories: 42")
	assert.Contains(t, desc, "Company/Organization: Acme")
}

func TestProfileDescription_Empty(t *testing.T) {
	assert.Equal(t, "No profile data available.", ProfileDescription(nil))
}

func TestMergeMissing_ListsTakenWhenEmpty(t *testing.T) {
	dst := &types.Persona{Name: "Jane", Skills: []string{"go"}}
	src := &types.Persona{Name: "Other", Skills: []string{"python"}, Interests: []string{"hiking"}}

	MergeMissing(dst, src)

	assert.Equal(t, "Jane", dst.Name)
	assert.Equal(t, []string{"go"}, dst.Skills)
	assert.Equal(t, []string{"hiking"}, dst.Interests)
}
