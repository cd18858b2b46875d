package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/personakit/personafind/internal/fetch"
	"github.com/personakit/personafind/internal/types"
)

const githubAPIBase = "https://api.github.com"

// GitHubScraper fetches GitHub profiles through the REST API, falling back
// to profile-page HTML when the API is rate limited.
type GitHubScraper struct {
	token   string
	limiter *Limiter
	opts    *fetch.Options
}

// NewGitHubScraper builds a GitHub scraper. A token raises the API rate
// limit but is not required.
func NewGitHubScraper(token string, limiter *Limiter, opts *fetch.Options) *GitHubScraper {
	return &GitHubScraper{token: token, limiter: limiter, opts: opts}
}

// ScrapeProfile fetches one GitHub profile by username.
func (s *GitHubScraper) ScrapeProfile(ctx context.Context, username string) (*types.ScrapedProfile, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	profile, err := s.scrapeAPI(ctx, username)
	if err == nil {
		return profile, nil
	}

	// API failure (usually anonymous rate limiting) falls through to HTML
	return s.scrapeHTML(ctx, username)
}

// githubUserResponse mirrors the REST /users/{username} payload.
type githubUserResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	AvatarURL   string `json:"avatar_url"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
	HTMLURL     string `json:"html_url"`
}

func (s *GitHubScraper) scrapeAPI(ctx context.Context, username string) (*types.ScrapedProfile, error) {
	opts := *s.opts
	opts.Headers = map[string]string{
		"Accept": "application/vnd.github+json",
	}
	if s.token != "" {
		opts.Headers["Authorization"] = "Bearer " + s.token
	}

	result, err := fetch.URL(ctx, githubAPIBase+"/users/"+username, &opts)
	if err != nil {
		return nil, fmt.Errorf("github API request failed: %w", err)
	}

	var resp githubUserResponse
	if err := json.Unmarshal([]byte(result.HTML), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse github API response: %w", err)
	}
	if resp.Login == "" {
		return nil, fmt.Errorf("github user %s not found", username)
	}

	url := resp.HTMLURL
	if url == "" {
		url = "https://github.com/" + resp.Login
	}

	return &types.ScrapedProfile{
		Platform:       "github",
		Username:       resp.Login,
		DisplayName:    resp.Name,
		Bio:            resp.Bio,
		Location:       resp.Location,
		Company:        strings.TrimPrefix(resp.Company, "@"),
		Blog:           resp.Blog,
		ProfileImage:   resp.AvatarURL,
		FollowersCount: intPtr(resp.Followers),
		FollowingCount: intPtr(resp.Following),
		RepoCount:      intPtr(resp.PublicRepos),
		URL:            url,
	}, nil
}

func (s *GitHubScraper) scrapeHTML(ctx context.Context, username string) (*types.ScrapedProfile, error) {
	result, err := fetch.URL(ctx, "https://github.com/"+username, s.opts)
	if err != nil {
		return nil, fmt.Errorf("github profile page fetch failed: %w", err)
	}
	return parseGitHubProfile(result.HTML, username)
}

// parseGitHubProfile extracts profile fields from the public profile page's
// vcard markup.
func parseGitHubProfile(html, username string) (*types.ScrapedProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse github HTML: %w", err)
	}

	vcard := doc.Find(".vcard-names, .h-card")
	if vcard.Length() == 0 {
		return nil, fmt.Errorf("no profile markup found for %s", username)
	}

	profile := &types.ScrapedProfile{
		Platform:    "github",
		Username:    username,
		DisplayName: strings.TrimSpace(doc.Find(".vcard-fullname, .p-name").First().Text()),
		Bio:         strings.TrimSpace(doc.Find(".user-profile-bio, .p-note").First().Text()),
		Location:    strings.TrimSpace(doc.Find("[itemprop='homeLocation'], .p-label").First().Text()),
		Company:     strings.TrimPrefix(strings.TrimSpace(doc.Find("[itemprop='worksFor'], .p-org").First().Text()), "@"),
		URL:         "https://github.com/" + username,
	}

	if img, ok := doc.Find(".avatar-user, img.avatar").First().Attr("src"); ok {
		profile.ProfileImage = img
	}

	return profile, nil
}
