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

// nitterInstances are public nitter mirrors tried in order when no API
// bearer token is configured. Availability varies, so failures rotate to the
// next instance.
var nitterInstances = []string{
	"https://nitter.net",
	"https://nitter.privacydev.net",
	"https://nitter.poast.org",
}

const twitterAPIBase = "https://api.twitter.com/2"

// TwitterScraper fetches Twitter/X profiles, preferring the v2 API when a
// bearer token is available and falling back to nitter HTML otherwise.
type TwitterScraper struct {
	bearerToken string
	limiter     *Limiter
	opts        *fetch.Options
}

// NewTwitterScraper builds a Twitter scraper. An empty bearerToken selects
// the nitter fallback path.
func NewTwitterScraper(bearerToken string, limiter *Limiter, opts *fetch.Options) *TwitterScraper {
	return &TwitterScraper{bearerToken: bearerToken, limiter: limiter, opts: opts}
}

// ScrapeProfile fetches one Twitter profile by username.
func (s *TwitterScraper) ScrapeProfile(ctx context.Context, username string) (*types.ScrapedProfile, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if s.bearerToken != "" {
		profile, err := s.scrapeAPI(ctx, username)
		if err == nil {
			return profile, nil
		}
		// API failure falls through to nitter
	}

	return s.scrapeNitter(ctx, username)
}

// twitterUserResponse mirrors the v2 users/by/username payload.
type twitterUserResponse struct {
	Data struct {
		Name            string `json:"name"`
		Username        string `json:"username"`
		Description     string `json:"description"`
		Location        string `json:"location"`
		ProfileImageURL string `json:"profile_image_url"`
		PublicMetrics   struct {
			FollowersCount int `json:"followers_count"`
			FollowingCount int `json:"following_count"`
			TweetCount     int `json:"tweet_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

func (s *TwitterScraper) scrapeAPI(ctx context.Context, username string) (*types.ScrapedProfile, error) {
	url := fmt.Sprintf("%s/users/by/username/%s?user.fields=description,location,profile_image_url,public_metrics", twitterAPIBase, username)

	opts := *s.opts
	opts.Headers = map[string]string{
		"Authorization": "Bearer " + s.bearerToken,
	}

	result, err := fetch.URL(ctx, url, &opts)
	if err != nil {
		return nil, fmt.Errorf("twitter API request failed: %w", err)
	}

	var resp twitterUserResponse
	if err := json.Unmarshal([]byte(result.HTML), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse twitter API response: %w", err)
	}
	if resp.Data.Username == "" {
		return nil, fmt.Errorf("twitter user %s not found", username)
	}

	return &types.ScrapedProfile{
		Platform:       "twitter",
		Username:       resp.Data.Username,
		DisplayName:    resp.Data.Name,
		Bio:            resp.Data.Description,
		Location:       resp.Data.Location,
		ProfileImage:   resp.Data.ProfileImageURL,
		FollowersCount: intPtr(resp.Data.PublicMetrics.FollowersCount),
		FollowingCount: intPtr(resp.Data.PublicMetrics.FollowingCount),
		TweetCount:     intPtr(resp.Data.PublicMetrics.TweetCount),
		URL:            "https://twitter.com/" + resp.Data.Username,
	}, nil
}

func (s *TwitterScraper) scrapeNitter(ctx context.Context, username string) (*types.ScrapedProfile, error) {
	var lastErr error
	for _, instance := range nitterInstances {
		result, err := fetch.URL(ctx, instance+"/"+username, s.opts)
		if err != nil {
			lastErr = err
			continue
		}

		profile, err := parseNitterProfile(result.HTML, username)
		if err != nil {
			lastErr = err
			continue
		}
		return profile, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no nitter instances configured")
	}
	return nil, fmt.Errorf("all nitter instances failed for %s: %w", username, lastErr)
}

// parseNitterProfile extracts profile fields from nitter's profile-card
// markup.
func parseNitterProfile(html, username string) (*types.ScrapedProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse nitter HTML: %w", err)
	}

	card := doc.Find(".profile-card")
	if card.Length() == 0 {
		return nil, fmt.Errorf("no profile card found for %s", username)
	}

	profile := &types.ScrapedProfile{
		Platform:    "twitter",
		Username:    username,
		DisplayName: strings.TrimSpace(card.Find(".profile-card-fullname").First().Text()),
		Bio:         strings.TrimSpace(card.Find(".profile-bio").First().Text()),
		Location:    strings.TrimSpace(card.Find(".profile-location").First().Text()),
		URL:         "https://twitter.com/" + username,
	}

	if img, ok := card.Find(".profile-card-avatar img").First().Attr("src"); ok {
		profile.ProfileImage = img
	}

	// Stat order on nitter: tweets, following, followers, likes
	stats := card.Find(".profile-stat-num")
	if stats.Length() >= 3 {
		profile.TweetCount = parseCount(stats.Eq(0).Text())
		profile.FollowingCount = parseCount(stats.Eq(1).Text())
		profile.FollowersCount = parseCount(stats.Eq(2).Text())
	}

	return profile, nil
}
