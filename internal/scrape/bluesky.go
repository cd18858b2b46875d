package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/personakit/personafind/internal/fetch"
	"github.com/personakit/personafind/internal/types"
)

const blueskyAPIBase = "https://public.api.bsky.app/xrpc"

// BlueskyScraper fetches Bluesky profiles through the public AppView XRPC
// endpoint, which needs no authentication.
type BlueskyScraper struct {
	limiter *Limiter
	opts    *fetch.Options
}

// NewBlueskyScraper builds a Bluesky scraper.
func NewBlueskyScraper(limiter *Limiter, opts *fetch.Options) *BlueskyScraper {
	return &BlueskyScraper{limiter: limiter, opts: opts}
}

// blueskyProfileResponse mirrors app.bsky.actor.getProfile.
type blueskyProfileResponse struct {
	Handle         string `json:"handle"`
	DisplayName    string `json:"displayName"`
	Description    string `json:"description"`
	Avatar         string `json:"avatar"`
	FollowersCount int    `json:"followersCount"`
	FollowsCount   int    `json:"followsCount"`
	PostsCount     int    `json:"postsCount"`
}

// ScrapeProfile fetches one Bluesky profile by handle. Handles that carry no
// dot are qualified with the default .bsky.social suffix.
func (s *BlueskyScraper) ScrapeProfile(ctx context.Context, username string) (*types.ScrapedProfile, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	handle := username
	if !strings.Contains(handle, ".") {
		handle += ".bsky.social"
	}

	endpoint := fmt.Sprintf("%s/app.bsky.actor.getProfile?actor=%s", blueskyAPIBase, url.QueryEscape(handle))
	result, err := fetch.URL(ctx, endpoint, s.opts)
	if err != nil {
		return nil, fmt.Errorf("bluesky API request failed: %w", err)
	}

	var resp blueskyProfileResponse
	if err := json.Unmarshal([]byte(result.HTML), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse bluesky API response: %w", err)
	}
	if resp.Handle == "" {
		return nil, fmt.Errorf("bluesky profile %s not found", handle)
	}

	return &types.ScrapedProfile{
		Platform:       "bluesky",
		Username:       resp.Handle,
		DisplayName:    resp.DisplayName,
		Bio:            resp.Description,
		ProfileImage:   resp.Avatar,
		FollowersCount: intPtr(resp.FollowersCount),
		FollowingCount: intPtr(resp.FollowsCount),
		PostCount:      intPtr(resp.PostsCount),
		URL:            "https://bsky.app/profile/" + resp.Handle,
	}, nil
}
