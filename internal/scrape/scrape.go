package scrape

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/personakit/personafind/internal/fetch"
	"github.com/personakit/personafind/internal/queries"
	"github.com/personakit/personafind/internal/types"
)

// ProfileScraper fetches one profile by username.
type ProfileScraper interface {
	ScrapeProfile(ctx context.Context, username string) (*types.ScrapedProfile, error)
}

// Config holds credentials and tuning for the platform scrapers. All fields
// are optional; scrapers degrade to public endpoints without credentials.
type Config struct {
	TwitterBearerToken string
	GitHubToken        string
	RequestsPerMinute  int
	FetchOptions       *fetch.Options
}

// Scraper dispatches profile URLs to per-platform scrapers, sharing one rate
// limiter across all of them.
type Scraper struct {
	limiter  *Limiter
	scrapers map[string]ProfileScraper
}

// New builds a scraper for the supported platforms.
func New(cfg Config) *Scraper {
	limiter := NewLimiter(cfg.RequestsPerMinute)
	opts := cfg.FetchOptions
	if opts == nil {
		opts = fetch.DefaultOptions()
	}

	return &Scraper{
		limiter: limiter,
		scrapers: map[string]ProfileScraper{
			"twitter": NewTwitterScraper(cfg.TwitterBearerToken, limiter, opts),
			"github":  NewGitHubScraper(cfg.GitHubToken, limiter, opts),
			"bluesky": NewBlueskyScraper(limiter, opts),
		},
	}
}

// Scrape fetches profile data for each URL whose platform is supported,
// preserving input order. Unsupported platforms are skipped silently;
// per-profile fetch failures are collected but do not abort the run.
func (s *Scraper) Scrape(ctx context.Context, urls []string) ([]types.ScrapedProfile, error) {
	var profiles []types.ScrapedProfile
	var errs []string

	for _, url := range urls {
		handles := queries.ExtractHandles([]string{url})
		if len(handles) == 0 {
			continue
		}
		handle := handles[0]

		scraper, ok := s.scrapers[handle.Platform]
		if !ok {
			continue
		}

		username := strings.TrimPrefix(handle.Username, "@")
		profile, err := scraper.ScrapeProfile(ctx, username)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s/%s: %v", handle.Platform, username, err))
			continue
		}
		if profile != nil {
			if profile.URL == "" {
				profile.URL = url
			}
			profiles = append(profiles, *profile)
		}
	}

	if len(profiles) == 0 && len(errs) > 0 {
		return nil, fmt.Errorf("all profile scrapes failed: %s", strings.Join(errs, "; "))
	}
	return profiles, nil
}

// parseCount turns a human-formatted count ("1,234", "5.2K", "1M") into an
// int pointer. Unparseable input returns nil.
func parseCount(s string) *int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return nil
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "K"), strings.HasSuffix(s, "k"):
		multiplier = 1000
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"), strings.HasSuffix(s, "m"):
		multiplier = 1000000
		s = s[:len(s)-1]
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(val * multiplier)
	return &n
}

func intPtr(n int) *int {
	return &n
}
