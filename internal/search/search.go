// Package search executes ranked queries against a web search provider and
// collects LinkedIn profile candidates from the results.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/personakit/personafind/internal/fetch"
	"github.com/personakit/personafind/internal/types"
)

// profileLinkMarker identifies result links that point at a LinkedIn
// profile rather than a company page or post.
const profileLinkMarker = "linkedin.com/in"

// DefaultMaxCandidates caps how many unique profile links one run collects.
const DefaultMaxCandidates = 10

// Provider executes a single search query.
type Provider interface {
	Search(ctx context.Context, query string) ([]types.Candidate, error)
}

// SerpClient is a Provider backed by the SerpAPI Google endpoint.
type SerpClient struct {
	apiKey string
	opts   *fetch.Options
}

// NewSerpClient builds a SerpAPI search client.
func NewSerpClient(apiKey string, opts *fetch.Options) *SerpClient {
	if opts == nil {
		opts = fetch.DefaultOptions()
	}
	return &SerpClient{apiKey: apiKey, opts: opts}
}

// serpResponse mirrors the fields we use from SerpAPI's search.json.
type serpResponse struct {
	OrganicResults []struct {
		Title     string `json:"title"`
		Link      string `json:"link"`
		Snippet   string `json:"snippet"`
		Thumbnail string `json:"thumbnail"`
	} `json:"organic_results"`
	Error string `json:"error"`
}

// Search runs one query and returns all organic results as candidates.
func (c *SerpClient) Search(ctx context.Context, query string) ([]types.Candidate, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("search API key is not configured")
	}

	endpoint := fmt.Sprintf("https://serpapi.com/search.json?engine=google&q=%s&num=10&api_key=%s",
		url.QueryEscape(query), url.QueryEscape(c.apiKey))

	result, err := fetch.URL(ctx, endpoint, c.opts)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	var resp serpResponse
	if err := json.Unmarshal([]byte(result.HTML), &resp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("search provider error: %s", resp.Error)
	}

	candidates := make([]types.Candidate, 0, len(resp.OrganicResults))
	for _, r := range resp.OrganicResults {
		candidates = append(candidates, types.Candidate{
			Title:    r.Title,
			Link:     r.Link,
			Snippet:  r.Snippet,
			ImageURL: r.Thumbnail,
		})
	}
	return candidates, nil
}

// Runner walks a ranked query list through a Provider, harvesting unique
// profile links until the cap is reached.
type Runner struct {
	provider Provider
	maxLinks int
}

// NewRunner builds a Runner. maxLinks <= 0 selects DefaultMaxCandidates.
func NewRunner(provider Provider, maxLinks int) *Runner {
	if maxLinks <= 0 {
		maxLinks = DefaultMaxCandidates
	}
	return &Runner{provider: provider, maxLinks: maxLinks}
}

// FindCandidates executes queries in order, keeping only profile links and
// deduplicating by link in first-seen order. Query failures are skipped so a
// flaky provider never loses earlier results; execution stops as soon as the
// link cap is hit.
func (r *Runner) FindCandidates(ctx context.Context, ranked []types.Query) ([]types.Candidate, error) {
	seen := make(map[string]bool)
	var collected []types.Candidate

	for _, q := range ranked {
		if len(collected) >= r.maxLinks {
			break
		}
		if err := ctx.Err(); err != nil {
			return collected, err
		}

		results, err := r.provider.Search(ctx, q.Text)
		if err != nil {
			continue
		}

		for _, candidate := range results {
			if !strings.Contains(candidate.Link, profileLinkMarker) {
				continue
			}
			link := normalizeLink(candidate.Link)
			if seen[link] {
				continue
			}
			seen[link] = true
			collected = append(collected, candidate)
			if len(collected) >= r.maxLinks {
				break
			}
		}
	}

	return collected, nil
}

// normalizeLink strips query strings and trailing slashes so the same
// profile reached through different result URLs dedupes to one candidate.
func normalizeLink(link string) string {
	if idx := strings.IndexAny(link, "?#"); idx >= 0 {
		link = link[:idx]
	}
	return strings.TrimSuffix(link, "/")
}
