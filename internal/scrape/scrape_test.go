package scrape

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personakit/personafind/internal/types"
)

type stubScraper struct {
	calls     []string
	profile   *types.ScrapedProfile
	scrapeErr error
}

func (s *stubScraper) ScrapeProfile(_ context.Context, username string) (*types.ScrapedProfile, error) {
	s.calls = append(s.calls, username)
	if s.scrapeErr != nil {
		return nil, s.scrapeErr
	}
	p := *s.profile
	p.Username = username
	return &p, nil
}

func TestScrape_SkipsUnsupportedPlatforms(t *testing.T) {
	github := &stubScraper{profile: &types.ScrapedProfile{Platform: "github"}}
	s := &Scraper{
		limiter:  NewLimiter(60),
		scrapers: map[string]ProfileScraper{"github": github},
	}

	profiles, err := s.Scrape(context.Background(), []string{
		"https://github.com/johnsmith",
		"https://instagram.com/johnsmith",
		"https://example.com/profile",
	})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "github", profiles[0].Platform)
	assert.Equal(t, []string{"johnsmith"}, github.calls)
}

func TestScrape_StripsAtPrefix(t *testing.T) {
	twitter := &stubScraper{profile: &types.ScrapedProfile{Platform: "twitter"}}
	s := &Scraper{
		limiter:  NewLimiter(60),
		scrapers: map[string]ProfileScraper{"twitter": twitter},
	}

	profiles, err := s.Scrape(context.Background(), []string{"https://twitter.com/johnsmith"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "johnsmith", profiles[0].Username)
}

func TestScrape_AllFailed(t *testing.T) {
	failing := &stubScraper{scrapeErr: assert.AnError}
	s := &Scraper{
		limiter:  NewLimiter(60),
		scrapers: map[string]ProfileScraper{"github": failing},
	}

	_, err := s.Scrape(context.Background(), []string{"https://github.com/johnsmith"})
	assert.Error(t, err)
}

func TestScrape_PartialFailure(t *testing.T) {
	failing := &stubScraper{scrapeErr: assert.AnError}
	working := &stubScraper{profile: &types.ScrapedProfile{Platform: "github"}}
	s := &Scraper{
		limiter: NewLimiter(60),
		scrapers: map[string]ProfileScraper{
			"twitter": failing,
			"github":  working,
		},
	}

	profiles, err := s.Scrape(context.Background(), []string{
		"https://twitter.com/johnsmith",
		"https://github.com/johnsmith",
	})
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		input    string
		expected *int
	}{
		{"1234", intPtr(1234)},
		{"1,234", intPtr(1234)},
		{"5.2K", intPtr(5200)},
		{"1M", intPtr(1000000)},
		{"", nil},
		{"n/a", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseCount(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func TestLimiter_AllowsBurst(t *testing.T) {
	l := NewLimiter(5)
	for range 5 {
		assert.True(t, l.Allow())
	}
	assert.False(t, l.Allow())
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(1)
	require.True(t, l.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseNitterProfile(t *testing.T) {
	html := `
	<html><body>
		<div class="profile-card">
			<a class="profile-card-fullname">John Smith</a>
			<div class="profile-card-avatar"><img src="/pic/avatar.jpg"></div>
			<div class="profile-bio">Software engineer building things</div>
			<div class="profile-location">San Francisco, CA</div>
			<span class="profile-stat-num">1,024</span>
			<span class="profile-stat-num">321</span>
			<span class="profile-stat-num">5.2K</span>
		</div>
	</body></html>`

	profile, err := parseNitterProfile(html, "johnsmith")
	require.NoError(t, err)
	assert.Equal(t, "twitter", profile.Platform)
	assert.Equal(t, "John Smith", profile.DisplayName)
	assert.Equal(t, "Software engineer building things", profile.Bio)
	assert.Equal(t, "San Francisco, CA", profile.Location)
	require.NotNil(t, profile.TweetCount)
	assert.Equal(t, 1024, *profile.TweetCount)
	require.NotNil(t, profile.FollowersCount)
	assert.Equal(t, 5200, *profile.FollowersCount)
}

func TestParseNitterProfile_NoCard(t *testing.T) {
	_, err := parseNitterProfile("<html><body>Instance rate limited</body></html>", "johnsmith")
	assert.Error(t, err)
}

func TestParseGitHubProfile(t *testing.T) {
	html := `
	<html><body>
		<div class="h-card">
			<img class="avatar-user" src="https://avatars.githubusercontent.com/u/1?v=4">
			<span class="vcard-fullname p-name">John Smith</span>
			<div class="user-profile-bio">Go developer</div>
			<span class="p-label">Berlin, Germany</span>
			<span class="p-org">@acme</span>
		</div>
	</body></html>`

	profile, err := parseGitHubProfile(html, "johnsmith")
	require.NoError(t, err)
	assert.Equal(t, "github", profile.Platform)
	assert.Equal(t, "John Smith", profile.DisplayName)
	assert.Equal(t, "Go developer", profile.Bio)
	assert.Equal(t, "Berlin, Germany", profile.Location)
	assert.Equal(t, "acme", profile.Company)
	assert.Equal(t, "https://avatars.githubusercontent.com/u/1?v=4", profile.ProfileImage)
}
