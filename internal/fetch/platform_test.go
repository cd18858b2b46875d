package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPlatform_Twitter(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://twitter.com/johnsmith", PlatformTwitter},
		{"https://x.com/johnsmith", PlatformTwitter},
		{"https://nitter.net/johnsmith", PlatformTwitter},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_GitHub(t *testing.T) {
	assert.Equal(t, PlatformGitHub, DetectPlatform("https://github.com/johnsmith"))
}

func TestDetectPlatform_Bluesky(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://bsky.app/profile/john.bsky.social", PlatformBluesky},
		{"https://john.bsky.social", PlatformBluesky},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDetectPlatform_LinkedIn(t *testing.T) {
	assert.Equal(t, PlatformLinkedIn, DetectPlatform("https://linkedin.com/in/john-smith"))
	assert.Equal(t, PlatformLinkedIn, DetectPlatform("https://www.linkedin.com/in/john-smith"))
}

func TestDetectPlatform_Mastodon(t *testing.T) {
	assert.Equal(t, PlatformMastodon, DetectPlatform("https://mastodon.social/@john"))
	assert.Equal(t, PlatformMastodon, DetectPlatform("john@hachyderm.io"))
}

func TestDetectPlatform_Unknown(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://example.com/profile", PlatformUnknown},
		{"https://medium.com/@someone", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			result := DetectPlatform(tt.url)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPlatformContentSelectors_Twitter(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformTwitter)
	assert.Contains(t, selectors, ".profile-card")
	assert.Contains(t, selectors, "main")
}

func TestPlatformContentSelectors_Unknown(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformUnknown)
	// Should fallback to generic ProfilePageSelectors
	assert.Contains(t, selectors, ".profile-card")
	assert.Contains(t, selectors, "main")
}

func TestPlatformNoiseSelectors_GitHub(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformGitHub)
	// Common selectors
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".cookie-banner")
	// GitHub-specific
	assert.Contains(t, selectors, ".contributions-calendar")
	assert.Contains(t, selectors, ".pinned-items-list")
}

func TestPlatformNoiseSelectors_Unknown(t *testing.T) {
	selectors := PlatformNoiseSelectors(PlatformUnknown)
	assert.Contains(t, selectors, "form")
	assert.Contains(t, selectors, ".follow-button")
	assert.Contains(t, selectors, ".cookie-banner")
}
