// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known social-media platform.
type Platform string

const (
	// PlatformTwitter is Twitter/X
	PlatformTwitter Platform = "twitter"
	// PlatformGitHub is GitHub
	PlatformGitHub Platform = "github"
	// PlatformBluesky is Bluesky
	PlatformBluesky Platform = "bluesky"
	// PlatformLinkedIn is LinkedIn
	PlatformLinkedIn Platform = "linkedin"
	// PlatformMastodon is a Mastodon instance
	PlatformMastodon Platform = "mastodon"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the social platform from a profile URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)
	if host == "" {
		// Bare "user@instance" handles have no URL host
		if strings.Count(urlStr, "@") == 1 && strings.Contains(urlStr, ".") {
			return PlatformMastodon
		}
		return PlatformUnknown
	}

	// Twitter patterns, including nitter mirrors
	if strings.Contains(host, "twitter.com") ||
		host == "x.com" || strings.HasSuffix(host, ".x.com") ||
		strings.Contains(host, "nitter") {
		return PlatformTwitter
	}

	if strings.Contains(host, "github.com") {
		return PlatformGitHub
	}

	if strings.Contains(host, "bsky.app") ||
		strings.Contains(host, "bsky.social") {
		return PlatformBluesky
	}

	if strings.Contains(host, "linkedin.com") {
		return PlatformLinkedIn
	}

	if strings.Contains(host, "mastodon") {
		return PlatformMastodon
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformTwitter:
		return []string{
			".profile-card", // Primary nitter selector
			".profile-tabs",
			"[data-testid='UserProfileHeader_Items']",
			"main",
			".content",
		}
	case PlatformGitHub:
		return []string{
			".vcard",
			".h-card",
			".user-profile-bio",
			"[itemtype='http://schema.org/Person']",
			"main",
		}
	case PlatformBluesky:
		return []string{
			"[data-testid='profileView']",
			".profile-header",
			"main",
			"#root",
		}
	case PlatformMastodon:
		return []string{
			".account__header",
			".public-account-header",
			".h-card",
			"main",
		}
	default:
		return ProfilePageSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Login and signup walls
		"form",
		".login-form",
		".signup-form",
		"[data-testid='loginForm']",
		".join-banner",

		// Timelines and feeds (profile metadata only)
		".timeline",
		".feed",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".follow-button",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	// Platform-specific noise selectors
	switch platform {
	case PlatformTwitter:
		return append(common,
			".timeline-container",
			".tweet-body",
			".replies",
		)
	case PlatformGitHub:
		return append(common,
			".contributions-calendar",
			".pinned-items-list",
			".js-yearly-contributions",
		)
	case PlatformBluesky:
		return append(common,
			"[data-testid='postsFeed']",
		)
	case PlatformMastodon:
		return append(common,
			".status__wrapper",
			".account__section-headline",
		)
	default:
		return common
	}
}
