package queries

import (
	"regexp"
	"strings"
)

// Handle is one social-media username extracted from a profile URL.
type Handle struct {
	Platform string
	Username string
}

// platformPattern pairs a platform name with the regexp that extracts its
// username from a URL. Order matters: the first matching platform wins.
type platformPattern struct {
	platform string
	re       *regexp.Regexp
}

var handlePatterns = []platformPattern{
	{"twitter", regexp.MustCompile(`(?:twitter\.com|x\.com)/(@?[\w\-]+)`)},
	{"github", regexp.MustCompile(`github\.com/([\w\-]+)`)},
	{"bluesky", regexp.MustCompile(`(?:bsky\.app|bsky\.social)/profile/([\w\-.]+)`)},
	{"instagram", regexp.MustCompile(`instagram\.com/(@?[\w.]+)`)},
	{"facebook", regexp.MustCompile(`facebook\.com/([^/?]+)`)},
	{"linkedin", regexp.MustCompile(`linkedin\.com/in/([\w\-]+)`)},
	{"youtube", regexp.MustCompile(`youtube\.com/(?:c/|channel/|user/|@)([\w\-]+)`)},
	{"tiktok", regexp.MustCompile(`tiktok\.com/(@[\w.]+)`)},
	{"mastodon", regexp.MustCompile(`([\w\-.]+)@([\w\-.]+)`)},
	{"threads", regexp.MustCompile(`threads\.net/(@?[\w.]+)`)},
}

// Platforms whose handles are conventionally written with a leading @.
var atPrefixed = map[string]bool{
	"twitter":   true,
	"tiktok":    true,
	"instagram": true,
	"bluesky":   true,
}

// Path segments that indicate a content URL rather than a profile URL.
var instagramContentPrefix = regexp.MustCompile(`instagram\.com/p/`)
var facebookContentPrefix = regexp.MustCompile(`facebook\.com/(?:pages|groups|events)/`)

// ExtractHandles pulls social usernames out of profile URLs. Each URL is
// matched against the platform patterns in order and contributes at most one
// handle. Results keep URL order, so downstream query generation is
// deterministic.
func ExtractHandles(urls []string) []Handle {
	var handles []Handle
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		for _, pp := range handlePatterns {
			if pp.platform == "instagram" && instagramContentPrefix.MatchString(url) {
				continue
			}
			if pp.platform == "facebook" && facebookContentPrefix.MatchString(url) {
				continue
			}
			m := pp.re.FindStringSubmatch(url)
			if m == nil {
				continue
			}
			username := m[1]
			if atPrefixed[pp.platform] && !strings.HasPrefix(username, "@") {
				username = "@" + username
			}
			handles = append(handles, Handle{Platform: pp.platform, Username: username})
			break
		}
	}
	return handles
}
