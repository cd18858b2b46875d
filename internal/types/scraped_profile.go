package types

// ScrapedProfile is a normalized record for one social account as returned
// by the social-scraping collaborator. Count fields use pointers so that
// "not reported by the platform" stays distinct from zero.
type ScrapedProfile struct {
	Platform       string `json:"platform"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Location       string `json:"location,omitempty"`
	Company        string `json:"company,omitempty"`
	Blog           string `json:"blog,omitempty"`
	FollowersCount *int   `json:"followers_count,omitempty"`
	FollowingCount *int   `json:"following_count,omitempty"`
	RepoCount      *int   `json:"repo_count,omitempty"`
	TweetCount     *int   `json:"tweet_count,omitempty"`
	PostCount      *int   `json:"post_count,omitempty"`
	ProfileImage   string `json:"profile_image,omitempty"`
	URL            string `json:"url"`
}
