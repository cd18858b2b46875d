package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/personakit/personafind/internal/config"
	"github.com/personakit/personafind/internal/db"
	"github.com/personakit/personafind/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>...",
	Short: "Fetch profile pages, optionally through the page cache",
	Long: "Fetch one or more profile pages and extract their main text. " +
		"With a database URL, pages are served from and written to the page cache.",
	Args: cobra.MinimumNArgs(1),
	RunE: runFetch,
}

var (
	fetchDBURL      string
	fetchSkipCache  bool
	fetchUseBrowser bool
	fetchOutputFile string
	fetchVerbose    bool
)

func init() {
	fetchCmd.Flags().StringVar(&fetchDBURL, "db-url", "", "PostgreSQL connection URL for the page cache (default: DATABASE_URL)")
	fetchCmd.Flags().BoolVar(&fetchSkipCache, "skip-cache", false, "Bypass cached pages and fetch fresh content")
	fetchCmd.Flags().BoolVar(&fetchUseBrowser, "browser", false, "Render JavaScript-heavy pages with a headless browser")
	fetchCmd.Flags().StringVarP(&fetchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	fetchCmd.Flags().BoolVarP(&fetchVerbose, "verbose", "v", false, "Print fetch progress to stderr")

	rootCmd.AddCommand(fetchCmd)
}

// fetchedPage is the JSON output for one fetched URL.
type fetchedPage struct {
	URL        string `json:"url"`
	Platform   string `json:"platform"`
	StatusCode int    `json:"status_code,omitempty"`
	FromCache  bool   `json:"from_cache"`
	Text       string `json:"text,omitempty"`
	Error      string `json:"error,omitempty"`
}

func runFetch(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg := config.Config{
		DatabaseURL: fetchDBURL,
		SkipCache:   fetchSkipCache,
		UseBrowser:  fetchUseBrowser,
	}
	cfg.MergeWithEnv()

	var database *db.DB
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
	}

	fetcher := fetch.NewCachedFetcher(database, &fetch.CachedFetcherConfig{
		SkipCache: cfg.SkipCache,
	})

	pages := make([]fetchedPage, 0, len(args))
	for _, urlStr := range args {
		pages = append(pages, fetchOne(ctx, fetcher, urlStr, cfg.UseBrowser))
	}

	return writeJSON(fetchOutputFile, pages)
}

func fetchOne(ctx context.Context, fetcher *fetch.CachedFetcher, urlStr string, useBrowser bool) fetchedPage {
	platform := fetch.DetectPlatform(urlStr)
	page := fetchedPage{URL: urlStr, Platform: string(platform)}

	var platformTag *string
	if platform != fetch.PlatformUnknown {
		p := string(platform)
		platformTag = &p
	}

	result, err := fetcher.FetchPage(ctx, urlStr, platformTag, nil)
	if err != nil {
		page.Error = err.Error()
		if fetchVerbose {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", urlStr, err)
		}
		return page
	}

	page.StatusCode = result.StatusCode
	page.FromCache = result.FromCache
	page.Text = result.Text

	// SPA profile pages often serve an empty shell to plain HTTP clients.
	if useBrowser && !result.FromCache && fetch.ShouldUseBrowser(result.Text) {
		text, err := fetch.BrowserSimple(ctx, urlStr, fetchVerbose)
		if err == nil && len(strings.TrimSpace(text)) > len(strings.TrimSpace(page.Text)) {
			page.Text = text
		}
	}

	if fetchVerbose {
		source := "fetched"
		if page.FromCache {
			source = "cached"
		}
		fmt.Fprintf(os.Stderr, "✓ %s (%s, %d chars)\n", urlStr, source, len(page.Text))
	}
	return page
}
