package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/personakit/personafind/internal/config"
	"github.com/personakit/personafind/internal/observability"
	"github.com/personakit/personafind/internal/scrape"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <profile-url>...",
	Short: "Scrape social profile data from profile URLs",
	Long: "Scrape public profile data (display name, bio, location, follower counts) " +
		"from Twitter/X, GitHub, and Bluesky profile URLs.",
	Args: cobra.MinimumNArgs(1),
	RunE: runScrape,
}

var (
	scrapeOutputFile string
	scrapeVerbose    bool
)

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scrapeCmd.Flags().BoolVarP(&scrapeVerbose, "verbose", "v", false, "Print formatted profile summary to stderr")

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, args []string) error {
	cfg := config.Config{}
	cfg.MergeWithEnv()

	scraper := scrape.New(scrape.Config{
		TwitterBearerToken: cfg.TwitterBearerToken,
		GitHubToken:        cfg.GitHubToken,
	})

	profiles, err := scraper.Scrape(context.Background(), args)
	if err != nil {
		return fmt.Errorf("failed to scrape profiles: %w", err)
	}

	if scrapeVerbose {
		observability.NewPrinter(os.Stderr).PrintScrapedProfiles(profiles)
	}

	return writeJSON(scrapeOutputFile, profiles)
}
