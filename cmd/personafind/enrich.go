package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/personakit/personafind/internal/config"
	"github.com/personakit/personafind/internal/enrich"
	"github.com/personakit/personafind/internal/llm"
	"github.com/personakit/personafind/internal/observability"
	"github.com/personakit/personafind/internal/scrape"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich a persona from its social profiles",
	Long: "Scrape the persona's social profile URLs, fill empty fields from the scraped " +
		"data, and optionally complete the persona with AI enrichment.",
	RunE: runEnrich,
}

var (
	enrichPersonaFile string
	enrichOutputFile  string
	enrichAPIKey      string
	enrichSkipAI      bool
	enrichVerbose     bool
)

func init() {
	enrichCmd.Flags().StringVarP(&enrichPersonaFile, "persona", "p", "", "Path to persona JSON file (required)")
	enrichCmd.Flags().StringVarP(&enrichOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	enrichCmd.Flags().StringVar(&enrichAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	enrichCmd.Flags().BoolVar(&enrichSkipAI, "no-ai", false, "Skip AI enrichment, fill from scraped data only")
	enrichCmd.Flags().BoolVarP(&enrichVerbose, "verbose", "v", false, "Print formatted summaries to stderr")
	_ = enrichCmd.MarkFlagRequired("persona")

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(_ *cobra.Command, _ []string) error {
	persona, err := loadPersona(enrichPersonaFile)
	if err != nil {
		return err
	}

	cfg := config.Config{GeminiAPIKey: enrichAPIKey}
	cfg.MergeWithEnv()

	ctx := context.Background()

	scraper := scrape.New(scrape.Config{
		TwitterBearerToken: cfg.TwitterBearerToken,
		GitHubToken:        cfg.GitHubToken,
	})

	var client llm.Client
	if !enrichSkipAI {
		if cfg.GeminiAPIKey == "" {
			return fmt.Errorf("API key is required for AI enrichment (set GEMINI_API_KEY, use --api-key, or pass --no-ai)")
		}
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	enricher := enrich.New(scraper, client)
	if err := enricher.WithSocialData(ctx, persona); err != nil {
		// Scraping is best effort for enrichment; report and continue.
		fmt.Fprintf(os.Stderr, "Warning: social scraping failed: %v\n", err)
	}
	if client != nil {
		if err := enricher.WithAI(ctx, persona); err != nil {
			return fmt.Errorf("AI enrichment failed: %w", err)
		}
	}

	if enrichVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintScrapedProfiles(persona.ScrapedSocialData)
		printer.PrintPersona(persona)
	}

	return writeJSON(enrichOutputFile, persona)
}
