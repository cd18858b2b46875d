package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/personakit/personafind/internal/config"
	"github.com/personakit/personafind/internal/db"
	"github.com/personakit/personafind/internal/enrich"
	"github.com/personakit/personafind/internal/geo"
	"github.com/personakit/personafind/internal/images"
	"github.com/personakit/personafind/internal/llm"
	"github.com/personakit/personafind/internal/observability"
	"github.com/personakit/personafind/internal/queries"
	"github.com/personakit/personafind/internal/scoring"
	"github.com/personakit/personafind/internal/scrape"
	"github.com/personakit/personafind/internal/search"
	"github.com/personakit/personafind/internal/types"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Run the full persona search pipeline",
	Long: "Enrich the persona, synthesize ranked queries, collect candidate profiles " +
		"from web search, score and rank them, and optionally validate profile images.",
	RunE: runFind,
}

var (
	findPersonaFile    string
	findConfigFile     string
	findOutputFile     string
	findAPIKey         string
	findSerpKey        string
	findMaxCandidates  int
	findSkipEnrich     bool
	findValidateImages bool
	findImageThreshold float64
	findDatabaseURL    string
	findVerbose        bool
)

func init() {
	findCmd.Flags().StringVarP(&findPersonaFile, "persona", "p", "", "Path to persona JSON file (required unless set in config)")
	findCmd.Flags().StringVarP(&findConfigFile, "config", "c", "", "Path to JSON config file")
	findCmd.Flags().StringVarP(&findOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	findCmd.Flags().StringVar(&findAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	findCmd.Flags().StringVar(&findSerpKey, "serp-key", "", "SerpAPI key (overrides SERPAPI_API_KEY env var)")
	findCmd.Flags().IntVar(&findMaxCandidates, "max", 0, "Maximum candidate links to collect (default 10)")
	findCmd.Flags().BoolVar(&findSkipEnrich, "no-enrich", false, "Skip persona enrichment")
	findCmd.Flags().BoolVar(&findValidateImages, "images", false, "Run the image validation pass (requires persona image)")
	findCmd.Flags().Float64Var(&findImageThreshold, "image-threshold", 0, "Image similarity match threshold (default 0.9)")
	findCmd.Flags().StringVar(&findDatabaseURL, "db-url", "", "Database URL for saving the search session")
	findCmd.Flags().BoolVarP(&findVerbose, "verbose", "v", false, "Print formatted progress to stderr")

	rootCmd.AddCommand(findCmd)
}

func runFind(_ *cobra.Command, _ []string) error {
	cfg, err := findConfig()
	if err != nil {
		return err
	}
	if cfg.SerpAPIKey == "" {
		return fmt.Errorf("SerpAPI key is required (set SERPAPI_API_KEY environment variable or use --serp-key flag)")
	}

	persona, err := loadPersona(cfg.Persona)
	if err != nil {
		return err
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stderr)

	scraper := scrape.New(scrape.Config{
		TwitterBearerToken: cfg.TwitterBearerToken,
		GitHubToken:        cfg.GitHubToken,
		RequestsPerMinute:  cfg.RequestsPerMinute,
	})

	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	if !findSkipEnrich {
		enricher := enrich.New(scraper, client)
		if err := enricher.WithSocialData(ctx, persona); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: social scraping failed: %v\n", err)
		}
		if client != nil {
			if err := enricher.WithAI(ctx, persona); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: AI enrichment failed: %v\n", err)
			}
		}
	}
	if cfg.Verbose {
		printer.PrintPersona(persona)
	}

	ranked := queries.SynthesizeRanked(persona)
	if len(ranked) == 0 {
		return fmt.Errorf("persona produced no search queries (name is required)")
	}
	if cfg.Verbose {
		printer.PrintQueries(ranked)
	}

	runner := search.NewRunner(search.NewSerpClient(cfg.SerpAPIKey, nil), cfg.MaxCandidates)
	candidates, err := runner.FindCandidates(ctx, ranked)
	if err != nil {
		return fmt.Errorf("candidate search failed: %w", err)
	}

	scorerCfg := scoring.Config{
		Geocoder: geo.NewNominatimResolver(),
		Social:   scraper,
	}
	if client != nil {
		scorerCfg.Oracle = llm.NewSimilarityOracle(client)
	}
	if tz, err := geo.NewTzfResolver(); err == nil {
		scorerCfg.Timezones = tz
	}
	scorer := scoring.New(scorerCfg)

	results := make([]*types.ScoreResult, 0, len(candidates))
	for _, candidate := range candidates {
		results = append(results, scorer.Score(ctx, persona, candidate))
	}
	results = scoring.Rank(results)

	if findValidateImages {
		results = mergeImagePass(ctx, cfg, printer, persona, candidates, results)
	}

	if cfg.Verbose {
		printer.PrintRankedResults(results)
	}

	if cfg.DatabaseURL != "" {
		if err := saveSession(ctx, cfg.DatabaseURL, persona, ranked, results); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save session: %v\n", err)
		}
	}

	return writeJSON(findOutputFile, results)
}

// findConfig merges flags, the optional config file, and the environment.
func findConfig() (config.Config, error) {
	cfg := config.Config{
		Persona:        findPersonaFile,
		GeminiAPIKey:   findAPIKey,
		SerpAPIKey:     findSerpKey,
		MaxCandidates:  findMaxCandidates,
		ImageThreshold: findImageThreshold,
		DatabaseURL:    findDatabaseURL,
		Verbose:        findVerbose,
	}

	if findConfigFile != "" {
		fileCfg, err := config.LoadConfig(findConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		MaxCandidates:  search.DefaultMaxCandidates,
		ImageThreshold: images.DefaultMatchThreshold,
	})
	cfg.MergeWithEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mergeImagePass runs the image validation pass and attaches its verdicts to
// the ranked results. Failures leave the results unannotated.
func mergeImagePass(ctx context.Context, cfg config.Config, printer *observability.Printer, persona *types.Persona, candidates []types.Candidate, results []*types.ScoreResult) []*types.ScoreResult {
	if persona.Image == "" {
		fmt.Fprintln(os.Stderr, "Warning: persona has no image, skipping image validation")
		return results
	}

	var source images.ProfileImageSource
	if cfg.ScrapingDogAPIKey != "" {
		source = images.NewScrapingDogSource(cfg.ScrapingDogAPIKey, nil)
	}

	validator := scoring.NewImageValidator(source, nil)
	validations := validator.Validate(ctx, candidates, persona, cfg.ImageThreshold)
	if cfg.Verbose {
		printer.PrintImageValidations(validations)
	}
	return scoring.MergeHybrid(results, validations)
}

func saveSession(ctx context.Context, databaseURL string, persona *types.Persona, ranked []types.Query, results []*types.ScoreResult) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	session := types.NewSession(*persona)
	session.Queries = ranked
	session.Results = make([]types.ScoreResult, 0, len(results))
	for _, r := range results {
		session.Results = append(session.Results, *r)
	}

	if err := database.SaveSession(ctx, session); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Saved session %s\n", session.ID)
	return nil
}
