package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/personakit/personafind/internal/observability"
	"github.com/personakit/personafind/internal/queries"
)

var queriesCmd = &cobra.Command{
	Use:   "queries",
	Short: "Synthesize ranked search queries for a persona",
	Long: "Synthesize the weighted search-query ladder for a persona JSON file, " +
		"strongest queries first.",
	RunE: runQueries,
}

var (
	queriesPersonaFile string
	queriesOutputFile  string
	queriesVerbose     bool
)

func init() {
	queriesCmd.Flags().StringVarP(&queriesPersonaFile, "persona", "p", "", "Path to persona JSON file (required)")
	queriesCmd.Flags().StringVarP(&queriesOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	queriesCmd.Flags().BoolVarP(&queriesVerbose, "verbose", "v", false, "Print formatted query summary to stderr")
	_ = queriesCmd.MarkFlagRequired("persona")

	rootCmd.AddCommand(queriesCmd)
}

func runQueries(_ *cobra.Command, _ []string) error {
	persona, err := loadPersona(queriesPersonaFile)
	if err != nil {
		return err
	}

	ranked := queries.SynthesizeRanked(persona)

	if queriesVerbose {
		observability.NewPrinter(os.Stderr).PrintQueries(ranked)
	}

	return writeJSON(queriesOutputFile, ranked)
}
