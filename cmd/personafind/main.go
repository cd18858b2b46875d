// Package main provides the personafind CLI: persona-driven discovery and
// ranking of likely LinkedIn profiles.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "personafind",
	Short: "Find and rank likely LinkedIn profiles for a persona",
	Long: "personafind expands a partial persona description into ranked search queries, " +
		"collects candidate profiles from web search, and scores each candidate across " +
		"name, semantic, industry, location, social, and image signals.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
