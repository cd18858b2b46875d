package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/personakit/personafind/internal/names"
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand an abbreviated name into likely full-name variants",
	Long: "Expand a name containing initials (e.g. \"Darshan T.\") into ranked full-name " +
		"candidates using regional surname lexicons.",
	RunE: runExpand,
}

var (
	expandName string
	expandJSON bool
)

func init() {
	expandCmd.Flags().StringVarP(&expandName, "name", "n", "", "Name to expand (required)")
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "Output as JSON array")
	_ = expandCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(expandCmd)
}

func runExpand(_ *cobra.Command, _ []string) error {
	variants := names.Expand(expandName)

	if expandJSON {
		return writeJSON("", variants)
	}

	if len(variants) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No expansions found.")
		return nil
	}
	for _, v := range variants {
		_, _ = fmt.Fprintln(os.Stdout, v)
	}
	return nil
}
