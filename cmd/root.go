// Package cmd implements the CLI commands for coursepipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Shared flags.
var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "coursepipe",
	Short: "coursepipe — scrape a course catalog and extract structured records",
	Long: `coursepipe is a two-stage pipeline over a university course catalog.

The scrape command downloads course pages and stores them as documents;
the extract command parses those documents into structured course records
with metadata and bibliography, exported as JSON and CSV.

Usage:
  coursepipe scrape [flags]
  coursepipe extract [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}
