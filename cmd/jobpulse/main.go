// Package main is the jobpulse CLI: it serves the job board and offers a few
// maintenance commands around its config and dataset.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagDataDir    string
	flagConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "jobpulse",
	Short: "Job board dashboard for entry-level postings",
	Long:  "jobpulse serves a filterable dashboard of intern, trainee and junior job postings loaded from a YAML dataset.",

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory holding config.yml and the instance lock (env JOBPULSE_DATA_DIR, default .)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file (default <data-dir>/config.yml)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
