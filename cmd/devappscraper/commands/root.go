// Package commands implements the devappscraper CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is the application version (set at build time).
	Version = "dev"
	// GitCommit is the git commit hash (set at build time).
	GitCommit = "unknown"
	// BuildDate is the build date (set at build time).
	BuildDate = "unknown"

	// Global flags.
	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "devappscraper",
	Short: "devappscraper - development application register scraper",
	Long: `devappscraper fetches a municipal development-application register,
downloads its PDF attachments, reconstructs each PDF's table from vector
ruling lines and text glyph runs, and persists the extracted application
records (application number, address, description, received date).

Examples:
  devappscraper scrape --source_url https://council.example/register
  devappscraper scrape --config devappscraper.yaml --export-format csv
  devappscraper version

Documentation: https://github.com/coregx/devappscraper`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(scrapeCmd)
}

// printVerbosef prints a message if verbose mode is enabled.
func printVerbosef(format string, args ...interface{}) {
	if verbose {
		fmt.Printf(format+"\n", args...)
	}
}
