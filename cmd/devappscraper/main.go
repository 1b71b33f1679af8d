// Package main provides the devappscraper command-line interface.
//
// devappscraper fetches a municipal development-application register,
// downloads its PDF attachments, reconstructs each PDF's table, and
// persists the extracted application records.
//
// Usage:
//
//	devappscraper [command] [flags]
//
// Available Commands:
//
//	scrape      Run one scrape of the configured register
//	version     Print version information
//
// Use "devappscraper [command] --help" for more information about a command.
package main

import (
	"os"

	"github.com/coregx/devappscraper/cmd/devappscraper/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
