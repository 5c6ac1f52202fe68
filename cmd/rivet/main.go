// Package main is the entry point for the rivet CLI.
//
// Rivet widgets are normally used as a library, but the CLI can apply them
// to a static HTML page: it parses the page, upgrades every marked
// element, optionally runs a host script against the document, and prints
// the resulting markup.
//
// Usage:
//
//	rivet run page.html                 # Upgrade widgets and print the page
//	rivet run page.html -s hooks.js     # Also run a host script
//	rivet widgets page.html             # List upgradeable elements
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "rivet",
	Short: "Accessible UI widgets for static HTML",
	Long: `Rivet attaches accessible widget behavior - disclosures, dropdowns
and accordions - to plain HTML marked with data attributes.

Quick start:
  1. Mark up a page with data-disclosure / data-dropdown / data-accordion
  2. Run: rivet run page.html
  3. The printed page carries the synchronized aria-expanded and
     hidden attributes`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger creates the text logger CLI commands report through.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rivet %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
