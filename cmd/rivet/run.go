package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgildea/rivet/dom"
	"github.com/mgildea/rivet/script"
	"github.com/mgildea/rivet/widget"
)

var runCmd = &cobra.Command{
	Use:   "run <page.html>",
	Short: "Upgrade widgets on a page and print the result",
	Long: `Parse an HTML page, upgrade every element marked with a widget
attribute, optionally run a host script against the document, and print
the resulting markup.

Host scripts see the page through a document global and may listen for
widget events; calling preventDefault on an event vetoes the transition.

Example:
  rivet run page.html
  rivet run page.html --settings rivet.yaml --script hooks.js`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("settings", "c", "", "path to a YAML settings file")
	runCmd.Flags().StringP("script", "s", "", "path to a host script to run after upgrading")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	doc, opts, err := loadPage(cmd, args[0], logger)
	if err != nil {
		return err
	}

	registry, err := widget.NewRegistry(doc, opts...)
	if err != nil {
		return fmt.Errorf("create registry: %w", err)
	}
	registry.Watch()
	defer registry.Close()
	registry.Upgrade()
	logger.Info("widgets upgraded", "count", registry.Len())

	if scriptPath, _ := cmd.Flags().GetString("script"); scriptPath != "" {
		code, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		rt := script.NewRuntime(doc, logger)
		if _, err := rt.Execute(scriptPath, string(code)); err != nil {
			return fmt.Errorf("run script: %w", err)
		}
	}

	fmt.Println(doc.HTML())
	return nil
}

// loadPage parses the page and assembles widget options from the shared
// CLI flags.
func loadPage(cmd *cobra.Command, path string, logger *slog.Logger) (*dom.Document, []widget.Option, error) {
	markup, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read page: %w", err)
	}
	doc, err := dom.ParseString(string(markup))
	if err != nil {
		return nil, nil, fmt.Errorf("parse page: %w", err)
	}

	opts := []widget.Option{widget.WithLogger(logger)}
	if settingsPath, _ := cmd.Flags().GetString("settings"); settingsPath != "" {
		settings, err := widget.LoadSettings(settingsPath)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, widget.WithSettings(settings))
	}
	return doc, opts, nil
}
