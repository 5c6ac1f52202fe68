package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mgildea/rivet/dom"
	"github.com/mgildea/rivet/widget"
)

var widgetsCmd = &cobra.Command{
	Use:   "widgets <page.html>",
	Short: "List upgradeable elements on a page",
	Long: `Parse an HTML page and list every element carrying a widget root
attribute, without upgrading anything.

Example:
  rivet widgets page.html`,
	Args: cobra.ExactArgs(1),
	RunE: runWidgets,
}

func init() {
	rootCmd.AddCommand(widgetsCmd)

	widgetsCmd.Flags().StringP("settings", "c", "", "path to a YAML settings file")
}

func runWidgets(cmd *cobra.Command, args []string) error {
	markup, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}
	doc, err := dom.ParseString(string(markup))
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	settings := widget.DefaultSettings()
	if settingsPath, _ := cmd.Flags().GetString("settings"); settingsPath != "" {
		settings, err = widget.LoadSettings(settingsPath)
		if err != nil {
			return err
		}
	}

	kinds := []struct {
		name string
		attr string
	}{
		{"disclosure", settings.Disclosure.Root},
		{"dropdown", settings.Dropdown.Root},
		{"accordion", settings.Accordion.Root},
	}
	total := 0
	for _, kind := range kinds {
		for _, el := range doc.QuerySelectorAll("[" + kind.attr + "]") {
			label := el.Id()
			if label == "" {
				label = "<" + el.LocalName() + ">"
			}
			fmt.Printf("%-12s %s\n", kind.name, label)
			total++
		}
	}
	if total == 0 {
		fmt.Println("no upgradeable elements found")
	}
	return nil
}
