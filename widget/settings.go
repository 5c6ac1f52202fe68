// Package widget implements accessible, markup-driven UI widgets —
// disclosure, dropdown and accordion — on top of the dom package. A widget
// attaches behavior to existing markup located by data-attribute selectors,
// keeps the toggle's aria-expanded attribute and the target's hidden
// attribute in sync, and announces every state transition through a
// cancelable, bubbling custom event that host code may veto.
package widget

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPrefix is the namespace prepended to every emitted event name.
const DefaultPrefix = "rvt"

// Settings is the process-wide widget configuration: the event-name prefix
// and the attribute vocabulary each widget type looks for. Zero-value
// fields fall back to the defaults, so a partial YAML file only overrides
// what it names.
type Settings struct {
	// Prefix namespaces emitted event names, e.g. "rvt:dropdownOpen".
	Prefix string `yaml:"prefix"`

	Disclosure DisclosureAttrs `yaml:"disclosure"`
	Dropdown   DropdownAttrs   `yaml:"dropdown"`
	Accordion  AccordionAttrs  `yaml:"accordion"`
}

// DisclosureAttrs names the attributes a disclosure is wired with.
type DisclosureAttrs struct {
	Root   string `yaml:"root"`
	Toggle string `yaml:"toggle"`
	Target string `yaml:"target"`
}

// DropdownAttrs names the attributes a dropdown is wired with.
type DropdownAttrs struct {
	Root   string `yaml:"root"`
	Toggle string `yaml:"toggle"`
	Menu   string `yaml:"menu"`
}

// AccordionAttrs names the attributes an accordion is wired with.
type AccordionAttrs struct {
	Root      string `yaml:"root"`
	Trigger   string `yaml:"trigger"`
	Panel     string `yaml:"panel"`
	PanelInit string `yaml:"panelInit"`
	OpenAll   string `yaml:"openAll"`
}

// DefaultSettings returns the stock attribute vocabulary.
func DefaultSettings() Settings {
	return Settings{
		Prefix: DefaultPrefix,
		Disclosure: DisclosureAttrs{
			Root:   "data-disclosure",
			Toggle: "data-disclosure-toggle",
			Target: "data-disclosure-target",
		},
		Dropdown: DropdownAttrs{
			Root:   "data-dropdown",
			Toggle: "data-dropdown-toggle",
			Menu:   "data-dropdown-menu",
		},
		Accordion: AccordionAttrs{
			Root:      "data-accordion",
			Trigger:   "data-accordion-trigger",
			Panel:     "data-accordion-panel",
			PanelInit: "data-accordion-panel-init",
			OpenAll:   "data-accordion-open-all",
		},
	}
}

// fillDefaults replaces every empty field with its default so callers may
// override settings partially.
func (s *Settings) fillDefaults() {
	defaults := DefaultSettings()
	fillString(&s.Prefix, defaults.Prefix)
	fillString(&s.Disclosure.Root, defaults.Disclosure.Root)
	fillString(&s.Disclosure.Toggle, defaults.Disclosure.Toggle)
	fillString(&s.Disclosure.Target, defaults.Disclosure.Target)
	fillString(&s.Dropdown.Root, defaults.Dropdown.Root)
	fillString(&s.Dropdown.Toggle, defaults.Dropdown.Toggle)
	fillString(&s.Dropdown.Menu, defaults.Dropdown.Menu)
	fillString(&s.Accordion.Root, defaults.Accordion.Root)
	fillString(&s.Accordion.Trigger, defaults.Accordion.Trigger)
	fillString(&s.Accordion.Panel, defaults.Accordion.Panel)
	fillString(&s.Accordion.PanelInit, defaults.Accordion.PanelInit)
	fillString(&s.Accordion.OpenAll, defaults.Accordion.OpenAll)
}

func fillString(field *string, def string) {
	if *field == "" {
		*field = def
	}
}

// LoadSettings reads a YAML settings file. Fields the file omits keep
// their defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}
	settings.fillDefaults()
	return settings, nil
}
