package widget

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mgildea/rivet/dom"
)

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := `prefix: app
dropdown:
  toggle: data-menu-button
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Prefix != "app" {
		t.Errorf("Prefix = %q, want %q", s.Prefix, "app")
	}
	if s.Dropdown.Toggle != "data-menu-button" {
		t.Errorf("Dropdown.Toggle = %q, want %q", s.Dropdown.Toggle, "data-menu-button")
	}
	if s.Dropdown.Menu != "data-dropdown-menu" {
		t.Errorf("Dropdown.Menu = %q, want default %q", s.Dropdown.Menu, "data-dropdown-menu")
	}
	if s.Accordion.Trigger != "data-accordion-trigger" {
		t.Errorf("Accordion.Trigger = %q, want default", s.Accordion.Trigger)
	}
}

func TestLoadSettings_MissingFileErrors(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWithSettings_CustomVocabularyAndPrefix(t *testing.T) {
	doc := parseDoc(t, `<html><body><div data-reveal>
<button data-reveal-toggle="x">Show</button>
<div data-reveal-content="x" hidden>X</div>
</div></body></html>`)

	settings := Settings{
		Prefix: "app",
		Disclosure: DisclosureAttrs{
			Root:   "data-reveal",
			Toggle: "data-reveal-toggle",
			Target: "data-reveal-content",
		},
	}
	d, err := NewDisclosure(doc, "[data-reveal]", WithSettings(settings))
	if err != nil {
		t.Fatalf("NewDisclosure: %v", err)
	}

	var gotID string
	doc.AsNode().AddEventListener("app:disclosureOpen", func(e *dom.Event) {
		gotID = e.Detail.(Detail).ID
	})
	d.Open()
	if !d.IsOpen() {
		t.Fatal("disclosure with custom settings did not open")
	}
	if gotID != "x" {
		t.Errorf("event detail id = %q, want %q", gotID, "x")
	}
}

func TestWithLogger_NilLoggerErrors(t *testing.T) {
	doc := parseDoc(t, disclosureMarkup)
	if _, err := NewDisclosure(doc, "[data-disclosure]", WithLogger(nil)); err == nil {
		t.Fatal("expected error for nil logger")
	}
}
