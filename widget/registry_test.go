package widget

import (
	"testing"
)

const registryMarkup = `<html><body>
<div data-disclosure id="d1">
  <button data-disclosure-toggle="x">Show</button>
  <div data-disclosure-target="x" hidden>X</div>
</div>
<div data-dropdown id="dd1">
  <button data-dropdown-toggle="m">Menu</button>
  <ul data-dropdown-menu="m" hidden><li><a href="#" id="a1">A</a></li></ul>
</div>
</body></html>`

func TestRegistry_UpgradeMountsMarkedElements(t *testing.T) {
	doc := parseDoc(t, registryMarkup)
	r, err := NewRegistry(doc)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	r.Upgrade()
	if got := r.Len(); got != 2 {
		t.Fatalf("live widgets = %d, want 2", got)
	}

	// Upgraded widgets are functional.
	toggle := doc.QuerySelector("[data-disclosure-toggle]")
	target := doc.QuerySelector("[data-disclosure-target]")
	toggle.Click()
	if target.HasAttribute("hidden") {
		t.Error("upgraded disclosure did not open on click")
	}

	// A second scan does not double-mount.
	r.Upgrade()
	if got := r.Len(); got != 2 {
		t.Errorf("live widgets after rescan = %d, want 2", got)
	}
}

func TestRegistry_WatchUpgradesInsertedSubtrees(t *testing.T) {
	doc := parseDoc(t, registryMarkup)
	r, err := NewRegistry(doc)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	r.Upgrade()
	r.Watch()
	defer r.Close()

	wrapper := doc.CreateElement("div")
	inner := doc.CreateElement("div")
	inner.SetAttribute("data-disclosure", "")
	btn := doc.CreateElement("button")
	btn.SetAttribute("data-disclosure-toggle", "late")
	panel := doc.CreateElement("div")
	panel.SetAttribute("data-disclosure-target", "late")
	panel.SetAttribute("hidden", "")
	inner.AsNode().AppendChild(btn.AsNode())
	inner.AsNode().AppendChild(panel.AsNode())
	wrapper.AsNode().AppendChild(inner.AsNode())

	doc.Body().AsNode().AppendChild(wrapper.AsNode())
	if got := r.Len(); got != 3 {
		t.Fatalf("live widgets after insertion = %d, want 3", got)
	}

	btn.Click()
	if panel.HasAttribute("hidden") {
		t.Error("auto-upgraded disclosure did not open on click")
	}
}

func TestRegistry_WatchDestroysRemovedSubtrees(t *testing.T) {
	doc := parseDoc(t, registryMarkup)
	r, err := NewRegistry(doc)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	r.Upgrade()
	r.Watch()
	defer r.Close()

	d1 := doc.GetElementById("d1")
	doc.Body().AsNode().RemoveChild(d1.AsNode())
	if got := r.Len(); got != 1 {
		t.Errorf("live widgets after removal = %d, want 1", got)
	}
}

func TestRegistry_CloseDestroysEverything(t *testing.T) {
	doc := parseDoc(t, registryMarkup)
	r, err := NewRegistry(doc)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	r.Upgrade()
	r.Watch()
	r.Close()
	if got := r.Len(); got != 0 {
		t.Fatalf("live widgets after Close = %d, want 0", got)
	}

	toggle := doc.QuerySelector("[data-disclosure-toggle]")
	target := doc.QuerySelector("[data-disclosure-target]")
	toggle.Click()
	if !target.HasAttribute("hidden") {
		t.Error("destroyed widget still reacts to clicks")
	}
}

func TestRegistry_SkipsBrokenElements(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<div data-disclosure id="broken"></div>
<div data-disclosure id="good">
  <button data-disclosure-toggle="x">Show</button>
  <div data-disclosure-target="x" hidden>X</div>
</div>
</body></html>`)
	r, err := NewRegistry(doc)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	r.Upgrade()
	if got := r.Len(); got != 1 {
		t.Fatalf("live widgets = %d, want 1 (broken element skipped)", got)
	}
}
