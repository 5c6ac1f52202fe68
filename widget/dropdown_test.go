package widget

import (
	"testing"

	"github.com/mgildea/rivet/dom"
)

const dropdownMarkup = `<html><body>
<div data-dropdown id="dd1">
  <button data-dropdown-toggle="menu1">Menu</button>
  <ul data-dropdown-menu="menu1" hidden>
    <li><a href="#a" id="item-a">A</a></li>
    <li><a href="#b" id="item-b">B</a></li>
    <li><a href="#c" id="item-c">C</a></li>
  </ul>
</div>
</body></html>`

func TestDropdown_ToggleClickOpensAndCloses(t *testing.T) {
	doc := parseDoc(t, dropdownMarkup)
	d, err := NewDropdown(doc, "[data-dropdown]")
	if err != nil {
		t.Fatalf("NewDropdown: %v", err)
	}
	toggle := doc.QuerySelector("[data-dropdown-toggle]")
	menu := doc.QuerySelector("[data-dropdown-menu]")

	toggle.Click()
	if !d.IsOpen() || menu.HasAttribute("hidden") {
		t.Fatal("toggle click did not open the menu")
	}
	toggle.Click()
	if d.IsOpen() || !menu.HasAttribute("hidden") {
		t.Fatal("second toggle click did not close the menu")
	}
}

func TestDropdown_ArrowDownOpensClosedMenu(t *testing.T) {
	doc := parseDoc(t, dropdownMarkup)
	d, err := NewDropdown(doc, "[data-dropdown]")
	if err != nil {
		t.Fatalf("NewDropdown: %v", err)
	}
	toggle := doc.QuerySelector("[data-dropdown-toggle]")

	pressKey(t, toggle, KeyArrowDown, false)
	if !d.IsOpen() {
		t.Fatal("ArrowDown on closed dropdown did not open it")
	}

	// A second ArrowDown moves focus to the first item.
	pressKey(t, toggle, KeyArrowDown, false)
	if doc.ActiveElement() != doc.GetElementById("item-a") {
		t.Error("ArrowDown after opening did not focus the first item")
	}
}

func TestDropdown_ArrowNavigationWrapsAround(t *testing.T) {
	doc := parseDoc(t, dropdownMarkup)
	d, err := NewDropdown(doc, "[data-dropdown]")
	if err != nil {
		t.Fatalf("NewDropdown: %v", err)
	}
	d.Open()

	a := doc.GetElementById("item-a")
	b := doc.GetElementById("item-b")
	c := doc.GetElementById("item-c")

	a.Focus()
	pressKey(t, a, KeyArrowDown, false)
	if doc.ActiveElement() != b {
		t.Fatal("ArrowDown from first item should focus the second")
	}
	pressKey(t, c, KeyArrowDown, false)
	if doc.ActiveElement() != a {
		t.Error("ArrowDown from last item should wrap to the first")
	}
	pressKey(t, a, KeyArrowUp, false)
	if doc.ActiveElement() != c {
		t.Error("ArrowUp from first item should wrap to the last")
	}
	pressKey(t, b, KeyArrowUp, false)
	if doc.ActiveElement() != a {
		t.Error("ArrowUp from second item should focus the first")
	}
}

func TestDropdown_TabPastLastItemCloses(t *testing.T) {
	doc := parseDoc(t, dropdownMarkup)
	d, err := NewDropdown(doc, "[data-dropdown]")
	if err != nil {
		t.Fatalf("NewDropdown: %v", err)
	}
	d.Open()

	b := doc.GetElementById("item-b")
	c := doc.GetElementById("item-c")

	pressKey(t, b, KeyTab, false)
	if !d.IsOpen() {
		t.Fatal("Tab on a non-final item closed the menu")
	}
	pressKey(t, c, KeyTab, true)
	if !d.IsOpen() {
		t.Fatal("Shift+Tab on the last item closed the menu")
	}
	pressKey(t, c, KeyTab, false)
	if d.IsOpen() {
		t.Fatal("Tab on the last item did not close the menu")
	}
}

func TestDropdown_EscapeClosesAndRefocusesToggle(t *testing.T) {
	doc := parseDoc(t, dropdownMarkup)
	d, err := NewDropdown(doc, "[data-dropdown]")
	if err != nil {
		t.Fatalf("NewDropdown: %v", err)
	}
	d.Open()
	a := doc.GetElementById("item-a")
	a.Focus()

	pressKey(t, a, KeyEscape, false)
	if d.IsOpen() {
		t.Fatal("Escape did not close the menu")
	}
	if doc.ActiveElement() != doc.QuerySelector("[data-dropdown-toggle]") {
		t.Error("Escape did not return focus to the toggle")
	}
}

func TestDropdown_TwoInstancesHandOff(t *testing.T) {
	doc := parseDoc(t, `<html><body>
<div data-dropdown id="dd1">
  <button data-dropdown-toggle="m1" id="t1">One</button>
  <ul data-dropdown-menu="m1" hidden><li><a href="#" id="a1">A1</a></li></ul>
</div>
<div data-dropdown id="dd2">
  <button data-dropdown-toggle="m2" id="t2">Two</button>
  <ul data-dropdown-menu="m2" hidden><li><a href="#" id="a2">A2</a></li></ul>
</div>
</body></html>`)

	d1, err := NewDropdown(doc, "#dd1")
	if err != nil {
		t.Fatalf("NewDropdown dd1: %v", err)
	}
	d2, err := NewDropdown(doc, "#dd2")
	if err != nil {
		t.Fatalf("NewDropdown dd2: %v", err)
	}

	var order []string
	doc.AsNode().AddEventListener("rvt:dropdownClose", func(e *dom.Event) {
		order = append(order, "close:"+e.Detail.(Detail).ID)
	})
	doc.AsNode().AddEventListener("rvt:dropdownOpen", func(e *dom.Event) {
		order = append(order, "open:"+e.Detail.(Detail).ID)
	})

	doc.GetElementById("t1").Click()
	if !d1.IsOpen() {
		t.Fatal("first dropdown did not open")
	}

	// Clicking the other toggle closes the open dropdown, then opens its own.
	doc.GetElementById("t2").Click()
	if d1.IsOpen() {
		t.Error("first dropdown still open after clicking the second toggle")
	}
	if !d2.IsOpen() {
		t.Error("second dropdown did not open")
	}

	want := []string{"open:m1", "close:m1", "open:m2"}
	if len(order) != len(want) {
		t.Fatalf("event order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("event order = %v, want %v", order, want)
		}
	}
}
