package dom

import "testing"

func mustParse(t *testing.T, markup string) *Document {
	t.Helper()
	doc, err := ParseString(markup)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func TestElement_Matches(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button")
	el.SetAttribute("class", "menu primary")
	el.SetAttribute("id", "open")
	el.SetAttribute("data-dropdown-toggle", "dd-1")
	el.SetAttribute("aria-expanded", "false")

	cases := []struct {
		selector string
		want     bool
	}{
		{"*", true},
		{"button", true},
		{"BUTTON", false}, // tag selectors are lowercase in this engine
		{"a", false},
		{"#open", true},
		{"#other", false},
		{".menu", true},
		{".menu.primary", true},
		{".missing", false},
		{"[data-dropdown-toggle]", true},
		{"[data-dropdown-toggle=dd-1]", true},
		{`[data-dropdown-toggle="dd-1"]`, true},
		{"[data-dropdown-toggle=dd-2]", false},
		{"[class~=primary]", true},
		{"[id|=open]", true},
		{"[id^=op]", true},
		{"[id$=en]", true},
		{"[id*=pe]", true},
		{"button.menu#open[aria-expanded=false]", true},
		{"button:not([disabled])", true},
		{"button:not([aria-expanded])", false},
		{"a, button", true},
		{"a, span", false},
	}

	for _, tc := range cases {
		if got := el.Matches(tc.selector); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.selector, got, tc.want)
		}
	}
}

func TestElement_Matches_InvalidSelector(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	for _, selector := range []string{"", "div > span", "[unterminated", ":hover"} {
		if el.Matches(selector) {
			t.Errorf("Matches(%q) should be false for unsupported selector", selector)
		}
	}
}

func TestDocument_QuerySelectorAll(t *testing.T) {
	doc := mustParse(t, `
		<div data-accordion>
			<button data-accordion-trigger="1">One</button>
			<div data-accordion-panel="1"></div>
			<button data-accordion-trigger="2" disabled>Two</button>
			<div data-accordion-panel="2"></div>
		</div>`)

	triggers := doc.QuerySelectorAll("[data-accordion-trigger]")
	if len(triggers) != 2 {
		t.Fatalf("expected 2 triggers, got %d", len(triggers))
	}
	if triggers[0].GetAttribute("data-accordion-trigger") != "1" {
		t.Error("document order not preserved")
	}

	enabled := doc.QuerySelectorAll("button:not([disabled])")
	if len(enabled) != 1 || enabled[0].TextContent() != "One" {
		t.Errorf("`:not([disabled])` query wrong: %d results", len(enabled))
	}
}

func TestElement_QuerySelector_ScopedToSubtree(t *testing.T) {
	doc := mustParse(t, `
		<div id="a"><span class="x">inside</span></div>
		<span class="x">outside</span>`)

	a := doc.GetElementById("a")
	found := a.QuerySelector(".x")
	if found == nil || found.TextContent() != "inside" {
		t.Error("QuerySelector escaped the subtree")
	}
	if n := len(a.QuerySelectorAll(".x")); n != 1 {
		t.Errorf("expected 1 scoped result, got %d", n)
	}
}

func TestElement_Closest(t *testing.T) {
	doc := mustParse(t, `
		<div data-dropdown id="dd">
			<ul><li><a href="#" id="item">x</a></li></ul>
		</div>`)

	item := doc.GetElementById("item")
	root := item.Closest("[data-dropdown]")
	if root == nil || root.Id() != "dd" {
		t.Error("Closest did not find the widget root")
	}
	if item.Closest("a") != item {
		t.Error("Closest should match the element itself")
	}
	if item.Closest("[data-accordion]") != nil {
		t.Error("Closest matched a selector not in the ancestor chain")
	}
}
