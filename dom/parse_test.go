package dom

import (
	"strings"
	"testing"
)

func TestParse_BuildsDocumentStructure(t *testing.T) {
	doc, err := ParseString(`<!DOCTYPE html><html><body><p id="p">hi</p></body></html>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	root := doc.DocumentElement()
	if root == nil || root.LocalName() != "html" {
		t.Fatal("missing document element")
	}
	body := doc.Body()
	if body == nil {
		t.Fatal("missing body")
	}
	p := doc.GetElementById("p")
	if p == nil || p.TextContent() != "hi" {
		t.Error("parsed content missing")
	}
	if !p.AsNode().IsConnected() {
		t.Error("parsed element not connected")
	}
}

func TestParse_RecoversFragmentMarkup(t *testing.T) {
	// x/net/html wraps bare fragments in html/head/body.
	doc, err := ParseString(`<button data-disclosure-toggle="d">t</button>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if doc.QuerySelector("[data-disclosure-toggle]") == nil {
		t.Error("fragment content not reachable")
	}
}

func TestParse_AttributesLowercasedAndOrdered(t *testing.T) {
	doc, err := ParseString(`<div ID="x" Data-Dropdown="" hidden></div>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	el := doc.GetElementById("x")
	if el == nil {
		t.Fatal("element not found by id")
	}
	if !el.HasAttribute("data-dropdown") || !el.HasAttribute("hidden") {
		t.Error("attributes lost in conversion")
	}
}

func TestParseFragment(t *testing.T) {
	doc := NewDocument()
	context := doc.CreateElement("div")

	nodes, err := ParseFragment(`<span>a</span>text<span>b</span>`, context)
	if err != nil {
		t.Fatalf("ParseFragment failed: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[0].NodeType() != ElementNode || nodes[1].NodeType() != TextNode {
		t.Error("fragment node types wrong")
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	doc, err := ParseString(`<html><head></head><body><div data-accordion><button data-accordion-trigger="1">One &amp; Two</button><div data-accordion-panel="1" hidden></div></div></body></html>`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	out := doc.HTML()
	for _, want := range []string{
		`<div data-accordion="">`,
		`data-accordion-trigger="1"`,
		`One &amp; Two`,
		`hidden=""`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("serialized output missing %q:\n%s", want, out)
		}
	}
}

func TestSerialize_VoidElements(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("input")
	el.SetAttribute("type", "text")

	out := el.OuterHTML()
	if out != `<input type="text">` {
		t.Errorf("void element serialization = %q", out)
	}
}

func TestSetInnerHTML(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	if err := el.SetInnerHTML(`<button id="b">x</button>`); err != nil {
		t.Fatalf("SetInnerHTML failed: %v", err)
	}
	if el.FirstElementChild() == nil || el.FirstElementChild().Id() != "b" {
		t.Error("SetInnerHTML did not attach parsed children")
	}

	if err := el.SetInnerHTML(""); err != nil {
		t.Fatalf("SetInnerHTML(empty) failed: %v", err)
	}
	if el.AsNode().HasChildNodes() {
		t.Error("SetInnerHTML(empty) should clear children")
	}
}
