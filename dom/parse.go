package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML document and builds a DOM tree for it using
// golang.org/x/net/html. The parser applies the usual HTML recovery rules,
// so the result always has html/head/body structure.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if node := convertHTMLNode(c, doc); node != nil {
			doc.AsNode().AppendChild(node)
		}
	}
	return doc, nil
}

// ParseString parses an HTML document from a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// ParseFragment parses an HTML fragment in the context of the given
// element and returns the resulting top-level nodes, owned by the
// context's document but not attached to it.
func ParseFragment(markup string, context *Element) ([]*Node, error) {
	tagName := context.LocalName()
	contextNode := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tagName)),
		Data:     tagName,
	}

	parsed, err := html.ParseFragment(strings.NewReader(markup), contextNode)
	if err != nil {
		return nil, err
	}

	doc := context.AsNode().ownerDoc
	result := make([]*Node, 0, len(parsed))
	for _, n := range parsed {
		if node := convertHTMLNode(n, doc); node != nil {
			result = append(result, node)
		}
	}
	return result, nil
}

// convertHTMLNode converts an html.Node subtree to a dom.Node subtree.
// Doctype and error nodes are dropped; the widget layer never observes
// them.
func convertHTMLNode(n *html.Node, doc *Document) *Node {
	var node *Node

	switch n.Type {
	case html.TextNode:
		node = doc.CreateTextNode(n.Data)
	case html.CommentNode:
		node = doc.CreateComment(n.Data)
	case html.ElementNode:
		el := doc.CreateElement(n.Data)
		for _, attr := range n.Attr {
			// Quiet set: the node is not observable until attached.
			el.Attributes().setValueQuiet(strings.ToLower(attr.Key), attr.Val)
		}
		node = el.AsNode()
	default:
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convertHTMLNode(c, doc); child != nil {
			node.AppendChild(child)
		}
	}
	return node
}
