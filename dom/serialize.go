package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// serializeNode writes the HTML serialization of a node and its subtree.
func serializeNode(n *Node, sb *strings.Builder) {
	switch n.nodeType {
	case TextNode:
		sb.WriteString(html.EscapeString(n.NodeValue()))
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.NodeValue())
		sb.WriteString("-->")
	case ElementNode:
		el := (*Element)(n)
		tagName := el.LocalName()
		sb.WriteString("<")
		sb.WriteString(tagName)

		attrs := el.Attributes()
		for i := 0; i < attrs.Length(); i++ {
			attr := attrs.Item(i)
			sb.WriteString(" ")
			sb.WriteString(attr.name)
			sb.WriteString("=\"")
			sb.WriteString(html.EscapeString(attr.value))
			sb.WriteString("\"")
		}

		if isVoidElement(tagName) {
			sb.WriteString(">")
			return
		}
		sb.WriteString(">")

		for child := n.firstChild; child != nil; child = child.nextSibling {
			serializeNode(child, sb)
		}

		sb.WriteString("</")
		sb.WriteString(tagName)
		sb.WriteString(">")
	case DocumentFragmentNode:
		for child := n.firstChild; child != nil; child = child.nextSibling {
			serializeNode(child, sb)
		}
	}
}

// isVoidElement returns true for elements serialized without a closing tag.
func isVoidElement(tagName string) bool {
	switch tagName {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
