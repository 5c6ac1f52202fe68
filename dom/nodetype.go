// Package dom implements the small headless DOM the widget toolkit runs on:
// a node tree with ordered attributes, selector matching, synchronous event
// dispatch with capture and bubble phases, a document focus model, and HTML
// parsing/serialization backed by golang.org/x/net/html.
//
// Only the surface an attribute-level widget can observe is implemented.
// There are no namespaces, ranges, selections or layout boxes here.
package dom

// NodeType identifies the kind of a Node, using the numbering from the DOM
// specification for the types this package supports.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// CommentNode represents a Comment node.
	CommentNode NodeType = 8
	// DocumentNode represents a Document node.
	DocumentNode NodeType = 9
	// DocumentFragmentNode represents a DocumentFragment node.
	DocumentFragmentNode NodeType = 11
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case TextNode:
		return "TEXT_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case DocumentFragmentNode:
		return "DOCUMENT_FRAGMENT_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}
