package dom

import "strings"

// Document represents the root of a DOM tree. Document is a typed view
// over Node.
type Document Node

// NewDocument creates a new, empty document.
func NewDocument() *Document {
	n := newNode(DocumentNode, "#document", nil)
	n.documentData = &documentData{}
	doc := (*Document)(n)
	n.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// DocumentElement returns the root element of the document (the <html>
// element for parsed pages), or nil for an empty document.
func (d *Document) DocumentElement() *Element {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// Body returns the document's <body> element, or nil.
func (d *Document) Body() *Element {
	root := d.DocumentElement()
	if root == nil {
		return nil
	}
	for child := root.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode && (*Element)(child).LocalName() == "body" {
			return (*Element)(child)
		}
	}
	return nil
}

// CreateElement creates a new element with the given tag name, owned by
// this document but not yet attached to it.
func (d *Document) CreateElement(tagName string) *Element {
	localName := strings.ToLower(tagName)
	n := newNode(ElementNode, strings.ToUpper(tagName), d)
	n.elementData = &elementData{
		localName: localName,
		tagName:   strings.ToUpper(tagName),
	}
	return (*Element)(n)
}

// CreateTextNode creates a new text node owned by this document.
func (d *Document) CreateTextNode(data string) *Node {
	n := newNode(TextNode, "#text", d)
	n.nodeValue = &data
	return n
}

// CreateComment creates a new comment node owned by this document.
func (d *Document) CreateComment(data string) *Node {
	n := newNode(CommentNode, "#comment", d)
	n.nodeValue = &data
	return n
}

// CreateDocumentFragment creates a new empty document fragment.
func (d *Document) CreateDocumentFragment() *Node {
	return newNode(DocumentFragmentNode, "#document-fragment", d)
}

// GetElementById returns the first element in document order with the
// given id, or nil.
func (d *Document) GetElementById(id string) *Element {
	if id == "" {
		return nil
	}
	return d.findElementById(d.AsNode(), id)
}

func (d *Document) findElementById(node *Node, id string) *Element {
	for child := node.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			el := (*Element)(child)
			if el.Id() == id {
				return el
			}
		}
		if found := d.findElementById(child, id); found != nil {
			return found
		}
	}
	return nil
}

// QuerySelector returns the first element in the document matching the
// selector, or nil.
func (d *Document) QuerySelector(selector string) *Element {
	results := querySelectorAll(d.AsNode(), selector, true)
	if len(results) > 0 {
		return results[0]
	}
	return nil
}

// QuerySelectorAll returns all elements in the document matching the
// selector, in document order.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	return querySelectorAll(d.AsNode(), selector, false)
}

// ActiveElement returns the element holding focus, or nil when nothing is
// focused.
func (d *Document) ActiveElement() *Element {
	if d.AsNode().documentData == nil {
		return nil
	}
	return d.AsNode().documentData.activeElement
}

// HTML returns the serialized HTML of the whole document.
func (d *Document) HTML() string {
	var sb strings.Builder
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		serializeNode(child, &sb)
	}
	return sb.String()
}
