package dom

import "strings"

// Node is a node in the DOM tree. Element, Document and DocumentFragment are
// typed views over the same struct; type-specific data hangs off the fields
// below and only one of them is non-nil for a given node.
type Node struct {
	nodeType  NodeType
	nodeName  string
	nodeValue *string // nil for Element, Document, DocumentFragment
	ownerDoc  *Document

	parentNode  *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	elementData  *elementData
	documentData *documentData

	// events is created lazily by AddEventListener / DispatchEvent.
	events *EventTarget
}

// elementData holds data specific to Element nodes.
type elementData struct {
	localName  string
	tagName    string
	attributes *AttributeList
}

// documentData holds data specific to Document nodes.
type documentData struct {
	activeElement     *Element
	mutationCallbacks []MutationCallback
}

// newNode creates a new node with the given type and name.
func newNode(nodeType NodeType, nodeName string, ownerDoc *Document) *Node {
	return &Node{
		nodeType: nodeType,
		nodeName: nodeName,
		ownerDoc: ownerDoc,
	}
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// NodeName returns the name of the node: the uppercase tag name for
// elements, "#text" for text nodes, "#comment" for comments, "#document"
// for documents and "#document-fragment" for fragments.
func (n *Node) NodeName() string {
	return n.nodeName
}

// NodeValue returns the value of the node. For text and comment nodes this
// is the text content; for other nodes it is the empty string.
func (n *Node) NodeValue() string {
	if n.nodeValue != nil {
		return *n.nodeValue
	}
	return ""
}

// SetNodeValue sets the value of text and comment nodes. It is a no-op for
// other node types.
func (n *Node) SetNodeValue(value string) {
	switch n.nodeType {
	case TextNode, CommentNode:
		n.nodeValue = &value
	}
}

// OwnerDocument returns the Document that owns this node, or nil for
// Document nodes.
func (n *Node) OwnerDocument() *Document {
	if n.nodeType == DocumentNode {
		return nil
	}
	return n.ownerDoc
}

// ParentNode returns the parent of this node.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement returns the parent Element, or nil if the parent is not an
// element.
func (n *Node) ParentElement() *Element {
	if n.parentNode != nil && n.parentNode.nodeType == ElementNode {
		return (*Element)(n.parentNode)
	}
	return nil
}

// FirstChild returns the first child node, or nil if there are no children.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child node, or nil if there are no children.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling node, or nil.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling node, or nil.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// HasChildNodes returns true if this node has any child nodes.
func (n *Node) HasChildNodes() bool {
	return n.firstChild != nil
}

// IsConnected returns true if the root of the tree containing this node is
// a document.
func (n *Node) IsConnected() bool {
	return n.GetRootNode().nodeType == DocumentNode
}

// GetRootNode returns the root of the tree containing this node.
func (n *Node) GetRootNode() *Node {
	root := n
	for root.parentNode != nil {
		root = root.parentNode
	}
	return root
}

// Contains returns true if other is this node or a descendant of it.
func (n *Node) Contains(other *Node) bool {
	for node := other; node != nil; node = node.parentNode {
		if node == n {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of this node and its
// descendants. For text and comment nodes it returns the node value.
func (n *Node) TextContent() string {
	switch n.nodeType {
	case TextNode, CommentNode:
		return n.NodeValue()
	case DocumentNode:
		return ""
	default:
		var sb strings.Builder
		n.collectTextContent(&sb)
		return sb.String()
	}
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		switch child.nodeType {
		case TextNode:
			sb.WriteString(child.NodeValue())
		case ElementNode, DocumentFragmentNode:
			child.collectTextContent(sb)
		}
	}
}

// SetTextContent replaces all children of an element or fragment with a
// single text node. For text and comment nodes it sets the node value.
func (n *Node) SetTextContent(value string) {
	switch n.nodeType {
	case TextNode, CommentNode:
		n.SetNodeValue(value)
	case ElementNode, DocumentFragmentNode:
		for n.firstChild != nil {
			n.RemoveChild(n.firstChild)
		}
		if value != "" && n.ownerDoc != nil {
			n.AppendChild(n.ownerDoc.CreateTextNode(value))
		}
	}
}

// AppendChild adds a node to the end of this node's children.
// For the error-returning version, use AppendChildWithError.
func (n *Node) AppendChild(child *Node) *Node {
	result, _ := n.AppendChildWithError(child)
	return result
}

// AppendChildWithError adds a node to the end of this node's children.
// It returns an error if the insertion violates tree constraints.
func (n *Node) AppendChildWithError(child *Node) (*Node, error) {
	return n.InsertBeforeWithError(child, nil)
}

// InsertBefore inserts newChild before refChild, appending when refChild is
// nil. For the error-returning version, use InsertBeforeWithError.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	result, _ := n.InsertBeforeWithError(newChild, refChild)
	return result
}

// InsertBeforeWithError inserts newChild before refChild, appending when
// refChild is nil. It returns an error if the insertion violates tree
// constraints.
func (n *Node) InsertBeforeWithError(newChild, refChild *Node) (*Node, error) {
	if err := n.validatePreInsertion(newChild, refChild); err != nil {
		return nil, err
	}
	return n.insertBefore(newChild, refChild), nil
}

// validatePreInsertion checks the insertion invariants this tree enforces:
// the parent must accept children, the new child must not contain the
// parent, and the reference child must actually be a child of the parent.
func (n *Node) validatePreInsertion(node, child *Node) error {
	if !n.canHaveChildren() {
		return ErrHierarchyRequest("the operation would yield an incorrect node tree")
	}
	if node == nil {
		return ErrNotFound("the node to be inserted is nil")
	}
	if node.Contains(n) {
		return ErrHierarchyRequest("the new child contains the parent")
	}
	if node.nodeType == DocumentNode {
		return ErrHierarchyRequest("a document cannot be inserted as a child")
	}
	if child != nil && child.parentNode != n {
		return ErrNotFound("the reference node is not a child of this node")
	}
	return nil
}

// canHaveChildren returns true if this node can have child nodes.
func (n *Node) canHaveChildren() bool {
	switch n.nodeType {
	case DocumentNode, DocumentFragmentNode, ElementNode:
		return true
	default:
		return false
	}
}

func (n *Node) insertBefore(newChild, refChild *Node) *Node {
	// Inserting a node before itself is a no-op.
	if newChild == refChild {
		return newChild
	}

	// Fragments donate their children and end up empty.
	if newChild.nodeType == DocumentFragmentNode {
		var children []*Node
		for child := newChild.firstChild; child != nil; child = child.nextSibling {
			children = append(children, child)
		}
		for _, child := range children {
			n.insertBefore(child, refChild)
		}
		return newChild
	}

	if newChild.parentNode != nil {
		newChild.parentNode.RemoveChild(newChild)
	}

	newChild.parentNode = n
	if n.ownerDoc != nil && newChild.ownerDoc != n.ownerDoc {
		adoptNode(newChild, n.ownerDoc)
	} else if n.nodeType == DocumentNode {
		adoptNode(newChild, (*Document)(n))
	}

	if refChild == nil {
		newChild.prevSibling = n.lastChild
		newChild.nextSibling = nil
		if n.lastChild != nil {
			n.lastChild.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		n.lastChild = newChild
	} else {
		newChild.prevSibling = refChild.prevSibling
		newChild.nextSibling = refChild
		if refChild.prevSibling != nil {
			refChild.prevSibling.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		refChild.prevSibling = newChild
	}

	notifyChildListMutation(n, []*Node{newChild}, nil)
	return newChild
}

// adoptNode recursively sets the owner document for a node and its
// descendants.
func adoptNode(node *Node, doc *Document) {
	node.ownerDoc = doc
	for child := node.firstChild; child != nil; child = child.nextSibling {
		adoptNode(child, doc)
	}
}

// RemoveChild removes a child node from this node.
// For the error-returning version, use RemoveChildWithError.
func (n *Node) RemoveChild(child *Node) *Node {
	result, _ := n.RemoveChildWithError(child)
	return result
}

// RemoveChildWithError removes a child node from this node. It returns an
// error if child is not a child of this node.
func (n *Node) RemoveChildWithError(child *Node) (*Node, error) {
	if child == nil {
		return nil, ErrNotFound("the node to be removed is nil")
	}
	if child.parentNode != n {
		return nil, ErrNotFound("the node to be removed is not a child of this node")
	}

	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		n.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		n.lastChild = child.prevSibling
	}
	child.parentNode = nil
	child.prevSibling = nil
	child.nextSibling = nil

	notifyChildListMutation(n, nil, []*Node{child})
	return child, nil
}

// CloneNode creates a copy of this node. If deep is true, all descendants
// are cloned as well. Event listeners are never copied.
func (n *Node) CloneNode(deep bool) *Node {
	clone := n.shallowClone()
	if deep {
		for child := n.firstChild; child != nil; child = child.nextSibling {
			clone.AppendChild(child.CloneNode(true))
		}
	}
	return clone
}

func (n *Node) shallowClone() *Node {
	clone := newNode(n.nodeType, n.nodeName, n.ownerDoc)

	if n.nodeValue != nil {
		value := *n.nodeValue
		clone.nodeValue = &value
	}

	switch n.nodeType {
	case ElementNode:
		if n.elementData != nil {
			clone.elementData = &elementData{
				localName: n.elementData.localName,
				tagName:   n.elementData.tagName,
			}
			el := (*Element)(clone)
			if n.elementData.attributes != nil {
				for _, attr := range n.elementData.attributes.items {
					el.Attributes().setValueQuiet(attr.name, attr.value)
				}
			}
		}
	case DocumentNode:
		clone.documentData = &documentData{}
		clone.ownerDoc = (*Document)(clone)
	}

	return clone
}
