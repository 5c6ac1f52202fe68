package dom

import "strings"

// Element represents an element in the DOM tree. Element is a typed view
// over Node providing element-specific properties and methods.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode (1).
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// TagName returns the tag name in uppercase.
func (e *Element) TagName() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.tagName
	}
	return strings.ToUpper(e.AsNode().nodeName)
}

// LocalName returns the lowercase tag name.
func (e *Element) LocalName() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.localName
	}
	return strings.ToLower(e.AsNode().nodeName)
}

// Id returns the id attribute value.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the id attribute value.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// Attributes returns the element's ordered attribute list.
func (e *Element) Attributes() *AttributeList {
	if e.AsNode().elementData == nil {
		e.AsNode().elementData = &elementData{}
	}
	if e.AsNode().elementData.attributes == nil {
		e.AsNode().elementData.attributes = newAttributeList(e)
	}
	return e.AsNode().elementData.attributes
}

// GetAttribute returns the value of the named attribute, or "" if absent.
// Attribute names are ASCII case-insensitive, matching HTML.
func (e *Element) GetAttribute(name string) string {
	return e.Attributes().GetValue(strings.ToLower(name))
}

// SetAttribute sets the value of the named attribute.
func (e *Element) SetAttribute(name, value string) {
	e.Attributes().SetValue(strings.ToLower(name), value)
}

// HasAttribute returns true if the element has the named attribute.
func (e *Element) HasAttribute(name string) bool {
	return e.Attributes().Has(strings.ToLower(name))
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	e.Attributes().Remove(strings.ToLower(name))
}

// ToggleAttribute toggles the presence of a boolean attribute. If force is
// provided it forces add (true) or remove (false). It returns true if the
// attribute is present after the operation.
func (e *Element) ToggleAttribute(name string, force ...bool) bool {
	name = strings.ToLower(name)
	has := e.Attributes().Has(name)

	if len(force) > 0 {
		if force[0] {
			if !has {
				e.Attributes().SetValue(name, "")
			}
			return true
		}
		if has {
			e.Attributes().Remove(name)
		}
		return false
	}

	if has {
		e.Attributes().Remove(name)
		return false
	}
	e.Attributes().SetValue(name, "")
	return true
}

// ParentElement returns the parent element, or nil.
func (e *Element) ParentElement() *Element {
	return e.AsNode().ParentElement()
}

// FirstElementChild returns the first child element, or nil.
func (e *Element) FirstElementChild() *Element {
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// LastElementChild returns the last child element, or nil.
func (e *Element) LastElementChild() *Element {
	for child := e.AsNode().lastChild; child != nil; child = child.prevSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// PreviousElementSibling returns the previous sibling element, or nil.
func (e *Element) PreviousElementSibling() *Element {
	for s := e.AsNode().prevSibling; s != nil; s = s.prevSibling {
		if s.nodeType == ElementNode {
			return (*Element)(s)
		}
	}
	return nil
}

// NextElementSibling returns the next sibling element, or nil.
func (e *Element) NextElementSibling() *Element {
	for s := e.AsNode().nextSibling; s != nil; s = s.nextSibling {
		if s.nodeType == ElementNode {
			return (*Element)(s)
		}
	}
	return nil
}

// ContainsElement returns true if other is this element or a descendant.
func (e *Element) ContainsElement(other *Element) bool {
	if other == nil {
		return false
	}
	return e.AsNode().Contains(other.AsNode())
}

// Matches returns true if the element matches the given selector. Invalid
// selectors match nothing.
func (e *Element) Matches(selector string) bool {
	list, err := parseSelectorList(selector)
	if err != nil {
		return false
	}
	return list.matches(e)
}

// Closest returns the closest inclusive ancestor element matching the
// selector, or nil.
func (e *Element) Closest(selector string) *Element {
	list, err := parseSelectorList(selector)
	if err != nil {
		return nil
	}
	for current := e; current != nil; current = current.ParentElement() {
		if list.matches(current) {
			return current
		}
	}
	return nil
}

// QuerySelector returns the first descendant element matching the selector,
// in document order, or nil.
func (e *Element) QuerySelector(selector string) *Element {
	results := querySelectorAll(e.AsNode(), selector, true)
	if len(results) > 0 {
		return results[0]
	}
	return nil
}

// QuerySelectorAll returns all descendant elements matching the selector,
// in document order. The result is a snapshot, not a live collection.
func (e *Element) QuerySelectorAll(selector string) []*Element {
	return querySelectorAll(e.AsNode(), selector, false)
}

func querySelectorAll(root *Node, selector string, firstOnly bool) []*Element {
	list, err := parseSelectorList(selector)
	if err != nil {
		return nil
	}
	var results []*Element
	var walk func(*Node) bool
	walk = func(n *Node) bool {
		for child := n.firstChild; child != nil; child = child.nextSibling {
			if child.nodeType == ElementNode {
				el := (*Element)(child)
				if list.matches(el) {
					results = append(results, el)
					if firstOnly {
						return true
					}
				}
			}
			if walk(child) {
				return true
			}
		}
		return false
	}
	walk(root)
	return results
}

// TextContent returns the text content of the element's subtree.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// SetTextContent replaces the element's children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.AsNode().SetTextContent(text)
}

// InnerHTML returns the serialized HTML of the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		serializeNode(child, &sb)
	}
	return sb.String()
}

// SetInnerHTML replaces the element's children with the parsed fragment.
func (e *Element) SetInnerHTML(markup string) error {
	for e.AsNode().firstChild != nil {
		e.AsNode().RemoveChild(e.AsNode().firstChild)
	}
	if markup == "" {
		return nil
	}
	nodes, err := ParseFragment(markup, e)
	if err != nil {
		return err
	}
	for _, node := range nodes {
		e.AsNode().AppendChild(node)
	}
	return nil
}

// OuterHTML returns the serialized HTML of the element including itself.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	serializeNode(e.AsNode(), &sb)
	return sb.String()
}

// Remove detaches this element from its parent.
func (e *Element) Remove() {
	if e.AsNode().parentNode != nil {
		e.AsNode().parentNode.RemoveChild(e.AsNode())
	}
}

// Focus makes this element the document's active element. Moving focus
// never dispatches events and never changes any attribute.
func (e *Element) Focus() {
	doc := e.AsNode().ownerDoc
	if doc == nil || doc.AsNode().documentData == nil {
		return
	}
	doc.AsNode().documentData.activeElement = e
}

// Blur clears focus if this element currently holds it.
func (e *Element) Blur() {
	doc := e.AsNode().ownerDoc
	if doc == nil || doc.AsNode().documentData == nil {
		return
	}
	if doc.AsNode().documentData.activeElement == e {
		doc.AsNode().documentData.activeElement = nil
	}
}

// Click dispatches a bubbling, cancelable "click" event on this element,
// the way user activation would.
func (e *Element) Click() bool {
	return e.AsNode().DispatchEvent(&Event{Type: "click", Bubbles: true, Cancelable: true})
}

// CloneNode clones this element.
func (e *Element) CloneNode(deep bool) *Element {
	return (*Element)(e.AsNode().CloneNode(deep))
}
