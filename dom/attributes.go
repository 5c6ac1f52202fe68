package dom

// Attr represents a single attribute of an Element.
type Attr struct {
	ownerElement *Element
	name         string
	value        string
}

// Name returns the attribute name.
func (a *Attr) Name() string {
	return a.name
}

// Value returns the attribute value.
func (a *Attr) Value() string {
	return a.value
}

// OwnerElement returns the element that owns this attribute.
func (a *Attr) OwnerElement() *Element {
	return a.ownerElement
}

// AttributeList is an ordered collection of an element's attributes.
// Order follows first-set order, which matches source order for parsed
// markup; setting an existing attribute updates it in place.
type AttributeList struct {
	owner *Element
	items []*Attr
}

func newAttributeList(owner *Element) *AttributeList {
	return &AttributeList{owner: owner}
}

// Length returns the number of attributes.
func (l *AttributeList) Length() int {
	return len(l.items)
}

// Item returns the attribute at the given index, or nil if out of range.
func (l *AttributeList) Item(index int) *Attr {
	if index < 0 || index >= len(l.items) {
		return nil
	}
	return l.items[index]
}

// Get returns the attribute with the given name, or nil.
func (l *AttributeList) Get(name string) *Attr {
	for _, attr := range l.items {
		if attr.name == name {
			return attr
		}
	}
	return nil
}

// GetValue returns the value of the named attribute, or "" if absent.
func (l *AttributeList) GetValue(name string) string {
	if attr := l.Get(name); attr != nil {
		return attr.value
	}
	return ""
}

// Has returns true if the named attribute is present.
func (l *AttributeList) Has(name string) bool {
	return l.Get(name) != nil
}

// SetValue sets the named attribute, creating it if absent, and notifies
// the owner document's mutation callbacks.
func (l *AttributeList) SetValue(name, value string) {
	old, existed := l.set(name, value)
	if !existed || old != value {
		notifyAttributeMutation(l.ownerNode(), name, old)
	}
}

// setValueQuiet sets the named attribute without a mutation notification.
// Used while building nodes that are not yet observable (cloning, parsing).
func (l *AttributeList) setValueQuiet(name, value string) {
	l.set(name, value)
}

func (l *AttributeList) set(name, value string) (old string, existed bool) {
	if attr := l.Get(name); attr != nil {
		old = attr.value
		attr.value = value
		return old, true
	}
	l.items = append(l.items, &Attr{ownerElement: l.owner, name: name, value: value})
	return "", false
}

// Remove removes the named attribute. It returns the removed attribute, or
// nil if it was not present.
func (l *AttributeList) Remove(name string) *Attr {
	for i, attr := range l.items {
		if attr.name == name {
			l.items = append(l.items[:i], l.items[i+1:]...)
			attr.ownerElement = nil
			notifyAttributeMutation(l.ownerNode(), name, attr.value)
			return attr
		}
	}
	return nil
}

func (l *AttributeList) ownerNode() *Node {
	if l.owner == nil {
		return nil
	}
	return l.owner.AsNode()
}
