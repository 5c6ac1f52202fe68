package widget

import "github.com/mgildea/rivet/dom"

// Dropdown is a toggle button revealing a menu of focusable items. Beyond
// the disclosure behavior it adds arrow-key navigation with wraparound and
// closes when focus tabs past the last menu item.
type Dropdown struct {
	toggleMachine
}

// NewDropdown creates a dropdown for the first element matching selector.
// An empty selector defers mounting until Mount is called.
func NewDropdown(doc *dom.Document, selector string, opts ...Option) (*Dropdown, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	d := &Dropdown{toggleMachine{
		Component:  newComponent(doc, cfg),
		openEvent:  "dropdownOpen",
		closeEvent: "dropdownClose",
		attrs: toggleAttrs{
			root:   cfg.settings.Dropdown.Root,
			toggle: cfg.settings.Dropdown.Toggle,
			target: cfg.settings.Dropdown.Menu,
		},
	}}
	d.nav = (*menuNavigator)(d)
	root, err := resolveRoot(doc, selector)
	if err != nil {
		return nil, err
	}
	if root != nil {
		if err := d.Mount(root); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Mount attaches the dropdown to a root element and runs its lifecycle.
func (d *Dropdown) Mount(root *dom.Element) error {
	d.element = root
	return mountLifecycle(d)
}

// Destroy detaches the document-level listeners.
func (d *Dropdown) Destroy() {
	if d.element != nil {
		d.Disconnected()
	}
}

// menuNavigator implements the dropdown's menu keyboard behavior.
type menuNavigator Dropdown

func (n *menuNavigator) dropdown() *Dropdown { return (*Dropdown)(n) }

// handleKey implements the menu navigation contract:
//
//	ArrowDown on a closed dropdown opens it; on an open one it focuses the
//	first item, or the next item with wraparound when focus is already in
//	the menu. ArrowUp moves backwards with wraparound. Tab (without shift)
//	on the last focusable item closes the menu, letting focus proceed
//	naturally to the next element on the page.
func (n *menuNavigator) handleKey(event *dom.Event, origin *dom.Element) {
	d := n.dropdown()
	switch event.Key {
	case KeyArrowDown:
		event.PreventDefault()
		if !d.isOpen {
			d.Open()
			return
		}
		items := focusableWithin(d.target)
		if len(items) == 0 {
			return
		}
		i := indexOfElement(items, origin)
		if i < 0 {
			items[0].Focus()
			return
		}
		items[(i+1)%len(items)].Focus()
	case KeyArrowUp:
		if !d.isOpen {
			return
		}
		event.PreventDefault()
		items := focusableWithin(d.target)
		if len(items) == 0 {
			return
		}
		i := indexOfElement(items, origin)
		if i < 0 {
			items[len(items)-1].Focus()
			return
		}
		items[(i-1+len(items))%len(items)].Focus()
	case KeyTab:
		if !d.isOpen || event.ShiftKey {
			return
		}
		items := focusableWithin(d.target)
		if len(items) > 0 && origin == items[len(items)-1] {
			d.Close()
		}
	}
}
