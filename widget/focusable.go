package widget

import "github.com/mgildea/rivet/dom"

// FocusableSelector matches the elements keyboard navigation may land on:
// links and areas with an href, enabled form controls, and anything opted
// in with an explicit zero tabindex.
const FocusableSelector = `a[href], area[href], input:not([disabled]), select:not([disabled]), textarea:not([disabled]), button:not([disabled]), [tabindex="0"]`

// focusableWithin returns the focusable elements inside container in
// document order. The list is evaluated fresh on every call because menu
// contents may change between keystrokes.
func focusableWithin(container *dom.Element) []*dom.Element {
	if container == nil {
		return nil
	}
	return container.QuerySelectorAll(FocusableSelector)
}

// indexOfElement returns the position of el in items, or -1.
func indexOfElement(items []*dom.Element, el *dom.Element) int {
	for i, item := range items {
		if item == el {
			return i
		}
	}
	return -1
}
