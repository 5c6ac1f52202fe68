package widget

import (
	"fmt"

	"github.com/mgildea/rivet/dom"
)

// toggleAttrs names the three attributes a toggle-style widget is wired
// with: the root marker, the toggle attribute (whose value is the shared
// identifier), and the target attribute carrying the matching value.
type toggleAttrs struct {
	root   string
	toggle string
	target string
}

// keyNavigator is the hook a toggle-style widget uses to add keyboard
// behavior beyond Escape. Disclosures have none; dropdowns navigate their
// menu with it.
type keyNavigator interface {
	handleKey(event *dom.Event, origin *dom.Element)
}

// toggleMachine is the open/closed state machine shared by Disclosure and
// Dropdown. It resolves the toggle/target pair at Init, keeps
// aria-expanded and hidden in sync, and routes delegated document-level
// click and keydown events to state transitions. The two widget types
// differ only in attribute vocabulary, event names, and keyboard
// navigation.
type toggleMachine struct {
	Component

	attrs      toggleAttrs
	openEvent  string
	closeEvent string
	nav        keyNavigator

	toggle *dom.Element
	target *dom.Element

	// activeToggle/activeTarget are the pair a dispatched open event was
	// accepted for. Close only mutates the recorded pair, so an open that
	// was never accepted cannot be "closed" into emitting a spurious event.
	activeToggle *dom.Element
	activeTarget *dom.Element

	isOpen bool

	handler *docHandler
}

// Init resolves the toggle and target within the root element and
// normalizes their initial state. A target that starts without the hidden
// attribute means the widget initializes open; aria-expanded is rewritten
// either way so markup and state agree from the first frame.
func (m *toggleMachine) Init() error {
	if m.element == nil {
		return fmt.Errorf("widget is not mounted")
	}

	m.toggle = m.element.QuerySelector("[" + m.attrs.toggle + "]")
	if m.toggle == nil {
		return fmt.Errorf("no toggle element with %s found", m.attrs.toggle)
	}

	id := m.toggle.GetAttribute(m.attrs.toggle)
	m.target = m.findTarget(id)
	if m.target == nil {
		// Inert, not broken: clicks on the toggle will do nothing.
		m.logger.Warn("toggle has no matching target, widget is inert",
			"attribute", m.attrs.target, "value", id)
	}

	m.isOpen = m.target != nil && !m.target.HasAttribute("hidden")
	if m.isOpen {
		m.toggle.SetAttribute("aria-expanded", "true")
		m.activeToggle = m.toggle
		m.activeTarget = m.target
	} else {
		m.toggle.SetAttribute("aria-expanded", "false")
		if m.target != nil {
			m.target.SetAttribute("hidden", "")
		}
	}

	// Decorative icons inside the toggle must not join the tab order.
	for _, svg := range m.toggle.QuerySelectorAll("svg") {
		svg.SetAttribute("focusable", "false")
	}
	return nil
}

func (m *toggleMachine) findTarget(id string) *dom.Element {
	for _, el := range m.element.QuerySelectorAll("[" + m.attrs.target + "]") {
		if el.GetAttribute(m.attrs.target) == id {
			return el
		}
	}
	return nil
}

// Connected registers with the document's shared dispatcher. One pair of
// document listeners serves every instance; outside-click dismissal still
// works because every instance sees every click.
func (m *toggleMachine) Connected() {
	m.handler = &docHandler{click: m.handleClick, keydown: m.handleKeydown}
	registerDocHandler(m.doc, m.handler)
}

// Disconnected deregisters from the shared dispatcher.
func (m *toggleMachine) Disconnected() {
	if m.handler != nil {
		unregisterDocHandler(m.doc, m.handler)
		m.handler = nil
	}
}

// handleClick implements the dismissal contract: a click on the widget's
// own toggle flips state, a click inside an open target is left alone so
// interactive content keeps working, and any other click closes an open
// widget.
func (m *toggleMachine) handleClick(event *dom.Event) {
	origin := eventElement(event)
	if origin == nil {
		return
	}
	if m.isOpen && m.target != nil && (origin == m.target || m.target.ContainsElement(origin)) {
		return
	}
	if m.toggle != nil && (origin == m.toggle || m.toggle.ContainsElement(origin)) {
		m.Toggle()
		return
	}
	if m.isOpen {
		m.Close()
	}
}

// handleKeydown scopes key handling to events originating inside this
// widget instance, so several widgets sharing a document never fight over
// a keystroke.
func (m *toggleMachine) handleKeydown(event *dom.Event) {
	origin := eventElement(event)
	if origin == nil {
		return
	}
	root := origin.Closest("[" + m.attrs.root + "]")
	if root != m.element {
		return
	}
	if event.Key == KeyEscape {
		if m.isOpen {
			m.Close()
			if m.toggle != nil {
				m.toggle.Focus()
			}
		}
		return
	}
	if m.nav != nil {
		m.nav.handleKey(event, origin)
	}
}

// Open transitions to the open state. The transition is announced first
// and applied only if no listener cancels the event; a disabled toggle or
// a missing target suppresses the transition entirely, event included.
func (m *toggleMachine) Open() {
	if m.isOpen || m.toggle == nil || m.target == nil {
		return
	}
	if m.toggle.HasAttribute("disabled") {
		return
	}
	detail := Detail{ID: m.toggle.GetAttribute(m.attrs.toggle)}
	if !m.DispatchCustomEvent(m.openEvent, m.toggle, detail) {
		return
	}
	m.toggle.SetAttribute("aria-expanded", "true")
	m.target.RemoveAttribute("hidden")
	m.activeToggle = m.toggle
	m.activeTarget = m.target
	m.isOpen = true
}

// Close transitions to the closed state. Closing an already-closed widget
// is a no-op and emits nothing.
func (m *toggleMachine) Close() {
	if !m.isOpen || m.activeToggle == nil {
		return
	}
	detail := Detail{ID: m.activeToggle.GetAttribute(m.attrs.toggle)}
	if !m.DispatchCustomEvent(m.closeEvent, m.activeToggle, detail) {
		return
	}
	m.activeToggle.SetAttribute("aria-expanded", "false")
	if m.activeTarget != nil {
		m.activeTarget.SetAttribute("hidden", "")
	}
	m.activeToggle = nil
	m.activeTarget = nil
	m.isOpen = false
}

// Toggle flips between open and closed.
func (m *toggleMachine) Toggle() {
	if m.isOpen {
		m.Close()
	} else {
		m.Open()
	}
}

// IsOpen reports the current state.
func (m *toggleMachine) IsOpen() bool {
	return m.isOpen
}
