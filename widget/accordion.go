package widget

import (
	"fmt"

	"github.com/mgildea/rivet/dom"
)

// Accordion is a stack of trigger/panel pairs. Panels open and close
// independently; opening one never closes another. Arrow, Home and End
// keys move focus between triggers without changing any panel's state.
type Accordion struct {
	Component

	attrs AccordionAttrs

	triggers []*dom.Element
	panels   []*dom.Element

	clickID dom.ListenerID
	keyID   dom.ListenerID
}

// NewAccordion creates an accordion for the first element matching
// selector. An empty selector defers mounting until Mount is called.
func NewAccordion(doc *dom.Document, selector string, opts ...Option) (*Accordion, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	a := &Accordion{
		Component: newComponent(doc, cfg),
		attrs:     cfg.settings.Accordion,
	}
	root, err := resolveRoot(doc, selector)
	if err != nil {
		return nil, err
	}
	if root != nil {
		if err := a.Mount(root); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Mount attaches the accordion to a root element and runs its lifecycle.
func (a *Accordion) Mount(root *dom.Element) error {
	a.element = root
	return mountLifecycle(a)
}

// Init collects the triggers and panels inside the root and establishes
// the initial state. Exactly one panel may carry the init marker; with
// none, every panel starts closed; the open-all attribute on the root
// overrides the markers and opens everything. Initial state is applied
// directly, without events, since nothing is transitioning yet.
func (a *Accordion) Init() error {
	if a.element == nil {
		return fmt.Errorf("widget is not mounted")
	}

	a.triggers = a.element.QuerySelectorAll("[" + a.attrs.Trigger + "]")
	a.panels = a.element.QuerySelectorAll("[" + a.attrs.Panel + "]")
	if len(a.triggers) < 2 {
		a.logger.Warn("accordion has fewer than two triggers",
			"count", len(a.triggers))
	}

	openAll := a.element.HasAttribute(a.attrs.OpenAll)
	initSeen := false
	for _, panel := range a.panels {
		open := openAll
		if !open && panel.HasAttribute(a.attrs.PanelInit) {
			if initSeen {
				a.logger.Warn("multiple panels marked initially open, keeping the first",
					"attribute", a.attrs.PanelInit)
			} else {
				initSeen = true
				open = true
			}
		}
		if open {
			a.showPanel(panel)
		} else {
			a.hidePanel(panel)
		}
	}
	return nil
}

// Connected attaches the root-level listeners. Accordion interaction is
// always inside the root, so delegation stops there rather than at the
// document.
func (a *Accordion) Connected() {
	root := a.element.AsNode()
	a.clickID = root.AddEventListener("click", a.handleClick)
	a.keyID = root.AddEventListener("keydown", a.handleKeydown)
}

// Disconnected removes the root-level listeners.
func (a *Accordion) Disconnected() {
	root := a.element.AsNode()
	root.RemoveEventListener("click", a.clickID)
	root.RemoveEventListener("keydown", a.keyID)
}

// Destroy detaches the listeners, leaving the markup as is.
func (a *Accordion) Destroy() {
	if a.element != nil {
		a.Disconnected()
	}
}

// Open opens a panel. A disabled trigger suppresses the transition, an
// already-open panel is a no-op, and any listener may cancel the
// announcing event before the attributes change.
func (a *Accordion) Open(panel *dom.Element) {
	if panel == nil || !panel.HasAttribute("hidden") {
		return
	}
	trigger := a.triggerFor(panel)
	if trigger == nil || trigger.HasAttribute("disabled") {
		return
	}
	detail := Detail{ID: trigger.GetAttribute(a.attrs.Trigger)}
	if !a.DispatchCustomEvent("accordionOpened", trigger, detail) {
		return
	}
	a.showPanel(panel)
}

// Close closes a panel. Closing a hidden panel is a no-op and emits
// nothing.
func (a *Accordion) Close(panel *dom.Element) {
	if panel == nil || panel.HasAttribute("hidden") {
		return
	}
	trigger := a.triggerFor(panel)
	if trigger == nil {
		return
	}
	detail := Detail{ID: trigger.GetAttribute(a.attrs.Trigger)}
	if !a.DispatchCustomEvent("accordionClosed", trigger, detail) {
		return
	}
	a.hidePanel(panel)
}

// Toggle flips a panel between open and closed.
func (a *Accordion) Toggle(panel *dom.Element) {
	if panel == nil {
		return
	}
	if panel.HasAttribute("hidden") {
		a.Open(panel)
	} else {
		a.Close(panel)
	}
}

// IsOpen reports whether a panel is currently open.
func (a *Accordion) IsOpen(panel *dom.Element) bool {
	return panel != nil && !panel.HasAttribute("hidden")
}

// Panels returns the accordion's panels in document order.
func (a *Accordion) Panels() []*dom.Element {
	return a.panels
}

// Triggers returns the accordion's triggers in document order.
func (a *Accordion) Triggers() []*dom.Element {
	return a.triggers
}

func (a *Accordion) triggerFor(panel *dom.Element) *dom.Element {
	id := panel.GetAttribute(a.attrs.Panel)
	for _, trigger := range a.triggers {
		if trigger.GetAttribute(a.attrs.Trigger) == id {
			return trigger
		}
	}
	return nil
}

func (a *Accordion) panelFor(trigger *dom.Element) *dom.Element {
	id := trigger.GetAttribute(a.attrs.Trigger)
	for _, panel := range a.panels {
		if panel.GetAttribute(a.attrs.Panel) == id {
			return panel
		}
	}
	return nil
}

func (a *Accordion) showPanel(panel *dom.Element) {
	panel.RemoveAttribute("hidden")
	if trigger := a.triggerFor(panel); trigger != nil {
		trigger.SetAttribute("aria-expanded", "true")
	}
}

func (a *Accordion) hidePanel(panel *dom.Element) {
	panel.SetAttribute("hidden", "")
	if trigger := a.triggerFor(panel); trigger != nil {
		trigger.SetAttribute("aria-expanded", "false")
	}
}

func (a *Accordion) handleClick(event *dom.Event) {
	origin := eventElement(event)
	if origin == nil {
		return
	}
	trigger := a.closestTrigger(origin)
	if trigger == nil {
		return
	}
	if panel := a.panelFor(trigger); panel != nil {
		a.Toggle(panel)
	}
}

// handleKeydown moves focus between triggers. Up and Down wrap around;
// Home and End jump to the first and last trigger. Focus movement never
// opens or closes a panel.
func (a *Accordion) handleKeydown(event *dom.Event) {
	origin := eventElement(event)
	if origin == nil || len(a.triggers) == 0 {
		return
	}
	trigger := a.closestTrigger(origin)
	if trigger == nil {
		return
	}
	i := indexOfElement(a.triggers, trigger)
	if i < 0 {
		return
	}
	switch event.Key {
	case KeyArrowDown:
		event.PreventDefault()
		a.triggers[(i+1)%len(a.triggers)].Focus()
	case KeyArrowUp:
		event.PreventDefault()
		a.triggers[(i-1+len(a.triggers))%len(a.triggers)].Focus()
	case KeyHome:
		event.PreventDefault()
		a.triggers[0].Focus()
	case KeyEnd:
		event.PreventDefault()
		a.triggers[len(a.triggers)-1].Focus()
	}
}

func (a *Accordion) closestTrigger(origin *dom.Element) *dom.Element {
	return origin.Closest("[" + a.attrs.Trigger + "]")
}
