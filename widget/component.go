package widget

import (
	"fmt"
	"log/slog"

	"github.com/mgildea/rivet/dom"
)

// Lifecycle is the contract every widget implements. Construction resolves
// the root element, then Init wires child references and per-widget
// listeners, then Connected attaches document-level listeners. Destroy
// calls Disconnected, which must release every document-level listener.
type Lifecycle interface {
	Init() error
	Connected()
	Disconnected()
}

// Detail is the payload carried by every widget event: the data identifier
// of the toggle or trigger whose state is changing.
type Detail struct {
	ID string `json:"id"`
}

// Component is the base every widget builds on. It owns the borrowed
// references to the document and the widget's root element and provides
// the single integration point between widget internals and host code:
// DispatchCustomEvent.
type Component struct {
	doc     *dom.Document
	element *dom.Element
	prefix  string
	logger  *slog.Logger
}

func newComponent(doc *dom.Document, cfg config) Component {
	return Component{
		doc:    doc,
		prefix: cfg.settings.Prefix,
		logger: cfg.logger,
	}
}

// Document returns the document the widget lives in.
func (c *Component) Document() *dom.Document {
	return c.doc
}

// Element returns the widget's root element, or nil for an unmounted
// (deferred) widget.
func (c *Component) Element() *dom.Element {
	return c.element
}

// Mounted reports whether the widget has been attached to a root element.
func (c *Component) Mounted() bool {
	return c.element != nil
}

// DispatchCustomEvent dispatches a bubbling, cancelable custom event named
// "<prefix>:<name>" on element, carrying detail. It returns false if any
// listener canceled the event, true otherwise. This is the only way a
// widget signals a pending state change, and canceling it is the only way
// host code vetoes one.
func (c *Component) DispatchCustomEvent(name string, element *dom.Element, detail any) bool {
	if element == nil {
		return false
	}
	event := dom.NewCustomEvent(c.prefix+":"+name, dom.CustomEventInit{
		Bubbles:    true,
		Cancelable: true,
		Detail:     detail,
	})
	return element.AsNode().DispatchEvent(event)
}

// resolveRoot resolves a construction selector to the widget's root
// element. An empty selector is the deferred mode: the widget stays
// unmounted until Mount is called with an element, which is how the
// registry stamps out instances for elements inserted later.
func resolveRoot(doc *dom.Document, selector string) (*dom.Element, error) {
	if selector == "" {
		return nil, nil
	}
	el := doc.QuerySelector(selector)
	if el == nil {
		return nil, fmt.Errorf("no element matches selector %q", selector)
	}
	return el, nil
}

// mountLifecycle runs the Init → Connected half of the lifecycle.
func mountLifecycle(l Lifecycle) error {
	if err := l.Init(); err != nil {
		return err
	}
	l.Connected()
	return nil
}

// eventElement resolves the element an event originated on. Events that
// target text nodes resolve to the enclosing element.
func eventElement(event *dom.Event) *dom.Element {
	target := event.Target()
	if target == nil {
		return nil
	}
	if target.NodeType() == dom.ElementNode {
		return (*dom.Element)(target)
	}
	return target.ParentElement()
}
