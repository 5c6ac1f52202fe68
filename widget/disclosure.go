package widget

import "github.com/mgildea/rivet/dom"

// Disclosure is a show/hide widget: one toggle button controlling one
// collapsible region. It has no keyboard navigation beyond Escape.
type Disclosure struct {
	toggleMachine
}

// NewDisclosure creates a disclosure for the first element matching
// selector. An empty selector defers mounting: the widget stays inert
// until Mount is called with a root element.
func NewDisclosure(doc *dom.Document, selector string, opts ...Option) (*Disclosure, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	d := &Disclosure{toggleMachine{
		Component:  newComponent(doc, cfg),
		openEvent:  "disclosureOpen",
		closeEvent: "disclosureClose",
		attrs: toggleAttrs{
			root:   cfg.settings.Disclosure.Root,
			toggle: cfg.settings.Disclosure.Toggle,
			target: cfg.settings.Disclosure.Target,
		},
	}}
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

// Mount attaches the disclosure to a root element and runs its lifecycle.
func (d *Disclosure) Mount(root *dom.Element) error {
	d.element = root
	return mountLifecycle(d)
}

// Destroy detaches the document-level listeners. The widget's markup is
// left in its current state.
func (d *Disclosure) Destroy() {
	if d.element != nil {
		d.Disconnected()
	}
}
