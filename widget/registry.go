package widget

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/mgildea/rivet/dom"
)

// destroyable is the slice of the widget lifecycle the registry needs to
// tear instances down.
type destroyable interface {
	Destroy()
}

// widgetKind describes one upgradeable widget type: the root attribute
// that marks it in markup and a factory producing a mounted instance.
type widgetKind struct {
	name     string
	rootAttr string
	mount    func(root *dom.Element) (destroyable, error)
}

// liveWidget is a mounted instance tracked by the registry.
type liveWidget struct {
	id     string
	kind   string
	widget destroyable
}

// Registry upgrades marked elements into live widgets and, while watching,
// keeps the set of instances in step with tree mutations: elements
// inserted with a root attribute are upgraded, and removed subtrees have
// their instances destroyed.
type Registry struct {
	doc    *dom.Document
	opts   []Option
	logger *slog.Logger
	kinds  []widgetKind

	live     map[*dom.Node]*liveWidget
	watching bool
}

// NewRegistry creates a registry for doc. The options are applied to the
// registry and forwarded to every widget it creates.
func NewRegistry(doc *dom.Document, opts ...Option) (*Registry, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	s := cfg.settings
	r := &Registry{
		doc:    doc,
		opts:   opts,
		logger: cfg.logger,
		live:   make(map[*dom.Node]*liveWidget),
	}
	r.kinds = []widgetKind{
		{name: "disclosure", rootAttr: s.Disclosure.Root, mount: func(root *dom.Element) (destroyable, error) {
			d, err := NewDisclosure(doc, "", opts...)
			if err != nil {
				return nil, err
			}
			if err := d.Mount(root); err != nil {
				return nil, err
			}
			return d, nil
		}},
		{name: "dropdown", rootAttr: s.Dropdown.Root, mount: func(root *dom.Element) (destroyable, error) {
			d, err := NewDropdown(doc, "", opts...)
			if err != nil {
				return nil, err
			}
			if err := d.Mount(root); err != nil {
				return nil, err
			}
			return d, nil
		}},
		{name: "accordion", rootAttr: s.Accordion.Root, mount: func(root *dom.Element) (destroyable, error) {
			a, err := NewAccordion(doc, "", opts...)
			if err != nil {
				return nil, err
			}
			if err := a.Mount(root); err != nil {
				return nil, err
			}
			return a, nil
		}},
	}
	return r, nil
}

// Upgrade scans the document and mounts a widget on every marked element
// that does not already have one. Mount failures are logged and skipped so
// one broken element never blocks the rest of the page.
func (r *Registry) Upgrade() {
	if root := r.doc.DocumentElement(); root != nil {
		r.upgradeSubtree(root)
	}
}

// Watch registers the registry for mutation notifications, upgrading
// inserted elements and destroying widgets in removed subtrees until Close
// is called.
func (r *Registry) Watch() {
	if r.watching {
		return
	}
	dom.RegisterMutationCallback(r.doc, r)
	r.watching = true
}

// Close stops watching and destroys every live widget.
func (r *Registry) Close() {
	if r.watching {
		dom.UnregisterMutationCallback(r.doc, r)
		r.watching = false
	}
	for node, lw := range r.live {
		lw.widget.Destroy()
		delete(r.live, node)
	}
}

// Len reports the number of live widget instances.
func (r *Registry) Len() int {
	return len(r.live)
}

// OnChildListMutation implements dom.MutationCallback. Added subtrees are
// scanned for upgradeable roots; removed subtrees have their instances
// destroyed.
func (r *Registry) OnChildListMutation(target *dom.Node, addedNodes, removedNodes []*dom.Node) {
	for _, added := range addedNodes {
		if added.NodeType() != dom.ElementNode {
			continue
		}
		r.upgradeSubtree((*dom.Element)(added))
	}
	for _, removed := range removedNodes {
		r.destroySubtree(removed)
	}
}

// OnAttributeMutation implements dom.MutationCallback. Attribute changes
// never change which elements are upgraded; wiring attributes are read
// once at mount.
func (r *Registry) OnAttributeMutation(target *dom.Node, attributeName, oldValue string) {}

func (r *Registry) upgradeSubtree(root *dom.Element) {
	for _, kind := range r.kinds {
		var candidates []*dom.Element
		if root.Matches("[" + kind.rootAttr + "]") {
			candidates = append(candidates, root)
		}
		candidates = append(candidates, root.QuerySelectorAll("["+kind.rootAttr+"]")...)
		for _, el := range candidates {
			r.upgradeElement(kind, el)
		}
	}
}

func (r *Registry) upgradeElement(kind widgetKind, el *dom.Element) {
	node := el.AsNode()
	if _, ok := r.live[node]; ok {
		return
	}
	w, err := kind.mount(el)
	if err != nil {
		r.logger.Warn("widget upgrade failed", "kind", kind.name, "error", err)
		return
	}
	lw := &liveWidget{
		id:     uuid.NewString(),
		kind:   kind.name,
		widget: w,
	}
	r.live[node] = lw
	r.logger.Debug("widget upgraded", "kind", lw.kind, "id", lw.id)
}

func (r *Registry) destroySubtree(removed *dom.Node) {
	for node, lw := range r.live {
		if node == removed || removed.Contains(node) {
			lw.widget.Destroy()
			delete(r.live, node)
		}
	}
}
