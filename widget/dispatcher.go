package widget

import (
	"sync"

	"github.com/mgildea/rivet/dom"
)

// docHandler is one widget instance's interest in document-level events.
type docHandler struct {
	click   dom.ListenerFunc
	keydown dom.ListenerFunc
}

// dispatcher owns the single pair of document-level click and keydown
// listeners for a document and fans events out to every registered widget
// in registration order. Without it, every instance would install its own
// document listeners.
type dispatcher struct {
	clickID  dom.ListenerID
	keyID    dom.ListenerID
	handlers []*docHandler
}

var (
	dispatchersMu sync.Mutex
	dispatchers   = make(map[*dom.Node]*dispatcher)
)

func registerDocHandler(doc *dom.Document, h *docHandler) {
	dispatchersMu.Lock()
	defer dispatchersMu.Unlock()

	key := doc.AsNode()
	d, ok := dispatchers[key]
	if !ok {
		d = &dispatcher{}
		d.clickID = key.AddEventListener("click", d.dispatchClick)
		d.keyID = key.AddEventListener("keydown", d.dispatchKeydown)
		dispatchers[key] = d
	}
	d.handlers = append(d.handlers, h)
}

func unregisterDocHandler(doc *dom.Document, h *docHandler) {
	dispatchersMu.Lock()
	defer dispatchersMu.Unlock()

	key := doc.AsNode()
	d, ok := dispatchers[key]
	if !ok {
		return
	}
	for i, handler := range d.handlers {
		if handler == h {
			d.handlers = append(d.handlers[:i], d.handlers[i+1:]...)
			break
		}
	}
	if len(d.handlers) == 0 {
		key.RemoveEventListener("click", d.clickID)
		key.RemoveEventListener("keydown", d.keyID)
		delete(dispatchers, key)
	}
}

// dispatchClick runs over a snapshot so a handler that unregisters during
// dispatch (a widget destroyed by another widget's handler) is safe.
func (d *dispatcher) dispatchClick(event *dom.Event) {
	for _, h := range d.snapshot() {
		h.click(event)
	}
}

func (d *dispatcher) dispatchKeydown(event *dom.Event) {
	for _, h := range d.snapshot() {
		h.keydown(event)
	}
}

func (d *dispatcher) snapshot() []*docHandler {
	dispatchersMu.Lock()
	defer dispatchersMu.Unlock()
	return append([]*docHandler(nil), d.handlers...)
}
