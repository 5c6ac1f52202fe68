package dom

import "sync"

// EventPhase represents the phase of event dispatch.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// Event is an event dispatched through the tree. Events are dispatched
// synchronously: DispatchEvent runs every listener before returning.
type Event struct {
	// Type is the event name, e.g. "click", "keydown" or "rvt:dropdownOpen".
	Type string

	// Bubbles indicates whether the event travels up the ancestor chain
	// after the target phase.
	Bubbles bool

	// Cancelable indicates whether PreventDefault has any effect.
	Cancelable bool

	// Detail carries arbitrary payload for custom events.
	Detail any

	// Key and ShiftKey describe the key for "keydown" events, using the
	// UI Events key values ("Escape", "ArrowDown", "Home", "Tab", ...).
	Key      string
	ShiftKey bool

	target           *Node
	currentTarget    *Node
	phase            EventPhase
	defaultPrevented bool
	stopped          bool
	stoppedImmediate bool
}

// NewEvent creates an event of the given type that neither bubbles nor is
// cancelable.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType}
}

// CustomEventInit configures NewCustomEvent.
type CustomEventInit struct {
	Bubbles    bool
	Cancelable bool
	Detail     any
}

// NewCustomEvent creates an event carrying an arbitrary detail payload.
func NewCustomEvent(eventType string, init CustomEventInit) *Event {
	return &Event{
		Type:       eventType,
		Bubbles:    init.Bubbles,
		Cancelable: init.Cancelable,
		Detail:     init.Detail,
	}
}

// Target returns the node the event was dispatched on.
func (e *Event) Target() *Node {
	return e.target
}

// CurrentTarget returns the node whose listeners are currently running.
func (e *Event) CurrentTarget() *Node {
	return e.currentTarget
}

// Phase returns the current dispatch phase.
func (e *Event) Phase() EventPhase {
	return e.phase
}

// PreventDefault marks a cancelable event as canceled. The dispatcher
// reports this through DispatchEvent's return value; it does not interrupt
// remaining listeners.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented returns true if PreventDefault was called on a
// cancelable event.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation prevents the event from reaching any further nodes.
// Listeners already queued on the current node still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// StopImmediatePropagation prevents any further listener from running,
// including remaining listeners on the current node.
func (e *Event) StopImmediatePropagation() {
	e.stopped = true
	e.stoppedImmediate = true
}

// ListenerFunc is a callback invoked with the dispatched event.
type ListenerFunc func(*Event)

// ListenerID identifies a registered listener for removal. Functions are
// not comparable in Go, so registration hands back an ID instead.
type ListenerID uint64

// ListenerOptions configures listener registration.
type ListenerOptions struct {
	// Capture runs the listener during the capture phase instead of the
	// target/bubble phases.
	Capture bool
	// Once removes the listener after its first invocation.
	Once bool
}

type listenerEntry struct {
	id       ListenerID
	fn       ListenerFunc
	options  ListenerOptions
}

// EventTarget manages the listeners registered on a single node.
type EventTarget struct {
	mu        sync.Mutex
	listeners map[string][]listenerEntry
	nextID    ListenerID
}

func (n *Node) eventTarget() *EventTarget {
	if n.events == nil {
		n.events = &EventTarget{listeners: make(map[string][]listenerEntry)}
	}
	return n.events
}

// AddEventListener registers a listener for the given event type on this
// node and returns an ID usable with RemoveEventListener.
func (n *Node) AddEventListener(eventType string, fn ListenerFunc) ListenerID {
	return n.AddEventListenerWithOptions(eventType, fn, ListenerOptions{})
}

// AddEventListenerWithOptions registers a listener with explicit options.
func (n *Node) AddEventListenerWithOptions(eventType string, fn ListenerFunc, opts ListenerOptions) ListenerID {
	et := n.eventTarget()
	et.mu.Lock()
	defer et.mu.Unlock()
	et.nextID++
	et.listeners[eventType] = append(et.listeners[eventType], listenerEntry{
		id:      et.nextID,
		fn:      fn,
		options: opts,
	})
	return et.nextID
}

// RemoveEventListener removes a listener previously registered on this
// node. Unknown IDs are ignored.
func (n *Node) RemoveEventListener(eventType string, id ListenerID) {
	if n.events == nil {
		return
	}
	et := n.events
	et.mu.Lock()
	defer et.mu.Unlock()
	listeners := et.listeners[eventType]
	for i, l := range listeners {
		if l.id == id {
			et.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// HasEventListeners returns true if any listener is registered for the
// event type on this node.
func (n *Node) HasEventListeners(eventType string) bool {
	if n.events == nil {
		return false
	}
	n.events.mu.Lock()
	defer n.events.mu.Unlock()
	return len(n.events.listeners[eventType]) > 0
}

// DispatchEvent dispatches the event on this node: capture phase from the
// root down to the target's parent, target phase, then — if the event
// bubbles — bubble phase back up to the root. It returns false if any
// listener canceled the event, true otherwise.
func (n *Node) DispatchEvent(event *Event) bool {
	event.target = n
	event.defaultPrevented = false
	event.stopped = false
	event.stoppedImmediate = false

	// Ancestor path from the target's parent up to the root.
	var path []*Node
	for a := n.parentNode; a != nil; a = a.parentNode {
		path = append(path, a)
	}

	// Capture: root towards target.
	event.phase = EventPhaseCapturing
	for i := len(path) - 1; i >= 0 && !event.stopped; i-- {
		path[i].invokeListeners(event, true)
	}

	// Target: both capture and non-capture listeners run here.
	if !event.stopped {
		event.phase = EventPhaseAtTarget
		n.invokeListeners(event, true)
		if !event.stoppedImmediate {
			n.invokeListeners(event, false)
		}
	}

	// Bubble: target towards root.
	if event.Bubbles && !event.stopped {
		event.phase = EventPhaseBubbling
		for _, a := range path {
			if event.stopped {
				break
			}
			a.invokeListeners(event, false)
		}
	}

	event.phase = EventPhaseNone
	event.currentTarget = nil
	return !event.defaultPrevented
}

// invokeListeners runs this node's listeners matching the capture flag.
// The listener list is copied first so listeners may add or remove
// listeners without affecting the current dispatch.
func (n *Node) invokeListeners(event *Event, capture bool) {
	if n.events == nil {
		return
	}
	et := n.events
	et.mu.Lock()
	listeners := make([]listenerEntry, len(et.listeners[event.Type]))
	copy(listeners, et.listeners[event.Type])
	et.mu.Unlock()

	event.currentTarget = n

	var toRemove []ListenerID
	for _, l := range listeners {
		if l.options.Capture != capture {
			continue
		}
		l.fn(event)
		if l.options.Once {
			toRemove = append(toRemove, l.id)
		}
		if event.stoppedImmediate {
			break
		}
	}

	for _, id := range toRemove {
		n.RemoveEventListener(event.Type, id)
	}
}
