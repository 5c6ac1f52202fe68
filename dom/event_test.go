package dom

import "testing"

func TestDispatchEvent_TargetPhase(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button")

	var seen []string
	el.AsNode().AddEventListener("click", func(e *Event) {
		seen = append(seen, e.Type)
		if e.Target() != el.AsNode() {
			t.Error("wrong target")
		}
		if e.CurrentTarget() != el.AsNode() {
			t.Error("wrong current target")
		}
		if e.Phase() != EventPhaseAtTarget {
			t.Errorf("expected target phase, got %v", e.Phase())
		}
	})

	if !el.AsNode().DispatchEvent(NewEvent("click")) {
		t.Error("non-cancelable event reported canceled")
	}
	if len(seen) != 1 {
		t.Fatalf("listener ran %d times, want 1", len(seen))
	}
}

func TestDispatchEvent_Bubbles(t *testing.T) {
	doc := mustParse(t, `<div id="outer"><button id="inner">x</button></div>`)
	outer := doc.GetElementById("outer")
	inner := doc.GetElementById("inner")

	var order []string
	doc.AsNode().AddEventListener("click", func(e *Event) {
		order = append(order, "document")
	})
	outer.AsNode().AddEventListener("click", func(e *Event) {
		order = append(order, "outer")
		if e.Target() != inner.AsNode() {
			t.Error("bubbled event lost its target")
		}
	})

	inner.AsNode().DispatchEvent(&Event{Type: "click", Bubbles: true})

	if len(order) != 2 || order[0] != "outer" || order[1] != "document" {
		t.Errorf("bubble order = %v", order)
	}
}

func TestDispatchEvent_NonBubblingStopsAtTarget(t *testing.T) {
	doc := mustParse(t, `<div><button id="b">x</button></div>`)
	b := doc.GetElementById("b")

	called := false
	doc.AsNode().AddEventListener("focusish", func(e *Event) { called = true })
	b.AsNode().DispatchEvent(NewEvent("focusish"))

	if called {
		t.Error("non-bubbling event reached the document")
	}
}

func TestDispatchEvent_CapturePhaseRunsFirst(t *testing.T) {
	doc := mustParse(t, `<div><button id="b">x</button></div>`)
	b := doc.GetElementById("b")

	var order []string
	doc.AsNode().AddEventListenerWithOptions("click", func(e *Event) {
		order = append(order, "capture")
		if e.Phase() != EventPhaseCapturing {
			t.Errorf("expected capturing phase, got %v", e.Phase())
		}
	}, ListenerOptions{Capture: true})
	doc.AsNode().AddEventListener("click", func(e *Event) {
		order = append(order, "bubble")
	})

	b.AsNode().DispatchEvent(&Event{Type: "click", Bubbles: true})

	if len(order) != 2 || order[0] != "capture" || order[1] != "bubble" {
		t.Errorf("phase order = %v", order)
	}
}

func TestDispatchEvent_PreventDefault(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button")

	el.AsNode().AddEventListener("rvt:disclosureOpen", func(e *Event) {
		e.PreventDefault()
	})

	ev := NewCustomEvent("rvt:disclosureOpen", CustomEventInit{Bubbles: true, Cancelable: true})
	if el.AsNode().DispatchEvent(ev) {
		t.Error("DispatchEvent should return false when canceled")
	}
	if !ev.DefaultPrevented() {
		t.Error("DefaultPrevented not set")
	}
}

func TestDispatchEvent_PreventDefaultIgnoredWhenNotCancelable(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("button")
	el.AsNode().AddEventListener("ping", func(e *Event) { e.PreventDefault() })

	if !el.AsNode().DispatchEvent(NewEvent("ping")) {
		t.Error("non-cancelable event must not be cancelable")
	}
}

func TestDispatchEvent_StopPropagation(t *testing.T) {
	doc := mustParse(t, `<div><button id="b">x</button></div>`)
	b := doc.GetElementById("b")

	reached := false
	b.AsNode().AddEventListener("click", func(e *Event) { e.StopPropagation() })
	doc.AsNode().AddEventListener("click", func(e *Event) { reached = true })

	b.AsNode().DispatchEvent(&Event{Type: "click", Bubbles: true})
	if reached {
		t.Error("StopPropagation did not stop bubbling")
	}
}

func TestDispatchEvent_StopImmediatePropagation(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	first, second := false, false
	el.AsNode().AddEventListener("click", func(e *Event) {
		first = true
		e.StopImmediatePropagation()
	})
	el.AsNode().AddEventListener("click", func(e *Event) { second = true })

	el.AsNode().DispatchEvent(NewEvent("click"))
	if !first || second {
		t.Errorf("StopImmediatePropagation: first=%v second=%v", first, second)
	}
}

func TestRemoveEventListener(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	count := 0
	id := el.AsNode().AddEventListener("click", func(e *Event) { count++ })
	el.AsNode().DispatchEvent(NewEvent("click"))
	el.AsNode().RemoveEventListener("click", id)
	el.AsNode().DispatchEvent(NewEvent("click"))

	if count != 1 {
		t.Errorf("listener ran %d times after removal, want 1", count)
	}
}

func TestAddEventListener_Once(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	count := 0
	el.AsNode().AddEventListenerWithOptions("click", func(e *Event) { count++ }, ListenerOptions{Once: true})
	el.AsNode().DispatchEvent(NewEvent("click"))
	el.AsNode().DispatchEvent(NewEvent("click"))

	if count != 1 {
		t.Errorf("once listener ran %d times, want 1", count)
	}
}

func TestCustomEvent_Detail(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")

	var got any
	el.AsNode().AddEventListener("rvt:accordionOpened", func(e *Event) { got = e.Detail })

	detail := map[string]string{"id": "panel-1"}
	el.AsNode().DispatchEvent(NewCustomEvent("rvt:accordionOpened", CustomEventInit{Detail: detail}))

	m, ok := got.(map[string]string)
	if !ok || m["id"] != "panel-1" {
		t.Errorf("detail = %#v", got)
	}
}

func TestElement_Click(t *testing.T) {
	doc := mustParse(t, `<div><button id="b">x</button></div>`)
	b := doc.GetElementById("b")

	seen := false
	doc.AsNode().AddEventListener("click", func(e *Event) {
		seen = true
		if !e.Bubbles || !e.Cancelable {
			t.Error("Click should dispatch a bubbling, cancelable event")
		}
	})
	b.Click()
	if !seen {
		t.Error("click did not reach the document")
	}
}
