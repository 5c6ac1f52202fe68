package script

import (
	"github.com/dop251/goja"
	"github.com/mgildea/rivet/dom"
)

// domBindings projects the dom package into the JavaScript runtime.
// Element wrappers are cached per node so identity comparisons hold on the
// JS side: document.getElementById("x") === document.getElementById("x").
type domBindings struct {
	rt  *Runtime
	doc *dom.Document

	elements  map[*dom.Node]*goja.Object
	docObject *goja.Object
	listeners []*jsListener
}

// jsListener records a JS-registered listener so removeEventListener can
// find the dom.ListenerID for a function value.
type jsListener struct {
	node      *dom.Node
	eventType string
	value     goja.Value
	id        dom.ListenerID
}

func newDOMBindings(rt *Runtime, doc *dom.Document) *domBindings {
	return &domBindings{
		rt:       rt,
		doc:      doc,
		elements: make(map[*dom.Node]*goja.Object),
	}
}

func (b *domBindings) documentObject() *goja.Object {
	if b.docObject != nil {
		return b.docObject
	}
	vm := b.rt.vm
	obj := vm.NewObject()

	obj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		return b.elementOrNull(b.doc.GetElementById(call.Arguments[0].String()))
	})
	obj.Set("querySelector", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		return b.elementOrNull(b.doc.QuerySelector(call.Arguments[0].String()))
	})
	obj.Set("querySelectorAll", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return vm.NewArray()
		}
		return b.elementArray(b.doc.QuerySelectorAll(call.Arguments[0].String()))
	})
	obj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		return b.wrapElement(b.doc.CreateElement(call.Arguments[0].String()))
	})
	obj.DefineAccessorProperty("body", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return b.elementOrNull(b.doc.Body())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("activeElement", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return b.elementOrNull(b.doc.ActiveElement())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	b.bindEventTarget(obj, b.doc.AsNode())

	b.docObject = obj
	return obj
}

func (b *domBindings) elementOrNull(el *dom.Element) goja.Value {
	if el == nil {
		return goja.Null()
	}
	return b.wrapElement(el)
}

func (b *domBindings) elementArray(els []*dom.Element) goja.Value {
	values := make([]interface{}, len(els))
	for i, el := range els {
		values[i] = b.wrapElement(el)
	}
	return b.rt.vm.NewArray(values...)
}

func (b *domBindings) wrapElement(el *dom.Element) *goja.Object {
	node := el.AsNode()
	if cached, ok := b.elements[node]; ok {
		return cached
	}
	vm := b.rt.vm
	obj := vm.NewObject()
	b.elements[node] = obj

	obj.DefineAccessorProperty("tagName", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(el.TagName())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("id", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(el.Id())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			el.SetId(call.Arguments[0].String())
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("textContent", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(el.TextContent())
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			el.SetTextContent(call.Arguments[0].String())
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("outerHTML", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(el.OuterHTML())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("hidden", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(el.HasAttribute("hidden"))
	}), vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) > 0 {
			el.ToggleAttribute("hidden", call.Arguments[0].ToBoolean())
		}
		return goja.Undefined()
	}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		name := call.Arguments[0].String()
		if !el.HasAttribute(name) {
			return goja.Null()
		}
		return vm.ToValue(el.GetAttribute(name))
	})
	obj.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) >= 2 {
			el.SetAttribute(call.Arguments[0].String(), call.Arguments[1].String())
		}
		return goja.Undefined()
	})
	obj.Set("hasAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return vm.ToValue(false)
		}
		return vm.ToValue(el.HasAttribute(call.Arguments[0].String()))
	})
	obj.Set("removeAttribute", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) >= 1 {
			el.RemoveAttribute(call.Arguments[0].String())
		}
		return goja.Undefined()
	})
	obj.Set("matches", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return vm.ToValue(false)
		}
		return vm.ToValue(el.Matches(call.Arguments[0].String()))
	})
	obj.Set("closest", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		return b.elementOrNull(el.Closest(call.Arguments[0].String()))
	})
	obj.Set("querySelector", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Null()
		}
		return b.elementOrNull(el.QuerySelector(call.Arguments[0].String()))
	})
	obj.Set("querySelectorAll", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return vm.NewArray()
		}
		return b.elementArray(el.QuerySelectorAll(call.Arguments[0].String()))
	})
	obj.Set("appendChild", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		if child := b.nodeForObject(call.Arguments[0]); child != nil {
			el.AsNode().AppendChild(child)
		}
		return call.Arguments[0]
	})
	obj.Set("remove", func(goja.FunctionCall) goja.Value {
		el.Remove()
		return goja.Undefined()
	})
	obj.Set("click", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(el.Click())
	})
	obj.Set("focus", func(goja.FunctionCall) goja.Value {
		el.Focus()
		return goja.Undefined()
	})
	obj.Set("blur", func(goja.FunctionCall) goja.Value {
		el.Blur()
		return goja.Undefined()
	})

	b.bindEventTarget(obj, node)
	return obj
}

// nodeForObject maps a wrapped element back to its node.
func (b *domBindings) nodeForObject(v goja.Value) *dom.Node {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	for node, wrapped := range b.elements {
		if wrapped == obj {
			return node
		}
	}
	return nil
}

// bindEventTarget installs addEventListener, removeEventListener and
// dispatchEvent on obj, bridging to node's listeners.
func (b *domBindings) bindEventTarget(obj *goja.Object, node *dom.Node) {
	vm := b.rt.vm

	obj.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		eventType := call.Arguments[0].String()
		fnValue := call.Arguments[1]
		fn, ok := goja.AssertFunction(fnValue)
		if !ok {
			return goja.Undefined()
		}
		id := node.AddEventListener(eventType, func(e *dom.Event) {
			if _, err := fn(goja.Undefined(), b.wrapEvent(e)); err != nil {
				b.rt.logger.Error("listener failed", "event", eventType, "error", err)
			}
		})
		b.listeners = append(b.listeners, &jsListener{
			node:      node,
			eventType: eventType,
			value:     fnValue,
			id:        id,
		})
		return goja.Undefined()
	})

	obj.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			return goja.Undefined()
		}
		eventType := call.Arguments[0].String()
		fnValue := call.Arguments[1]
		for i, l := range b.listeners {
			if l.node == node && l.eventType == eventType && l.value.StrictEquals(fnValue) {
				node.RemoveEventListener(eventType, l.id)
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return goja.Undefined()
			}
		}
		return goja.Undefined()
	})

	obj.Set("dispatchEvent", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return vm.ToValue(false)
		}
		init, ok := call.Arguments[0].(*goja.Object)
		if !ok {
			return vm.ToValue(false)
		}
		event := dom.NewCustomEvent(stringField(init, "type"), dom.CustomEventInit{
			Bubbles:    boolField(init, "bubbles"),
			Cancelable: boolField(init, "cancelable"),
			Detail:     exportField(init, "detail"),
		})
		return vm.ToValue(node.DispatchEvent(event))
	})
}

// wrapEvent projects a dom event into JS for the duration of a listener
// call. Detail passes through goja's value conversion, so struct payloads
// surface with their json field names.
func (b *domBindings) wrapEvent(e *dom.Event) *goja.Object {
	vm := b.rt.vm
	obj := vm.NewObject()
	obj.Set("type", e.Type)
	obj.Set("bubbles", e.Bubbles)
	obj.Set("cancelable", e.Cancelable)
	obj.Set("detail", vm.ToValue(e.Detail))
	obj.Set("key", e.Key)
	obj.Set("shiftKey", e.ShiftKey)
	if target := e.Target(); target != nil && target.NodeType() == dom.ElementNode {
		obj.Set("target", b.wrapElement((*dom.Element)(target)))
	} else {
		obj.Set("target", goja.Null())
	}
	obj.Set("preventDefault", func(goja.FunctionCall) goja.Value {
		e.PreventDefault()
		return goja.Undefined()
	})
	obj.Set("stopPropagation", func(goja.FunctionCall) goja.Value {
		e.StopPropagation()
		return goja.Undefined()
	})
	obj.Set("stopImmediatePropagation", func(goja.FunctionCall) goja.Value {
		e.StopImmediatePropagation()
		return goja.Undefined()
	})
	obj.DefineAccessorProperty("defaultPrevented", vm.ToValue(func(goja.FunctionCall) goja.Value {
		return vm.ToValue(e.DefaultPrevented())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	return obj
}

// setupCustomEvent installs a CustomEvent constructor producing plain
// objects dispatchEvent understands.
func (r *Runtime) setupCustomEvent() {
	vm := r.vm
	vm.Set("CustomEvent", func(call goja.ConstructorCall) *goja.Object {
		obj := call.This
		eventType := ""
		if len(call.Arguments) > 0 {
			eventType = call.Arguments[0].String()
		}
		obj.Set("type", eventType)
		obj.Set("bubbles", false)
		obj.Set("cancelable", false)
		obj.Set("detail", goja.Null())
		if len(call.Arguments) > 1 {
			if init, ok := call.Arguments[1].(*goja.Object); ok {
				for _, key := range []string{"bubbles", "cancelable", "detail"} {
					if v := init.Get(key); v != nil && !goja.IsUndefined(v) {
						obj.Set(key, v)
					}
				}
			}
		}
		return obj
	})
}

func stringField(obj *goja.Object, name string) string {
	if v := obj.Get(name); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
		return v.String()
	}
	return ""
}

func boolField(obj *goja.Object, name string) bool {
	if v := obj.Get(name); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
		return v.ToBoolean()
	}
	return false
}

func exportField(obj *goja.Object, name string) any {
	if v := obj.Get(name); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
		return v.Export()
	}
	return nil
}
