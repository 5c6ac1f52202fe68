// Package script embeds a JavaScript engine and exposes the dom package to
// host scripts. Scripts can query the document, listen for widget events,
// and cancel them to veto state transitions, the same way page code would
// in a browser.
package script

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dop251/goja"
	"github.com/mgildea/rivet/dom"
)

// Runtime wraps a goja runtime bound to a single document. It installs a
// console backed by the logger and a document global.
type Runtime struct {
	vm     *goja.Runtime
	logger *slog.Logger

	bindings *domBindings
}

// NewRuntime creates a runtime for doc. A nil logger falls back to
// slog.Default().
func NewRuntime(doc *dom.Document, logger *slog.Logger) *Runtime {
	if logger == nil {
		logger = slog.Default()
	}
	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	r := &Runtime{vm: vm, logger: logger}
	r.setupConsole()
	r.bindings = newDOMBindings(r, doc)
	vm.Set("document", r.bindings.documentObject())
	r.setupCustomEvent()
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// Execute runs a script, recovering from parser and runtime panics so a
// broken host script cannot take the process down.
func (r *Runtime) Execute(name, code string) (result goja.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script %s panicked: %v", name, p)
			r.logger.Error("script panic", "script", name, "panic", p)
		}
	}()

	program, err := goja.Compile(name, code, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	result, err = r.vm.RunProgram(program)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}
	return result, nil
}

func (r *Runtime) setupConsole() {
	console := r.vm.NewObject()
	log := func(fn func(string, ...any)) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			fn(formatArgs(call.Arguments))
			return goja.Undefined()
		}
	}
	console.Set("log", log(r.logger.Info))
	console.Set("info", log(r.logger.Info))
	console.Set("debug", log(r.logger.Debug))
	console.Set("warn", log(r.logger.Warn))
	console.Set("error", log(r.logger.Error))
	r.vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, formatValue(arg))
	}
	return strings.Join(parts, " ")
}

func formatValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	return v.String()
}
