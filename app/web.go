//go:build js && wasm

package main

import (
	"syscall/js"

	"gioui.org/app"
)

func registerWebCallbacks(cs *CalcState, w *app.Window) {
	js.Global().Set("getExpression", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return cs.Editor.Text()
	}))
	js.Global().Set("setExpression", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			cs.Editor.SetText(args[0].String())
			w.Invalidate()
		}
		return nil
	}))

	// Load initial expression from URL parameter (decoded by JS before
	// WASM started)
	initial := js.Global().Get("_initialExpression")
	if !initial.IsUndefined() && !initial.IsNull() && initial.String() != "" {
		cs.Editor.SetText(initial.String())
	}
}
