package main

import (
	"syscall/js"

	"deskcalc/app/lang"
)

var expression string

func main() {
	// evaluate(expr) -> {text, isErr}
	js.Global().Set("evaluate", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		expression = args[0].String()
		r := lang.Evaluate(expression)

		obj := js.Global().Get("Object").New()
		obj.Set("text", r.Text)
		obj.Set("isErr", r.Err != nil)
		return obj
	}))

	// Register getExpression for share link
	js.Global().Set("getExpression", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		return expression
	}))

	// Register setExpression for share link restore
	js.Global().Set("setExpression", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) > 0 {
			expression = args[0].String()
			in := js.Global().Get("document").Call("getElementById", "expression")
			if !in.IsUndefined() && !in.IsNull() {
				in.Set("value", expression)
				in.Call("dispatchEvent", js.Global().Get("Event").New("input"))
			}
		}
		return nil
	}))

	// Signal that WASM is ready
	js.Global().Set("_wasmReady", true)
	onReady := js.Global().Get("_onWasmReady")
	if !onReady.IsUndefined() && !onReady.IsNull() {
		onReady.Invoke()
	}

	// Block forever
	select {}
}
