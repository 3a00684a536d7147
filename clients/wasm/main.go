//go:build js && wasm

// pixelrows WASM — Client-side image generation.
// Compiled with: GOOS=js GOARCH=wasm go build -o pixelrows.wasm ./clients/wasm/
package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"
)

func main() {
	fmt.Println("pixelrows WASM loaded")

	// Register JS-callable functions.
	js.Global().Set("goRenderImage", js.FuncOf(goRenderImage))
	js.Global().Set("goInspectImage", js.FuncOf(goInspectImage))
	js.Global().Set("goReady", js.ValueOf(true))

	// Block forever (WASM must not exit).
	select {}
}

// goRenderImage(width, height, format, seed) — return base64 image bytes.
func goRenderImage(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("error: need width, height")
	}

	width := args[0].Int()
	height := args[1].Int()

	format := ""
	if len(args) > 2 && args[2].Type() == js.TypeString {
		format = args[2].String()
	}

	var seed uint64
	if len(args) > 3 && args[3].Type() == js.TypeNumber {
		if s := args[3].Float(); s > 0 {
			seed = uint64(s)
		}
	}

	b64, err := renderImage(width, height, format, seed)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(b64)
}

// goInspectImage(base64PNG) — return the PNG header as JSON.
func goInspectImage(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("error: need base64Data")
	}

	hdr, err := inspectImage(args[0].String())
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}

	out, err := json.Marshal(hdr)
	if err != nil {
		return js.ValueOf("error: " + err.Error())
	}
	return js.ValueOf(string(out))
}
