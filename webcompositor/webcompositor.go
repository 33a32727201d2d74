// This file is part of Compositor.
//
// Compositor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Compositor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Compositor.  If not, see <https://www.gnu.org/licenses/>.

//go:build js && wasm

// webcompositor exposes the compositor to JavaScript. After the WASM module
// has been started the global object "compositor" has the following
// functions:
//
//	initialise(elementID)  start the render loop on the canvas
//	submitFrame(data)      hand a frame of RGBA data to the render loop
//	copy(data)             alias for submitFrame
//	stats()                frame statistics as an object
//	stop()                 stop the render loop
//
// Functions return an Error object on failure and null on success. Frame data
// can be a Uint8Array, a Uint8ClampedArray or an ImageData object.
package main

import (
	"syscall/js"

	"github.com/jetsetilly/compositor/compositor"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
	"github.com/jetsetilly/compositor/gui/webgl"
	"github.com/jetsetilly/compositor/logger"
)

func main() {
	plt := webgl.NewPlatform()
	defer plt.Release()

	cmp := compositor.NewCompositor(plt)

	// frame data is copied from javascript into this slice before being
	// submitted
	data := make([]byte, frame.BufferSize)

	// logging to the browser console
	logger.SetEcho(consoleWriter{console: js.Global().Get("console")})

	jsError := func(err error) any {
		if err == nil {
			return nil
		}
		return js.Global().Get("Error").New(err.Error())
	}

	initialise := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 || args[0].Type() != js.TypeString {
			return jsError(curated.Errorf("initialise: element ID required"))
		}
		return jsError(cmp.Initialise(args[0].String()))
	})
	defer initialise.Release()

	submitFrame := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return jsError(curated.Errorf("submitFrame: frame data required"))
		}

		src := args[0]
		if src.Type() == js.TypeObject && !src.Get("data").IsUndefined() {
			// ImageData
			src = src.Get("data")
		}

		if src.Type() != js.TypeObject || src.Get("length").IsUndefined() {
			return jsError(curated.Errorf("submitFrame: frame data must be a byte array"))
		}

		n := src.Get("length").Int()
		if n != frame.BufferSize {
			return jsError(curated.Errorf(frame.SizeMismatch, n, frame.BufferSize))
		}

		// a Uint8ClampedArray must be viewed as a Uint8Array for CopyBytesToGo()
		if !src.InstanceOf(js.Global().Get("Uint8Array")) {
			src = js.Global().Get("Uint8Array").New(src.Get("buffer"), src.Get("byteOffset"), n)
		}
		js.CopyBytesToGo(data, src)

		return jsError(cmp.SubmitFrame(data))
	})
	defer submitFrame.Release()

	stats := js.FuncOf(func(this js.Value, args []js.Value) any {
		st := cmp.Stats()
		return map[string]any{
			"submitted": st.Submitted,
			"dropped":   st.Dropped,
			"presented": st.Presented,
			"ticks":     cmp.Ticks(),
		}
	})
	defer stats.Release()

	done := make(chan struct{}, 1)

	stop := js.FuncOf(func(this js.Value, args []js.Value) any {
		cmp.Stop()
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})
	defer stop.Release()

	js.Global().Set("compositor", map[string]any{
		"initialise":  initialise,
		"submitFrame": submitFrame,
		"copy":        submitFrame,
		"stats":       stats,
		"stop":        stop,
	})

	// keep the module alive until stopped or until the render loop fails
	select {
	case <-done:
	case err := <-cmp.Fatal():
		js.Global().Get("console").Call("error", err.Error())
	}

	js.Global().Delete("compositor")
}
