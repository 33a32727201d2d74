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

package webgl

import (
	"syscall/js"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/logger"
	"github.com/jetsetilly/compositor/surface"
)

// Platform implements the surface.Platform interface.
type Platform struct {
	window js.Value

	// the function passed to requestAnimationFrame(). the same function value
	// is used for every request
	animate js.Func

	// callback registered with RequestFrame()
	pending func()
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform() *Platform {
	plt := &Platform{
		window: js.Global(),
	}

	plt.animate = js.FuncOf(func(this js.Value, args []js.Value) any {
		callback := plt.pending
		plt.pending = nil
		if callback != nil {
			callback()
		}
		return nil
	})

	return plt
}

// Acquire implements the surface.Platform interface. The element ID must
// identify a canvas element in the document.
func (plt *Platform) Acquire(elementID string) (surface.Surface, error) {
	canvas := plt.window.Get("document").Call("getElementById", elementID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, curated.Errorf(surface.SurfaceUnavailable, curated.Errorf("no element with ID %q", elementID))
	}

	if canvas.Get("getContext").IsUndefined() {
		return nil, curated.Errorf(surface.SurfaceUnavailable, curated.Errorf("element %q is not a canvas", elementID))
	}

	gl := canvas.Call("getContext", "webgl")
	if gl.IsNull() || gl.IsUndefined() {
		return nil, curated.Errorf(surface.SurfaceUnavailable, curated.Errorf("WebGL not supported by %q", elementID))
	}

	logger.Logf(logger.Allow, "webgl", "%s: %s", elementID, gl.Call("getParameter", gl.Get("VERSION")).String())

	return newSurface(canvas, gl), nil
}

// RequestFrame implements the surface.Platform interface.
func (plt *Platform) RequestFrame(callback func()) {
	plt.pending = callback
	plt.window.Call("requestAnimationFrame", plt.animate)
}

// Release the resources held by the platform. The pending callback will not
// be called.
func (plt *Platform) Release() {
	plt.pending = nil
	plt.animate.Release()
}
