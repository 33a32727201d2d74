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

package sdlgl

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
	"github.com/jetsetilly/compositor/logger"
	"github.com/jetsetilly/compositor/surface"
	"github.com/jetsetilly/compositor/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform implements the surface.Platform interface.
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// the element ID used to create the window
	elementID string
	srf       *Surface

	// window size is the frame size multiplied by scale
	scale int

	// synchronise with the display using a ticker rather than the swap
	// interval
	syncTicker *time.Ticker

	// callback registered with RequestFrame()
	pending func()

	quit bool
}

// NewPlatform is the preferred method of initialisation for the Platform type.
// The window is not opened until Acquire() is called.
//
// Must be called from the main thread.
func NewPlatform(scale int, vsync bool) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	for _, attr := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: 3},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: 2},
		{attr: sdl.GL_CONTEXT_FLAGS, value: sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{attr: sdl.GL_CONTEXT_PROFILE_MASK, value: sdl.GL_CONTEXT_PROFILE_CORE},
	} {
		err = sdl.GLSetAttribute(attr.attr, attr.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf("sdl: %v", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{
		scale: max(scale, 1),
	}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	if !vsync {
		plt.startSyncTicker()
	}

	return plt, nil
}

// list of swap interval values as defined by the sdl.GLSetSwapInterval()
// function.
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

func (plt *Platform) startSyncTicker() {
	rate := plt.mode.RefreshRate
	if rate <= 0 {
		rate = 60
	}
	plt.syncTicker = time.NewTicker(time.Second / time.Duration(rate))
}

// Acquire implements the surface.Platform interface. The element ID is used
// as the window title. Only one surface can be acquired.
func (plt *Platform) Acquire(elementID string) (surface.Surface, error) {
	if plt.window != nil {
		return nil, curated.Errorf(surface.SurfaceUnavailable,
			curated.Errorf("window already open for %q", plt.elementID))
	}

	var err error

	plt.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", version.ApplicationName, elementID),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(frame.Width*plt.scale), int32(frame.Height*plt.scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		return nil, curated.Errorf(surface.SurfaceUnavailable, err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.destroyWindow()
		return nil, curated.Errorf(surface.SurfaceUnavailable, err)
	}

	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.destroyWindow()
		return nil, curated.Errorf(surface.SurfaceUnavailable, err)
	}

	err = gl.Init()
	if err != nil {
		plt.destroyWindow()
		return nil, curated.Errorf(surface.SurfaceUnavailable, err)
	}
	logger.Logf(logger.Allow, "gl", "%s", gl.GoStr(gl.GetString(gl.VERSION)))

	if plt.syncTicker == nil {
		err = sdl.GLSetSwapInterval(syncWithVerticalRetrace)
		if err != nil {
			logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", syncWithVerticalRetrace, err)
			plt.startSyncTicker()
		}
	}
	if plt.syncTicker != nil {
		_ = sdl.GLSetSwapInterval(syncImmediateUpdate)
	}

	plt.elementID = elementID
	plt.srf = &Surface{window: plt.window}

	return plt.srf, nil
}

// RequestFrame implements the surface.Platform interface.
func (plt *Platform) RequestFrame(callback func()) {
	plt.pending = callback
}

// Service polls for window events and runs the callback registered with
// RequestFrame(). The window is then updated. Returns false if the user has
// closed the window or if there is no callback registered.
//
// Must be called from the main thread.
func (plt *Platform) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			plt.quit = true
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYUP && ev.Keysym.Sym == sdl.K_ESCAPE {
				plt.quit = true
			}
		}
	}

	if plt.quit {
		return false
	}

	callback := plt.pending
	plt.pending = nil
	if callback == nil {
		return false
	}
	callback()

	if plt.window != nil {
		plt.window.GLSwap()
	}

	if plt.syncTicker != nil {
		<-plt.syncTicker.C
	}

	return true
}

func (plt *Platform) destroyWindow() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}
}

// Destroy the window and release SDL resources.
func (plt *Platform) Destroy() {
	if plt.srf != nil {
		plt.srf.destroy()
		plt.srf = nil
	}
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
	}
	plt.destroyWindow()
	sdl.Quit()
}
