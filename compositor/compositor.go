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

package compositor

import (
	"sync/atomic"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
	"github.com/jetsetilly/compositor/logger"
	"github.com/jetsetilly/compositor/shaders"
	"github.com/jetsetilly/compositor/surface"
)

// Sentinal error patterns.
const (
	AlreadyInitialised = "compositor: already initialised"
	NotInitialised     = "compositor: not initialised"
	LoopStopped        = "compositor: render loop stopped"
)

// Compositor connects a frame producer with the render loop.
type Compositor struct {
	plt surface.Platform

	// the frame hand-off. shared by SubmitFrame() and the render loop
	buf *frame.Buffer

	// the render state. only accessed by Initialise() and the render loop
	srf surface.Surface

	initialised atomic.Bool
	ready       atomic.Bool
	stopped     atomic.Bool

	// the number of times the render loop has run
	ticks atomic.Uint64

	// fatal errors from the render loop
	fatal chan error

	// pending screenshot requests. serviced by the render loop
	screenshots chan chan ScreenshotResult

	// render is stored so that the same function value is passed to the
	// platform every refresh
	render func()
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type.
func NewCompositor(plt surface.Platform) *Compositor {
	cmp := &Compositor{
		plt:         plt,
		buf:         frame.NewBuffer(),
		fatal:       make(chan error, 1),
		screenshots: make(chan chan ScreenshotResult, 1),
	}
	cmp.render = cmp.renderTick
	return cmp
}

// Initialise the drawing surface identified by elementID and start the render
// loop. Must be called once before frames are submitted.
//
// Any error is fatal and the compositor will not run.
func (cmp *Compositor) Initialise(elementID string) error {
	if !cmp.initialised.CompareAndSwap(false, true) {
		return curated.Errorf(AlreadyInitialised)
	}

	logger.Logf(logger.Allow, "compositor", "initialising %s", elementID)

	var err error

	cmp.srf, err = cmp.plt.Acquire(elementID)
	if err != nil {
		return curated.Errorf("compositor: %v", err)
	}

	vert, frag := shaders.Program(cmp.srf.Dialect())
	err = cmp.srf.CompileProgram(vert, frag)
	if err != nil {
		return curated.Errorf("compositor: %v", err)
	}

	err = cmp.srf.UploadGeometry(surface.Vertices, surface.UVs)
	if err != nil {
		return curated.Errorf("compositor: %v", err)
	}

	err = cmp.srf.CreateTexture(frame.Width, frame.Height, frame.Sentinel())
	if err != nil {
		return curated.Errorf("compositor: %v", err)
	}

	cmp.draw()

	logger.Logf(logger.Allow, "compositor", "%s ready (%s)", elementID, cmp.srf.Dialect())

	cmp.ready.Store(true)
	cmp.plt.RequestFrame(cmp.render)

	return nil
}

// SubmitFrame hands a new frame to the render loop. The length of data must
// be exactly frame.BufferSize.
//
// If the render loop has not yet consumed the previous frame then the new
// frame is silently dropped. This is not an error.
//
// Safe to call from any goroutine.
func (cmp *Compositor) SubmitFrame(data []byte) error {
	return cmp.buf.Submit(data)
}

// Stop the render loop. The loop will not be re-registered with the platform
// after the current tick.
func (cmp *Compositor) Stop() {
	cmp.stopped.Store(true)
	cmp.drainScreenshots()
}

// Stopped returns true if the render loop has been stopped, either by Stop()
// or by a fatal error.
func (cmp *Compositor) Stopped() bool {
	return cmp.stopped.Load()
}

// Fatal returns the channel on which fatal render loop errors are sent. At
// most one error is ever sent.
func (cmp *Compositor) Fatal() <-chan error {
	return cmp.fatal
}

// Stats returns the frame counts of the underlying frame buffer.
func (cmp *Compositor) Stats() frame.Stats {
	return cmp.buf.Stats()
}

// Ticks returns the number of times the render loop has run.
func (cmp *Compositor) Ticks() uint64 {
	return cmp.ticks.Load()
}

// clear and draw the quad with whatever is currently in the texture.
func (cmp *Compositor) draw() {
	cmp.srf.Clear(surface.Background)
	cmp.srf.Draw(surface.VertexCount)
}

// renderTick is the render loop. it is called by the platform once per display
// refresh and re-registers itself each time.
func (cmp *Compositor) renderTick() {
	if cmp.stopped.Load() {
		cmp.drainScreenshots()
		return
	}

	cmp.ticks.Add(1)

	_, err := cmp.buf.Consume(cmp.srf.UpdateTexture)
	if err != nil {
		cmp.halt(err)
		return
	}

	// draw unconditionally. if there was no new frame then the previous
	// frame is still in the texture
	cmp.draw()

	cmp.serviceScreenshot()

	if cmp.stopped.Load() {
		cmp.drainScreenshots()
		return
	}
	cmp.plt.RequestFrame(cmp.render)
}

// halt the render loop because of a fatal error.
func (cmp *Compositor) halt(err error) {
	if !curated.Has(err, surface.TextureUploadError) {
		err = curated.Errorf(surface.TextureUploadError, err)
	}
	err = curated.Errorf("compositor: %v", err)

	logger.Log(logger.Allow, "compositor", err)
	cmp.stopped.Store(true)
	cmp.drainScreenshots()

	select {
	case cmp.fatal <- err:
	default:
	}
}
