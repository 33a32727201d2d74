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
	"image"

	"github.com/jetsetilly/compositor/curated"
)

// ScreenshotResult is sent on the channel returned by Screenshot().
type ScreenshotResult struct {
	Image *image.RGBA
	Err   error
}

// Screenshot requests a copy of the surface as it appears after the next
// render tick. The result is sent on the returned channel.
//
// Only one request can be outstanding at a time. If there is already a
// request waiting to be serviced the result will contain an error.
func (cmp *Compositor) Screenshot() <-chan ScreenshotResult {
	finish := make(chan ScreenshotResult, 1)

	if !cmp.ready.Load() {
		finish <- ScreenshotResult{Err: curated.Errorf(NotInitialised)}
		return finish
	}

	if cmp.stopped.Load() {
		finish <- ScreenshotResult{Err: curated.Errorf(LoopStopped)}
		return finish
	}

	select {
	case cmp.screenshots <- finish:
	default:
		finish <- ScreenshotResult{Err: curated.Errorf("compositor: screenshot already pending")}
		return finish
	}

	// the loop may have stopped after the check above and before the request
	// was queued
	if cmp.stopped.Load() {
		cmp.drainScreenshots()
	}

	return finish
}

// answer any queued request with an error. called whenever the render loop
// stops so that no caller is left waiting on a tick that will never run.
func (cmp *Compositor) drainScreenshots() {
	for {
		select {
		case finish := <-cmp.screenshots:
			finish <- ScreenshotResult{Err: curated.Errorf(LoopStopped)}
		default:
			return
		}
	}
}

// called by the render loop after the quad has been drawn.
func (cmp *Compositor) serviceScreenshot() {
	select {
	case finish := <-cmp.screenshots:
		img, err := cmp.srf.ReadPixels()
		if err != nil {
			err = curated.Errorf("compositor: screenshot: %v", err)
		}
		finish <- ScreenshotResult{Image: img, Err: err}
	default:
	}
}
