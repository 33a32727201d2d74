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

package headless

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/surface"
)

// Fault can be injected into the platform to simulate driver failures.
type Fault int

// List of valid Fault values.
const (
	NoFault Fault = iota
	FaultCompile
	FaultLink
	FaultUpload
)

// Platform implements the surface.Platform interface.
type Platform struct {
	crit sync.Mutex

	// canvas dimensions indexed by element ID
	canvases map[string]image.Point

	// surfaces that have been acquired, indexed by element ID
	surfaces map[string]*Surface

	// callback registered with RequestFrame()
	pending func()

	fault Fault
}

// NewPlatform is the preferred method of initialisation for the Platform type.
func NewPlatform() *Platform {
	return &Platform{
		canvases: make(map[string]image.Point),
		surfaces: make(map[string]*Surface),
	}
}

// AddCanvas makes a surface of the given size available to Acquire().
func (plt *Platform) AddCanvas(elementID string, width int, height int) {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	plt.canvases[elementID] = image.Point{X: width, Y: height}
}

// SetFault injects a fault into all surfaces created by the platform.
func (plt *Platform) SetFault(f Fault) {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	plt.fault = f
}

func (plt *Platform) currentFault() Fault {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	return plt.fault
}

// Acquire implements the surface.Platform interface.
func (plt *Platform) Acquire(elementID string) (surface.Surface, error) {
	plt.crit.Lock()
	defer plt.crit.Unlock()

	sz, ok := plt.canvases[elementID]
	if !ok {
		return nil, curated.Errorf(surface.SurfaceUnavailable, curated.Errorf("no canvas with ID %q", elementID))
	}

	srf := newSurface(plt, sz.X, sz.Y)
	plt.surfaces[elementID] = srf

	return srf, nil
}

// Surface returns the surface previously acquired for the element ID. Returns
// nil if the surface has not been acquired.
func (plt *Platform) Surface(elementID string) *Surface {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	return plt.surfaces[elementID]
}

// RequestFrame implements the surface.Platform interface.
func (plt *Platform) RequestFrame(callback func()) {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	plt.pending = callback
}

// Pending returns true if a callback is waiting for the next refresh.
func (plt *Platform) Pending() bool {
	plt.crit.Lock()
	defer plt.crit.Unlock()
	return plt.pending != nil
}

// Step simulates a single display refresh. The pending callback, if any, is
// called. Returns false if there was no callback to call.
func (plt *Platform) Step() bool {
	plt.crit.Lock()
	callback := plt.pending
	plt.pending = nil
	plt.crit.Unlock()

	if callback == nil {
		return false
	}
	callback()

	return true
}

// Run simulates display refreshes at the given interval until the context is
// cancelled or there is no longer a callback waiting for the next refresh.
func (plt *Platform) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !plt.Step() {
				return nil
			}
		}
	}
}
