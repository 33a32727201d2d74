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

// Package headless implements the surface.Platform and surface.Surface
// interfaces without a display or a GPU.
//
// Surfaces are plain images in memory. The fragment stage of the shader
// program cannot be run so the Surface implements the same contract in Go:
// the texture is sampled with bilinear filtering (golang.org/x/image/draw)
// and the red and blue channels are swapped.
//
// The display refresh is driven by the caller, either one tick at a time with
// Step() or at a fixed rate with Run(). This makes the package useful for
// testing and for running the compositor in environments where no display is
// available.
package headless
