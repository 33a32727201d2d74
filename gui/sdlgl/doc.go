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

// Package sdlgl implements the surface.Platform and surface.Surface
// interfaces for the desktop. SDL provides the window and the OpenGL context
// and OpenGL 3.2 (core profile) provides the texture pipeline.
//
// The display refresh is driven by the Service() function, which must be
// called from the main thread. Vertical sync is provided by the swap
// interval of the OpenGL context, or by a ticker matching the refresh rate of
// the display if the driver will not synchronise.
package sdlgl
