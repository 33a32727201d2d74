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

// Package compositor presents frames from an external producer on a drawing
// surface.
//
// The Compositor type owns a frame.Buffer and, once initialised, a
// surface.Surface. Producers call SubmitFrame() at whatever rate they like.
// The render loop runs on the schedule of the surface.Platform: every display
// refresh it pushes any pending frame to the surface's texture and then draws
// the textured quad. If no new frame has arrived the previous frame is drawn
// again.
//
// The render loop re-registers itself with the platform every refresh and
// only stops when Stop() is called or when a fatal error occurs. Fatal errors
// are delivered on the channel returned by Fatal().
package compositor
