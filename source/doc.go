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

// Package source provides frame producers for the compositor.
//
// A Source fills a frame sized buffer each time it is asked. The Run()
// function asks a Source for frames at a fixed rate and hands them to a Sink,
// usually a compositor.Compositor. Run() is intended to be run in its own
// goroutine.
//
//	go source.Run(ctx, cmp, source.NewPattern(), 30)
//
// Frames are row-major RGBA with the top row first, as expected by the
// compositor.
package source
