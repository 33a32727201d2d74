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

// Package statsview runs a local HTTP server offering runtime statistics
// (goroutines, heap, GC pauses) as charts. Useful for watching the effect of
// the frame source on the garbage collector.
//
// The server is only included when the statsview build tag is present:
//
//	go build -tags statsview
//
// After launch, charts are viewable at:
//
//	localhost:12128/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12128/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:12128"

const url = "/debug/statsview"
