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

// Package performance measures how quickly the compositor can present frames
// without the limit imposed by a display refresh.
//
// Check() runs the compositor against a software surface for a fixed
// duration. A producer goroutine submits frames as quickly as it can while
// the render loop is run as quickly as it can. The results show the cost of
// a render tick and the proportion of frames that are dropped when the
// producer is faster than the render loop.
//
// Check() can optionally write CPU and memory profiles.
package performance
