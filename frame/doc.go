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

// Package frame implements the single-slot hand-off between a frame producer
// and the render loop.
//
// A Buffer holds exactly one RGBA image of fixed dimensions. A producer calls
// Submit() whenever a new image is available and the render loop calls
// Consume() once per display refresh. There is no queue: if the buffer is busy
// (a write is in progress or the previous frame has not yet been consumed)
// the submitted frame is dropped. Only the latest accepted frame is ever
// visible to the consumer.
//
// The hand-off state is a single atomic word with three values:
//
//	idle     - no write in progress and no pending frame
//	updating - a write is in progress
//	updated  - a complete frame is waiting to be consumed
//
// Producers move the state from idle to updating with a compare-and-swap, so
// there is never more than one writer and a consumer never observes a partly
// copied frame. The Updating() and Updated() functions report the state as
// the two boolean flags of the protocol. They can never both be true.
package frame
