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

package frame

import (
	"image"
	"sync/atomic"

	"github.com/jetsetilly/compositor/curated"
)

// Frame dimensions. These are fixed and are not negotiable at runtime.
const (
	Width      = 128
	Height     = 128
	Channels   = 4
	BufferSize = Width * Height * Channels
)

// SizeMismatch is returned by Submit() when the supplied data is not exactly
// BufferSize bytes long.
const SizeMismatch = "frame: size mismatch: %d bytes (wanted %d)"

// the value of every byte in the sentinel frame (opaque white).
const sentinelValue = 0xff

// values of the hand-off state.
const (
	stateIdle uint32 = iota
	stateUpdating
	stateUpdated
)

// Stats records the number of frames that have passed through the Buffer.
type Stats struct {
	// frames accepted by Submit()
	Submitted uint64

	// frames rejected by Submit() because the buffer was busy
	Dropped uint64

	// frames handed to the consumer by Consume()
	Presented uint64
}

// Buffer is the single slot shared by one producer role and one consumer role.
// The zero value is not ready for use, NewBuffer() should be used instead.
type Buffer struct {
	data  [BufferSize]byte
	state atomic.Uint32

	submitted atomic.Uint64
	dropped   atomic.Uint64
	presented atomic.Uint64
}

// NewBuffer is the preferred method of initialisation for the Buffer type. The
// buffer is initialised with the sentinel frame and there is no pending frame.
func NewBuffer() *Buffer {
	b := &Buffer{}
	for i := range b.data {
		b.data[i] = sentinelValue
	}
	return b
}

// Sentinel returns a newly allocated frame filled with opaque white. This is
// the image that is displayed before any frame has been submitted.
func Sentinel() []byte {
	s := make([]byte, BufferSize)
	for i := range s {
		s[i] = sentinelValue
	}
	return s
}

// Submit copies src into the buffer and marks it as ready for the consumer.
//
// If the buffer is busy the frame is dropped and nil is returned. A dropped
// frame is not an error, it is the expected result of a producer running
// faster than the consumer.
//
// Only a src of the wrong length results in an error, in which case the
// buffer is left untouched.
func (b *Buffer) Submit(src []byte) error {
	if len(src) != BufferSize {
		return curated.Errorf(SizeMismatch, len(src), BufferSize)
	}

	if !b.state.CompareAndSwap(stateIdle, stateUpdating) {
		b.dropped.Add(1)
		return nil
	}

	copy(b.data[:], src)
	b.submitted.Add(1)
	b.state.Store(stateUpdated)

	return nil
}

// Consume calls push with the contents of the buffer if there is a pending
// frame. The pending frame is cleared only if push returns without error.
//
// The pixels slice passed to push must not be retained after push returns.
//
// Returns true if push was called.
func (b *Buffer) Consume(push func(pixels []byte) error) (bool, error) {
	if b.state.Load() != stateUpdated {
		return false, nil
	}

	if err := push(b.data[:]); err != nil {
		return true, err
	}

	b.presented.Add(1)
	b.state.Store(stateIdle)

	return true, nil
}

// Updating returns true while a write is in progress.
func (b *Buffer) Updating() bool {
	return b.state.Load() == stateUpdating
}

// Updated returns true if the buffer holds a frame that has not yet been
// consumed.
func (b *Buffer) Updated() bool {
	return b.state.Load() == stateUpdated
}

// Stats returns the current frame counts.
func (b *Buffer) Stats() Stats {
	return Stats{
		Submitted: b.submitted.Load(),
		Dropped:   b.dropped.Load(),
		Presented: b.presented.Load(),
	}
}

// Image returns an image.RGBA that uses pixels as its backing store. No copy
// is made so changes to the image are changes to pixels. The length of pixels
// should be BufferSize.
func Image(pixels []byte) *image.RGBA {
	return &image.RGBA{
		Pix:    pixels,
		Stride: Width * Channels,
		Rect:   image.Rect(0, 0, Width, Height),
	}
}
