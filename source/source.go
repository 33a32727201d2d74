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

package source

import (
	"context"
	"time"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
)

// Source is implemented by types that can produce frames.
type Source interface {
	// fill dst with the next frame. dst is always frame.BufferSize bytes
	Next(dst []byte) error
}

// Sink is implemented by types that accept frames. The compositor.Compositor
// type implements this interface.
type Sink interface {
	SubmitFrame(data []byte) error
}

// Run asks the Source for a new frame at the specified rate and submits it to
// the Sink. Returns when the context is cancelled or when the Source or Sink
// returns an error.
func Run(ctx context.Context, sink Sink, src Source, fps int) error {
	if fps <= 0 {
		return curated.Errorf("source: frame rate must be positive (%d)", fps)
	}

	buf := make([]byte, frame.BufferSize)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
		}

		err := src.Next(buf)
		if err != nil {
			return curated.Errorf("source: %v", err)
		}

		err = sink.SubmitFrame(buf)
		if err != nil {
			return curated.Errorf("source: %v", err)
		}
	}
}
