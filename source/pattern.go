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
	"image/color"

	"github.com/jetsetilly/compositor/frame"
)

// the colours of the test pattern, from left to right.
var bars = []color.RGBA{
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff},
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

// Pattern produces vertical colour bars that scroll one pixel to the left
// every frame. The bottom eighth of the frame is a grey ramp that does not
// move, which makes tearing between the two regions easy to spot.
type Pattern struct {
	offset int
}

// NewPattern is the preferred method of initialisation for the Pattern type.
func NewPattern() *Pattern {
	return &Pattern{}
}

// Next implements the Source interface.
func (p *Pattern) Next(dst []byte) error {
	barWidth := frame.Width / len(bars)
	rampTop := frame.Height - frame.Height/8

	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			i := (y*frame.Width + x) * frame.Channels

			if y >= rampTop {
				v := uint8(x * 255 / (frame.Width - 1))
				dst[i], dst[i+1], dst[i+2], dst[i+3] = v, v, v, 0xff
				continue
			}

			c := bars[((x+p.offset)/barWidth)%len(bars)]
			dst[i], dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B, c.A
		}
	}

	p.offset = (p.offset + 1) % frame.Width

	return nil
}

// Solid produces frames of a single colour.
type Solid struct {
	Color color.RGBA
}

// Next implements the Source interface.
func (s Solid) Next(dst []byte) error {
	for i := 0; i < len(dst); i += frame.Channels {
		dst[i], dst[i+1], dst[i+2], dst[i+3] = s.Color.R, s.Color.G, s.Color.B, s.Color.A
	}
	return nil
}
