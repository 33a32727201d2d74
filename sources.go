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

package main

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/source"
)

// selectSource returns a slideshow of the image files, a solid colour if
// solid is not empty, or the test pattern.
func selectSource(files []string, solid string, hold int) (source.Source, error) {
	if len(files) > 0 {
		if solid != "" {
			return nil, curated.Errorf("image files and solid colour can not be used together")
		}
		return source.NewSlideshow(files, hold)
	}

	if solid != "" {
		c, err := parseColor(solid)
		if err != nil {
			return nil, err
		}
		return source.Solid{Color: c}, nil
	}

	return source.NewPattern(), nil
}

// parseColor parses a colour in the form RRGGBB or #RRGGBB.
func parseColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return color.RGBA{}, curated.Errorf("colour must be six hex digits (%s)", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, curated.Errorf("colour must be six hex digits (%s)", s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
