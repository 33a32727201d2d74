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

package surface_test

import (
	"testing"

	"github.com/jetsetilly/compositor/surface"
	"github.com/jetsetilly/compositor/test"
)

func TestGeometry(t *testing.T) {
	test.ExpectEquality(t, len(surface.Vertices), surface.VertexCount*3)
	test.ExpectEquality(t, len(surface.UVs), surface.VertexCount*2)

	// every vertex at the top of the surface samples the first row of the
	// texture
	for i := range surface.VertexCount {
		y := surface.Vertices[i*3+1]
		v := surface.UVs[i*2+1]
		if y == 1.0 {
			test.ExpectEquality(t, v, float32(0.0), i)
		} else {
			test.ExpectEquality(t, v, float32(1.0), i)
		}
	}
}
