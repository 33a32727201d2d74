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

package surface

// Vertices of the two triangles that cover the surface. Three components per
// vertex.
var Vertices = []float32{
	-1.0, -1.0, 0.0, // bottom left
	1.0, -1.0, 0.0, // bottom right
	1.0, 1.0, 0.0, // top right
	-1.0, -1.0, 0.0, // bottom left
	1.0, 1.0, 0.0, // top right
	-1.0, 1.0, 0.0, // top left
}

// UVs are the texture coordinates for each vertex. The v coordinate is flipped
// so that the first row of a frame is shown at the top of the surface.
var UVs = []float32{
	0.0, 1.0, // bottom left
	1.0, 1.0, // bottom right
	1.0, 0.0, // top right
	0.0, 1.0, // bottom left
	1.0, 0.0, // top right
	0.0, 0.0, // top left
}

// VertexCount is the number of vertices in the Vertices array.
const VertexCount = 6
