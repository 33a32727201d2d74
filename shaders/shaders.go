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

package shaders

import (
	_ "embed"
)

//go:embed "webgl.vert"
var webglVertex string

//go:embed "webgl.frag"
var webglFragment string

//go:embed "gl32.vert"
var gl32Vertex string

//go:embed "gl32.frag"
var gl32Fragment string

// Dialect of the shading language understood by a surface.
type Dialect int

// List of valid Dialect values.
const (
	// GLSL ES 1.00. WebGL 1 in the browser
	GLSLES100 Dialect = iota

	// GLSL 1.50. OpenGL 3.2 core profile
	GLSL150
)

func (d Dialect) String() string {
	switch d {
	case GLSLES100:
		return "GLSL ES 1.00"
	case GLSL150:
		return "GLSL 1.50"
	}
	return "unknown dialect"
}

// Names of the attributes and uniforms shared by every dialect.
const (
	PositionAttribute     = "position"
	TextureCoordAttribute = "textureCoord"
	ImageUniform          = "image"
)

// Program returns the vertex and fragment source for the dialect. The
// fragment stage samples the image uniform and swaps the red and blue
// channels.
//
// Returns empty strings for an unknown dialect.
func Program(d Dialect) (vertex string, fragment string) {
	switch d {
	case GLSLES100:
		return webglVertex, webglFragment
	case GLSL150:
		return gl32Vertex, gl32Fragment
	}
	return "", ""
}
