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

// Package surface defines the interfaces between the compositor and the
// platform specific code that provides the drawing surface, the GPU pipeline
// and the display refresh schedule.
//
// Implementations are found in the gui/sdlgl, gui/webgl and gui/headless
// packages.
package surface

import (
	"image"

	"github.com/jetsetilly/compositor/shaders"
)

// Sentinal error patterns. All of these are fatal to the compositor.
const (
	// the element does not exist or does not support the required context
	SurfaceUnavailable = "surface: unavailable: %v"

	// the driver rejected a shader. the value is the driver's diagnostic text
	ShaderCompileError = "surface: %s shader: %v"

	// the driver failed to link the shader program. the value is the driver's
	// diagnostic text
	ProgramLinkError = "surface: program link: %v"

	// texture creation or update failed
	TextureUploadError = "surface: texture upload: %v"
)

// Names of the shader stages for use with ShaderCompileError.
const (
	VertexStage   = "vertex"
	FragmentStage = "fragment"
)

// Color is a normalised RGBA color.
type Color struct {
	R, G, B, A float32
}

// Background is the color the surface is cleared to before the quad is drawn.
var Background = Color{R: 0.0, G: 0.0, B: 0.0, A: 1.0}

// Surface is a drawing surface with an associated GPU context. The compositor
// uses it to build a single textured quad and to keep the texture up to date.
//
// All functions must be called from the goroutine that services the
// platform's RequestFrame() callbacks.
type Surface interface {
	// the shading language understood by the surface
	Dialect() shaders.Dialect

	// compile vertex and fragment stages and link them into a program which
	// is then made current. errors should be created with ShaderCompileError
	// or ProgramLinkError
	CompileProgram(vertex string, fragment string) error

	// upload vertex positions (three components per vertex) and texture
	// coordinates (two components per vertex) and bind them to the program
	// attributes
	UploadGeometry(vertices []float32, uvs []float32) error

	// allocate the texture with initial content. wrap mode is clamp-to-edge,
	// magnification filter is linear, and mipmaps are generated once
	CreateTexture(width int, height int, pixels []byte) error

	// replace the entire content of the texture. errors should be created
	// with TextureUploadError
	UpdateTexture(pixels []byte) error

	// clear the surface
	Clear(c Color)

	// draw count vertices as triangles using the current texture
	Draw(count int)

	// read back the contents of the surface. the top row of the surface is
	// the first row of the image
	ReadPixels() (*image.RGBA, error)
}

// Platform provides surfaces and the display refresh schedule.
type Platform interface {
	// Acquire the surface identified by elementID. The meaning of the
	// identifier depends on the platform. Errors should be created with
	// SurfaceUnavailable
	Acquire(elementID string) (Surface, error)

	// RequestFrame registers a callback to be called once, on the next display
	// refresh
	RequestFrame(callback func())
}
