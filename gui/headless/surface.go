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

package headless

import (
	"image"
	"image/color"
	"strings"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/shaders"
	"github.com/jetsetilly/compositor/surface"
	"golang.org/x/image/draw"
)

// Surface implements the surface.Surface interface.
type Surface struct {
	plt *Platform

	// the result of drawing operations
	framebuffer *image.RGBA

	// texture is nil until CreateTexture() is called
	texture   *image.RGBA
	mipmapped bool

	// whether a program has been linked
	linked bool

	// number of vertices uploaded by UploadGeometry()
	vertexCount int

	// whether the first row of the texture is shown at the bottom of the
	// surface
	flipV bool

	// number of successful calls to UpdateTexture() and Draw()
	uploads int
	draws   int
}

func newSurface(plt *Platform, width int, height int) *Surface {
	return &Surface{
		plt:         plt,
		framebuffer: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Dialect implements the surface.Surface interface.
func (srf *Surface) Dialect() shaders.Dialect {
	return shaders.GLSLES100
}

// CompileProgram implements the surface.Surface interface.
//
// The shader source is checked for the entry point and for the attributes and
// uniform that the surface binds to. It is not otherwise compiled.
func (srf *Surface) CompileProgram(vertex string, fragment string) error {
	if srf.plt.currentFault() == FaultCompile {
		return curated.Errorf(surface.ShaderCompileError, surface.VertexStage, "ERROR: 0:1: injected fault")
	}

	if !strings.Contains(vertex, "main") {
		return curated.Errorf(surface.ShaderCompileError, surface.VertexStage, "ERROR: 0:1: 'main' : function not defined")
	}
	if !strings.Contains(fragment, "main") {
		return curated.Errorf(surface.ShaderCompileError, surface.FragmentStage, "ERROR: 0:1: 'main' : function not defined")
	}

	if srf.plt.currentFault() == FaultLink {
		return curated.Errorf(surface.ProgramLinkError, "injected fault")
	}

	for _, a := range []string{shaders.PositionAttribute, shaders.TextureCoordAttribute} {
		if !strings.Contains(vertex, a) {
			return curated.Errorf(surface.ProgramLinkError, curated.Errorf("attribute %q not found", a))
		}
	}
	if !strings.Contains(fragment, shaders.ImageUniform) {
		return curated.Errorf(surface.ProgramLinkError, curated.Errorf("uniform %q not found", shaders.ImageUniform))
	}

	srf.linked = true

	return nil
}

// UploadGeometry implements the surface.Surface interface.
func (srf *Surface) UploadGeometry(vertices []float32, uvs []float32) error {
	if len(vertices)%3 != 0 || len(uvs)%2 != 0 || len(vertices)/3 != len(uvs)/2 {
		return curated.Errorf("surface: geometry: %d vertex components and %d uv components", len(vertices), len(uvs))
	}

	srf.vertexCount = len(vertices) / 3

	// the orientation of the texture is taken from the first vertex at the
	// top of the surface
	srf.flipV = false
	for i := 0; i < srf.vertexCount; i++ {
		if vertices[i*3+1] > 0 {
			srf.flipV = uvs[i*2+1] > 0.5
			break
		}
	}

	return nil
}

// CreateTexture implements the surface.Surface interface.
func (srf *Surface) CreateTexture(width int, height int, pixels []byte) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("%dx%d texture with %d bytes", width, height, len(pixels)))
	}

	srf.texture = image.NewRGBA(image.Rect(0, 0, width, height))
	copy(srf.texture.Pix, pixels)
	srf.mipmapped = true

	return nil
}

// UpdateTexture implements the surface.Surface interface.
func (srf *Surface) UpdateTexture(pixels []byte) error {
	if srf.plt.currentFault() == FaultUpload {
		return curated.Errorf(surface.TextureUploadError, "injected fault")
	}

	if srf.texture == nil {
		return curated.Errorf(surface.TextureUploadError, "no texture")
	}

	if len(pixels) != len(srf.texture.Pix) {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("%d bytes (wanted %d)", len(pixels), len(srf.texture.Pix)))
	}

	copy(srf.texture.Pix, pixels)
	srf.uploads++

	return nil
}

// Clear implements the surface.Surface interface.
func (srf *Surface) Clear(c surface.Color) {
	col := color.RGBA{
		R: normalisedToByte(c.R),
		G: normalisedToByte(c.G),
		B: normalisedToByte(c.B),
		A: normalisedToByte(c.A),
	}
	draw.Draw(srf.framebuffer, srf.framebuffer.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func normalisedToByte(v float32) uint8 {
	if v <= 0.0 {
		return 0
	}
	if v >= 1.0 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// Draw implements the surface.Surface interface. The geometry is assumed to
// be a quad covering the entire surface.
func (srf *Surface) Draw(count int) {
	if !srf.linked || srf.texture == nil || count == 0 || count > srf.vertexCount {
		return
	}

	draw.BiLinear.Scale(srf.framebuffer, srf.framebuffer.Bounds(), srf.texture, srf.texture.Bounds(), draw.Src, nil)

	if srf.flipV {
		flipVertical(srf.framebuffer)
	}

	// fragment stage
	pix := srf.framebuffer.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}

	srf.draws++
}

func flipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		a := img.Pix[y*img.Stride : (y+1)*img.Stride]
		b := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// ReadPixels implements the surface.Surface interface.
func (srf *Surface) ReadPixels() (*image.RGBA, error) {
	img := image.NewRGBA(srf.framebuffer.Bounds())
	copy(img.Pix, srf.framebuffer.Pix)
	return img, nil
}

// Uploads returns the number of successful calls to UpdateTexture().
func (srf *Surface) Uploads() int {
	return srf.uploads
}

// Draws returns the number of times the quad has been drawn.
func (srf *Surface) Draws() int {
	return srf.draws
}

// Mipmapped returns true if mipmaps were generated when the texture was
// created.
func (srf *Surface) Mipmapped() bool {
	return srf.mipmapped
}

// Texture returns a copy of the current texture content. Returns nil if the
// texture has not been created.
func (srf *Surface) Texture() []byte {
	if srf.texture == nil {
		return nil
	}
	return append([]byte{}, srf.texture.Pix...)
}
