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

package sdlgl

import (
	"image"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/shaders"
	"github.com/jetsetilly/compositor/surface"
	"github.com/veandco/go-sdl2/sdl"
)

// Surface implements the surface.Surface interface.
type Surface struct {
	window *sdl.Window

	program uint32
	vao     uint32

	// vertex positions and texture coordinates
	vbo [2]uint32

	texture       uint32
	width, height int32
}

func (srf *Surface) destroy() {
	if srf.texture != 0 {
		gl.DeleteTextures(1, &srf.texture)
		srf.texture = 0
	}
	if srf.vbo[0] != 0 {
		gl.DeleteBuffers(2, &srf.vbo[0])
		srf.vbo = [2]uint32{}
	}
	if srf.vao != 0 {
		gl.DeleteVertexArrays(1, &srf.vao)
		srf.vao = 0
	}
	if srf.program != 0 {
		gl.DeleteProgram(srf.program)
		srf.program = 0
	}
}

// Dialect implements the surface.Surface interface.
func (srf *Surface) Dialect() shaders.Dialect {
	return shaders.GLSL150
}

// CompileProgram implements the surface.Surface interface.
func (srf *Surface) CompileProgram(vertex string, fragment string) error {
	vertHandle, err := compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		return curated.Errorf(surface.ShaderCompileError, surface.VertexStage, err)
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return curated.Errorf(surface.ShaderCompileError, surface.FragmentStage, err)
	}
	defer gl.DeleteShader(fragHandle)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertHandle)
	gl.AttachShader(program, fragHandle)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return curated.Errorf(surface.ProgramLinkError, strings.TrimRight(log, "\x00"))
	}

	if srf.program != 0 {
		gl.DeleteProgram(srf.program)
	}
	srf.program = program
	gl.UseProgram(srf.program)

	return nil
}

// compile shader source. the returned error contains the driver's diagnostic
// text.
func compileShader(shaderType uint32, source string) (uint32, error) {
	handle := gl.CreateShader(shaderType)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		// the log length includes the NULL character
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)

		return 0, curated.Errorf("%v", strings.TrimRight(log, "\x00"))
	}

	return handle, nil
}

// UploadGeometry implements the surface.Surface interface.
func (srf *Surface) UploadGeometry(vertices []float32, uvs []float32) error {
	if srf.program == 0 {
		return curated.Errorf("surface: geometry: no program")
	}

	if srf.vao == 0 {
		gl.GenVertexArrays(1, &srf.vao)
		gl.GenBuffers(2, &srf.vbo[0])
	}
	gl.BindVertexArray(srf.vao)

	for i, attr := range []struct {
		name       string
		components int32
		data       []float32
	}{
		{name: shaders.PositionAttribute, components: 3, data: vertices},
		{name: shaders.TextureCoordAttribute, components: 2, data: uvs},
	} {
		loc := gl.GetAttribLocation(srf.program, gl.Str(attr.name+"\x00"))
		if loc < 0 {
			return curated.Errorf("surface: geometry: no attribute %s", attr.name)
		}

		gl.BindBuffer(gl.ARRAY_BUFFER, srf.vbo[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(attr.data)*4, gl.Ptr(attr.data), gl.STATIC_DRAW)
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), attr.components, gl.FLOAT, false, 0, 0)
	}

	if e := gl.GetError(); e != gl.NO_ERROR {
		return curated.Errorf("surface: geometry: GL error %#x", e)
	}

	return nil
}

// CreateTexture implements the surface.Surface interface.
func (srf *Surface) CreateTexture(width int, height int, pixels []byte) error {
	if len(pixels) != width*height*4 {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("%dx%d texture with %d bytes", width, height, len(pixels)))
	}

	srf.width = int32(width)
	srf.height = int32(height)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.GenTextures(1, &srf.texture)
	gl.BindTexture(gl.TEXTURE_2D, srf.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, srf.width, srf.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.Uniform1i(gl.GetUniformLocation(srf.program, gl.Str(shaders.ImageUniform+"\x00")), 0)

	if e := gl.GetError(); e != gl.NO_ERROR {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("GL error %#x", e))
	}

	return nil
}

// UpdateTexture implements the surface.Surface interface.
func (srf *Surface) UpdateTexture(pixels []byte) error {
	if srf.texture == 0 {
		return curated.Errorf(surface.TextureUploadError, "no texture")
	}
	if len(pixels) != int(srf.width*srf.height*4) {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("%d bytes (wanted %d)", len(pixels), srf.width*srf.height*4))
	}

	gl.BindTexture(gl.TEXTURE_2D, srf.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, srf.width, srf.height,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))

	if e := gl.GetError(); e != gl.NO_ERROR {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("GL error %#x", e))
	}

	return nil
}

// Clear implements the surface.Surface interface.
func (srf *Surface) Clear(c surface.Color) {
	w, h := srf.window.GLGetDrawableSize()
	gl.Viewport(0, 0, w, h)
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw implements the surface.Surface interface.
func (srf *Surface) Draw(count int) {
	gl.UseProgram(srf.program)
	gl.BindVertexArray(srf.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, srf.texture)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
}

// ReadPixels implements the surface.Surface interface.
func (srf *Surface) ReadPixels() (*image.RGBA, error) {
	w, h := srf.window.GLGetDrawableSize()
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, w, h, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	if e := gl.GetError(); e != gl.NO_ERROR {
		return nil, curated.Errorf("surface: read pixels: GL error %#x", e)
	}

	// the first row read by OpenGL is the bottom of the surface
	row := make([]byte, img.Stride)
	for y := 0; y < int(h)/2; y++ {
		a := img.Pix[y*img.Stride : (y+1)*img.Stride]
		b := img.Pix[(int(h)-1-y)*img.Stride : (int(h)-y)*img.Stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}

	return img, nil
}
