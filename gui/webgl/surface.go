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

//go:build js && wasm

package webgl

import (
	"image"
	"syscall/js"

	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/shaders"
	"github.com/jetsetilly/compositor/surface"
)

// Surface implements the surface.Surface interface.
type Surface struct {
	canvas js.Value
	gl     js.Value

	program js.Value
	texture js.Value

	width, height int

	// pixels are copied to this array before being uploaded to the texture
	staging js.Value
}

func newSurface(canvas js.Value, gl js.Value) *Surface {
	return &Surface{
		canvas: canvas,
		gl:     gl,
	}
}

// enum returns the value of a WebGL constant.
func (srf *Surface) enum(name string) js.Value {
	return srf.gl.Get(name)
}

// glError returns an error if the WebGL context has recorded an error.
func (srf *Surface) glError() error {
	e := srf.gl.Call("getError").Int()
	if e != srf.enum("NO_ERROR").Int() {
		return curated.Errorf("WebGL error %#x", e)
	}
	return nil
}

// Dialect implements the surface.Surface interface.
func (srf *Surface) Dialect() shaders.Dialect {
	return shaders.GLSLES100
}

// CompileProgram implements the surface.Surface interface.
func (srf *Surface) CompileProgram(vertex string, fragment string) error {
	vert, err := srf.compileShader(srf.enum("VERTEX_SHADER"), vertex)
	if err != nil {
		return curated.Errorf(surface.ShaderCompileError, surface.VertexStage, err)
	}
	defer srf.gl.Call("deleteShader", vert)

	frag, err := srf.compileShader(srf.enum("FRAGMENT_SHADER"), fragment)
	if err != nil {
		return curated.Errorf(surface.ShaderCompileError, surface.FragmentStage, err)
	}
	defer srf.gl.Call("deleteShader", frag)

	program := srf.gl.Call("createProgram")
	srf.gl.Call("attachShader", program, vert)
	srf.gl.Call("attachShader", program, frag)
	srf.gl.Call("linkProgram", program)

	if !srf.gl.Call("getProgramParameter", program, srf.enum("LINK_STATUS")).Bool() {
		log := srf.gl.Call("getProgramInfoLog", program).String()
		srf.gl.Call("deleteProgram", program)
		return curated.Errorf(surface.ProgramLinkError, log)
	}

	srf.program = program
	srf.gl.Call("useProgram", srf.program)

	return nil
}

func (srf *Surface) compileShader(shaderType js.Value, source string) (js.Value, error) {
	shader := srf.gl.Call("createShader", shaderType)
	srf.gl.Call("shaderSource", shader, source)
	srf.gl.Call("compileShader", shader)

	if !srf.gl.Call("getShaderParameter", shader, srf.enum("COMPILE_STATUS")).Bool() {
		log := srf.gl.Call("getShaderInfoLog", shader).String()
		srf.gl.Call("deleteShader", shader)
		return js.Null(), curated.Errorf("%v", log)
	}

	return shader, nil
}

// UploadGeometry implements the surface.Surface interface.
func (srf *Surface) UploadGeometry(vertices []float32, uvs []float32) error {
	for _, attr := range []struct {
		name       string
		components int
		data       []float32
	}{
		{name: shaders.PositionAttribute, components: 3, data: vertices},
		{name: shaders.TextureCoordAttribute, components: 2, data: uvs},
	} {
		loc := srf.gl.Call("getAttribLocation", srf.program, attr.name).Int()
		if loc < 0 {
			return curated.Errorf("surface: geometry: no attribute %s", attr.name)
		}

		arr := js.Global().Get("Float32Array").New(len(attr.data))
		for i, v := range attr.data {
			arr.SetIndex(i, v)
		}

		buffer := srf.gl.Call("createBuffer")
		srf.gl.Call("bindBuffer", srf.enum("ARRAY_BUFFER"), buffer)
		srf.gl.Call("bufferData", srf.enum("ARRAY_BUFFER"), arr, srf.enum("STATIC_DRAW"))
		srf.gl.Call("enableVertexAttribArray", loc)
		srf.gl.Call("vertexAttribPointer", loc, attr.components, srf.enum("FLOAT"), false, 0, 0)
	}

	if err := srf.glError(); err != nil {
		return curated.Errorf("surface: geometry: %v", err)
	}

	return nil
}

// CreateTexture implements the surface.Surface interface.
func (srf *Surface) CreateTexture(width int, height int, pixels []byte) error {
	if len(pixels) != width*height*4 {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("%dx%d texture with %d bytes", width, height, len(pixels)))
	}

	srf.width = width
	srf.height = height
	srf.staging = js.Global().Get("Uint8Array").New(len(pixels))
	js.CopyBytesToJS(srf.staging, pixels)

	tex2D := srf.enum("TEXTURE_2D")

	srf.gl.Call("activeTexture", srf.enum("TEXTURE0"))
	srf.texture = srf.gl.Call("createTexture")
	srf.gl.Call("bindTexture", tex2D, srf.texture)
	srf.gl.Call("texImage2D", tex2D, 0, srf.enum("RGBA"), width, height, 0,
		srf.enum("RGBA"), srf.enum("UNSIGNED_BYTE"), srf.staging)
	srf.gl.Call("texParameteri", tex2D, srf.enum("TEXTURE_WRAP_S"), srf.enum("CLAMP_TO_EDGE"))
	srf.gl.Call("texParameteri", tex2D, srf.enum("TEXTURE_WRAP_T"), srf.enum("CLAMP_TO_EDGE"))
	srf.gl.Call("texParameteri", tex2D, srf.enum("TEXTURE_MAG_FILTER"), srf.enum("LINEAR"))
	srf.gl.Call("generateMipmap", tex2D)

	loc := srf.gl.Call("getUniformLocation", srf.program, shaders.ImageUniform)
	srf.gl.Call("uniform1i", loc, 0)

	if err := srf.glError(); err != nil {
		return curated.Errorf(surface.TextureUploadError, err)
	}

	return nil
}

// UpdateTexture implements the surface.Surface interface.
func (srf *Surface) UpdateTexture(pixels []byte) error {
	if srf.texture.IsUndefined() || srf.texture.IsNull() {
		return curated.Errorf(surface.TextureUploadError, "no texture")
	}
	if len(pixels) != srf.width*srf.height*4 {
		return curated.Errorf(surface.TextureUploadError, curated.Errorf("%d bytes (wanted %d)", len(pixels), srf.width*srf.height*4))
	}

	js.CopyBytesToJS(srf.staging, pixels)

	tex2D := srf.enum("TEXTURE_2D")
	srf.gl.Call("bindTexture", tex2D, srf.texture)
	srf.gl.Call("texSubImage2D", tex2D, 0, 0, 0, srf.width, srf.height,
		srf.enum("RGBA"), srf.enum("UNSIGNED_BYTE"), srf.staging)

	if err := srf.glError(); err != nil {
		return curated.Errorf(surface.TextureUploadError, err)
	}

	return nil
}

// Clear implements the surface.Surface interface.
func (srf *Surface) Clear(c surface.Color) {
	srf.gl.Call("viewport", 0, 0, srf.canvas.Get("width"), srf.canvas.Get("height"))
	srf.gl.Call("clearColor", c.R, c.G, c.B, c.A)
	srf.gl.Call("clear", srf.enum("COLOR_BUFFER_BIT"))
}

// Draw implements the surface.Surface interface.
func (srf *Surface) Draw(count int) {
	srf.gl.Call("drawArrays", srf.enum("TRIANGLES"), 0, count)
}

// ReadPixels implements the surface.Surface interface. Must be called in the
// same animation frame as the draw.
func (srf *Surface) ReadPixels() (*image.RGBA, error) {
	w := srf.canvas.Get("width").Int()
	h := srf.canvas.Get("height").Int()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	arr := js.Global().Get("Uint8Array").New(len(img.Pix))
	srf.gl.Call("readPixels", 0, 0, w, h, srf.enum("RGBA"), srf.enum("UNSIGNED_BYTE"), arr)
	if err := srf.glError(); err != nil {
		return nil, curated.Errorf("surface: read pixels: %v", err)
	}
	js.CopyBytesToGo(img.Pix, arr)

	// the first row read by WebGL is the bottom of the canvas
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		a := img.Pix[y*img.Stride : (y+1)*img.Stride]
		b := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}

	return img, nil
}
