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

package source_test

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
	"github.com/jetsetilly/compositor/source"
	"github.com/jetsetilly/compositor/test"
	"golang.org/x/image/bmp"
)

func pixel(data []byte, x, y int) color.RGBA {
	i := (y*frame.Width + x) * frame.Channels
	return color.RGBA{R: data[i], G: data[i+1], B: data[i+2], A: data[i+3]}
}

func TestPattern(t *testing.T) {
	p := source.NewPattern()
	data := make([]byte, frame.BufferSize)

	test.DemandSuccess(t, p.Next(data))
	test.ExpectEquality(t, pixel(data, 0, 0), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	test.ExpectEquality(t, pixel(data, frame.Width-1, 0), color.RGBA{A: 0xff})

	// grey ramp along the bottom
	test.ExpectEquality(t, pixel(data, 0, frame.Height-1), color.RGBA{A: 0xff})
	test.ExpectEquality(t, pixel(data, frame.Width-1, frame.Height-1), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	// bars scroll one pixel to the left every frame
	edge := frame.Width/8 - 1
	test.ExpectEquality(t, pixel(data, edge, 0).B, 0xff)
	test.DemandSuccess(t, p.Next(data))
	test.ExpectEquality(t, pixel(data, edge, 0).B, 0x00)
}

func TestSolid(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	data := make([]byte, frame.BufferSize)
	test.DemandSuccess(t, source.Solid{Color: c}.Next(data))
	test.ExpectEquality(t, pixel(data, 0, 0), c)
	test.ExpectEquality(t, pixel(data, frame.Width-1, frame.Height-1), c)
}

// writeImage creates a file containing a uniform image of the given color.
func writeImage(t *testing.T, filename string, c color.RGBA, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}

	filename = filepath.Join(t.TempDir(), filename)
	f, err := os.Create(filename)
	test.DemandSuccess(t, err)
	defer f.Close()
	test.DemandSuccess(t, encode(f, img))

	return filename
}

func TestSlideshow(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	files := []string{
		writeImage(t, "red.png", red, png.Encode),
		writeImage(t, "GREEN.BMP", green, bmp.Encode),
		writeImage(t, "blue.tga", blue, tga.Encode),
		writeImage(t, "white.webp", white, func(w io.Writer, img image.Image) error {
			return nativewebp.Encode(w, img, nil)
		}),
	}

	sl, err := source.NewSlideshow(files, 2)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, sl.Len(), 4)

	data := make([]byte, frame.BufferSize)
	for _, c := range []color.RGBA{red, red, green, green, blue, blue, white, white, red} {
		test.DemandSuccess(t, sl.Next(data))
		test.ExpectEquality(t, pixel(data, 0, 0), c)
		test.ExpectEquality(t, pixel(data, frame.Width/2, frame.Height/2), c)
	}
}

func TestSlideshowErrors(t *testing.T) {
	_, err := source.NewSlideshow(nil, 1)
	test.ExpectFailure(t, err)

	_, err = source.NewSlideshow([]string{filepath.Join(t.TempDir(), "missing.png")}, 1)
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "garbage.png")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not an image"), 0o600))
	_, err = source.NewSlideshow([]string{fn}, 1)
	test.ExpectFailure(t, err)

	fn = filepath.Join(t.TempDir(), "image.xyz")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not an image"), 0o600))
	_, err = source.NewSlideshow([]string{fn}, 1)
	test.ExpectSuccess(t, curated.Has(err, source.UnsupportedImage))
}

// the tga package is imported by this test file, which registers a decoder
// that claims every input. png and jpeg files must still decode as themselves.
func TestSlideshowAlongsideTGA(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	files := []string{
		writeImage(t, "red.png", red, png.Encode),
		writeImage(t, "red.jpg", red, func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		}),
		writeImage(t, "red.tga", red, tga.Encode),
	}

	sl, err := source.NewSlideshow(files, 1)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, sl.Len(), 3)

	data := make([]byte, frame.BufferSize)

	// png and tga are lossless
	test.DemandSuccess(t, sl.Next(data))
	test.ExpectEquality(t, pixel(data, frame.Width/2, frame.Height/2), red)

	// jpeg is lossy so only check that red dominates
	test.DemandSuccess(t, sl.Next(data))
	px := pixel(data, frame.Width/2, frame.Height/2)
	test.ExpectSuccess(t, px.R > 0xe0 && px.G < 0x20 && px.B < 0x20)

	test.DemandSuccess(t, sl.Next(data))
	test.ExpectEquality(t, pixel(data, frame.Width/2, frame.Height/2), red)
}

type sink struct {
	crit   sync.Mutex
	frames int
	limit  int
	cancel context.CancelFunc
}

func (s *sink) SubmitFrame(data []byte) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	if len(data) != frame.BufferSize {
		return curated.Errorf(frame.SizeMismatch, len(data), frame.BufferSize)
	}
	s.frames++
	if s.frames == s.limit {
		s.cancel()
	}
	return nil
}

func TestRun(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s := &sink{limit: 5, cancel: cancel}
	test.ExpectSuccess(t, source.Run(ctx, s, source.NewPattern(), 200))
	test.ExpectEquality(t, s.frames, 5)

	test.ExpectFailure(t, source.Run(context.Background(), s, source.NewPattern(), 0))
}
