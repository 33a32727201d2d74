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
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/jetsetilly/compositor/curated"
	"github.com/jetsetilly/compositor/frame"
	"github.com/jetsetilly/compositor/logger"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// UnsupportedImage is returned by NewSlideshow() when a file extension does
// not name one of the supported image formats.
const UnsupportedImage = "unsupported image format: %s"

// decoders keyed by file extension. image.Decode() is not used because the tga
// package registers itself with an empty magic string, which matches any input
// and so hides every format registered after it.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
	".tga":  tga.Decode,
}

// Slideshow produces frames from a list of images. Each image is shown for
// a fixed number of frames before moving on to the next. After the last image
// the slideshow starts again.
type Slideshow struct {
	slides [][]byte
	hold   int

	idx   int
	count int
}

// NewSlideshow decodes the image files and scales them to the frame size.
// Supported formats are PNG, JPEG, GIF, BMP, WebP and TGA. Each image is
// shown for hold frames.
func NewSlideshow(files []string, hold int) (*Slideshow, error) {
	if len(files) == 0 {
		return nil, curated.Errorf("slideshow: no images")
	}

	sl := &Slideshow{
		hold: max(hold, 1),
	}

	for _, fn := range files {
		img, err := loadImage(fn)
		if err != nil {
			return nil, curated.Errorf("slideshow: %v", err)
		}
		sl.slides = append(sl.slides, Scale(img))
		logger.Logf(logger.Allow, "slideshow", "loaded %s (%dx%d)", fn, img.Bounds().Dx(), img.Bounds().Dy())
	}

	return sl, nil
}

func loadImage(filename string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	decode, ok := decoders[ext]
	if !ok {
		return nil, curated.Errorf(UnsupportedImage, filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, curated.Errorf("%s: %v", filename, err)
	}

	return img, nil
}

// Scale an image of any size to a new frame. The aspect ratio of the image
// is not preserved.
func Scale(img image.Image) []byte {
	data := make([]byte, frame.BufferSize)
	draw.CatmullRom.Scale(frame.Image(data), image.Rect(0, 0, frame.Width, frame.Height), img, img.Bounds(), draw.Src, nil)
	return data
}

// Len returns the number of images in the slideshow.
func (sl *Slideshow) Len() int {
	return len(sl.slides)
}

// Next implements the Source interface.
func (sl *Slideshow) Next(dst []byte) error {
	copy(dst, sl.slides[sl.idx])

	sl.count++
	if sl.count >= sl.hold {
		sl.count = 0
		sl.idx = (sl.idx + 1) % len(sl.slides)
	}

	return nil
}
